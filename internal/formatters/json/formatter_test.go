// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"testing"

	"lexiscan/internal/formatters"
	"lexiscan/internal/risk"
)

func TestFormat_ValidJSON(t *testing.T) {
	f := NewFormatter()
	result := &risk.AssessmentResult{
		Risks: []risk.Risk{{
			Category:       risk.CategoryLegal,
			Severity:       risk.SeverityHigh,
			Description:    "finding",
			AffectedClause: "clause",
			Recommendation: "advice",
			Source:         "broad-indemnification",
		}},
		OverallRiskScore: risk.SeverityHigh,
		RiskSummary:      "summary",
		Recommendations:  []string{"advice"},
		DocumentType:     risk.DocTypeContract,
		Jurisdiction:     "US",
	}

	out, err := f.Format(result, nil, formatters.FormatterOptions{ShowExcerpts: true})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["overall_risk_score"] != "high" {
		t.Errorf("overall_risk_score = %v", decoded["overall_risk_score"])
	}
	risks, ok := decoded["risks"].([]interface{})
	if !ok || len(risks) != 1 {
		t.Fatalf("risks = %v", decoded["risks"])
	}
	first := risks[0].(map[string]interface{})
	if first["affected_clause"] != "clause" {
		t.Errorf("affected_clause = %v", first["affected_clause"])
	}
}

func TestFormat_EmptyResult(t *testing.T) {
	f := NewFormatter()
	result := &risk.AssessmentResult{
		OverallRiskScore: risk.SeverityLow,
		DocumentType:     risk.DocTypeContract,
	}

	out, err := f.Format(result, nil, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded struct {
		Risks []interface{} `json:"risks"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	// Empty risks marshal as [], not null.
	if decoded.Risks == nil {
		t.Error("risks should be an empty array, not null")
	}
}
