// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"testing"

	"lexiscan/internal/formatters"
	"lexiscan/internal/risk"
)

func sampleRisks() []risk.Risk {
	return []risk.Risk{
		{Category: risk.CategoryLegal, Severity: risk.SeverityHigh, Description: "high finding", AffectedClause: "clause one"},
		{Category: risk.CategoryFinancial, Severity: risk.SeverityMedium, Description: "medium finding", AffectedClause: "clause two"},
		{Category: risk.CategoryPrivacy, Severity: risk.SeverityLow, Description: "low finding", AffectedClause: "clause three"},
	}
}

func TestFilterRisksBySeverity(t *testing.T) {
	risks := sampleRisks()

	t.Run("nil levels keep everything", func(t *testing.T) {
		got := FilterRisksBySeverity(risks, formatters.FormatterOptions{})
		if len(got) != len(risks) {
			t.Errorf("got %d findings, want %d", len(got), len(risks))
		}
	})

	t.Run("selected levels only", func(t *testing.T) {
		options := formatters.FormatterOptions{
			SeverityLevels: map[string]bool{"high": true, "medium": true},
		}
		got := FilterRisksBySeverity(risks, options)
		if len(got) != 2 {
			t.Fatalf("got %d findings, want 2", len(got))
		}
		for _, r := range got {
			if r.Severity == risk.SeverityLow {
				t.Error("low finding should have been filtered")
			}
		}
	})

	t.Run("no matching level", func(t *testing.T) {
		options := formatters.FormatterOptions{SeverityLevels: map[string]bool{}}
		if got := FilterRisksBySeverity(risks, options); len(got) != 0 {
			t.Errorf("got %d findings, want 0", len(got))
		}
	})
}

func TestBuildReport(t *testing.T) {
	result := &risk.AssessmentResult{
		Risks:            sampleRisks(),
		OverallRiskScore: risk.SeverityHigh,
		RiskSummary:      "summary",
		Recommendations:  []string{"advice"},
		DocumentType:     risk.DocTypeLease,
		Jurisdiction:     "US",
	}

	report := BuildReport(result, nil, formatters.FormatterOptions{ShowExcerpts: true})
	if report.DocumentType != risk.DocTypeLease || report.Jurisdiction != "US" {
		t.Errorf("document metadata not carried over: %+v", report)
	}
	if report.OverallRiskScore != "high" {
		t.Errorf("score = %q", report.OverallRiskScore)
	}
	if len(report.Risks) != 3 {
		t.Fatalf("got %d risks, want 3", len(report.Risks))
	}
	if report.Risks[0].AffectedClause != "clause one" {
		t.Errorf("excerpt missing with ShowExcerpts: %+v", report.Risks[0])
	}
}

func TestBuildReport_ExcerptsHidden(t *testing.T) {
	result := &risk.AssessmentResult{Risks: sampleRisks()}

	report := BuildReport(result, nil, formatters.FormatterOptions{ShowExcerpts: false})
	for _, r := range report.Risks {
		if r.AffectedClause != "" {
			t.Errorf("excerpt should be omitted when ShowExcerpts is off: %+v", r)
		}
	}
}

func TestBuildReport_Suppressed(t *testing.T) {
	result := &risk.AssessmentResult{Risks: sampleRisks()}
	suppressed := []risk.SuppressedRisk{{
		Risk:         risk.Risk{Description: "suppressed finding"},
		SuppressedBy: "SUP-00000001",
		RuleReason:   "accepted",
	}}

	report := BuildReport(result, suppressed, formatters.FormatterOptions{})
	if len(report.Suppressed) != 1 || report.Suppressed[0].SuppressedBy != "SUP-00000001" {
		t.Errorf("suppressed findings not carried: %+v", report.Suppressed)
	}
}
