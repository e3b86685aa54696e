// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"lexiscan/internal/formatters"
	"lexiscan/internal/risk"
)

func testResult() *risk.AssessmentResult {
	return &risk.AssessmentResult{
		Risks: []risk.Risk{
			{Category: risk.CategoryFinancial, Severity: risk.SeverityLow, Description: "low finding", AffectedClause: "low clause", Recommendation: "low advice"},
			{Category: risk.CategoryLegal, Severity: risk.SeverityHigh, Description: "high finding", AffectedClause: "high clause", Recommendation: "high advice", Source: "broad-indemnification"},
		},
		OverallRiskScore: risk.SeverityHigh,
		RiskSummary:      "Overall risk level: HIGH.",
		Recommendations:  []string{"Read carefully."},
		DocumentType:     risk.DocTypeContract,
		Jurisdiction:     "US",
	}
}

func TestFormat_Sections(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(testResult(), nil, formatters.FormatterOptions{NoColor: true, ShowExcerpts: true})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	for _, want := range []string{
		"Risk Assessment Report",
		"Document type: contract    Jurisdiction: US",
		"Findings (2):",
		"high finding",
		"Clause: high clause",
		"Advice: high advice",
		"Recommendations:",
		"  - Read carefully.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q\n%s", want, out)
		}
	}
}

func TestFormat_SeveritySortOrder(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(testResult(), nil, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if strings.Index(out, "high finding") > strings.Index(out, "low finding") {
		t.Error("high findings should be listed before low findings")
	}
}

func TestFormat_ExcerptsHidden(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(testResult(), nil, formatters.FormatterOptions{NoColor: true, ShowExcerpts: false})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if strings.Contains(out, "Clause: high clause") {
		t.Error("excerpts should be hidden when ShowExcerpts is off")
	}
}

func TestFormat_VerboseShowsSource(t *testing.T) {
	f := NewFormatter()

	out, err := f.Format(testResult(), nil, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if strings.Contains(out, "Source: broad-indemnification") {
		t.Error("source should be hidden without verbose")
	}

	out, err = f.Format(testResult(), nil, formatters.FormatterOptions{NoColor: true, Verbose: true})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(out, "Source: broad-indemnification") {
		t.Error("verbose output should include the finding source")
	}
}

func TestFormat_SeverityFilterNotice(t *testing.T) {
	f := NewFormatter()
	options := formatters.FormatterOptions{
		NoColor:        true,
		SeverityLevels: map[string]bool{},
	}
	out, err := f.Format(testResult(), nil, options)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(out, "No findings at the selected severity levels.") {
		t.Errorf("filtered-out findings should be announced:\n%s", out)
	}
}

func TestFormat_Suppressed(t *testing.T) {
	f := NewFormatter()
	suppressed := []risk.SuppressedRisk{{
		Risk:         risk.Risk{Severity: risk.SeverityHigh, Description: "suppressed finding"},
		SuppressedBy: "SUP-00000001",
		RuleReason:   "accepted",
	}}

	out, err := f.Format(testResult(), suppressed, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(out, "Suppressed findings (1):") {
		t.Errorf("suppressed section missing:\n%s", out)
	}
	if !strings.Contains(out, "suppressed by SUP-00000001: accepted") {
		t.Errorf("suppression attribution missing:\n%s", out)
	}
}
