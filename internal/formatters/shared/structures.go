// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"lexiscan/internal/formatters"
	"lexiscan/internal/risk"
)

// Report is the top-level structure for JSON/YAML output.
type Report struct {
	DocumentType     string                `json:"document_type" yaml:"document_type"`
	Jurisdiction     string                `json:"jurisdiction" yaml:"jurisdiction"`
	OverallRiskScore string                `json:"overall_risk_score" yaml:"overall_risk_score"`
	RiskSummary      string                `json:"risk_summary" yaml:"risk_summary"`
	Risks            []ReportRisk          `json:"risks" yaml:"risks"`
	Recommendations  []string              `json:"recommendations" yaml:"recommendations"`
	Suppressed       []risk.SuppressedRisk `json:"suppressed,omitempty" yaml:"suppressed,omitempty"`
}

// ReportRisk is a single finding in JSON/YAML output.
type ReportRisk struct {
	Category       string `json:"category" yaml:"category"`
	Severity       string `json:"severity" yaml:"severity"`
	Description    string `json:"description" yaml:"description"`
	AffectedClause string `json:"affected_clause,omitempty" yaml:"affected_clause,omitempty"`
	Recommendation string `json:"recommendation" yaml:"recommendation"`
	Source         string `json:"source,omitempty" yaml:"source,omitempty"`
}

// FilterRisksBySeverity filters findings based on severity level settings.
func FilterRisksBySeverity(risks []risk.Risk, options formatters.FormatterOptions) []risk.Risk {
	if options.SeverityLevels == nil {
		return risks
	}
	var filtered []risk.Risk
	for _, r := range risks {
		if options.SeverityLevels[string(r.Severity)] {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// BuildReport converts an assessment result into the shared report
// structure used identically by the JSON and YAML formatters.
func BuildReport(result *risk.AssessmentResult, suppressed []risk.SuppressedRisk, options formatters.FormatterOptions) Report {
	report := Report{
		DocumentType:     result.DocumentType,
		Jurisdiction:     result.Jurisdiction,
		OverallRiskScore: string(result.OverallRiskScore),
		RiskSummary:      result.RiskSummary,
		Risks:            []ReportRisk{},
		Recommendations:  result.Recommendations,
		Suppressed:       suppressed,
	}

	for _, r := range FilterRisksBySeverity(result.Risks, options) {
		reportRisk := ReportRisk{
			Category:       string(r.Category),
			Severity:       string(r.Severity),
			Description:    r.Description,
			Recommendation: r.Recommendation,
			Source:         r.Source,
		}
		if options.ShowExcerpts {
			reportRisk.AffectedClause = r.AffectedClause
		}
		report.Risks = append(report.Risks, reportRisk)
	}

	return report
}
