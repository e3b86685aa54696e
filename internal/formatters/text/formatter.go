// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"sort"
	"strings"

	"lexiscan/internal/formatters"
	"lexiscan/internal/formatters/shared"
	"lexiscan/internal/risk"

	"github.com/fatih/color"
)

// Formatter implements human-readable text output
type Formatter struct {
	severityColors map[risk.Severity]*color.Color
	headerColor    *color.Color
	dimColor       *color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		severityColors: map[risk.Severity]*color.Color{
			risk.SeverityHigh:   color.New(color.FgRed, color.Bold),
			risk.SeverityMedium: color.New(color.FgYellow),
			risk.SeverityLow:    color.New(color.FgGreen),
		},
		headerColor: color.New(color.FgWhite, color.Bold),
		dimColor:    color.New(color.FgCyan),
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable risk report with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result *risk.AssessmentResult, suppressed []risk.SuppressedRisk, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	filtered := shared.FilterRisksBySeverity(result.Risks, options)

	var builder strings.Builder

	builder.WriteString(f.headerColor.Sprintf("Risk Assessment Report"))
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("Document type: %s    Jurisdiction: %s\n", result.DocumentType, result.Jurisdiction))
	builder.WriteString(fmt.Sprintf("Overall risk:  %s\n\n", f.colorizeSeverity(result.OverallRiskScore)))

	builder.WriteString(result.RiskSummary)
	builder.WriteString("\n")

	if len(filtered) == 0 {
		if len(result.Risks) > 0 {
			builder.WriteString("\nNo findings at the selected severity levels.\n")
		}
	} else {
		builder.WriteString(fmt.Sprintf("\nFindings (%d):\n", len(filtered)))
		for i, r := range f.sortedBySeverity(filtered) {
			builder.WriteString(fmt.Sprintf("%2d. [%s] %s %s\n",
				i+1,
				f.colorizeSeverity(r.Severity),
				f.dimColor.Sprintf("%s:", r.Category),
				r.Description))
			if options.ShowExcerpts && r.AffectedClause != "" {
				builder.WriteString(fmt.Sprintf("    Clause: %s\n", r.AffectedClause))
			}
			builder.WriteString(fmt.Sprintf("    Advice: %s\n", r.Recommendation))
			if options.Verbose && r.Source != "" {
				builder.WriteString(fmt.Sprintf("    Source: %s\n", r.Source))
			}
		}
	}

	if len(result.Recommendations) > 0 {
		builder.WriteString("\nRecommendations:\n")
		for _, rec := range result.Recommendations {
			builder.WriteString(fmt.Sprintf("  - %s\n", rec))
		}
	}

	if len(suppressed) > 0 {
		builder.WriteString(fmt.Sprintf("\nSuppressed findings (%d):\n", len(suppressed)))
		for _, s := range suppressed {
			builder.WriteString(fmt.Sprintf("  - [%s] %s (suppressed by %s: %s)\n",
				s.Risk.Severity, s.Risk.Description, s.SuppressedBy, s.RuleReason))
		}
	}

	return builder.String(), nil
}

// sortedBySeverity orders findings high, medium, low while keeping the
// engine's emission order within each severity.
func (f *Formatter) sortedBySeverity(risks []risk.Risk) []risk.Risk {
	sorted := make([]risk.Risk, len(risks))
	copy(sorted, risks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Weight() > sorted[j].Severity.Weight()
	})
	return sorted
}

func (f *Formatter) colorizeSeverity(s risk.Severity) string {
	c, ok := f.severityColors[s]
	if !ok {
		return strings.ToUpper(string(s))
	}
	return c.Sprint(strings.ToUpper(string(s)))
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
