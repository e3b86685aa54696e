// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"strings"

	"lexiscan/internal/formatters"
	"lexiscan/internal/formatters/shared"
	"lexiscan/internal/risk"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(result *risk.AssessmentResult, suppressed []risk.SuppressedRisk, options formatters.FormatterOptions) (string, error) {
	filtered := shared.FilterRisksBySeverity(result.Risks, options)

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	headers := []string{"Category", "Severity", "Description", "Recommendation"}
	if options.ShowExcerpts {
		headers = append(headers, "Affected Clause")
	}
	if options.Verbose {
		headers = append(headers, "Source")
	}
	if err := w.Write(headers); err != nil {
		return "", err
	}

	for _, r := range filtered {
		row := []string{string(r.Category), string(r.Severity), r.Description, r.Recommendation}
		if options.ShowExcerpts {
			row = append(row, r.AffectedClause)
		}
		if options.Verbose {
			row = append(row, r.Source)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	for _, s := range suppressed {
		row := []string{string(s.Risk.Category), string(s.Risk.Severity),
			"[SUPPRESSED by " + s.SuppressedBy + "] " + s.Risk.Description, s.Risk.Recommendation}
		if options.ShowExcerpts {
			row = append(row, s.Risk.AffectedClause)
		}
		if options.Verbose {
			row = append(row, s.Risk.Source)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
