// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters_test

import (
	"strings"
	"testing"

	"lexiscan/internal/formatters"
	"lexiscan/internal/risk"

	_ "lexiscan/internal/formatters/csv"
	_ "lexiscan/internal/formatters/json"
	_ "lexiscan/internal/formatters/text"
	_ "lexiscan/internal/formatters/yaml"
)

func sampleResult() *risk.AssessmentResult {
	return &risk.AssessmentResult{
		Risks: []risk.Risk{{
			Category:       risk.CategoryLegal,
			Severity:       risk.SeverityHigh,
			Description:    "Broad indemnification obligation.",
			AffectedClause: "Vendor shall indemnify and hold harmless the client.",
			Recommendation: "Narrow the indemnity.",
			Source:         "broad-indemnification",
		}},
		OverallRiskScore: risk.SeverityHigh,
		RiskSummary:      "Overall risk level: HIGH. Found 1 potential risk(s): 1 high. Primary risk areas: legal (1).",
		Recommendations:  []string{"Review before signing."},
		DocumentType:     risk.DocTypeContract,
		Jurisdiction:     "US",
	}
}

func TestRegistry_AllFormatsRegistered(t *testing.T) {
	for _, name := range []string{"text", "json", "csv", "yaml"} {
		if _, ok := formatters.Get(name); !ok {
			t.Errorf("formatter %s not registered", name)
		}
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := formatters.Export("xml", sampleResult(), nil, formatters.FormatterOptions{})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unsupported format 'xml'") {
		t.Errorf("error should name the format: %v", err)
	}
}

func TestExport_EachFormatProducesOutput(t *testing.T) {
	options := formatters.FormatterOptions{NoColor: true, ShowExcerpts: true}
	for _, name := range []string{"text", "json", "csv", "yaml"} {
		t.Run(name, func(t *testing.T) {
			out, err := formatters.Export(name, sampleResult(), nil, options)
			if err != nil {
				t.Fatalf("Export(%s) failed: %v", name, err)
			}
			if !strings.Contains(out, "Broad indemnification obligation.") {
				t.Errorf("%s output should contain the finding description", name)
			}
		})
	}
}

func TestGetFormatInfo(t *testing.T) {
	cases := []struct {
		name      string
		mimeType  string
		extension string
	}{
		{"json", "application/json", ".json"},
		{"csv", "text/csv", ".csv"},
		{"yaml", "application/x-yaml", ".yaml"},
		{"text", "text/plain", ".txt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := formatters.GetFormatInfo(tc.name)
			if info.MimeType != tc.mimeType {
				t.Errorf("mime type = %q, want %q", info.MimeType, tc.mimeType)
			}
			if info.Extension != tc.extension {
				t.Errorf("extension = %q, want %q", info.Extension, tc.extension)
			}
			if !info.WebSupported {
				t.Error("registered formats are web supported")
			}
		})
	}

	if info := formatters.GetFormatInfo("xml"); info.Name != "" {
		t.Errorf("unknown format should yield empty info, got %+v", info)
	}
}

func TestExportForWeb(t *testing.T) {
	content, mimeType, filename, err := formatters.ExportForWeb("json", sampleResult(), nil, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("ExportForWeb failed: %v", err)
	}
	if content == "" {
		t.Error("expected non-empty content")
	}
	if mimeType != "application/json" {
		t.Errorf("mime type = %q", mimeType)
	}
	if filename != "lexiscan-report.json" {
		t.Errorf("filename = %q", filename)
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := formatters.GetSupportedFormats()
	if len(formats) < 4 {
		t.Errorf("expected at least 4 formats, got %d", len(formats))
	}
}
