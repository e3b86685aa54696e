// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package help renders CLI usage and pattern catalog documentation.
package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"lexiscan/internal/patterns"
	"lexiscan/internal/risk"
)

// System manages help content for the application
type System struct {
	catalog *patterns.Catalog
	noColor bool
	colors  map[string]*color.Color
}

// NewSystem creates a new help system over the given pattern catalog.
func NewSystem(catalog *patterns.Catalog, noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		catalog: catalog,
		noColor: noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"high":     color.New(color.FgRed, color.Bold),
			"medium":   color.New(color.FgYellow),
			"low":      color.New(color.FgGreen),
			"negative": color.New(color.FgRed),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("LexiScan - Legal Document Risk Assessment")
	fmt.Println("=========================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  lexiscan --file <path-to-document> [options]")
	fmt.Println("  lexiscan --web [--port <port>]  # Web server mode")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --file\t<path>\tPath to the document to assess (.txt, .md, .pdf)")
	fmt.Fprintln(w, "  --clauses\t<path>\tPath to a pre-segmented clause file (JSON or YAML)")
	fmt.Fprintln(w, "  --segment\t\tDerive clauses from the document text (default: true when no clause file is given)")
	fmt.Fprintln(w, "  --type\t<type>\tDocument type: contract, lease, loan_agreement, terms_of_service, privacy_policy, other (default: other)")
	fmt.Fprintln(w, "  --jurisdiction\t<code>\tJurisdiction code recorded in the report (default: US)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  --catalog\t<path>\tPath to a custom risk pattern catalog (YAML)")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json, csv, yaml (default: text)")
	fmt.Fprintln(w, "  --severity\t<levels>\tSeverity levels to display: high,medium,low,all (default: all)")
	fmt.Fprintln(w, "  --output\t<path>\tPath to output file (if not specified, output to stdout)")
	fmt.Fprintln(w, "  --verbose\t\tDisplay detailed information for each finding")
	fmt.Fprintln(w, "  --debug\t\tEnable debug logging for the assessment pipeline")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --show-excerpts\t\tInclude matched text excerpts in the report (default: true)")
	fmt.Fprintln(w, "  --suppression-file\t<path>\tPath to suppression configuration file")
	fmt.Fprintln(w, "  --show-suppressed\t\tInclude suppressed findings in the report")
	fmt.Fprintln(w, "  --web\t\tStart web server mode instead of CLI assessment")
	fmt.Fprintln(w, "  --port\t<port>\tPort for web server (default: 8080, only used with --web)")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	fmt.Fprintln(w, "  --help patterns\t\tList all risk patterns in the catalog")
	fmt.Fprintln(w, "  --help <pattern-id>\t\tShow detailed help for a specific pattern")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	fmt.Println("  Basic Usage:")
	h.colors["example"].Println("    lexiscan --file lease.pdf --type lease")
	h.colors["example"].Println("    lexiscan --file contract.txt --severity high,medium --verbose")
	fmt.Println("  Pre-segmented Clauses:")
	h.colors["example"].Println("    lexiscan --file terms.txt --clauses clauses.json --type terms_of_service")
	fmt.Println("  Configuration and Profiles:")
	h.colors["example"].Println("    lexiscan --file loan.pdf --config lexiscan.yaml --profile ci")
	h.colors["example"].Println("    lexiscan --list-profiles --config lexiscan.yaml")
	fmt.Println()
	h.colors["header"].Println("Web Server Examples:")
	h.colors["example"].Println("  lexiscan --web  # Start web server on default port")
	h.colors["example"].Println("  lexiscan --web --port 9000  # Start web server on custom port")

	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Default config: ~/.config/lexiscan/config.yaml")
	fmt.Println("  Project config: .lexiscan.yaml or lexiscan.yaml (in current directory)")
	fmt.Println("  Environment: LEXISCAN_CONFIG_DIR - Override config directory")
}

// ShowPatternsHelp lists every pattern in the catalog.
func (h *System) ShowPatternsHelp() {
	h.colors["title"].Println("Risk Patterns in LexiScan")
	fmt.Println("=========================")
	fmt.Println()
	fmt.Println("The following patterns are scanned for in documents and clauses:")
	fmt.Println()

	all := make([]patterns.RiskPattern, len(h.catalog.Patterns()))
	copy(all, h.catalog.Patterns())
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  PATTERN\tCATEGORY\tSEVERITY\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  -------\t--------\t--------\t-----------")
	for _, p := range all {
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", p.ID)
		fmt.Fprintf(w, "\t%s\t%s\t%s\n", p.Category, p.Severity, p.Description)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("For detailed information about a specific pattern, use:")
	h.colors["example"].Println("  lexiscan --help <pattern-id>")
}

// ShowPatternHelp displays detailed help for a specific pattern. Returns
// false when the pattern is unknown.
func (h *System) ShowPatternHelp(patternID string) bool {
	p, ok := h.catalog.Get(strings.ToLower(patternID))
	if !ok {
		h.colors["negative"].Printf("Error: Pattern '%s' not found.\n", patternID)
		fmt.Println("Use 'lexiscan --help patterns' to see a list of available patterns.")
		return false
	}

	h.colors["title"].Printf("%s\n", p.ID)
	fmt.Println(strings.Repeat("=", len(p.ID)))
	fmt.Println()
	fmt.Println(p.Description)
	fmt.Println()

	h.colors["header"].Println("CATEGORY AND SEVERITY:")
	fmt.Printf("  Category: ")
	h.colors["item"].Println(string(p.Category))
	fmt.Printf("  Severity: ")
	h.severityColor(p.Severity).Println(strings.ToUpper(string(p.Severity)))
	fmt.Println()

	h.colors["header"].Println("TRIGGER PHRASES:")
	for _, phrase := range p.Phrases {
		fmt.Print("  - ")
		h.colors["item"].Println(phrase)
	}
	fmt.Println()

	if len(p.DocumentTypes) > 0 {
		h.colors["header"].Println("DOCUMENT TYPES:")
		for _, docType := range p.DocumentTypes {
			fmt.Print("  - ")
			h.colors["item"].Println(docType)
		}
	} else {
		h.colors["header"].Println("DOCUMENT TYPES:")
		fmt.Println("  - all")
	}
	fmt.Println()

	h.colors["header"].Println("RECOMMENDATION:")
	fmt.Printf("  %s\n", p.Recommendation)

	return true
}

func (h *System) severityColor(severity risk.Severity) *color.Color {
	switch severity {
	case risk.SeverityHigh:
		return h.colors["high"]
	case risk.SeverityMedium:
		return h.colors["medium"]
	default:
		return h.colors["low"]
	}
}
