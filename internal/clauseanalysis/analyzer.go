// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package clauseanalysis inspects clause structure for risk signals that
// are independent of keyword matching: buried exceptions in long clauses
// and time-bound obligations.
package clauseanalysis

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"lexiscan/internal/risk"
)

// Content longer than this with qualifying language is flagged as
// potentially hiding limitations.
const longClauseThreshold = 1000

// Analyzer holds the compiled time-obligation patterns. Patterns are
// evaluated in order and the first match wins, so at most one deadline
// finding is emitted per clause.
type Analyzer struct {
	timeObligations []*regexp.Regexp
}

// New creates an analyzer with the built-in heuristics. The regexes are
// anchored to short literal shapes; Go's RE2 engine guarantees
// linear-time evaluation even on hostile clause text.
func New() *Analyzer {
	return &Analyzer{
		timeObligations: []*regexp.Regexp{
			regexp.MustCompile(`within \d+ days`),
			regexp.MustCompile(`by [a-z]+ \d+`),
			regexp.MustCompile(`no later than`),
			regexp.MustCompile(`immediately`),
		},
	}
}

// AnalyzeClause returns structural findings for a single clause. It runs
// independently of the pattern matcher's clause pass.
func (a *Analyzer) AnalyzeClause(clause risk.Clause, documentType string) []risk.Risk {
	var findings []risk.Risk
	lowerContent := strings.ToLower(clause.Content)

	if len(clause.Content) > longClauseThreshold &&
		strings.Contains(lowerContent, "provided that") &&
		strings.Contains(lowerContent, "except") {
		findings = append(findings, risk.Risk{
			Category:       risk.CategoryLegal,
			Severity:       risk.SeverityMedium,
			Description:    buildClauseDescription("This long clause contains qualifying language that may hide important limitations.", clause.Title),
			AffectedClause: excerpt(clause.Content),
			Recommendation: "Read the full clause carefully; exceptions buried in long clauses often remove key protections.",
			Source:         "clause-hidden-limitations",
		})
	}

	for _, re := range a.timeObligations {
		if re.MatchString(lowerContent) {
			findings = append(findings, risk.Risk{
				Category:       risk.CategoryOperational,
				Severity:       risk.SeverityMedium,
				Description:    buildClauseDescription("This clause contains time-bound obligations with specific deadlines.", clause.Title),
				AffectedClause: excerpt(clause.Content),
				Recommendation: "Track every deadline in this clause; missing one may constitute breach.",
				Source:         "clause-time-obligation",
			})
			break // one deadline finding per clause
		}
	}

	return findings
}

func buildClauseDescription(base, title string) string {
	if title == "" {
		return base
	}
	return base + ` Found in clause: "` + title + `"`
}

func excerpt(content string) string {
	const max = 200
	if len(content) <= max {
		return content
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + "..."
}
