// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package matcher scans document and clause text against the risk
// pattern catalog. Matching is case-insensitive substring search; each
// pattern produces at most one finding per scanned unit, and the first
// phrase that matches short-circuits the remaining phrases for that
// pattern.
package matcher

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"lexiscan/internal/patterns"
	"lexiscan/internal/risk"
)

const (
	// Maximum length of a sentence excerpt attached to a document-level
	// finding before it is ellipsis-truncated.
	maxSentenceExcerpt = 300

	// Maximum length of the clause content excerpt attached to a
	// clause-level finding.
	maxClauseExcerpt = 200

	// Characters kept on each side of the match when no sentence
	// boundary can be located.
	fallbackWindow = 100
)

// Matcher evaluates catalog patterns against text.
type Matcher struct {
	catalog *patterns.Catalog
}

// New creates a matcher over the given catalog.
func New(catalog *patterns.Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// MatchDocument scans the full document text and returns one finding per
// triggered pattern, in catalog order.
func (m *Matcher) MatchDocument(text, documentType string) []risk.Risk {
	if text == "" {
		return nil
	}

	lowerText := strings.ToLower(text)
	var findings []risk.Risk

	for _, p := range m.catalog.Patterns() {
		if !p.AppliesTo(documentType) {
			continue
		}
		for _, phrase := range p.Phrases {
			lowerPhrase := strings.ToLower(phrase)
			idx := strings.Index(lowerText, lowerPhrase)
			if idx < 0 {
				continue
			}
			findings = append(findings, risk.Risk{
				Category:       p.Category,
				Severity:       p.Severity,
				Description:    p.Description,
				AffectedClause: excerptAround(text, idx, lowerPhrase),
				Recommendation: p.Recommendation,
				Source:         p.ID,
			})
			break // one finding per pattern per document
		}
	}

	return findings
}

// MatchClause scans a single clause's content. Findings carry the clause
// title in their description and the clause content as the excerpt.
func (m *Matcher) MatchClause(clause risk.Clause, documentType string) []risk.Risk {
	if clause.Content == "" {
		return nil
	}

	lowerContent := strings.ToLower(clause.Content)
	var findings []risk.Risk

	for _, p := range m.catalog.Patterns() {
		if !p.AppliesTo(documentType) {
			continue
		}
		for _, phrase := range p.Phrases {
			if !strings.Contains(lowerContent, strings.ToLower(phrase)) {
				continue
			}
			findings = append(findings, risk.Risk{
				Category:       p.Category,
				Severity:       p.Severity,
				Description:    fmt.Sprintf("%s Found in clause: %q", p.Description, clause.Title),
				AffectedClause: truncate(clause.Content, maxClauseExcerpt),
				Recommendation: p.Recommendation,
				Source:         p.ID,
			})
			break // one finding per pattern per clause
		}
	}

	return findings
}

// excerptAround locates the sentence containing the match and returns it
// truncated to maxSentenceExcerpt. When the match spans a sentence
// boundary and no containing sentence exists, it falls back to a
// character window around the match, wrapped in ellipses.
func excerptAround(text string, matchIdx int, lowerPhrase string) string {
	// Sentence split on ., ! and ?. The segment containing the phrase is
	// the excerpt.
	for _, sentence := range strings.FieldsFunc(text, isSentenceBoundary) {
		if strings.Contains(strings.ToLower(sentence), lowerPhrase) {
			return truncate(strings.TrimSpace(sentence), maxSentenceExcerpt)
		}
	}

	// No containing sentence: take a window around the match instead.
	// matchIdx was found on the lowered text, which can be longer than the
	// original for some case mappings, so clamp both bounds and snap them
	// to rune boundaries before slicing.
	start := matchIdx - fallbackWindow
	if start < 0 {
		start = 0
	}
	if start > len(text) {
		start = len(text)
	}
	end := matchIdx + len(lowerPhrase) + fallbackWindow
	if end > len(text) {
		end = len(text)
	}
	start = runeStart(text, start)
	end = runeStart(text, end)
	return "..." + strings.TrimSpace(text[start:end]) + "..."
}

func isSentenceBoundary(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// truncate shortens s to at most max bytes, cutting on a rune boundary
// and appending an ellipsis when anything was cut.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:runeStart(s, max)] + "..."
}

// runeStart walks i back to the start of the rune it points into.
func runeStart(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
