// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"fmt"
	"regexp"
	"strings"

	"lexiscan/internal/risk"
)

// Paragraphs shorter than this are merged into the preceding clause;
// they are usually headings or list fragments, not standalone clauses.
const minClauseLength = 40

// headingPattern matches numbered or lettered section headings like
// "1.", "2.3", "Section 4:", "ARTICLE IV" at the start of a paragraph.
var headingPattern = regexp.MustCompile(`^(?:(?:Section|SECTION|Article|ARTICLE)\s+[\divxIVX]+[.:]?|\d+(?:\.\d+)*[.)])\s*`)

// SegmentClauses splits document text into clauses for the engine. Real
// deployments receive clause segmentation from the upstream document
// pipeline; this segmenter lets the CLI assess bare files. Paragraphs
// are split on blank lines; a numbered heading starts a new clause and
// becomes its title.
func SegmentClauses(text string) []risk.Clause {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var clauses []risk.Clause
	pos := 0

	for _, block := range strings.Split(text, "\n\n") {
		blockStart := pos
		blockEnd := pos + len(block)
		pos = blockEnd + 2 // account for the "\n\n" separator

		content := strings.TrimSpace(strings.ReplaceAll(block, "\n", " "))
		if content == "" {
			continue
		}

		title := ""
		if m := headingPattern.FindString(content); m != "" {
			title = strings.TrimSpace(strings.Trim(m, ".:) "))
			rest := strings.TrimSpace(content[len(m):])
			// Use the first few words after the heading marker as title.
			words := strings.Fields(rest)
			if len(words) > 0 {
				n := len(words)
				if n > 6 {
					n = 6
				}
				title = strings.Join(words[:n], " ")
			}
		}

		if len(content) < minClauseLength && len(clauses) > 0 {
			last := &clauses[len(clauses)-1]
			last.Content += " " + content
			if last.Location != nil {
				last.Location.End = blockEnd
			}
			continue
		}

		clauses = append(clauses, risk.Clause{
			ID:      fmt.Sprintf("clause-%d", len(clauses)+1),
			Title:   title,
			Content: content,
			Location: &risk.Location{
				Start: blockStart,
				End:   blockEnd,
			},
		})
	}

	// Untitled clauses get positional titles so clause-level findings
	// stay identifiable in reports.
	for i := range clauses {
		if clauses[i].Title == "" {
			clauses[i].Title = fmt.Sprintf("Clause %d", i+1)
		}
	}

	return clauses
}
