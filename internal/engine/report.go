// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
	"sort"
	"strings"

	"lexiscan/internal/risk"
)

// Recommendation lists are capped at this many entries.
const maxRecommendations = 8

// At most this many per-finding recommendations are appended after the
// fixed banners.
const maxPerRiskRecommendations = 3

// NoRisksSummary is returned when a document produced no findings.
const NoRisksSummary = "No significant risks identified in this document."

// DefaultRecommendation is the sole entry when nothing else applies.
const DefaultRecommendation = "✅ Document appears to have standard terms, but always read carefully before signing."

// GenerateSummary produces the one-paragraph risk summary from the
// deduplicated findings and the overall score.
func GenerateSummary(findings []risk.Risk, score risk.Severity) string {
	if len(findings) == 0 {
		return NoRisksSummary
	}

	highCount := 0
	mediumCount := 0
	lowCount := 0
	categoryCounts := make(map[risk.Category]int)
	for _, f := range findings {
		switch f.Severity {
		case risk.SeverityHigh:
			highCount++
		case risk.SeverityMedium:
			mediumCount++
		default:
			lowCount++
		}
		categoryCounts[f.Category]++
	}

	var severityParts []string
	if highCount > 0 {
		severityParts = append(severityParts, fmt.Sprintf("%d high", highCount))
	}
	if mediumCount > 0 {
		severityParts = append(severityParts, fmt.Sprintf("%d medium", mediumCount))
	}
	if lowCount > 0 {
		severityParts = append(severityParts, fmt.Sprintf("%d low", lowCount))
	}

	return fmt.Sprintf("Overall risk level: %s. Found %d potential risk(s): %s. Primary risk areas: %s.",
		strings.ToUpper(string(score)),
		len(findings),
		strings.Join(severityParts, ", "),
		topCategories(categoryCounts))
}

// topCategories renders the two most frequent categories as
// "legal (3), financial (2)". Ties break on the fixed category display
// order so output is deterministic.
func topCategories(counts map[risk.Category]int) string {
	type categoryCount struct {
		category risk.Category
		count    int
	}
	var present []categoryCount
	for _, c := range risk.Categories {
		if counts[c] > 0 {
			present = append(present, categoryCount{c, counts[c]})
		}
	}
	sort.SliceStable(present, func(i, j int) bool {
		return present[i].count > present[j].count
	})
	if len(present) > 2 {
		present = present[:2]
	}

	parts := make([]string, len(present))
	for i, cc := range present {
		parts[i] = fmt.Sprintf("%s (%d)", cc.category, cc.count)
	}
	return strings.Join(parts, ", ")
}

// GenerateRecommendations builds the ordered, capped recommendation
// list: overall-score banner, category banners, a document-type banner,
// up to three recommendations lifted from high-severity findings, and a
// default entry only when the list would otherwise be empty. Exact-text
// duplicates are skipped; the final list holds at most eight entries.
func GenerateRecommendations(findings []risk.Risk, documentType string, score risk.Severity) []string {
	var recommendations []string
	seen := make(map[string]bool)
	add := func(text string) {
		if text == "" || seen[text] {
			return
		}
		recommendations = append(recommendations, text)
		seen[text] = true
	}

	switch score {
	case risk.SeverityHigh:
		add("⚠️ This document contains high-risk terms. A legal review before signing is strongly advised.")
	case risk.SeverityMedium:
		add("⚠️ Several clauses warrant careful review. Consider consulting a legal professional.")
	}

	hasFinancialHigh := false
	hasPrivacy := false
	hasLegalHigh := false
	for _, f := range findings {
		switch {
		case f.Category == risk.CategoryFinancial && f.Severity == risk.SeverityHigh:
			hasFinancialHigh = true
		case f.Category == risk.CategoryPrivacy:
			hasPrivacy = true
		case f.Category == risk.CategoryLegal && f.Severity == risk.SeverityHigh:
			hasLegalHigh = true
		}
	}
	if hasFinancialHigh {
		add("💰 Review all financial obligations carefully, including liability caps and fee schedules.")
	}
	if hasPrivacy {
		add("🔒 Understand what personal data is collected, how it is used, and who it is shared with.")
	}
	if hasLegalHigh {
		add("⚖️ Key legal protections may be limited. Pay close attention to dispute resolution terms.")
	}

	switch documentType {
	case risk.DocTypeLease:
		add("🏠 Verify that deposit, maintenance, and renewal terms match what was agreed verbally.")
	case risk.DocTypeLoanAgreement:
		add("🏦 Confirm the total cost of borrowing, including all fees and rate adjustment terms.")
	case risk.DocTypeTermsOfService:
		add("📄 Terms may change over time. Save a copy of the current version for your records.")
	}

	added := 0
	for _, f := range findings {
		if added >= maxPerRiskRecommendations {
			break
		}
		if f.Severity != risk.SeverityHigh {
			continue
		}
		if seen[f.Recommendation] {
			continue
		}
		add(f.Recommendation)
		added++
	}

	if len(recommendations) == 0 {
		add(DefaultRecommendation)
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
