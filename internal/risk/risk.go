// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package risk

import "time"

// Severity is the fixed three-level scale used both for individual
// findings and for the overall document score.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Weight returns the numeric weight used by the overall scorer.
func (s Severity) Weight() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	default:
		return 1
	}
}

// Valid reports whether s is one of the three known severities.
func (s Severity) Valid() bool {
	return s == SeverityHigh || s == SeverityMedium || s == SeverityLow
}

// Category classifies a finding by the kind of exposure it represents.
type Category string

const (
	CategoryFinancial   Category = "financial"
	CategoryLegal       Category = "legal"
	CategoryPrivacy     Category = "privacy"
	CategoryOperational Category = "operational"
)

// Categories lists all known categories in display order. Report
// generation iterates this slice so output ordering stays deterministic.
var Categories = []Category{
	CategoryFinancial,
	CategoryLegal,
	CategoryPrivacy,
	CategoryOperational,
}

// Recognized document types. Anything else is treated as "other":
// pattern matching still runs, contextual analysis yields nothing.
const (
	DocTypeContract       = "contract"
	DocTypeLease          = "lease"
	DocTypeLoanAgreement  = "loan_agreement"
	DocTypeTermsOfService = "terms_of_service"
	DocTypePrivacyPolicy  = "privacy_policy"
	DocTypeOther          = "other"
)

// Location marks a clause's character offsets within the source document.
type Location struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Clause is a caller-supplied, pre-segmented unit of document text.
// Clause segmentation happens upstream (document pipeline or the CLI's
// segmenter); the engine never mutates a clause.
type Clause struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Content     string    `json:"content" yaml:"content"`
	Location    *Location `json:"location,omitempty" yaml:"location,omitempty"`
	RiskLevel   string    `json:"risk_level,omitempty" yaml:"risk_level,omitempty"`
	Explanation string    `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Risk is a single finding produced by scanning text or clauses.
// Description, AffectedClause and Recommendation are always non-empty.
type Risk struct {
	Category       Category `json:"category" yaml:"category"`
	Severity       Severity `json:"severity" yaml:"severity"`
	Description    string   `json:"description" yaml:"description"`
	AffectedClause string   `json:"affected_clause" yaml:"affected_clause"`
	Recommendation string   `json:"recommendation" yaml:"recommendation"`

	// Source identifies what produced the finding: a pattern id or a
	// heuristic name. Used for suppressions; not part of dedup identity.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// SuppressedRisk is a finding that a suppression rule filtered out of the
// main result. Kept separately so reports can show what was hidden.
type SuppressedRisk struct {
	Risk         Risk       `json:"finding" yaml:"finding"`
	SuppressedBy string     `json:"suppressed_by" yaml:"suppressed_by"`
	RuleReason   string     `json:"rule_reason" yaml:"rule_reason"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

// AssessmentResult is the engine's complete output for one document.
type AssessmentResult struct {
	Risks            []Risk   `json:"risks" yaml:"risks"`
	OverallRiskScore Severity `json:"overall_risk_score" yaml:"overall_risk_score"`
	RiskSummary      string   `json:"risk_summary" yaml:"risk_summary"`
	Recommendations  []string `json:"recommendations" yaml:"recommendations"`

	// Echoed inputs, for report context.
	DocumentType string `json:"document_type" yaml:"document_type"`
	Jurisdiction string `json:"jurisdiction" yaml:"jurisdiction"`
}
