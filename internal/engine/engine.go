// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package engine orchestrates the risk assessment pipeline: pattern
// matching over the document and its clauses, contextual and structural
// analysis, deduplication, scoring, and report generation. The engine
// performs no I/O and holds no mutable state after construction, so a
// single Engine is safe for concurrent use.
package engine

import (
	"strings"

	"lexiscan/internal/clauseanalysis"
	"lexiscan/internal/contextual"
	"lexiscan/internal/matcher"
	"lexiscan/internal/observability"
	"lexiscan/internal/patterns"
	"lexiscan/internal/risk"
)

// Two findings with the same category and severity are duplicates when
// their descriptions' word-overlap similarity strictly exceeds this.
const dedupSimilarityThreshold = 0.8

// DefaultJurisdiction is assumed when the caller supplies none.
const DefaultJurisdiction = "US"

// Engine is the risk assessment engine. Construct once, reuse freely.
type Engine struct {
	catalog    *patterns.Catalog
	matcher    *matcher.Matcher
	contextual *contextual.Analyzer
	clauses    *clauseanalysis.Analyzer
	observer   *observability.StandardObserver
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog replaces the built-in pattern catalog.
func WithCatalog(catalog *patterns.Catalog) Option {
	return func(e *Engine) {
		e.catalog = catalog
	}
}

// WithObserver attaches an observer for timing and debug output.
func WithObserver(observer *observability.StandardObserver) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

// New creates an engine with the default catalog and analyzers.
func New(opts ...Option) *Engine {
	e := &Engine{
		catalog:    patterns.DefaultCatalog(),
		contextual: contextual.New(),
		clauses:    clauseanalysis.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.matcher = matcher.New(e.catalog)
	return e
}

// Catalog returns the pattern catalog the engine scans with.
func (e *Engine) Catalog() *patterns.Catalog {
	return e.catalog
}

// AssessDocumentRisks runs the full pipeline over a document and its
// caller-segmented clauses and returns a complete assessment.
//
// The call is total: empty text and an empty (or nil) clause slice yield
// a low-risk result with no findings, never an error. Output is fully
// deterministic for identical inputs. The jurisdiction parameter is
// recorded in the result but does not vary the findings.
func (e *Engine) AssessDocumentRisks(documentText string, clauses []risk.Clause, documentType, jurisdiction string) *risk.AssessmentResult {
	if jurisdiction == "" {
		jurisdiction = DefaultJurisdiction
	}

	var finish func(bool, map[string]interface{})
	if e.observer != nil {
		finish = e.observer.StartTiming("engine", "assess_document", documentType)
	}

	// The three analyzers run independently; their findings concatenate
	// in a fixed order so dedup tie-breaking stays deterministic.
	findings := e.matcher.MatchDocument(documentText, documentType)
	for _, clause := range clauses {
		findings = append(findings, e.AnalyzeClauseRisks(clause, documentType)...)
	}
	findings = append(findings, e.contextual.Analyze(documentText, documentType, jurisdiction)...)

	deduped := Deduplicate(findings)
	score := Score(deduped)

	result := &risk.AssessmentResult{
		Risks:            deduped,
		OverallRiskScore: score,
		RiskSummary:      GenerateSummary(deduped, score),
		Recommendations:  GenerateRecommendations(deduped, documentType, score),
		DocumentType:     documentType,
		Jurisdiction:     jurisdiction,
	}

	if finish != nil {
		finish(true, map[string]interface{}{
			"clause_count":  len(clauses),
			"finding_count": len(deduped),
			"overall_score": string(score),
		})
	}

	return result
}

// AnalyzeClauseRisks runs both per-clause passes (pattern matching and
// structural analysis) over a single clause.
func (e *Engine) AnalyzeClauseRisks(clause risk.Clause, documentType string) []risk.Risk {
	findings := e.matcher.MatchClause(clause, documentType)
	return append(findings, e.clauses.AnalyzeClause(clause, documentType)...)
}

// Deduplicate removes near-duplicate findings. Iteration is greedy and
// order-preserving: a finding is kept only if no already-kept finding is
// a duplicate of it, so the first occurrence always wins and the
// operation is idempotent.
func Deduplicate(findings []risk.Risk) []risk.Risk {
	kept := make([]risk.Risk, 0, len(findings))
	for _, candidate := range findings {
		duplicate := false
		for i := range kept {
			if isDuplicate(kept[i], candidate) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, candidate)
		}
	}
	return kept
}

func isDuplicate(a, b risk.Risk) bool {
	if a.Category != b.Category || a.Severity != b.Severity {
		return false
	}
	return wordSimilarity(a.Description, b.Description) > dedupSimilarityThreshold
}

// wordSimilarity computes Jaccard similarity between the lower-cased
// word sets of two strings.
func wordSimilarity(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 && len(wordsB) == 0 {
		return 1
	}
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for word := range wordsA {
		if _, ok := wordsB[word]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(s)) {
		set[word] = struct{}{}
	}
	return set
}
