// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package patterns holds the static catalog of risk patterns the matcher
// scans documents against. The catalog is built once at engine
// construction and is read-only afterwards, so it is safe to share
// across concurrent assessments.
package patterns

import (
	"fmt"

	"lexiscan/internal/risk"
)

// RiskPattern is one entry in the catalog: a set of trigger phrases tied
// to a fixed category, severity and remediation text.
type RiskPattern struct {
	ID          string        `yaml:"id"`
	Category    risk.Category `yaml:"category"`
	Severity    risk.Severity `yaml:"severity"`
	// Phrases are matched case-insensitively as substrings, in order.
	// The first phrase found in a scanned unit wins; the rest are skipped.
	Phrases        []string `yaml:"phrases"`
	Description    string   `yaml:"description"`
	Recommendation string   `yaml:"recommendation"`
	// DocumentTypes restricts the pattern to specific document types.
	// Empty means the pattern applies to every document.
	DocumentTypes []string `yaml:"document_types,omitempty"`
}

// AppliesTo reports whether the pattern should be evaluated for the
// given document type.
func (p *RiskPattern) AppliesTo(documentType string) bool {
	if len(p.DocumentTypes) == 0 {
		return true
	}
	for _, dt := range p.DocumentTypes {
		if dt == documentType {
			return true
		}
	}
	return false
}

// Catalog is an immutable, validated collection of risk patterns.
type Catalog struct {
	patterns []RiskPattern
	byID     map[string]*RiskPattern
}

// NewCatalog validates the given patterns and wraps them in a catalog.
// Every pattern must have a unique id, at least one phrase, a known
// category and severity, and non-empty description/recommendation text.
func NewCatalog(patterns []RiskPattern) (*Catalog, error) {
	c := &Catalog{
		patterns: make([]RiskPattern, len(patterns)),
		byID:     make(map[string]*RiskPattern, len(patterns)),
	}
	copy(c.patterns, patterns)

	for i := range c.patterns {
		p := &c.patterns[i]
		if p.ID == "" {
			return nil, fmt.Errorf("pattern at index %d has an empty id", i)
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate pattern id %q", p.ID)
		}
		if len(p.Phrases) == 0 {
			return nil, fmt.Errorf("pattern %q has no trigger phrases", p.ID)
		}
		for _, phrase := range p.Phrases {
			if phrase == "" {
				return nil, fmt.Errorf("pattern %q has an empty trigger phrase", p.ID)
			}
		}
		switch p.Category {
		case risk.CategoryFinancial, risk.CategoryLegal, risk.CategoryPrivacy, risk.CategoryOperational:
		default:
			return nil, fmt.Errorf("pattern %q has unknown category %q", p.ID, p.Category)
		}
		if !p.Severity.Valid() {
			return nil, fmt.Errorf("pattern %q has unknown severity %q", p.ID, p.Severity)
		}
		if p.Description == "" || p.Recommendation == "" {
			return nil, fmt.Errorf("pattern %q is missing description or recommendation", p.ID)
		}
		c.byID[p.ID] = p
	}

	return c, nil
}

// DefaultCatalog returns a catalog built from the built-in pattern set.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(builtinPatterns)
	if err != nil {
		// The built-in set is validated by tests; a failure here is a
		// programming error in data.go.
		panic(fmt.Sprintf("built-in pattern catalog is invalid: %v", err))
	}
	return c
}

// Patterns returns the catalog entries. Callers must treat the returned
// slice as read-only.
func (c *Catalog) Patterns() []RiskPattern {
	return c.patterns
}

// Get looks up a pattern by id.
func (c *Catalog) Get(id string) (*RiskPattern, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of patterns in the catalog.
func (c *Catalog) Len() int {
	return len(c.patterns)
}

// ForDocumentType returns the subset of patterns applicable to the given
// document type, preserving catalog order.
func (c *Catalog) ForDocumentType(documentType string) []RiskPattern {
	var applicable []RiskPattern
	for _, p := range c.patterns {
		if p.AppliesTo(documentType) {
			applicable = append(applicable, p)
		}
	}
	return applicable
}
