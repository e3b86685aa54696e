// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package suppressions filters accepted findings out of assessment
// results. Suppression runs in the CLI and web layers, after the engine
// returns; the engine itself never consults suppression rules.
package suppressions

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lexiscan/internal/paths"
	"lexiscan/internal/risk"

	"gopkg.in/yaml.v3"
)

// SuppressionRule represents a single suppression rule
type SuppressionRule struct {
	ID         string            `yaml:"id"`
	Hash       string            `yaml:"hash"`
	Reason     string            `yaml:"reason"`
	Enabled    bool              `yaml:"enabled"`
	CreatedBy  string            `yaml:"created_by,omitempty"`
	CreatedAt  time.Time         `yaml:"created_at"`
	ExpiresAt  *time.Time        `yaml:"expires_at,omitempty"`
	ReviewedBy string            `yaml:"reviewed_by,omitempty"`
	ReviewedAt *time.Time        `yaml:"reviewed_at,omitempty"`
	Metadata   map[string]string `yaml:"metadata,omitempty"`
}

// SuppressionConfig represents the suppression configuration file
type SuppressionConfig struct {
	Version string            `yaml:"version"`
	Rules   []SuppressionRule `yaml:"rules"`
}

// SuppressionManager handles finding suppressions
type SuppressionManager struct {
	configPath string
	config     *SuppressionConfig
	enabled    bool
}

// NewSuppressionManager creates a manager backed by the given rule file.
// An empty path falls back to the default suppressions file location.
func NewSuppressionManager(configPath string) *SuppressionManager {
	if configPath == "" {
		configPath = paths.GetSuppressionsFile()
	}

	manager := &SuppressionManager{
		configPath: configPath,
		enabled:    true,
	}

	manager.loadConfig()
	return manager
}

// loadConfig loads the suppression configuration. A missing or broken
// file yields an empty rule set, never an error: suppression is a
// convenience layer and must not block assessment.
func (sm *SuppressionManager) loadConfig() {
	empty := &SuppressionConfig{Version: "1.0", Rules: []SuppressionRule{}}

	if sm.configPath == "" {
		sm.config = empty
		return
	}

	data, err := os.ReadFile(filepath.Clean(sm.configPath))
	if err != nil {
		sm.config = empty
		return
	}

	var config SuppressionConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		sm.config = empty
		return
	}

	sm.config = &config
}

// FindingHash creates a stable identifying hash for a finding. The hash
// covers what the finding is (source, category, severity) and where it
// matched (excerpt), but not the human-readable description, so wording
// tweaks in the catalog do not invalidate existing suppressions.
func (sm *SuppressionManager) FindingHash(finding risk.Risk) string {
	components := []string{
		finding.Source,
		string(finding.Category),
		string(finding.Severity),
		sm.hashText(strings.TrimSpace(finding.AffectedClause)),
	}
	composite := strings.Join(components, "|")
	hash := sha256.Sum256([]byte(composite))
	return fmt.Sprintf("%x", hash)
}

func (sm *SuppressionManager) hashText(text string) string {
	if text == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%x", hash)[:16]
}

// IsSuppressed checks if a finding should be suppressed
func (sm *SuppressionManager) IsSuppressed(finding risk.Risk) (bool, *SuppressionRule) {
	if !sm.enabled || sm.config == nil {
		return false, nil
	}

	findingHash := sm.FindingHash(finding)

	for i := range sm.config.Rules {
		rule := &sm.config.Rules[i]
		if rule.Hash != findingHash {
			continue
		}
		if !rule.Enabled {
			continue
		}
		if rule.ExpiresAt != nil && time.Now().After(*rule.ExpiresAt) {
			continue
		}
		return true, rule
	}

	return false, nil
}

// Apply splits findings into kept and suppressed sets, preserving order.
func (sm *SuppressionManager) Apply(findings []risk.Risk) ([]risk.Risk, []risk.SuppressedRisk) {
	var kept []risk.Risk
	var suppressed []risk.SuppressedRisk
	for _, finding := range findings {
		if isSuppressed, rule := sm.IsSuppressed(finding); isSuppressed {
			suppressed = append(suppressed, risk.SuppressedRisk{
				Risk:         finding,
				SuppressedBy: rule.ID,
				RuleReason:   rule.Reason,
				ExpiresAt:    rule.ExpiresAt,
			})
		} else {
			kept = append(kept, finding)
		}
	}
	return kept, suppressed
}

// AddSuppression adds a new suppression rule for a finding
func (sm *SuppressionManager) AddSuppression(finding risk.Risk, reason, createdBy string, expiresAt *time.Time) error {
	if sm.config == nil {
		sm.config = &SuppressionConfig{Version: "1.0", Rules: []SuppressionRule{}}
	}

	findingHash := sm.FindingHash(finding)

	for _, rule := range sm.config.Rules {
		if rule.Hash == findingHash {
			return fmt.Errorf("suppression rule already exists for this finding")
		}
	}

	// Sequential rule IDs: SUP-00000001, SUP-00000002, ...
	maxID := 0
	for _, existingRule := range sm.config.Rules {
		var num int
		if _, err := fmt.Sscanf(existingRule.ID, "SUP-%08d", &num); err == nil && num > maxID {
			maxID = num
		}
	}
	id := fmt.Sprintf("SUP-%08d", maxID+1)

	// Default expiration is 90 days: suppressed legal findings should be
	// re-reviewed, not buried forever.
	if expiresAt == nil {
		defaultExpiry := time.Now().AddDate(0, 0, 90)
		expiresAt = &defaultExpiry
	}

	rule := SuppressionRule{
		ID:        id,
		Hash:      findingHash,
		Reason:    reason,
		Enabled:   true,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
		Metadata: map[string]string{
			"source":   finding.Source,
			"category": string(finding.Category),
			"severity": string(finding.Severity),
		},
	}

	sm.config.Rules = append(sm.config.Rules, rule)
	return sm.saveConfig()
}

// RemoveSuppression removes a suppression rule by ID
func (sm *SuppressionManager) RemoveSuppression(id string) error {
	if sm.config == nil {
		return fmt.Errorf("no suppression config loaded")
	}

	for i, rule := range sm.config.Rules {
		if rule.ID == id {
			sm.config.Rules = append(sm.config.Rules[:i], sm.config.Rules[i+1:]...)
			return sm.saveConfig()
		}
	}

	return fmt.Errorf("suppression rule with ID %s not found", id)
}

// EnableSuppressionByHash enables (or creates) a rule for a known hash.
func (sm *SuppressionManager) EnableSuppressionByHash(hash, reason string) error {
	if sm.config == nil {
		sm.config = &SuppressionConfig{Version: "1.0", Rules: []SuppressionRule{}}
	}

	for i := range sm.config.Rules {
		if sm.config.Rules[i].Hash == hash {
			sm.config.Rules[i].Enabled = true
			if reason != "" {
				sm.config.Rules[i].Reason = reason
			}
			return sm.saveConfig()
		}
	}

	return fmt.Errorf("no suppression rule found for hash %s", hash)
}

// ListSuppressions returns all suppression rules
func (sm *SuppressionManager) ListSuppressions() []SuppressionRule {
	if sm.config == nil {
		return []SuppressionRule{}
	}
	return sm.config.Rules
}

// CleanupExpired removes expired suppression rules and reports how many
// were dropped.
func (sm *SuppressionManager) CleanupExpired() int {
	if sm.config == nil {
		return 0
	}

	now := time.Now()
	originalCount := len(sm.config.Rules)

	var activeRules []SuppressionRule
	for _, rule := range sm.config.Rules {
		if rule.ExpiresAt == nil || now.Before(*rule.ExpiresAt) {
			activeRules = append(activeRules, rule)
		}
	}

	sm.config.Rules = activeRules
	removed := originalCount - len(activeRules)

	if removed > 0 {
		sm.saveConfig()
	}

	return removed
}

// saveConfig saves the suppression configuration to file
func (sm *SuppressionManager) saveConfig() error {
	if sm.configPath == "" {
		sm.configPath = paths.GetSuppressionsFile()
	}

	data, err := yaml.Marshal(sm.config)
	if err != nil {
		return fmt.Errorf("failed to marshal suppression config: %w", err)
	}

	dir := filepath.Dir(sm.configPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(sm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write suppression config: %w", err)
	}

	return nil
}
