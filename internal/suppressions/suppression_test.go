// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package suppressions

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexiscan/internal/risk"
)

func testFinding() risk.Risk {
	return risk.Risk{
		Category:       risk.CategoryLegal,
		Severity:       risk.SeverityHigh,
		Description:    "Broad indemnification obligation.",
		AffectedClause: "Vendor shall indemnify and hold harmless the client.",
		Recommendation: "Narrow the indemnity.",
		Source:         "broad-indemnification",
	}
}

func newTestManager(t *testing.T) *SuppressionManager {
	t.Helper()
	return NewSuppressionManager(filepath.Join(t.TempDir(), "suppressions.yaml"))
}

func TestFindingHash_Stable(t *testing.T) {
	sm := newTestManager(t)

	first := sm.FindingHash(testFinding())
	second := sm.FindingHash(testFinding())
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestFindingHash_IgnoresDescription(t *testing.T) {
	sm := newTestManager(t)

	finding := testFinding()
	reworded := testFinding()
	reworded.Description = "Indemnification clause is one-sided."
	reworded.Recommendation = "Different advice."

	assert.Equal(t, sm.FindingHash(finding), sm.FindingHash(reworded))
}

func TestFindingHash_DiffersByIdentity(t *testing.T) {
	sm := newTestManager(t)
	base := testFinding()

	otherSource := testFinding()
	otherSource.Source = "mandatory-arbitration"
	otherSeverity := testFinding()
	otherSeverity.Severity = risk.SeverityMedium
	otherExcerpt := testFinding()
	otherExcerpt.AffectedClause = "A different excerpt entirely."

	for name, variant := range map[string]risk.Risk{
		"source":   otherSource,
		"severity": otherSeverity,
		"excerpt":  otherExcerpt,
	} {
		assert.NotEqual(t, sm.FindingHash(base), sm.FindingHash(variant), name)
	}
}

func TestAddSuppression(t *testing.T) {
	sm := newTestManager(t)

	require.NoError(t, sm.AddSuppression(testFinding(), "accepted for this vendor", "reviewer", nil))

	rules := sm.ListSuppressions()
	require.Len(t, rules, 1)
	assert.Equal(t, "SUP-00000001", rules[0].ID)
	assert.True(t, rules[0].Enabled)
	assert.Equal(t, "accepted for this vendor", rules[0].Reason)
	assert.Equal(t, "reviewer", rules[0].CreatedBy)

	// Default expiry is 90 days out.
	require.NotNil(t, rules[0].ExpiresAt)
	expected := time.Now().AddDate(0, 0, 90)
	assert.WithinDuration(t, expected, *rules[0].ExpiresAt, time.Minute)

	// Second rule for the same finding is rejected.
	err := sm.AddSuppression(testFinding(), "again", "reviewer", nil)
	assert.Error(t, err)
}

func TestAddSuppression_SequentialIDs(t *testing.T) {
	sm := newTestManager(t)

	other := testFinding()
	other.Source = "mandatory-arbitration"

	require.NoError(t, sm.AddSuppression(testFinding(), "one", "", nil))
	require.NoError(t, sm.AddSuppression(other, "two", "", nil))

	rules := sm.ListSuppressions()
	require.Len(t, rules, 2)
	assert.Equal(t, "SUP-00000001", rules[0].ID)
	assert.Equal(t, "SUP-00000002", rules[1].ID)
}

func TestIsSuppressed(t *testing.T) {
	sm := newTestManager(t)
	require.NoError(t, sm.AddSuppression(testFinding(), "accepted", "", nil))

	suppressed, rule := sm.IsSuppressed(testFinding())
	require.True(t, suppressed)
	assert.Equal(t, "SUP-00000001", rule.ID)

	other := testFinding()
	other.AffectedClause = "Different clause text."
	suppressed, rule = sm.IsSuppressed(other)
	assert.False(t, suppressed)
	assert.Nil(t, rule)
}

func TestIsSuppressed_DisabledRule(t *testing.T) {
	sm := newTestManager(t)
	require.NoError(t, sm.AddSuppression(testFinding(), "accepted", "", nil))
	sm.config.Rules[0].Enabled = false

	suppressed, _ := sm.IsSuppressed(testFinding())
	assert.False(t, suppressed)
}

func TestIsSuppressed_ExpiredRule(t *testing.T) {
	sm := newTestManager(t)
	past := time.Now().Add(-time.Hour)
	require.NoError(t, sm.AddSuppression(testFinding(), "accepted", "", &past))

	suppressed, _ := sm.IsSuppressed(testFinding())
	assert.False(t, suppressed)
}

func TestApply(t *testing.T) {
	sm := newTestManager(t)
	require.NoError(t, sm.AddSuppression(testFinding(), "accepted", "", nil))

	other := testFinding()
	other.Source = "mandatory-arbitration"

	kept, suppressed := sm.Apply([]risk.Risk{testFinding(), other})
	require.Len(t, kept, 1)
	assert.Equal(t, "mandatory-arbitration", kept[0].Source)
	require.Len(t, suppressed, 1)
	assert.Equal(t, "SUP-00000001", suppressed[0].SuppressedBy)
	assert.Equal(t, "accepted", suppressed[0].RuleReason)
}

func TestRemoveSuppression(t *testing.T) {
	sm := newTestManager(t)
	require.NoError(t, sm.AddSuppression(testFinding(), "accepted", "", nil))

	require.NoError(t, sm.RemoveSuppression("SUP-00000001"))
	assert.Empty(t, sm.ListSuppressions())

	assert.Error(t, sm.RemoveSuppression("SUP-00000099"))
}

func TestEnableSuppressionByHash(t *testing.T) {
	sm := newTestManager(t)
	require.NoError(t, sm.AddSuppression(testFinding(), "accepted", "", nil))
	sm.config.Rules[0].Enabled = false
	hash := sm.config.Rules[0].Hash

	require.NoError(t, sm.EnableSuppressionByHash(hash, "re-approved"))
	assert.True(t, sm.config.Rules[0].Enabled)
	assert.Equal(t, "re-approved", sm.config.Rules[0].Reason)

	assert.Error(t, sm.EnableSuppressionByHash("deadbeef", ""))
}

func TestCleanupExpired(t *testing.T) {
	sm := newTestManager(t)
	past := time.Now().Add(-time.Hour)
	require.NoError(t, sm.AddSuppression(testFinding(), "old", "", &past))

	other := testFinding()
	other.Source = "mandatory-arbitration"
	require.NoError(t, sm.AddSuppression(other, "current", "", nil))

	removed := sm.CleanupExpired()
	assert.Equal(t, 1, removed)
	require.Len(t, sm.ListSuppressions(), 1)
	assert.Equal(t, "current", sm.ListSuppressions()[0].Reason)

	assert.Zero(t, sm.CleanupExpired())
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suppressions.yaml")

	sm := NewSuppressionManager(path)
	require.NoError(t, sm.AddSuppression(testFinding(), "accepted", "reviewer", nil))

	reloaded := NewSuppressionManager(path)
	rules := reloaded.ListSuppressions()
	require.Len(t, rules, 1)
	assert.Equal(t, "SUP-00000001", rules[0].ID)
	assert.Equal(t, "accepted", rules[0].Reason)

	suppressed, _ := reloaded.IsSuppressed(testFinding())
	assert.True(t, suppressed)
}

func TestMissingFileYieldsEmptyRules(t *testing.T) {
	sm := NewSuppressionManager(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Empty(t, sm.ListSuppressions())

	suppressed, _ := sm.IsSuppressed(testFinding())
	assert.False(t, suppressed)
}
