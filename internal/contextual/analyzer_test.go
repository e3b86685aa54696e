// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package contextual

import (
	"testing"

	"lexiscan/internal/risk"
)

func findBySource(findings []risk.Risk, source string) *risk.Risk {
	for i := range findings {
		if findings[i].Source == source {
			return &findings[i]
		}
	}
	return nil
}

func TestAnalyze_LeaseMissingDeposit(t *testing.T) {
	a := New()

	findings := a.Analyze("The tenant shall pay rent monthly.", risk.DocTypeLease, "US")
	f := findBySource(findings, "lease-missing-deposit")
	if f == nil {
		t.Fatal("lease without deposit language should produce a finding")
	}
	if f.Category != risk.CategoryFinancial || f.Severity != risk.SeverityMedium {
		t.Errorf("unexpected category/severity: %s/%s", f.Category, f.Severity)
	}

	// Mentioning a deposit clears the finding.
	findings = a.Analyze("A security deposit of one month's rent is required.", risk.DocTypeLease, "US")
	if findBySource(findings, "lease-missing-deposit") != nil {
		t.Error("lease with deposit language should not be flagged")
	}
}

func TestAnalyze_LeaseAutoRenewal(t *testing.T) {
	a := New()
	findings := a.Analyze("A deposit is due. This lease is subject to automatic renewal.", risk.DocTypeLease, "US")
	if findBySource(findings, "lease-auto-renewal") == nil {
		t.Error("automatic renewal language should be flagged")
	}
}

func TestAnalyze_LoanAgreement(t *testing.T) {
	a := New()

	cases := []struct {
		name   string
		text   string
		source string
	}{
		{"variable rate", "The loan bears a variable rate of interest.", "loan-variable-rate"},
		{"adjustable rate", "This is an adjustable rate mortgage.", "loan-variable-rate"},
		{"prepayment penalty", "A prepayment penalty of 2% applies.", "loan-prepayment-penalty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			findings := a.Analyze(tc.text, risk.DocTypeLoanAgreement, "US")
			if findBySource(findings, tc.source) == nil {
				t.Errorf("expected %s finding", tc.source)
			}
		})
	}
}

func TestAnalyze_ContractIndemnityCombo(t *testing.T) {
	a := New()

	// Both keywords required.
	findings := a.Analyze("Vendor shall indemnify and hold harmless the client.", risk.DocTypeContract, "US")
	if findBySource(findings, "contract-indemnity-combo") == nil {
		t.Error("indemnify + hold harmless should be flagged")
	}

	findings = a.Analyze("Vendor shall indemnify the client.", risk.DocTypeContract, "US")
	if len(findings) != 0 {
		t.Error("indemnify alone should not be flagged")
	}
}

func TestAnalyze_TermsOfService(t *testing.T) {
	a := New()
	findings := a.Analyze("We may modify these terms at any time without notice.", risk.DocTypeTermsOfService, "US")
	if findBySource(findings, "tos-modify-anytime") == nil {
		t.Error("unilateral modification language should be flagged")
	}
}

func TestAnalyze_PrivacyPolicy(t *testing.T) {
	a := New()
	findings := a.Analyze("We may share your data with third parties.", risk.DocTypePrivacyPolicy, "US")
	if findBySource(findings, "privacy-third-party-sharing") == nil {
		t.Error("third-party sharing language should be flagged")
	}
}

func TestAnalyze_UnknownDocumentType(t *testing.T) {
	a := New()
	if findings := a.Analyze("indemnify and hold harmless", risk.DocTypeOther, "US"); len(findings) != 0 {
		t.Errorf("unknown document type should produce no findings, got %d", len(findings))
	}
	if findings := a.Analyze("indemnify and hold harmless", "invoice", "US"); len(findings) != 0 {
		t.Errorf("unrecognized document type should produce no findings, got %d", len(findings))
	}
}

func TestAnalyze_JurisdictionIndependent(t *testing.T) {
	a := New()
	text := "Vendor shall indemnify and hold harmless the client."

	us := a.Analyze(text, risk.DocTypeContract, "US")
	de := a.Analyze(text, risk.DocTypeContract, "DE")
	if len(us) != len(de) {
		t.Fatalf("jurisdiction changed finding count: %d vs %d", len(us), len(de))
	}
	for i := range us {
		if us[i] != de[i] {
			t.Errorf("finding %d differs across jurisdictions", i)
		}
	}
}

func TestAnalyze_EmptyText(t *testing.T) {
	a := New()
	if findings := a.Analyze("", risk.DocTypeLease, "US"); len(findings) != 0 {
		t.Errorf("empty text should produce no findings, got %d", len(findings))
	}
}
