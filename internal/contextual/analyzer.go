// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package contextual applies document-type-specific heuristics that look
// for presences or absences simple keyword patterns cannot express, such
// as a lease with no security-deposit clause.
package contextual

import (
	"strings"

	"lexiscan/internal/risk"
)

// subAnalyzer inspects lower-cased document text and returns findings.
type subAnalyzer func(lowerText string) []risk.Risk

// Analyzer dispatches to a per-document-type heuristic set.
type Analyzer struct {
	byDocType map[string]subAnalyzer
}

// New creates an analyzer with the built-in heuristics for the five
// recognized document types.
func New() *Analyzer {
	return &Analyzer{
		byDocType: map[string]subAnalyzer{
			risk.DocTypeLease:          analyzeLease,
			risk.DocTypeLoanAgreement:  analyzeLoanAgreement,
			risk.DocTypeContract:       analyzeContract,
			risk.DocTypeTermsOfService: analyzeTermsOfService,
			risk.DocTypePrivacyPolicy:  analyzePrivacyPolicy,
		},
	}
}

// Analyze runs the heuristics for the given document type. Unrecognized
// document types produce no findings. The jurisdiction parameter is
// accepted for forward compatibility but does not vary output today.
func (a *Analyzer) Analyze(text, documentType, jurisdiction string) []risk.Risk {
	_ = jurisdiction // reserved; output must stay jurisdiction-independent

	sub, ok := a.byDocType[documentType]
	if !ok || text == "" {
		return nil
	}
	return sub(strings.ToLower(text))
}

func analyzeLease(lowerText string) []risk.Risk {
	var findings []risk.Risk

	if !strings.Contains(lowerText, "security deposit") && !strings.Contains(lowerText, "deposit") {
		findings = append(findings, risk.Risk{
			Category:       risk.CategoryFinancial,
			Severity:       risk.SeverityMedium,
			Description:    "The lease does not mention a security deposit.",
			AffectedClause: "No deposit clause found in the document.",
			Recommendation: "Clarify in writing whether a deposit is required, its amount, and the return conditions.",
			Source:         "lease-missing-deposit",
		})
	}

	if strings.Contains(lowerText, "automatic renewal") || strings.Contains(lowerText, "auto-renew") {
		findings = append(findings, risk.Risk{
			Category:       risk.CategoryLegal,
			Severity:       risk.SeverityMedium,
			Description:    "The lease renews automatically at the end of its term.",
			AffectedClause: "Automatic renewal provision present in the lease.",
			Recommendation: "Note the non-renewal notice deadline so the lease does not extend unintentionally.",
			Source:         "lease-auto-renewal",
		})
	}

	return findings
}

func analyzeLoanAgreement(lowerText string) []risk.Risk {
	var findings []risk.Risk

	if strings.Contains(lowerText, "variable rate") || strings.Contains(lowerText, "adjustable rate") {
		findings = append(findings, risk.Risk{
			Category:       risk.CategoryFinancial,
			Severity:       risk.SeverityHigh,
			Description:    "The loan carries a variable interest rate that can increase over time.",
			AffectedClause: "Variable or adjustable rate provision present in the loan.",
			Recommendation: "Ask for the rate cap, adjustment schedule, and a worst-case payment illustration.",
			Source:         "loan-variable-rate",
		})
	}

	if strings.Contains(lowerText, "prepayment penalty") || strings.Contains(lowerText, "early payment fee") {
		findings = append(findings, risk.Risk{
			Category:       risk.CategoryFinancial,
			Severity:       risk.SeverityMedium,
			Description:    "Paying the loan off early triggers a penalty.",
			AffectedClause: "Prepayment penalty provision present in the loan.",
			Recommendation: "Calculate whether the prepayment penalty outweighs early-payoff savings.",
			Source:         "loan-prepayment-penalty",
		})
	}

	return findings
}

func analyzeContract(lowerText string) []risk.Risk {
	if strings.Contains(lowerText, "indemnify") && strings.Contains(lowerText, "hold harmless") {
		return []risk.Risk{{
			Category:       risk.CategoryLegal,
			Severity:       risk.SeverityHigh,
			Description:    "The contract combines indemnification with a hold-harmless obligation.",
			AffectedClause: "Indemnify and hold-harmless language present in the contract.",
			Recommendation: "Have counsel review the indemnity scope; it may cover the other party's own negligence.",
			Source:         "contract-indemnity-combo",
		}}
	}
	return nil
}

func analyzeTermsOfService(lowerText string) []risk.Risk {
	if strings.Contains(lowerText, "modify these terms") && strings.Contains(lowerText, "at any time") {
		return []risk.Risk{{
			Category:       risk.CategoryLegal,
			Severity:       risk.SeverityMedium,
			Description:    "The provider can modify the terms at any time.",
			AffectedClause: "Unilateral modification provision present in the terms.",
			Recommendation: "Save the current terms and watch for change notifications.",
			Source:         "tos-modify-anytime",
		}}
	}
	return nil
}

func analyzePrivacyPolicy(lowerText string) []risk.Risk {
	if strings.Contains(lowerText, "share") && strings.Contains(lowerText, "third parties") {
		return []risk.Risk{{
			Category:       risk.CategoryPrivacy,
			Severity:       risk.SeverityMedium,
			Description:    "The policy permits sharing personal data with third parties.",
			AffectedClause: "Third-party sharing provision present in the policy.",
			Recommendation: "Review which third parties receive data and whether sharing is opt-out.",
			Source:         "privacy-third-party-sharing",
		}}
	}
	return nil
}
