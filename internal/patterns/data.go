// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package patterns

import "lexiscan/internal/risk"

// builtinPatterns is the default risk pattern catalog. Ordering matters:
// findings are emitted in catalog order, and dedup keeps the first
// occurrence, so broader patterns come before narrower overlapping ones.
var builtinPatterns = []RiskPattern{
	// Financial exposure
	{
		ID:       "unlimited-liability",
		Category: risk.CategoryFinancial,
		Severity: risk.SeverityHigh,
		Phrases: []string{
			"unlimited liability",
			"without limitation of liability",
			"liability shall not be limited",
			"unlimited in amount",
		},
		Description:    "The document exposes a party to unlimited financial liability.",
		Recommendation: "Negotiate a liability cap tied to fees paid or a fixed amount.",
	},
	{
		ID:       "automatic-renewal",
		Category: risk.CategoryFinancial,
		Severity: risk.SeverityMedium,
		Phrases: []string{
			"automatic renewal",
			"automatically renew",
			"auto-renew",
			"renews automatically",
		},
		Description:    "The agreement renews automatically unless cancelled in advance.",
		Recommendation: "Calendar the cancellation deadline and confirm the required notice period.",
	},
	{
		ID:       "penalty-fees",
		Category: risk.CategoryFinancial,
		Severity: risk.SeverityMedium,
		Phrases: []string{
			"penalty fee",
			"late fee",
			"liquidated damages",
			"penalty of",
		},
		Description:    "The document imposes penalty or late fees.",
		Recommendation: "Confirm every fee amount and trigger condition before signing.",
	},
	{
		ID:       "variable-pricing",
		Category: risk.CategoryFinancial,
		Severity: risk.SeverityMedium,
		Phrases: []string{
			"prices may change",
			"subject to change without notice",
			"price increases",
			"rate may vary",
		},
		Description:    "Pricing can change after signing, possibly without notice.",
		Recommendation: "Ask for a price-protection period or a notice requirement for increases.",
	},

	// Legal exposure
	{
		ID:       "broad-indemnification",
		Category: risk.CategoryLegal,
		Severity: risk.SeverityHigh,
		Phrases: []string{
			"indemnify and hold harmless",
			"defend, indemnify",
			"indemnification obligations",
		},
		Description:    "Broad indemnification shifts third-party claim costs onto one party.",
		Recommendation: "Narrow indemnity to claims caused by your own negligence or breach.",
	},
	{
		ID:       "mandatory-arbitration",
		Category: risk.CategoryLegal,
		Severity: risk.SeverityMedium,
		Phrases: []string{
			"binding arbitration",
			"mandatory arbitration",
			"waive your right to a jury trial",
			"arbitration agreement",
		},
		Description:    "Disputes must go to arbitration instead of court.",
		Recommendation: "Check the arbitration venue, cost allocation, and any opt-out window.",
	},
	{
		ID:       "class-action-waiver",
		Category: risk.CategoryLegal,
		Severity: risk.SeverityHigh,
		Phrases: []string{
			"class action waiver",
			"waive any class action",
			"no class actions",
			"class arbitration waiver",
		},
		Description:    "The document waives the right to participate in class actions.",
		Recommendation: "Understand that disputes must be pursued individually; check for an opt-out.",
	},
	{
		ID:       "unilateral-modification",
		Category: risk.CategoryLegal,
		Severity: risk.SeverityMedium,
		Phrases: []string{
			"we may modify",
			"reserves the right to change",
			"at our sole discretion",
			"may amend these terms",
		},
		Description:    "One party can change the terms unilaterally.",
		Recommendation: "Request advance notice of changes and the right to terminate on material changes.",
	},

	// Privacy exposure
	{
		ID:       "broad-data-collection",
		Category: risk.CategoryPrivacy,
		Severity: risk.SeverityMedium,
		Phrases: []string{
			"collect all information",
			"any information you provide",
			"usage data and device information",
			"including but not limited to your personal",
		},
		Description:    "The document permits broad collection of personal information.",
		Recommendation: "Check whether data collection can be limited or opted out of.",
	},
	{
		ID:       "third-party-sharing",
		Category: risk.CategoryPrivacy,
		Severity: risk.SeverityMedium,
		Phrases: []string{
			"share your information with third parties",
			"sell your personal information",
			"disclose your information",
			"third-party partners",
		},
		Description:    "Personal information may be shared with or sold to third parties.",
		Recommendation: "Identify who receives the data and whether sharing can be restricted.",
	},
	{
		ID:       "indefinite-retention",
		Category: risk.CategoryPrivacy,
		Severity: risk.SeverityMedium,
		Phrases: []string{
			"retain your information indefinitely",
			"for as long as necessary",
			"perpetual license to your",
			"retain data after termination",
		},
		Description:    "Data may be kept indefinitely, even after the relationship ends.",
		Recommendation: "Ask for a concrete retention period and a deletion-on-request right.",
	},

	// Operational constraints
	{
		ID:       "exclusive-dealing",
		Category: risk.CategoryOperational,
		Severity: risk.SeverityMedium,
		Phrases: []string{
			"exclusive dealing",
			"exclusively from",
			"sole supplier",
			"exclusive provider",
		},
		Description:    "The agreement locks a party into an exclusive relationship.",
		Recommendation: "Confirm the exclusivity scope, duration, and exit conditions.",
	},
	{
		ID:       "broad-use-restrictions",
		Category: risk.CategoryOperational,
		Severity: risk.SeverityMedium,
		Phrases: []string{
			"shall not use",
			"restricted from using",
			"prohibited uses",
			"use restrictions",
		},
		Description:    "The document imposes broad restrictions on how products or services may be used.",
		Recommendation: "Verify the restrictions do not conflict with your intended use.",
	},
	{
		ID:       "compliance-burden",
		Category: risk.CategoryOperational,
		Severity: risk.SeverityLow,
		Phrases: []string{
			"must comply with all",
			"certification requirements",
			"audit rights",
			"compliance obligations",
		},
		Description:    "The agreement carries ongoing compliance or audit obligations.",
		Recommendation: "Estimate the recurring cost of meeting the compliance requirements.",
	},

	// Document-type-restricted patterns
	{
		ID:       "lease-joint-liability",
		Category: risk.CategoryFinancial,
		Severity: risk.SeverityHigh,
		Phrases: []string{
			"joint and several",
			"jointly and severally",
		},
		Description:    "Each tenant is individually responsible for the full rent and damages.",
		Recommendation: "Understand that a co-tenant's default becomes your debt; consider a co-tenancy agreement.",
		DocumentTypes:  []string{risk.DocTypeLease},
	},
	{
		ID:       "lease-as-is-condition",
		Category: risk.CategoryOperational,
		Severity: risk.SeverityMedium,
		Phrases: []string{
			"as-is condition",
			"as is, where is",
			"accepts the premises as is",
		},
		Description:    "The premises are leased as-is, limiting repair obligations of the landlord.",
		Recommendation: "Document existing damage in writing with photos before move-in.",
		DocumentTypes:  []string{risk.DocTypeLease},
	},
	{
		ID:       "loan-cross-default",
		Category: risk.CategoryFinancial,
		Severity: risk.SeverityHigh,
		Phrases: []string{
			"cross-default",
			"cross default",
			"default under any other agreement",
		},
		Description:    "A default on any other obligation triggers default on this loan.",
		Recommendation: "Ask to limit cross-default to material obligations above a dollar threshold.",
		DocumentTypes:  []string{risk.DocTypeLoanAgreement},
	},
	{
		ID:       "loan-balloon-payment",
		Category: risk.CategoryFinancial,
		Severity: risk.SeverityHigh,
		Phrases: []string{
			"balloon payment",
			"lump sum payment at maturity",
		},
		Description:    "A large balloon payment is due at the end of the loan term.",
		Recommendation: "Plan refinancing well before maturity or negotiate amortizing payments.",
		DocumentTypes:  []string{risk.DocTypeLoanAgreement},
	},
	{
		ID:       "tos-content-license",
		Category: risk.CategoryPrivacy,
		Severity: risk.SeverityMedium,
		Phrases: []string{
			"license to use your content",
			"irrevocable license",
			"royalty-free license to",
		},
		Description:    "The service takes a broad license to content you submit.",
		Recommendation: "Check whether the license survives account deletion and covers sublicensing.",
		DocumentTypes:  []string{risk.DocTypeTermsOfService},
	},
}
