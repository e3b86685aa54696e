// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import "lexiscan/internal/risk"

// Score reduces a deduplicated finding list to the overall document
// rating. Severities weigh 3/2/1 (high/medium/low); the rules are
// evaluated in order:
//
//	no findings                                  -> low
//	>=2 high, or average weight >= 2.5           -> high
//	>=1 high, >=3 medium, or avg weight >= 1.8   -> medium
//	otherwise                                    -> low
func Score(findings []risk.Risk) risk.Severity {
	if len(findings) == 0 {
		return risk.SeverityLow
	}

	highCount := 0
	mediumCount := 0
	totalWeight := 0
	for _, f := range findings {
		switch f.Severity {
		case risk.SeverityHigh:
			highCount++
		case risk.SeverityMedium:
			mediumCount++
		}
		totalWeight += f.Severity.Weight()
	}
	avgWeight := float64(totalWeight) / float64(len(findings))

	if highCount >= 2 || avgWeight >= 2.5 {
		return risk.SeverityHigh
	}
	if highCount >= 1 || mediumCount >= 3 || avgWeight >= 1.8 {
		return risk.SeverityMedium
	}
	return risk.SeverityLow
}
