// Package compat implements the partner-compatibility estimator: an
// independent additive scoring pass over partner-reported behavioral signals
// and the user's own dominant state. It shares nothing with dimension scoring
// beyond reading the dominant dimension and state labels.
package compat

import "strings"

// Status tags a breakdown factor's alignment.
type Status string

const (
	StatusAligned    Status = "aligned"
	StatusMismatched Status = "mismatched"
	StatusOpposite   Status = "opposite"
)

// RiskLevel buckets the overall score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Input bundles everything the estimator reads. Partner fields are free-text
// form values; empty fields skip their factor entirely.
type Input struct {
	DominantDimension    string
	DominantState        string
	PartnerConflictStyle string
	FightFrequency       string
	RepairFrequency      string
}

// Factor is one applied adjustment in the breakdown, in application order.
type Factor struct {
	Dimension string `json:"dimension"`
	Score     int    `json:"score"`
	Status    Status `json:"status"`
	Insight   string `json:"insight"`
}

// Result is the estimator's output.
type Result struct {
	OverallScore      int       `json:"overallScore"`
	Breakdown         []Factor  `json:"breakdown"`
	RiskLevel         RiskLevel `json:"riskLevel"`
	TopRecommendation string    `json:"topRecommendation"`
}

// The free-text partner fields are parsed once into closed enums via
// case-insensitive substring checks, so the tolerance for loosely-validated
// form data lives here and nowhere else.

// ConflictStyle classifies how the partner handles conflict.
type ConflictStyle int

const (
	ConflictStyleUnknown ConflictStyle = iota
	ConflictStyleWithdraws
	ConflictStyleEngages
)

// ParseConflictStyle matches "withdraw" or "engage" anywhere in the value.
func ParseConflictStyle(raw string) ConflictStyle {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(v, "withdraw"):
		return ConflictStyleWithdraws
	case strings.Contains(v, "engage"):
		return ConflictStyleEngages
	default:
		return ConflictStyleUnknown
	}
}

// Frequency classifies how often the couple fights.
type Frequency int

const (
	FrequencyOther Frequency = iota
	FrequencyDaily
	FrequencyWeekly
	FrequencyMonthly
	FrequencyRarely
)

// ParseFightFrequency buckets the free-text frequency; anything unrecognized
// lands in FrequencyOther, which scores like "rarely".
func ParseFightFrequency(raw string) Frequency {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(v, "daily"):
		return FrequencyDaily
	case strings.Contains(v, "weekly"):
		return FrequencyWeekly
	case strings.Contains(v, "monthly"):
		return FrequencyMonthly
	case strings.Contains(v, "rare"):
		return FrequencyRarely
	default:
		return FrequencyOther
	}
}

// RepairHabit classifies how often the couple repairs after conflict.
type RepairHabit int

const (
	RepairOther RepairHabit = iota
	RepairAlways
	RepairSometimes
	RepairRarely
	RepairNever
)

// ParseRepairFrequency buckets the free-text repair habit; anything
// unrecognized lands in RepairOther, which scores like "never".
func ParseRepairFrequency(raw string) RepairHabit {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(v, "always"):
		return RepairAlways
	case strings.Contains(v, "sometimes"):
		return RepairSometimes
	case strings.Contains(v, "rare"):
		return RepairRarely
	case strings.Contains(v, "never"):
		return RepairNever
	default:
		return RepairOther
	}
}
