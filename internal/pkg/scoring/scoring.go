// Package scoring computes lead scores from weighted factor inputs.
// It is pure: no persistence, no side effects, deterministic output.
package scoring

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Factor weights. They sum to 1.0; unknown factor keys are ignored.
var weights = map[string]float64{
	"budget":     0.30,
	"engagement": 0.25,
	"timeline":   0.20,
	"source":     0.15,
	"profile":    0.10,
}

// Source factor lookup. Unrecognized sources fall back to DefaultSourceScore.
var sourceScores = map[string]float64{
	"WEBSITE":      80,
	"SOCIAL_MEDIA": 70,
	"REFERRAL":     90,
	"COLD_CALL":    50,
	"EVENT":        85,
}

const (
	// DefaultSourceScore is used for sources not in the lookup table.
	DefaultSourceScore = 60

	// BudgetCeiling is the budget midpoint that maps to the maximum
	// budget factor of 100.
	BudgetCeiling = 2_000_000

	// DefaultBudgetFactor applies when a lead has no budget range.
	DefaultBudgetFactor = 50
)

// Defaults are the factor values used when a signal is not tracked.
// They are configuration, not hidden constants: callers may override any
// of them per lead.
type Defaults struct {
	Profile    float64
	Engagement float64
	Timeline   float64
}

// StandardDefaults returns the stock defaults for untracked factors:
// profile completeness 70, engagement 60, timeline urgency 80.
func StandardDefaults() Defaults {
	return Defaults{Profile: 70, Engagement: 60, Timeline: 80}
}

// Score maps weighted factor inputs to an integer in [0,100]. Each factor
// is expected to be a pre-normalized 0-100 value, but out-of-range inputs
// are tolerated: the weighted sum is rounded to the nearest integer and
// clamped. Factor keys without a weight are ignored.
func Score(factors map[string]float64) int {
	var sum float64
	for key, value := range factors {
		if w, ok := weights[key]; ok {
			sum += value * w
		}
	}
	return Clamp(int(math.Round(sum)))
}

// Clamp bounds a score to [0,100].
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// SourceScore returns the source factor for a lead source. The match is
// case-insensitive; unknown sources score DefaultSourceScore.
func SourceScore(source string) float64 {
	if s, ok := sourceScores[strings.ToUpper(source)]; ok {
		return s
	}
	return DefaultSourceScore
}

// BudgetFactor normalizes a monetary budget range to a 0-100 factor using
// the range midpoint against BudgetCeiling. Leads without a complete range
// get DefaultBudgetFactor.
func BudgetFactor(budgetMin, budgetMax *decimal.Decimal) float64 {
	if budgetMin == nil || budgetMax == nil {
		return DefaultBudgetFactor
	}
	mid, _ := budgetMin.Add(*budgetMax).Div(decimal.NewFromInt(2)).Float64()
	factor := mid / BudgetCeiling * 100
	if factor > 100 {
		return 100
	}
	if factor < 0 {
		return 0
	}
	return factor
}

// Factors assembles the full factor map for a lead from its budget range,
// source, and the configured defaults for untracked signals.
func Factors(budgetMin, budgetMax *decimal.Decimal, source string, d Defaults) map[string]float64 {
	return map[string]float64{
		"budget":     BudgetFactor(budgetMin, budgetMax),
		"source":     SourceScore(source),
		"profile":    d.Profile,
		"engagement": d.Engagement,
		"timeline":   d.Timeline,
	}
}
