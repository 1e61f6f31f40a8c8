package scoring

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestScore_ReferralScenario(t *testing.T) {
	// budget 2M-3M clamps the budget factor to 100; REFERRAL scores 90.
	// 100*0.30 + 60*0.25 + 80*0.20 + 90*0.15 + 70*0.10 = 81.5 -> 82
	budgetMin := decimal.NewFromInt(2_000_000)
	budgetMax := decimal.NewFromInt(3_000_000)

	factors := Factors(&budgetMin, &budgetMax, "REFERRAL", StandardDefaults())
	assert.Equal(t, 82, Score(factors))
}

func TestScore_AlwaysInBounds(t *testing.T) {
	cases := []map[string]float64{
		{},
		{"budget": 0, "engagement": 0, "timeline": 0, "source": 0, "profile": 0},
		{"budget": 100, "engagement": 100, "timeline": 100, "source": 100, "profile": 100},
		{"budget": -500, "engagement": -1},
		{"budget": 10_000, "engagement": 9999, "timeline": 9999, "source": 9999, "profile": 9999},
		{"budget": -100, "engagement": 300},
	}

	for _, factors := range cases {
		got := Score(factors)
		assert.GreaterOrEqual(t, got, 0, "factors %v", factors)
		assert.LessOrEqual(t, got, 100, "factors %v", factors)
	}
}

func TestScore_UnknownFactorsIgnored(t *testing.T) {
	base := map[string]float64{"budget": 80, "engagement": 60}
	withNoise := map[string]float64{"budget": 80, "engagement": 60, "astrology": 95, "": 40}

	assert.Equal(t, Score(base), Score(withNoise))
}

func TestScore_MonotonicInEachFactor(t *testing.T) {
	factorKeys := []string{"budget", "engagement", "timeline", "source", "profile"}

	for _, key := range factorKeys {
		prev := -1
		for v := -50.0; v <= 150; v += 5 {
			factors := map[string]float64{
				"budget":     50,
				"engagement": 50,
				"timeline":   50,
				"source":     50,
				"profile":    50,
			}
			factors[key] = v

			got := Score(factors)
			assert.GreaterOrEqual(t, got, prev, "factor %s at %v", key, v)
			prev = got
		}
	}
}

func TestSourceScore(t *testing.T) {
	assert.Equal(t, float64(90), SourceScore("REFERRAL"))
	assert.Equal(t, float64(90), SourceScore("referral"))
	assert.Equal(t, float64(50), SourceScore("cold_call"))
	assert.Equal(t, float64(DefaultSourceScore), SourceScore("CARRIER_PIGEON"))
	assert.Equal(t, float64(DefaultSourceScore), SourceScore(""))
}

func TestBudgetFactor(t *testing.T) {
	mk := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}

	assert.Equal(t, float64(DefaultBudgetFactor), BudgetFactor(nil, nil))
	assert.Equal(t, float64(DefaultBudgetFactor), BudgetFactor(mk(100_000), nil))
	assert.Equal(t, float64(100), BudgetFactor(mk(2_000_000), mk(3_000_000)))
	assert.InDelta(t, 50, BudgetFactor(mk(1_000_000), mk(1_000_000)), 0.001)
	assert.Equal(t, float64(0), BudgetFactor(mk(-500_000), mk(-100_000)))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-10))
	assert.Equal(t, 100, Clamp(250))
	assert.Equal(t, 47, Clamp(47))
}
