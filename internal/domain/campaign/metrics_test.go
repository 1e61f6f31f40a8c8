package campaign

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func kpi(target, current int64) KPI {
	return KPI{
		Metric:  "views",
		Target:  decimal.NewFromInt(target),
		Current: decimal.NewFromInt(current),
	}
}

func TestAchievement(t *testing.T) {
	assert.InDelta(t, 50.0, Achievement(kpi(1000, 500)), 0.001)
	assert.InDelta(t, 150.0, Achievement(kpi(100, 150)), 0.001)
}

func TestAchievement_ZeroTarget(t *testing.T) {
	assert.Equal(t, 0.0, Achievement(kpi(0, 500)))
	assert.Equal(t, 0.0, Achievement(kpi(-10, 500)))
}

func TestAveragePerformance(t *testing.T) {
	kpis := []KPI{kpi(100, 50), kpi(200, 300)}
	assert.InDelta(t, 100.0, AveragePerformance(kpis), 0.001)
}

func TestAveragePerformance_SkipsZeroTargets(t *testing.T) {
	// The zero-target KPI must not drag the mean down.
	kpis := []KPI{kpi(100, 80), kpi(0, 999)}
	assert.InDelta(t, 80.0, AveragePerformance(kpis), 0.001)
}

func TestAveragePerformance_NoQualifyingKPIs(t *testing.T) {
	assert.Equal(t, 0.0, AveragePerformance(nil))
	assert.Equal(t, 0.0, AveragePerformance([]KPI{kpi(0, 10)}))
}

func TestBudgetUsage(t *testing.T) {
	c := &Campaign{Budget: decimal.NewFromInt(10000), Spent: decimal.NewFromInt(2500)}
	assert.InDelta(t, 25.0, BudgetUsage(c), 0.001)
}

func TestBudgetUsage_Overspend(t *testing.T) {
	c := &Campaign{Budget: decimal.NewFromInt(1000), Spent: decimal.NewFromInt(1500)}
	assert.InDelta(t, 150.0, BudgetUsage(c), 0.001)
}

func TestBudgetUsage_ZeroBudget(t *testing.T) {
	c := &Campaign{Budget: decimal.Zero, Spent: decimal.NewFromInt(500)}
	assert.Equal(t, 0.0, BudgetUsage(c))
}

func TestTimelineProgress(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 10)
	c := &Campaign{StartDate: start, EndDate: end}

	assert.InDelta(t, 50.0, TimelineProgress(c, start.AddDate(0, 0, 5)), 0.001)
	assert.Equal(t, 0.0, TimelineProgress(c, start.AddDate(0, 0, -3)))
	assert.Equal(t, 100.0, TimelineProgress(c, end.AddDate(0, 0, 30)))
}

func TestTimelineProgress_DegenerateRange(t *testing.T) {
	now := time.Now()
	same := &Campaign{StartDate: now, EndDate: now}
	assert.Equal(t, 0.0, TimelineProgress(same, now))

	inverted := &Campaign{StartDate: now, EndDate: now.AddDate(0, 0, -1)}
	assert.Equal(t, 0.0, TimelineProgress(inverted, now))
}

func TestComputePerformance(t *testing.T) {
	c := &Campaign{
		Budget: decimal.NewFromInt(1000),
		Spent:  decimal.NewFromInt(250),
		KPIs:   []KPI{kpi(100, 75)},
	}

	perf := ComputePerformance(c, true)
	assert.InDelta(t, 75.0, perf.Average, 0.001)
	assert.InDelta(t, 25.0, perf.BudgetUsed, 0.001)
	assert.Len(t, perf.KPIAchievement, 1)
	assert.InDelta(t, 75.0, perf.KPIAchievement[0].Achievement, 0.001)

	slim := ComputePerformance(c, false)
	assert.Nil(t, slim.KPIAchievement)
}
