package campaign

import (
	"math"
	"time"
)

// Performance is the derived-metric block embedded in campaign responses.
type Performance struct {
	Average        float64          `json:"average"`
	BudgetUsed     float64          `json:"budgetUsed"`
	KPIAchievement []KPIAchievement `json:"kpiAchievement,omitempty"`
}

type KPIAchievement struct {
	Metric      string  `json:"metric"`
	Target      float64 `json:"target"`
	Current     float64 `json:"current"`
	Achievement float64 `json:"achievement"`
	Unit        string  `json:"unit"`
}

// Achievement returns current/target as a percentage. KPIs without a
// positive target score 0 rather than dividing by zero.
func Achievement(k KPI) float64 {
	if k.Target.Sign() <= 0 {
		return 0
	}
	v, _ := k.Current.Div(k.Target).Float64()
	return v * 100
}

// AveragePerformance is the mean achievement over KPIs with a positive
// target; 0 when no KPI qualifies.
func AveragePerformance(kpis []KPI) float64 {
	var sum float64
	var count int
	for _, k := range kpis {
		if k.Target.Sign() > 0 {
			sum += Achievement(k)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return round2(sum / float64(count))
}

// BudgetUsage returns spent/budget as a percentage. A zero (or negative)
// budget reports 0 instead of propagating Inf/NaN.
func BudgetUsage(c *Campaign) float64 {
	if c.Budget.Sign() <= 0 {
		return 0
	}
	v, _ := c.Spent.Div(c.Budget).Float64()
	return round2(v * 100)
}

// TimelineProgress returns elapsed campaign time as a percentage of the
// total duration, clamped to [0,100]. Degenerate date ranges report 0.
func TimelineProgress(c *Campaign, now time.Time) float64 {
	total := c.EndDate.Sub(c.StartDate)
	if total <= 0 {
		return 0
	}
	elapsed := now.Sub(c.StartDate)
	progress := float64(elapsed) / float64(total) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return round2(progress)
}

// ComputePerformance assembles the embedded performance block.
func ComputePerformance(c *Campaign, withKPIs bool) Performance {
	perf := Performance{
		Average:    AveragePerformance(c.KPIs),
		BudgetUsed: BudgetUsage(c),
	}
	if withKPIs {
		perf.KPIAchievement = make([]KPIAchievement, 0, len(c.KPIs))
		for _, k := range c.KPIs {
			target, _ := k.Target.Float64()
			current, _ := k.Current.Float64()
			perf.KPIAchievement = append(perf.KPIAchievement, KPIAchievement{
				Metric:      k.Metric,
				Target:      target,
				Current:     current,
				Achievement: round2(Achievement(k)),
				Unit:        k.Unit,
			})
		}
	}
	return perf
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
