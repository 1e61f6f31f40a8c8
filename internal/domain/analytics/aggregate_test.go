package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"casahub/internal/domain/campaign"
	"casahub/internal/domain/lead"
	"casahub/internal/domain/linkedin"
	"casahub/internal/domain/property"
	"casahub/internal/domain/todo"
)

var now = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func TestBuildDashboard_EmptySources(t *testing.T) {
	stats := buildDashboard(nil, nil, nil, nil, nil, now)

	assert.Equal(t, TodosOverview{}, stats.TodosOverview)
	assert.Equal(t, CampaignsOverview{}, stats.CampaignsOverview)
	assert.Equal(t, LeadsOverview{}, stats.LeadsOverview)
	assert.Equal(t, SocialMediaOverview{}, stats.SocialMediaOverview)
	assert.Equal(t, PropertyOverview{}, stats.PropertyOverview)
	assert.Equal(t, Summary{}, stats.Summary)
}

func TestAggregateTodos_CountsOverdue(t *testing.T) {
	past := now.AddDate(0, 0, -2)
	future := now.AddDate(0, 0, 2)
	todos := []todo.Todo{
		{Status: todo.StatusPending, DueDate: &past},
		{Status: todo.StatusCompleted, DueDate: &past},
		{Status: todo.StatusCancelled, DueDate: &past},
		{Status: todo.StatusInProgress, DueDate: &future},
		{Status: todo.StatusPending},
	}

	o := aggregateTodos(todos, now)

	assert.Equal(t, 5, o.Total)
	assert.Equal(t, 2, o.Pending)
	assert.Equal(t, 1, o.InProgress)
	assert.Equal(t, 1, o.Completed)
	// Done and cancelled items are never overdue.
	assert.Equal(t, 1, o.Overdue)
}

func TestAggregateCampaigns_SkipsCampaignsWithoutQualifyingKPIs(t *testing.T) {
	campaigns := []campaign.Campaign{
		{
			Status: campaign.StatusActive,
			Budget: decimal.NewFromInt(1000),
			Spent:  decimal.NewFromInt(400),
			KPIs: []campaign.KPI{
				{Target: decimal.NewFromInt(100), Current: decimal.NewFromInt(50)},
			},
		},
		{
			Status: campaign.StatusPlanning,
			Budget: decimal.NewFromInt(500),
			KPIs: []campaign.KPI{
				{Target: decimal.Zero, Current: decimal.NewFromInt(999)},
			},
		},
	}

	o := aggregateCampaigns(campaigns)

	assert.Equal(t, 1, o.Active)
	assert.InDelta(t, 1500.0, o.TotalBudget, 0.001)
	assert.InDelta(t, 400.0, o.TotalSpent, 0.001)
	// Only the first campaign qualifies, at 50%.
	assert.InDelta(t, 50.0, o.AvgPerformance, 0.001)
}

func TestAggregateLeads_Conversion(t *testing.T) {
	leads := []lead.Lead{
		{Status: lead.StatusNew},
		{Status: lead.StatusQualified},
		{Status: lead.StatusClosed},
		{Status: lead.StatusLost},
	}

	o := aggregateLeads(leads)

	assert.Equal(t, 4, o.Total)
	assert.Equal(t, 1, o.New)
	assert.Equal(t, 1, o.Qualified)
	assert.InDelta(t, 25.0, o.Conversion, 0.001)
}

func TestAggregatePosts_EngagementOnlyFromAttachedAnalytics(t *testing.T) {
	posts := []linkedin.Post{
		{Status: linkedin.StatusScheduled, CreatedAt: now.AddDate(0, 0, -1)},
		{Status: linkedin.StatusPendingApproval, CreatedAt: now.AddDate(0, 0, -40)},
		{
			Status:    linkedin.StatusPublished,
			CreatedAt: now.AddDate(0, 0, -3),
			Analytics: &linkedin.Analytics{Likes: 10, Comments: 5, Shares: 2, Views: 500},
		},
	}

	o := aggregatePosts(posts, now)

	assert.Equal(t, 1, o.ScheduledPosts)
	assert.Equal(t, 1, o.PendingApproval)
	assert.Equal(t, int64(17), o.TotalEngagement)
	assert.Equal(t, 2, o.RecentPosts)
}

func TestAggregateRecentActivity(t *testing.T) {
	recent := now.AddDate(0, 0, -3)
	old := now.AddDate(0, 0, -10)
	todos := []todo.Todo{{CreatedAt: recent}, {CreatedAt: old}}
	leads := []lead.Lead{{CreatedAt: recent}}
	posts := []linkedin.Post{
		{Status: linkedin.StatusPublished, PublishedAt: &recent},
		{Status: linkedin.StatusPublished, PublishedAt: &old},
		{Status: linkedin.StatusScheduled, PublishedAt: nil},
	}

	o := aggregateRecentActivity(todos, leads, posts, now)

	assert.Equal(t, 1, o.NewTodos)
	assert.Equal(t, 1, o.NewLeads)
	assert.Equal(t, 1, o.PublishedPosts)
}

func TestBuildCampaignAnalytics(t *testing.T) {
	c := &campaign.Campaign{
		ID:        "c1",
		Name:      "Spring push",
		Status:    campaign.StatusActive,
		Type:      campaign.TypeSocialMedia,
		Budget:    decimal.NewFromInt(10000),
		Spent:     decimal.NewFromInt(4000),
		StartDate: now.AddDate(0, 0, -10),
		EndDate:   now.AddDate(0, 0, 10),
		KPIs: []campaign.KPI{
			{Metric: "impressions", Target: decimal.NewFromInt(1000), Current: decimal.NewFromInt(800), Unit: "count"},
			{Metric: "clicks", Target: decimal.NewFromInt(100), Current: decimal.NewFromInt(40), Unit: "count"},
		},
	}
	posts := []linkedin.Post{
		{
			Status:    linkedin.StatusPublished,
			Analytics: &linkedin.Analytics{Views: 200, Likes: 20, Comments: 4, Shares: 2, Engagement: 26},
		},
		{Status: linkedin.StatusScheduled},
	}

	out := buildCampaignAnalytics(c, posts, now)

	assert.Equal(t, "c1", out.Campaign.ID)
	assert.InDelta(t, 60.0, out.Performance.Overall, 0.001)
	assert.Len(t, out.Performance.KPIs, 2)
	assert.InDelta(t, 40.0, out.Budget.UsagePercent, 0.001)
	assert.InDelta(t, 6000.0, out.Budget.Remaining, 0.001)
	assert.InDelta(t, 50.0, out.Timeline.Progress, 0.001)
	assert.Equal(t, 1, out.SocialMedia.PostsPublished)
	assert.Equal(t, 1, out.SocialMedia.PostsScheduled)
	assert.Equal(t, 1, out.SocialMedia.PostCount)
	assert.InDelta(t, 26.0, out.SocialMedia.AvgEngagement, 0.001)
	assert.Equal(t, "impressions", out.Insights.TopPerformingKPI.Metric)
	assert.InDelta(t, 1.5, out.Insights.BudgetEfficiency, 0.001)
}

func TestBuildCampaignAnalytics_NoKPIsNoBudget(t *testing.T) {
	c := &campaign.Campaign{
		ID:        "c2",
		Budget:    decimal.Zero,
		Spent:     decimal.Zero,
		StartDate: now,
		EndDate:   now,
	}

	out := buildCampaignAnalytics(c, nil, now)

	assert.Equal(t, 0.0, out.Performance.Overall)
	assert.Equal(t, 0.0, out.Budget.UsagePercent)
	assert.Equal(t, 0.0, out.Timeline.Progress)
	assert.Nil(t, out.Insights.TopPerformingKPI)
	assert.Equal(t, 0.0, out.Insights.BudgetEfficiency)
	assert.Empty(t, out.SocialMedia.PostCount)
}

func TestRecommendations_SilentWhenHealthy(t *testing.T) {
	recs := recommendations(100, 2, 60, 70)
	assert.Empty(t, recs)
}

func TestRecommendations_NoKPIDivisionArtifacts(t *testing.T) {
	// With no KPIs the performance rules must not fire at all.
	recs := recommendations(0, 0, 90, 50)
	assert.Equal(t, []string{"Consider increasing budget or optimizing spend allocation"}, recs)
}

func TestBuildLeadAnalytics(t *testing.T) {
	since := now.AddDate(0, 0, -30)
	leads := []lead.Lead{
		{Status: lead.StatusNew, Source: lead.SourceWebsite, Score: 60, CreatedAt: now.AddDate(0, 0, -5)},
		{Status: lead.StatusNew, Source: lead.SourceReferral, Score: 80, CreatedAt: now.AddDate(0, 0, -5)},
		{Status: lead.StatusClosed, Source: lead.SourceReferral, Score: 90, CreatedAt: now.AddDate(0, 0, -60)},
	}

	out := buildLeadAnalytics(leads, since)

	assert.Equal(t, 3, out.Overview.TotalLeads)
	assert.InDelta(t, 76.67, out.Overview.AvgScore, 0.01)
	assert.InDelta(t, 33.33, out.Overview.ConversionRate, 0.01)

	assert.Equal(t, "NEW", out.Distribution.ByStatus[0].Status)
	assert.Equal(t, 2, out.Distribution.ByStatus[0].Count)
	assert.InDelta(t, 70.0, out.Distribution.ByStatus[0].AvgScore, 0.001)

	// The closed lead is outside the funnel window.
	assert.Len(t, out.Funnel, 1)
	assert.Equal(t, FunnelStage{Stage: "NEW", Count: 2}, out.Funnel[0])

	assert.Equal(t, 60, out.ScoreAnalysis.ByStatus[0].MinScore)
	assert.Equal(t, 80, out.ScoreAnalysis.ByStatus[0].MaxScore)

	assert.Len(t, out.Timeline, 1)
	assert.Equal(t, 2, out.Timeline[0].Count)
}

func TestBuildLeadAnalytics_Empty(t *testing.T) {
	out := buildLeadAnalytics(nil, now)

	assert.Equal(t, 0, out.Overview.TotalLeads)
	assert.Equal(t, 0.0, out.Overview.AvgScore)
	assert.Equal(t, 0.0, out.Overview.ConversionRate)
	assert.Empty(t, out.Distribution.ByStatus)
	assert.Empty(t, out.Funnel)
	assert.Empty(t, out.Timeline)
}

func TestAggregateProperties(t *testing.T) {
	properties := []property.Property{
		{Status: property.StatusAvailable},
		{Status: property.StatusAvailable},
		{Status: property.StatusUnderContract},
		{Status: property.StatusSold},
		{Status: property.StatusRented},
	}

	o := aggregateProperties(properties)

	assert.Equal(t, 5, o.Total)
	assert.Equal(t, 2, o.Available)
	assert.Equal(t, 1, o.UnderContract)
	assert.Equal(t, 1, o.Sold)
}
