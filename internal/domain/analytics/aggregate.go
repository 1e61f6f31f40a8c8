package analytics

import (
	"math"
	"sort"
	"time"

	"casahub/internal/domain/campaign"
	"casahub/internal/domain/lead"
	"casahub/internal/domain/linkedin"
	"casahub/internal/domain/property"
	"casahub/internal/domain/todo"
)

// The aggregation functions in this file are pure: they take already
// scoped entity slices and a clock value, and tolerate empty input by
// returning zeroed structures.

func aggregateTodos(todos []todo.Todo, now time.Time) TodosOverview {
	var o TodosOverview
	o.Total = len(todos)
	for _, t := range todos {
		switch t.Status {
		case todo.StatusPending:
			o.Pending++
		case todo.StatusInProgress:
			o.InProgress++
		case todo.StatusCompleted:
			o.Completed++
		}
		if t.DueDate != nil && t.DueDate.Before(now) &&
			t.Status != todo.StatusCompleted && t.Status != todo.StatusCancelled {
			o.Overdue++
		}
	}
	return o
}

func aggregateCampaigns(campaigns []campaign.Campaign) CampaignsOverview {
	var o CampaignsOverview
	var perfSum float64
	var perfCount int
	for i := range campaigns {
		c := &campaigns[i]
		if c.Status == campaign.StatusActive {
			o.Active++
		}
		budget, _ := c.Budget.Float64()
		spent, _ := c.Spent.Float64()
		o.TotalBudget += budget
		o.TotalSpent += spent

		// Only campaigns with at least one KPI carrying a positive target
		// contribute to the average.
		if hasQualifyingKPI(c.KPIs) {
			perfSum += campaign.AveragePerformance(c.KPIs)
			perfCount++
		}
	}
	if perfCount > 0 {
		o.AvgPerformance = round2(perfSum / float64(perfCount))
	}
	return o
}

func hasQualifyingKPI(kpis []campaign.KPI) bool {
	for _, k := range kpis {
		if k.Target.Sign() > 0 {
			return true
		}
	}
	return false
}

func aggregateLeads(leads []lead.Lead) LeadsOverview {
	var o LeadsOverview
	o.Total = len(leads)
	var closed int
	for _, l := range leads {
		switch l.Status {
		case lead.StatusNew:
			o.New++
		case lead.StatusQualified:
			o.Qualified++
		case lead.StatusClosed:
			closed++
		}
	}
	if o.Total > 0 {
		o.Conversion = round2(float64(closed) / float64(o.Total) * 100)
	}
	return o
}

func aggregatePosts(posts []linkedin.Post, now time.Time) SocialMediaOverview {
	var o SocialMediaOverview
	recentCutoff := now.AddDate(0, 0, -30)
	for i := range posts {
		p := &posts[i]
		switch p.Status {
		case linkedin.StatusScheduled:
			o.ScheduledPosts++
		case linkedin.StatusPendingApproval:
			o.PendingApproval++
		}
		if p.Analytics != nil {
			o.TotalEngagement += p.Analytics.Likes + p.Analytics.Comments + p.Analytics.Shares
		}
		if p.CreatedAt.After(recentCutoff) {
			o.RecentPosts++
		}
	}
	return o
}

func aggregateProperties(properties []property.Property) PropertyOverview {
	var o PropertyOverview
	o.Total = len(properties)
	for i := range properties {
		switch properties[i].Status {
		case property.StatusAvailable:
			o.Available++
		case property.StatusUnderContract:
			o.UnderContract++
		case property.StatusSold:
			o.Sold++
		}
	}
	return o
}

func aggregateRecentActivity(todos []todo.Todo, leads []lead.Lead, posts []linkedin.Post, now time.Time) RecentActivity {
	var o RecentActivity
	cutoff := now.AddDate(0, 0, -7)
	for i := range todos {
		if todos[i].CreatedAt.After(cutoff) {
			o.NewTodos++
		}
	}
	for i := range leads {
		if leads[i].CreatedAt.After(cutoff) {
			o.NewLeads++
		}
	}
	for i := range posts {
		if posts[i].Status == linkedin.StatusPublished &&
			posts[i].PublishedAt != nil && posts[i].PublishedAt.After(cutoff) {
			o.PublishedPosts++
		}
	}
	return o
}

func buildDashboard(
	todos []todo.Todo,
	campaigns []campaign.Campaign,
	leads []lead.Lead,
	posts []linkedin.Post,
	properties []property.Property,
	now time.Time,
) DashboardStats {
	todosOverview := aggregateTodos(todos, now)
	campaignsOverview := aggregateCampaigns(campaigns)
	leadsOverview := aggregateLeads(leads)
	propertyOverview := aggregateProperties(properties)

	return DashboardStats{
		TodosOverview:       todosOverview,
		CampaignsOverview:   campaignsOverview,
		LeadsOverview:       leadsOverview,
		SocialMediaOverview: aggregatePosts(posts, now),
		PropertyOverview:    propertyOverview,
		RecentActivity:      aggregateRecentActivity(todos, leads, posts, now),
		Summary: Summary{
			TotalProperties: propertyOverview.Total,
			ActiveCampaigns: campaignsOverview.Active,
			TotalLeads:      leadsOverview.Total,
			PendingTodos:    todosOverview.Pending + todosOverview.InProgress,
		},
	}
}

func buildCampaignAnalytics(c *campaign.Campaign, posts []linkedin.Post, now time.Time) CampaignAnalytics {
	kpis := make([]KPIPerformance, 0, len(c.KPIs))
	var achievementSum float64
	for _, k := range c.KPIs {
		target, _ := k.Target.Float64()
		current, _ := k.Current.Float64()
		achievement := round2(campaign.Achievement(k))
		achievementSum += achievement
		kpis = append(kpis, KPIPerformance{
			Metric:      k.Metric,
			Target:      target,
			Current:     current,
			Achievement: achievement,
			Unit:        k.Unit,
		})
	}
	var overall float64
	if len(kpis) > 0 {
		overall = round2(achievementSum / float64(len(kpis)))
	}

	budget, _ := c.Budget.Float64()
	spent, _ := c.Spent.Float64()
	usagePercent := campaign.BudgetUsage(c)

	timeline := buildTimeline(c, now)
	social := buildSocialRollup(posts)

	var top *KPIPerformance
	for i := range kpis {
		if top == nil || kpis[i].Achievement > top.Achievement {
			top = &kpis[i]
		}
	}
	var efficiency float64
	if usagePercent > 0 && len(kpis) > 0 {
		efficiency = round2(overall / usagePercent)
	}

	return CampaignAnalytics{
		Campaign: CampaignSummary{
			ID:     c.ID,
			Name:   c.Name,
			Status: string(c.Status),
			Type:   string(c.Type),
		},
		Performance: KPIPerformances{Overall: overall, KPIs: kpis},
		Budget: BudgetAnalysis{
			Total:        budget,
			Spent:        spent,
			Remaining:    budget - spent,
			UsagePercent: usagePercent,
		},
		Timeline:    timeline,
		SocialMedia: social,
		Insights: Insights{
			TopPerformingKPI:   top,
			BudgetEfficiency:   efficiency,
			RecommendedActions: recommendations(overall, len(kpis), usagePercent, timeline.Progress),
		},
	}
}

func buildTimeline(c *campaign.Campaign, now time.Time) TimelineAnalysis {
	totalDays := int(math.Ceil(c.EndDate.Sub(c.StartDate).Hours() / 24))
	elapsedDays := int(math.Ceil(now.Sub(c.StartDate).Hours() / 24))
	if elapsedDays < 0 {
		elapsedDays = 0
	}
	remainingDays := totalDays - elapsedDays
	if remainingDays < 0 {
		remainingDays = 0
	}
	return TimelineAnalysis{
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		TotalDays:     totalDays,
		ElapsedDays:   elapsedDays,
		RemainingDays: remainingDays,
		Progress:      campaign.TimelineProgress(c, now),
	}
}

func buildSocialRollup(posts []linkedin.Post) SocialRollup {
	var o SocialRollup
	for i := range posts {
		p := &posts[i]
		switch p.Status {
		case linkedin.StatusPublished:
			o.PostsPublished++
		case linkedin.StatusScheduled:
			o.PostsScheduled++
		}
		if p.Analytics == nil {
			continue
		}
		o.TotalViews += p.Analytics.Views
		o.TotalLikes += p.Analytics.Likes
		o.TotalComments += p.Analytics.Comments
		o.TotalShares += p.Analytics.Shares
		o.TotalEngagement += p.Analytics.Engagement
		o.PostCount++
	}
	if o.PostCount > 0 {
		o.AvgEngagement = round2(o.TotalEngagement / float64(o.PostCount))
	}
	return o
}

func recommendations(avgPerformance float64, kpiCount int, budgetUsed, timelineProgress float64) []string {
	recs := []string{}

	if budgetUsed > 80 && timelineProgress < 80 {
		recs = append(recs, "Consider increasing budget or optimizing spend allocation")
	}
	if budgetUsed < 50 && timelineProgress > 60 {
		recs = append(recs, "Budget utilization is low - consider increasing campaign intensity")
	}

	if kpiCount > 0 {
		if avgPerformance < 70 {
			recs = append(recs, "Campaign performance is below target - review targeting and creative")
		}
		if avgPerformance > 120 {
			recs = append(recs, "Campaign is over-performing - consider scaling successful elements")
		}
		if timelineProgress > 80 && avgPerformance < 80 {
			recs = append(recs, "Campaign is nearing end with low performance - consider extending or optimization")
		}
	}

	return recs
}

func buildLeadAnalytics(leads []lead.Lead, since time.Time) LeadAnalytics {
	byStatus := map[string]*statusAccum{}
	bySource := map[string]int{}
	funnel := map[string]int{}
	byDay := map[string]*dayAccum{}

	var scoreSum float64
	var closed int
	for i := range leads {
		l := &leads[i]
		status := string(l.Status)

		acc, ok := byStatus[status]
		if !ok {
			acc = &statusAccum{min: l.Score, max: l.Score}
			byStatus[status] = acc
		}
		acc.count++
		acc.scoreSum += float64(l.Score)
		if l.Score < acc.min {
			acc.min = l.Score
		}
		if l.Score > acc.max {
			acc.max = l.Score
		}

		bySource[string(l.Source)]++
		scoreSum += float64(l.Score)
		if l.Status == lead.StatusClosed {
			closed++
		}

		if l.CreatedAt.After(since) {
			funnel[status]++
			day := l.CreatedAt.Format("2006-01-02")
			d, ok := byDay[day]
			if !ok {
				d = &dayAccum{}
				byDay[day] = d
			}
			d.count++
			d.scoreSum += float64(l.Score)
		}
	}

	out := LeadAnalytics{
		Funnel:   []FunnelStage{},
		Timeline: []DailyLeads{},
	}
	out.Overview.TotalLeads = len(leads)
	if len(leads) > 0 {
		out.Overview.AvgScore = round2(scoreSum / float64(len(leads)))
		out.Overview.ConversionRate = round2(float64(closed) / float64(len(leads)) * 100)
	}

	out.Distribution.ByStatus = make([]StatusCount, 0, len(byStatus))
	out.ScoreAnalysis.ByStatus = make([]ScoreByStatus, 0, len(byStatus))
	for _, status := range leadStatusOrder {
		acc, ok := byStatus[status]
		if !ok {
			continue
		}
		avg := round2(acc.scoreSum / float64(acc.count))
		out.Distribution.ByStatus = append(out.Distribution.ByStatus, StatusCount{
			Status: status, Count: acc.count, AvgScore: avg,
		})
		out.ScoreAnalysis.ByStatus = append(out.ScoreAnalysis.ByStatus, ScoreByStatus{
			Status: status, AvgScore: avg, MinScore: acc.min, MaxScore: acc.max,
		})
		if n := funnel[status]; n > 0 {
			out.Funnel = append(out.Funnel, FunnelStage{Stage: status, Count: n})
		}
	}

	out.Distribution.BySource = make([]SourceCount, 0, len(bySource))
	for _, source := range leadSourceOrder {
		if n := bySource[source]; n > 0 {
			out.Distribution.BySource = append(out.Distribution.BySource, SourceCount{Source: source, Count: n})
		}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		d := byDay[day]
		out.Timeline = append(out.Timeline, DailyLeads{
			Date:     day,
			Count:    d.count,
			AvgScore: round2(d.scoreSum / float64(d.count)),
		})
	}

	return out
}

// Canonical display orders, matching the pipeline progression.
var leadStatusOrder = []string{
	string(lead.StatusNew),
	string(lead.StatusContacted),
	string(lead.StatusQualified),
	string(lead.StatusViewingScheduled),
	string(lead.StatusOfferMade),
	string(lead.StatusClosed),
	string(lead.StatusLost),
}

var leadSourceOrder = []string{
	string(lead.SourceWebsite),
	string(lead.SourceSocialMedia),
	string(lead.SourceReferral),
	string(lead.SourceColdCall),
	string(lead.SourceEvent),
}

type statusAccum struct {
	count    int
	scoreSum float64
	min, max int
}

type dayAccum struct {
	count    int
	scoreSum float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
