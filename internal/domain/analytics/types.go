package analytics

import "time"

// DashboardStats is the aggregate view behind the dashboard landing page.
// Every block is zeroed, never nil, when its source has no rows.
type DashboardStats struct {
	TodosOverview       TodosOverview       `json:"todosOverview"`
	CampaignsOverview   CampaignsOverview   `json:"campaignsOverview"`
	LeadsOverview       LeadsOverview       `json:"leadsOverview"`
	SocialMediaOverview SocialMediaOverview `json:"socialMediaOverview"`
	PropertyOverview    PropertyOverview    `json:"propertyOverview"`
	RecentActivity      RecentActivity      `json:"recentActivity"`
	Summary             Summary             `json:"summary"`
}

type TodosOverview struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
}

type CampaignsOverview struct {
	Active         int     `json:"active"`
	TotalBudget    float64 `json:"totalBudget"`
	TotalSpent     float64 `json:"totalSpent"`
	AvgPerformance float64 `json:"avgPerformance"`
}

type LeadsOverview struct {
	Total      int     `json:"total"`
	New        int     `json:"new"`
	Qualified  int     `json:"qualified"`
	Conversion float64 `json:"conversion"`
}

type SocialMediaOverview struct {
	ScheduledPosts  int   `json:"scheduledPosts"`
	PendingApproval int   `json:"pendingApproval"`
	TotalEngagement int64 `json:"totalEngagement"`
	RecentPosts     int   `json:"recentPosts"`
}

type PropertyOverview struct {
	Total         int `json:"total"`
	Available     int `json:"available"`
	UnderContract int `json:"underContract"`
	Sold          int `json:"sold"`
}

type RecentActivity struct {
	NewTodos       int `json:"newTodos"`
	NewLeads       int `json:"newLeads"`
	PublishedPosts int `json:"publishedPosts"`
}

type Summary struct {
	TotalProperties int `json:"totalProperties"`
	ActiveCampaigns int `json:"activeCampaigns"`
	TotalLeads      int `json:"totalLeads"`
	PendingTodos    int `json:"pendingTodos"`
}

// CampaignAnalytics is the per-campaign deep-dive view.
type CampaignAnalytics struct {
	Campaign    CampaignSummary  `json:"campaign"`
	Performance KPIPerformances  `json:"performance"`
	Budget      BudgetAnalysis   `json:"budget"`
	Timeline    TimelineAnalysis `json:"timeline"`
	SocialMedia SocialRollup     `json:"socialMedia"`
	Insights    Insights         `json:"insights"`
}

type CampaignSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Type   string `json:"type"`
}

type KPIPerformance struct {
	Metric      string  `json:"metric"`
	Target      float64 `json:"target"`
	Current     float64 `json:"current"`
	Achievement float64 `json:"achievement"`
	Unit        string  `json:"unit"`
}

type KPIPerformances struct {
	Overall float64          `json:"overall"`
	KPIs    []KPIPerformance `json:"kpis"`
}

type BudgetAnalysis struct {
	Total        float64 `json:"total"`
	Spent        float64 `json:"spent"`
	Remaining    float64 `json:"remaining"`
	UsagePercent float64 `json:"usagePercent"`
}

type TimelineAnalysis struct {
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	TotalDays     int       `json:"totalDays"`
	ElapsedDays   int       `json:"elapsedDays"`
	RemainingDays int       `json:"remainingDays"`
	Progress      float64   `json:"progress"`
}

type SocialRollup struct {
	TotalViews      int64   `json:"totalViews"`
	TotalLikes      int64   `json:"totalLikes"`
	TotalComments   int64   `json:"totalComments"`
	TotalShares     int64   `json:"totalShares"`
	TotalEngagement float64 `json:"totalEngagement"`
	PostCount       int     `json:"postCount"`
	AvgEngagement   float64 `json:"avgEngagement"`
	PostsPublished  int     `json:"postsPublished"`
	PostsScheduled  int     `json:"postsScheduled"`
}

type Insights struct {
	TopPerformingKPI   *KPIPerformance `json:"topPerformingKPI"`
	BudgetEfficiency   float64         `json:"budgetEfficiency"`
	RecommendedActions []string        `json:"recommendedActions"`
}

// LeadAnalytics is the lead pipeline deep-dive view.
type LeadAnalytics struct {
	Overview      LeadOverview     `json:"overview"`
	Distribution  LeadDistribution `json:"distribution"`
	Funnel        []FunnelStage    `json:"funnel"`
	ScoreAnalysis ScoreAnalysis    `json:"scoreAnalysis"`
	Timeline      []DailyLeads     `json:"timeline"`
}

type LeadOverview struct {
	TotalLeads     int     `json:"totalLeads"`
	AvgScore       float64 `json:"avgScore"`
	ConversionRate float64 `json:"conversionRate"`
}

type StatusCount struct {
	Status   string  `json:"status"`
	Count    int     `json:"count"`
	AvgScore float64 `json:"avgScore"`
}

type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

type LeadDistribution struct {
	ByStatus []StatusCount `json:"byStatus"`
	BySource []SourceCount `json:"bySource"`
}

type FunnelStage struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

type ScoreByStatus struct {
	Status   string  `json:"status"`
	AvgScore float64 `json:"avgScore"`
	MinScore int     `json:"minScore"`
	MaxScore int     `json:"maxScore"`
}

type ScoreAnalysis struct {
	ByStatus []ScoreByStatus `json:"byStatus"`
}

type DailyLeads struct {
	Date     string  `json:"date"`
	Count    int     `json:"count"`
	AvgScore float64 `json:"avgScore"`
}
