package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/apperr"
)

type Service struct {
	todos      TodoSource
	campaigns  CampaignSource
	leads      LeadSource
	posts      PostSource
	properties PropertySource
	now        func() time.Time
	log        *zap.Logger
}

func NewService(todos TodoSource, campaigns CampaignSource, leads LeadSource, posts PostSource, properties PropertySource, log *zap.Logger) *Service {
	return &Service{
		todos:      todos,
		campaigns:  campaigns,
		leads:      leads,
		posts:      posts,
		properties: properties,
		now:        time.Now,
		log:        log,
	}
}

// Dashboard assembles the landing-page aggregate for the caller's scope.
func (s *Service) Dashboard(ctx context.Context, caller access.Caller) (*DashboardStats, error) {
	scope := access.ScopeFor(caller)

	todos, err := s.todos.ListScoped(ctx, scope)
	if err != nil {
		return nil, err
	}
	campaigns, err := s.campaigns.ListScoped(ctx, scope)
	if err != nil {
		return nil, err
	}
	leads, err := s.leads.ListScoped(ctx, scope)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.ListScoped(ctx, scope)
	if err != nil {
		return nil, err
	}
	properties, err := s.properties.ListScoped(ctx, scope)
	if err != nil {
		return nil, err
	}

	stats := buildDashboard(todos, campaigns, leads, posts, properties, s.now())
	return &stats, nil
}

// CampaignAnalytics builds the per-campaign deep dive. Access follows the
// campaign's own ownership rules.
func (s *Service) CampaignAnalytics(ctx context.Context, caller access.Caller, campaignID string) (*CampaignAnalytics, error) {
	c, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("CAMPAIGN_NOT_FOUND", "Campaign not found")
	}
	if !caller.Owns(c.CreatedBy) {
		return nil, apperr.Forbidden("ACCESS_DENIED", "Access denied")
	}

	posts, err := s.posts.ListByCampaign(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	out := buildCampaignAnalytics(c, posts, s.now())
	return &out, nil
}

// LeadAnalytics builds the pipeline deep dive over the given period.
func (s *Service) LeadAnalytics(ctx context.Context, caller access.Caller, period string) (*LeadAnalytics, error) {
	leads, err := s.leads.ListScoped(ctx, access.ScopeFor(caller))
	if err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, 0, -periodDays(period))
	out := buildLeadAnalytics(leads, since)
	return &out, nil
}

func periodDays(period string) int {
	switch period {
	case "7d":
		return 7
	case "30d", "":
		return 30
	case "90d":
		return 90
	default:
		return 365
	}
}
