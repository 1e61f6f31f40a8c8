package analytics

import (
	"context"

	"casahub/internal/domain/campaign"
	"casahub/internal/domain/lead"
	"casahub/internal/domain/linkedin"
	"casahub/internal/domain/property"
	"casahub/internal/domain/todo"
	"casahub/internal/pkg/access"
)

// The aggregator reads through the owning domains' repositories using the
// exact scope those domains apply to their own list reads, so visibility
// can never drift between a dashboard number and the list behind it.

type TodoSource interface {
	ListScoped(ctx context.Context, scope access.Scope) ([]todo.Todo, error)
}

type CampaignSource interface {
	ListScoped(ctx context.Context, scope access.Scope) ([]campaign.Campaign, error)
	GetByID(ctx context.Context, id string) (*campaign.Campaign, error)
}

type LeadSource interface {
	ListScoped(ctx context.Context, scope access.Scope) ([]lead.Lead, error)
}

type PostSource interface {
	ListScoped(ctx context.Context, scope access.Scope) ([]linkedin.Post, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]linkedin.Post, error)
}

type PropertySource interface {
	ListScoped(ctx context.Context, scope access.Scope) ([]property.Property, error)
}
