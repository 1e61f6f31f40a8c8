package linkedin

import (
	"context"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/pagination"
)

// Store is the persistence surface the service needs; tests mock it.
type Store interface {
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	List(ctx context.Context, scope access.Scope, filter ListFilter, page pagination.Params) ([]Post, int64, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id string) error
	AddMedia(ctx context.Context, m *Media) error
	GetAnalytics(ctx context.Context, postID string) (*Analytics, error)
	SaveAnalytics(ctx context.Context, a *Analytics) error
}

// Notifier delivers workflow side effects. Submit fans out to everyone who
// can approve; review notifies the creator.
type Notifier interface {
	PostSubmitted(ctx context.Context, p *Post) error
	PostReviewed(ctx context.Context, p *Post, approved bool, feedback string) error
}

// CampaignChecker validates campaign references on posts.
type CampaignChecker interface {
	Accessible(ctx context.Context, caller access.Caller, campaignID string) error
}
