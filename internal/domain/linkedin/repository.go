package linkedin

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/pagination"
)

var sortColumns = map[string]string{
	"created_at":    "created_at",
	"createdAt":     "created_at",
	"status":        "status",
	"scheduledDate": "scheduled_date",
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, p *Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Post, error) {
	var p Post
	err := r.db.WithContext(ctx).
		Preload("Media").Preload("Analytics").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context, scope access.Scope, filter ListFilter, page pagination.Params) ([]Post, int64, error) {
	q := r.scoped(ctx, scope)

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CampaignID != "" {
		q = q.Where("campaign_id = ?", filter.CampaignID)
	}

	var total int64
	if err := q.Model(&Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []Post
	err := q.Preload("Media").Preload("Analytics").
		Order(page.Order(sortColumns, "created_at")).
		Limit(page.Limit).Offset(page.Offset).
		Find(&posts).Error
	return posts, total, err
}

// ListScoped returns every visible post with analytics preloaded, for the
// analytics aggregator.
func (r *Repository) ListScoped(ctx context.Context, scope access.Scope) ([]Post, error) {
	var posts []Post
	err := r.scoped(ctx, scope).Preload("Analytics").Find(&posts).Error
	return posts, err
}

// ListByCampaign returns all posts attached to a campaign with analytics
// preloaded, regardless of creator; campaign-level access is checked by
// the caller.
func (r *Repository) ListByCampaign(ctx context.Context, campaignID string) ([]Post, error) {
	var posts []Post
	err := r.db.WithContext(ctx).
		Preload("Analytics").
		Where("campaign_id = ?", campaignID).
		Find(&posts).Error
	return posts, err
}

func (r *Repository) Update(ctx context.Context, p *Post) error {
	return r.db.WithContext(ctx).Omit("Media", "Analytics").Save(p).Error
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Post{}, "id = ?", id).Error
}

func (r *Repository) AddMedia(ctx context.Context, m *Media) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *Repository) GetAnalytics(ctx context.Context, postID string) (*Analytics, error) {
	var a Analytics
	err := r.db.WithContext(ctx).First(&a, "post_id = ?", postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) SaveAnalytics(ctx context.Context, a *Analytics) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}},
			UpdateAll: true,
		}).
		Create(a).Error
}

func (r *Repository) scoped(ctx context.Context, scope access.Scope) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&Post{})
	if !scope.All {
		q = q.Where("created_by = ?", scope.UserID)
	}
	return q
}
