package campaign

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/pagination"
)

var sortColumns = map[string]string{
	"created_at": "created_at",
	"createdAt":  "created_at",
	"name":       "name",
	"budget":     "budget",
	"startDate":  "start_date",
	"endDate":    "end_date",
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, c *Campaign) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Campaign, error) {
	var c Campaign
	err := r.db.WithContext(ctx).Preload("KPIs").First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) List(ctx context.Context, scope access.Scope, filter ListFilter, page pagination.Params) ([]Campaign, int64, error) {
	q := r.scoped(ctx, scope)

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.PropertyID != "" {
		q = q.Where("property_id = ?", filter.PropertyID)
	}
	if filter.StartAfter != nil {
		q = q.Where("start_date >= ?", filter.StartAfter)
	}
	if filter.StartUntil != nil {
		q = q.Where("start_date <= ?", filter.StartUntil)
	}

	var total int64
	if err := q.Model(&Campaign{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var campaigns []Campaign
	err := q.Preload("KPIs").
		Order(page.Order(sortColumns, "created_at")).
		Limit(page.Limit).Offset(page.Offset).
		Find(&campaigns).Error
	return campaigns, total, err
}

// ListScoped returns every visible campaign with KPIs preloaded, for the
// analytics aggregator.
func (r *Repository) ListScoped(ctx context.Context, scope access.Scope) ([]Campaign, error) {
	var campaigns []Campaign
	err := r.scoped(ctx, scope).Preload("KPIs").Find(&campaigns).Error
	return campaigns, err
}

func (r *Repository) Update(ctx context.Context, c *Campaign) error {
	return r.db.WithContext(ctx).Omit("KPIs").Save(c).Error
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Campaign{}, "id = ?", id).Error
}

func (r *Repository) CreateKPI(ctx context.Context, k *KPI) error {
	return r.db.WithContext(ctx).Create(k).Error
}

// GetKPI looks a KPI up by id only; the service verifies campaign
// membership so a cross-campaign id reports NotFound, not foreign data.
func (r *Repository) GetKPI(ctx context.Context, kpiID string) (*KPI, error) {
	var k KPI
	err := r.db.WithContext(ctx).First(&k, "id = ?", kpiID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *Repository) UpdateKPI(ctx context.Context, k *KPI) error {
	return r.db.WithContext(ctx).Save(k).Error
}

func (r *Repository) DeleteKPI(ctx context.Context, kpiID string) error {
	return r.db.WithContext(ctx).Delete(&KPI{}, "id = ?", kpiID).Error
}

func (r *Repository) scoped(ctx context.Context, scope access.Scope) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&Campaign{})
	if !scope.All {
		q = q.Where("created_by = ?", scope.UserID)
	}
	return q
}
