package lead

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/pagination"
)

var sortColumns = map[string]string{
	"created_at":  "created_at",
	"createdAt":   "created_at",
	"name":        "name",
	"score":       "score",
	"status":      "status",
	"lastContact": "last_contact",
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, l *Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Lead, error) {
	var l Lead
	err := r.db.WithContext(ctx).Preload("PropertyInterests").First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) List(ctx context.Context, scope access.Scope, filter ListFilter, page pagination.Params) ([]Lead, int64, error) {
	q := r.scoped(ctx, scope)

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Source != "" {
		q = q.Where("source = ?", filter.Source)
	}
	if filter.AssignedAgent != "" {
		q = q.Where("assigned_agent = ?", filter.AssignedAgent)
	}
	if filter.MinScore != nil {
		q = q.Where("score >= ?", *filter.MinScore)
	}
	if filter.MaxScore != nil {
		q = q.Where("score <= ?", *filter.MaxScore)
	}

	var total int64
	if err := q.Model(&Lead{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leads []Lead
	err := q.Preload("PropertyInterests").
		Order(page.Order(sortColumns, "created_at")).
		Limit(page.Limit).Offset(page.Offset).
		Find(&leads).Error
	return leads, total, err
}

// ListScoped returns every visible lead for the analytics aggregator,
// filtered exactly as List filters for the same caller.
func (r *Repository) ListScoped(ctx context.Context, scope access.Scope) ([]Lead, error) {
	var leads []Lead
	err := r.scoped(ctx, scope).Find(&leads).Error
	return leads, err
}

func (r *Repository) Update(ctx context.Context, l *Lead) error {
	return r.db.WithContext(ctx).Omit("PropertyInterests").Save(l).Error
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Lead{}, "id = ?", id).Error
}

func (r *Repository) AddInterest(ctx context.Context, pi *PropertyInterest) error {
	return r.db.WithContext(ctx).Create(pi).Error
}

func (r *Repository) AddInterests(ctx context.Context, pis []PropertyInterest) error {
	if len(pis) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&pis).Error
}

func (r *Repository) GetInterest(ctx context.Context, leadID, propertyID string) (*PropertyInterest, error) {
	var pi PropertyInterest
	err := r.db.WithContext(ctx).
		First(&pi, "lead_id = ? AND property_id = ?", leadID, propertyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pi, nil
}

func (r *Repository) DeleteInterest(ctx context.Context, leadID, propertyID string) error {
	return r.db.WithContext(ctx).
		Delete(&PropertyInterest{}, "lead_id = ? AND property_id = ?", leadID, propertyID).Error
}

func (r *Repository) scoped(ctx context.Context, scope access.Scope) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&Lead{})
	if !scope.All {
		q = q.Where("assigned_agent = ?", scope.UserID)
	}
	return q
}
