package property

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
	"price":       "price",
	"area":        "area",
	"title":       "title",
	"listingDate": "listing_date",
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, p *Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Property, error) {
	var p Property
	err := r.db.WithContext(ctx).Preload("Images").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context, scope access.Scope, filter ListFilter, page pagination.Params) ([]Property, int64, error) {
	q := r.scoped(ctx, scope)

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", filter.MaxPrice)
	}
	if filter.MinArea != nil {
		q = q.Where("area >= ?", filter.MinArea)
	}
	if filter.MaxArea != nil {
		q = q.Where("area <= ?", filter.MaxArea)
	}
	if filter.AgentID != "" {
		q = q.Where("agent_id = ?", filter.AgentID)
	}

	var total int64
	if err := q.Model(&Property{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var properties []Property
	err := q.Preload("Images").
		Order(page.Order(sortColumns, "created_at")).
		Limit(page.Limit).Offset(page.Offset).
		Find(&properties).Error
	return properties, total, err
}

// ListScoped returns every visible property; the analytics aggregator uses
// it with the same scope the list endpoint applies.
func (r *Repository) ListScoped(ctx context.Context, scope access.Scope) ([]Property, error) {
	var properties []Property
	err := r.scoped(ctx, scope).Find(&properties).Error
	return properties, err
}

func (r *Repository) Update(ctx context.Context, p *Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Property{}, "id = ?", id).Error
}

func (r *Repository) AddImage(ctx context.Context, img *Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *Repository) GetImage(ctx context.Context, propertyID, imageID string) (*Image, error) {
	var img Image
	err := r.db.WithContext(ctx).First(&img, "id = ? AND property_id = ?", imageID, propertyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *Repository) UpdateImage(ctx context.Context, img *Image) error {
	return r.db.WithContext(ctx).Save(img).Error
}

func (r *Repository) DeleteImage(ctx context.Context, propertyID, imageID string) error {
	return r.db.WithContext(ctx).Delete(&Image{}, "id = ? AND property_id = ?", imageID, propertyID).Error
}

func (r *Repository) scoped(ctx context.Context, scope access.Scope) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&Property{})
	if !scope.All {
		q = q.Where("agent_id = ?", scope.UserID)
	}
	return q
}
