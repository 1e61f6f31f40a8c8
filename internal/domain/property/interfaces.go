package property

import (
	"context"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/pagination"
)

// Store is the persistence surface the service needs; tests mock it.
type Store interface {
	Create(ctx context.Context, p *Property) error
	GetByID(ctx context.Context, id string) (*Property, error)
	List(ctx context.Context, scope access.Scope, filter ListFilter, page pagination.Params) ([]Property, int64, error)
	Update(ctx context.Context, p *Property) error
	Delete(ctx context.Context, id string) error
	AddImage(ctx context.Context, img *Image) error
	GetImage(ctx context.Context, propertyID, imageID string) (*Image, error)
	UpdateImage(ctx context.Context, img *Image) error
	DeleteImage(ctx context.Context, propertyID, imageID string) error
}
