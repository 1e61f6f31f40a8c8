package campaign

import (
	"context"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/pagination"
)

// Store is the persistence surface the service needs; tests mock it.
type Store interface {
	Create(ctx context.Context, c *Campaign) error
	GetByID(ctx context.Context, id string) (*Campaign, error)
	List(ctx context.Context, scope access.Scope, filter ListFilter, page pagination.Params) ([]Campaign, int64, error)
	Update(ctx context.Context, c *Campaign) error
	Delete(ctx context.Context, id string) error
	CreateKPI(ctx context.Context, k *KPI) error
	GetKPI(ctx context.Context, kpiID string) (*KPI, error)
	UpdateKPI(ctx context.Context, k *KPI) error
	DeleteKPI(ctx context.Context, kpiID string) error
}

// PropertyChecker validates property references on campaigns.
type PropertyChecker interface {
	Accessible(ctx context.Context, caller access.Caller, propertyID string) error
}
