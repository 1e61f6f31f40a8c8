package lead

import (
	"context"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/pagination"
)

// Store is the persistence surface the service needs; tests mock it.
type Store interface {
	Create(ctx context.Context, l *Lead) error
	GetByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context, scope access.Scope, filter ListFilter, page pagination.Params) ([]Lead, int64, error)
	Update(ctx context.Context, l *Lead) error
	Delete(ctx context.Context, id string) error
	AddInterest(ctx context.Context, pi *PropertyInterest) error
	AddInterests(ctx context.Context, pis []PropertyInterest) error
	GetInterest(ctx context.Context, leadID, propertyID string) (*PropertyInterest, error)
	DeleteInterest(ctx context.Context, leadID, propertyID string) error
}

// UserDirectory answers whether an agent id refers to an existing user.
type UserDirectory interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

// PropertyChecker validates property references on interests.
type PropertyChecker interface {
	Accessible(ctx context.Context, caller access.Caller, propertyID string) error
}
