package auth

import (
	"context"

	"casahub/internal/pkg/access"
)

// UserRepository is the persistence surface the service needs. Defined here
// so tests can substitute mocks.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	ListByRoles(ctx context.Context, roles []access.Role) ([]User, error)
}

type tokenIssuer interface {
	GenerateToken(userID string, role string) (string, error)
}
