package todo

import (
	"context"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/pagination"
)

// Store is the persistence surface the service needs; tests mock it.
type Store interface {
	Create(ctx context.Context, t *Todo) error
	GetByID(ctx context.Context, id string) (*Todo, error)
	List(ctx context.Context, scope access.Scope, filter ListFilter, page pagination.Params) ([]Todo, int64, error)
	Update(ctx context.Context, t *Todo) error
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, c *Comment) error
	GetComment(ctx context.Context, id string) (*Comment, error)
	ListComments(ctx context.Context, todoID string) ([]Comment, error)
}

// UserDirectory answers whether an assignee id refers to an existing user.
type UserDirectory interface {
	Exists(ctx context.Context, userID string) (bool, error)
}
