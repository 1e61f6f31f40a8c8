package todo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/pagination"
)

var sortColumns = map[string]string{
	"created_at": "created_at",
	"createdAt":  "created_at",
	"dueDate":    "due_date",
	"priority":   "priority",
	"status":     "status",
	"title":      "title",
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, t *Todo) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Todo, error) {
	var t Todo
	err := r.db.WithContext(ctx).
		Preload("Comments", "parent_id IS NULL").
		Preload("Comments.Replies").
		First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) List(ctx context.Context, scope access.Scope, filter ListFilter, page pagination.Params) ([]Todo, int64, error) {
	q := r.scoped(ctx, scope)

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.AssignedTo != "" {
		q = q.Where("assigned_to = ?", filter.AssignedTo)
	}
	if filter.DueBefore != nil {
		if due, err := time.Parse("2006-01-02", *filter.DueBefore); err == nil {
			q = q.Where("due_date <= ?", due)
		}
	}

	var total int64
	if err := q.Model(&Todo{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var todos []Todo
	err := q.Order(page.Order(sortColumns, "created_at")).
		Limit(page.Limit).Offset(page.Offset).
		Find(&todos).Error
	return todos, total, err
}

// ListScoped returns every visible todo for the analytics aggregator.
func (r *Repository) ListScoped(ctx context.Context, scope access.Scope) ([]Todo, error) {
	var todos []Todo
	err := r.scoped(ctx, scope).Find(&todos).Error
	return todos, err
}

func (r *Repository) Update(ctx context.Context, t *Todo) error {
	return r.db.WithContext(ctx).Omit("Comments").Save(t).Error
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Todo{}, "id = ?", id).Error
}

func (r *Repository) AddComment(ctx context.Context, c *Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) GetComment(ctx context.Context, id string) (*Comment, error) {
	var c Comment
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListComments returns the top-level comments with one level of replies.
func (r *Repository) ListComments(ctx context.Context, todoID string) ([]Comment, error) {
	var comments []Comment
	err := r.db.WithContext(ctx).
		Preload("Replies").
		Where("todo_id = ? AND parent_id IS NULL", todoID).
		Order("created_at asc").
		Find(&comments).Error
	return comments, err
}

// A todo is visible to both its creator and its assignee.
func (r *Repository) scoped(ctx context.Context, scope access.Scope) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&Todo{})
	if !scope.All {
		q = q.Where("created_by = ? OR assigned_to = ?", scope.UserID, scope.UserID)
	}
	return q
}
