package todo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/apperr"
	"casahub/internal/pkg/pagination"
)

type Service struct {
	store Store
	users UserDirectory
	log   *zap.Logger
}

func NewService(store Store, users UserDirectory, log *zap.Logger) *Service {
	return &Service{store: store, users: users, log: log}
}

func (s *Service) Create(ctx context.Context, caller access.Caller, req CreateRequest) (*Todo, error) {
	if req.AssignedTo != nil {
		if err := s.assigneeExists(ctx, *req.AssignedTo); err != nil {
			return nil, err
		}
	}

	dueDate, err := parseDue(req.DueDate)
	if err != nil {
		return nil, err
	}

	priority := PriorityMedium
	if req.Priority != nil {
		priority = Priority(strings.ToUpper(*req.Priority))
	}

	t := &Todo{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Status:      StatusPending,
		Priority:    priority,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   caller.ID,
		DueDate:     dueDate,
		Tags:        req.Tags,
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}
	s.log.Info("todo created", zap.String("todo_id", t.ID), zap.String("user_id", caller.ID))
	return t, nil
}

func (s *Service) Get(ctx context.Context, caller access.Caller, id string) (*Todo, error) {
	return s.visible(ctx, caller, id)
}

func (s *Service) List(ctx context.Context, caller access.Caller, filter ListFilter, page pagination.Params) ([]Todo, int64, error) {
	return s.store.List(ctx, access.ScopeFor(caller), filter, page)
}

func (s *Service) Update(ctx context.Context, caller access.Caller, id string, req UpdateRequest) (*Todo, error) {
	t, err := s.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if req.AssignedTo != nil && (t.AssignedTo == nil || *req.AssignedTo != *t.AssignedTo) {
		if err := s.assigneeExists(ctx, *req.AssignedTo); err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.Status != nil {
		t.Status = Status(strings.ToUpper(*req.Status))
	}
	if req.Priority != nil {
		t.Priority = Priority(strings.ToUpper(*req.Priority))
	}
	if req.AssignedTo != nil {
		t.AssignedTo = req.AssignedTo
	}
	if req.DueDate != nil {
		dueDate, err := parseDue(req.DueDate)
		if err != nil {
			return nil, err
		}
		t.DueDate = dueDate
	}
	if req.Tags != nil {
		t.Tags = req.Tags
	}

	if err := s.store.Update(ctx, t); err != nil {
		return nil, err
	}
	s.log.Info("todo updated", zap.String("todo_id", t.ID), zap.String("user_id", caller.ID))
	return t, nil
}

func (s *Service) Delete(ctx context.Context, caller access.Caller, id string) error {
	t, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	// Only the creator (or an admin) deletes; the assignee does not.
	if !caller.Owns(t.CreatedBy) {
		return apperr.Forbidden("ACCESS_DENIED", "Only the creator or admin can delete this todo")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("todo deleted", zap.String("todo_id", id), zap.String("user_id", caller.ID))
	return nil
}

func (s *Service) AddComment(ctx context.Context, caller access.Caller, todoID string, req AddCommentRequest) (*Comment, error) {
	if _, err := s.visible(ctx, caller, todoID); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.store.GetComment(ctx, *req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.TodoID != todoID {
			return nil, apperr.NotFound("COMMENT_NOT_FOUND", "Parent comment not found")
		}
	}

	c := &Comment{
		ID:        uuid.NewString(),
		TodoID:    todoID,
		Content:   req.Content,
		ParentID:  req.ParentID,
		CreatedBy: caller.ID,
	}
	if err := s.store.AddComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListComments(ctx context.Context, caller access.Caller, todoID string) ([]Comment, error) {
	if _, err := s.visible(ctx, caller, todoID); err != nil {
		return nil, err
	}
	return s.store.ListComments(ctx, todoID)
}

func (s *Service) get(ctx context.Context, id string) (*Todo, error) {
	t, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("TODO_NOT_FOUND", "Todo not found")
	}
	return t, nil
}

func (s *Service) visible(ctx context.Context, caller access.Caller, id string) (*Todo, error) {
	t, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	assignee := ""
	if t.AssignedTo != nil {
		assignee = *t.AssignedTo
	}
	if !caller.OwnsEither(t.CreatedBy, assignee) {
		return nil, apperr.Forbidden("ACCESS_DENIED", "Access denied")
	}
	return t, nil
}

func (s *Service) assigneeExists(ctx context.Context, userID string) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("ASSIGNEE_NOT_FOUND", "Assigned user not found")
	}
	return nil
}

func parseDue(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		if t, err = time.Parse("2006-01-02", *v); err != nil {
			return nil, apperr.Validation(map[string]string{"dueDate": "must be a valid date"})
		}
	}
	return &t, nil
}
