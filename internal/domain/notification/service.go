package notification

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/apperr"
)

// Store is the persistence surface the service needs.
type Store interface {
	Create(ctx context.Context, n *Notification) error
	CreateMany(ctx context.Context, ns []Notification) error
	GetByID(ctx context.Context, id string) (*Notification, error)
	ListByUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]Notification, int64, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type Service struct {
	store Store
	hub   *Hub
	log   *zap.Logger
}

func NewService(store Store, hub *Hub, log *zap.Logger) *Service {
	return &Service{store: store, hub: hub, log: log}
}

// Message is an outbound notification before it gets an id and timestamp.
type Message struct {
	Type      Type
	Title     string
	Body      string
	Priority  Priority
	ActionURL *string
}

// Notify persists a notification for one user and pushes it to their
// websocket connection if they are online.
func (s *Service) Notify(ctx context.Context, userID string, msg Message) error {
	n := s.build(userID, msg)
	if err := s.store.Create(ctx, n); err != nil {
		return err
	}
	s.hub.Push(n)
	return nil
}

// NotifyMany fans one message out to several users in a single insert.
func (s *Service) NotifyMany(ctx context.Context, userIDs []string, msg Message) error {
	if len(userIDs) == 0 {
		return nil
	}
	ns := make([]Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		ns = append(ns, *s.build(userID, msg))
	}
	if err := s.store.CreateMany(ctx, ns); err != nil {
		return err
	}
	for i := range ns {
		s.hub.Push(&ns[i])
	}
	s.log.Debug("notification fan-out", zap.Int("recipients", len(ns)), zap.String("type", string(msg.Type)))
	return nil
}

func (s *Service) List(ctx context.Context, caller access.Caller, unreadOnly bool, limit, offset int) ([]Notification, int64, error) {
	return s.store.ListByUser(ctx, caller.ID, unreadOnly, limit, offset)
}

func (s *Service) UnreadCount(ctx context.Context, caller access.Caller) (int64, error) {
	return s.store.UnreadCount(ctx, caller.ID)
}

// MarkRead flags one of the caller's own notifications as read.
func (s *Service) MarkRead(ctx context.Context, caller access.Caller, id string) error {
	n, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return apperr.NotFound("NOTIFICATION_NOT_FOUND", "Notification not found")
	}
	if n.UserID != caller.ID {
		return apperr.Forbidden("ACCESS_DENIED", "Access denied")
	}
	return s.store.MarkRead(ctx, id)
}

func (s *Service) MarkAllRead(ctx context.Context, caller access.Caller) error {
	return s.store.MarkAllRead(ctx, caller.ID)
}

func (s *Service) build(userID string, msg Message) *Notification {
	priority := msg.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	return &Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      msg.Type,
		Title:     msg.Title,
		Message:   msg.Body,
		Priority:  priority,
		ActionURL: msg.ActionURL,
	}
}
