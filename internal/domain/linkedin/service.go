package linkedin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/apperr"
	"casahub/internal/pkg/pagination"
)

type Service struct {
	store     Store
	notifier  Notifier
	campaigns CampaignChecker
	log       *zap.Logger
}

func NewService(store Store, notifier Notifier, campaigns CampaignChecker, log *zap.Logger) *Service {
	return &Service{store: store, notifier: notifier, campaigns: campaigns, log: log}
}

func (s *Service) Create(ctx context.Context, caller access.Caller, req CreateRequest) (*Post, error) {
	if req.CampaignID != nil {
		if err := s.campaigns.Accessible(ctx, caller, *req.CampaignID); err != nil {
			return nil, err
		}
	}

	scheduledDate, err := parseSchedule(req.ScheduledDate)
	if err != nil {
		return nil, err
	}

	p := &Post{
		ID:            uuid.NewString(),
		Content:       req.Content,
		Hashtags:      req.Hashtags,
		Status:        StatusDraft,
		ScheduledDate: scheduledDate,
		CampaignID:    req.CampaignID,
		CreatedBy:     caller.ID,
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("linkedin post created", zap.String("post_id", p.ID), zap.String("user_id", caller.ID))
	return p, nil
}

func (s *Service) Get(ctx context.Context, caller access.Caller, id string) (*Post, error) {
	return s.owned(ctx, caller, id)
}

func (s *Service) List(ctx context.Context, caller access.Caller, filter ListFilter, page pagination.Params) ([]Post, int64, error) {
	return s.store.List(ctx, access.ScopeFor(caller), filter, page)
}

func (s *Service) Update(ctx context.Context, caller access.Caller, id string, req UpdateRequest) (*Post, error) {
	p, err := s.mutable(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if req.CampaignID != nil && (p.CampaignID == nil || *req.CampaignID != *p.CampaignID) {
		if err := s.campaigns.Accessible(ctx, caller, *req.CampaignID); err != nil {
			return nil, err
		}
	}

	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Hashtags != nil {
		p.Hashtags = req.Hashtags
	}
	if req.ScheduledDate != nil {
		scheduledDate, err := parseSchedule(req.ScheduledDate)
		if err != nil {
			return nil, err
		}
		p.ScheduledDate = scheduledDate
	}
	if req.CampaignID != nil {
		p.CampaignID = req.CampaignID
	}

	if err := s.store.Update(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("linkedin post updated", zap.String("post_id", p.ID), zap.String("user_id", caller.ID))
	return p, nil
}

func (s *Service) Delete(ctx context.Context, caller access.Caller, id string) error {
	if _, err := s.mutable(ctx, caller, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("linkedin post deleted", zap.String("post_id", id), zap.String("user_id", caller.ID))
	return nil
}

// Submit moves a draft (or a rejected post after rework) into the review
// queue and fans a notification out to every approver. Only the creator
// may submit, admins included.
func (s *Service) Submit(ctx context.Context, caller access.Caller, id string) (*Post, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.CreatedBy != caller.ID {
		return nil, apperr.Forbidden("NOT_CREATOR", "Only the creator can submit this post for approval")
	}

	next, ok := Next(p.Status, ActionSubmit)
	if !ok {
		return nil, apperr.InvalidState("INVALID_STATUS", "Only draft or rejected posts can be submitted for approval")
	}

	p.Status = next
	if err := s.store.Update(ctx, p); err != nil {
		return nil, err
	}

	if err := s.notifier.PostSubmitted(ctx, p); err != nil {
		// The transition already happened; losing a notification is not
		// worth failing the request over.
		s.log.Warn("approval fan-out failed", zap.String("post_id", p.ID), zap.Error(err))
	}

	s.log.Info("linkedin post submitted", zap.String("post_id", p.ID), zap.String("user_id", caller.ID))
	return p, nil
}

// Approve resolves a pending post either way and notifies the creator.
// Feedback is embedded in the rejection message.
func (s *Service) Approve(ctx context.Context, caller access.Caller, id string, approved bool, feedback string) (*Post, error) {
	if !caller.CanApprove() {
		return nil, apperr.Forbidden("INSUFFICIENT_ROLE", "Insufficient permissions to approve posts")
	}

	p, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	action := ActionApprove
	if !approved {
		action = ActionReject
	}
	next, ok := Next(p.Status, action)
	if !ok {
		return nil, apperr.InvalidState("INVALID_STATUS", "Only pending posts can be approved or rejected")
	}

	p.Status = next
	p.ApprovedBy = &caller.ID
	if err := s.store.Update(ctx, p); err != nil {
		return nil, err
	}

	if err := s.notifier.PostReviewed(ctx, p, approved, feedback); err != nil {
		s.log.Warn("review notification failed", zap.String("post_id", p.ID), zap.Error(err))
	}

	s.log.Info("linkedin post reviewed",
		zap.String("post_id", p.ID),
		zap.String("user_id", caller.ID),
		zap.Bool("approved", approved))
	return p, nil
}

// Schedule locks an approved post to a publish date. Creator or admin.
func (s *Service) Schedule(ctx context.Context, caller access.Caller, id string, req ScheduleRequest) (*Post, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(p.CreatedBy) {
		return nil, apperr.Forbidden("ACCESS_DENIED", "Access denied")
	}

	next, ok := Next(p.Status, ActionSchedule)
	if !ok {
		return nil, apperr.InvalidState("INVALID_STATUS", "Only approved posts can be scheduled")
	}

	scheduledDate, err := parseSchedule(&req.ScheduledDate)
	if err != nil {
		return nil, err
	}

	p.Status = next
	p.ScheduledDate = scheduledDate
	if err := s.store.Update(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("linkedin post scheduled", zap.String("post_id", p.ID), zap.String("user_id", caller.ID))
	return p, nil
}

func (s *Service) AddMedia(ctx context.Context, caller access.Caller, postID string, req AddMediaRequest) (*Media, error) {
	if _, err := s.mutable(ctx, caller, postID); err != nil {
		return nil, err
	}

	m := &Media{
		ID:         uuid.NewString(),
		PostID:     postID,
		Filename:   req.Filename,
		URL:        req.URL,
		MediaType:  req.MediaType,
		FileSize:   req.FileSize,
		UploadedBy: caller.ID,
	}
	if err := s.store.AddMedia(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// UpsertAnalytics writes externally collected engagement numbers. Admin
// only; typically driven by an automated collector.
func (s *Service) UpsertAnalytics(ctx context.Context, caller access.Caller, postID string, req AnalyticsRequest) (*Analytics, error) {
	if !caller.IsAdmin() {
		return nil, apperr.Forbidden("INSUFFICIENT_ROLE", "Insufficient permissions to update analytics")
	}

	p, err := s.get(ctx, postID)
	if err != nil {
		return nil, err
	}

	a, err := s.store.GetAnalytics(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		a = &Analytics{PostID: p.ID}
	}

	if req.Views != nil {
		a.Views = *req.Views
	}
	if req.Likes != nil {
		a.Likes = *req.Likes
	}
	if req.Comments != nil {
		a.Comments = *req.Comments
	}
	if req.Shares != nil {
		a.Shares = *req.Shares
	}
	if req.ClickThroughRate != nil {
		a.ClickThroughRate = *req.ClickThroughRate
	}
	if req.Engagement != nil {
		a.Engagement = *req.Engagement
	}

	if err := s.store.SaveAnalytics(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) get(ctx context.Context, id string) (*Post, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("POST_NOT_FOUND", "Post not found")
	}
	return p, nil
}

func (s *Service) owned(ctx context.Context, caller access.Caller, id string) (*Post, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(p.CreatedBy) {
		return nil, apperr.Forbidden("ACCESS_DENIED", "Access denied")
	}
	return p, nil
}

// mutable combines the ownership check with the published lock. The lock
// applies to admins too.
func (s *Service) mutable(ctx context.Context, caller access.Caller, id string) (*Post, error) {
	p, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if !Mutable(p.Status) {
		return nil, apperr.InvalidState("POST_PUBLISHED", "Published posts cannot be modified")
	}
	return p, nil
}

func parseSchedule(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		if t, err = time.Parse("2006-01-02", *v); err != nil {
			return nil, apperr.Validation(map[string]string{"scheduledDate": "must be a valid date"})
		}
	}
	return &t, nil
}
