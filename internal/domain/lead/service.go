package lead

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/apperr"
	"casahub/internal/pkg/pagination"
	"casahub/internal/pkg/scoring"
)

type Service struct {
	store      Store
	users      UserDirectory
	properties PropertyChecker
	defaults   scoring.Defaults
	log        *zap.Logger
}

func NewService(store Store, users UserDirectory, properties PropertyChecker, defaults scoring.Defaults, log *zap.Logger) *Service {
	return &Service{store: store, users: users, properties: properties, defaults: defaults, log: log}
}

func (s *Service) Create(ctx context.Context, caller access.Caller, req CreateRequest) (*Lead, error) {
	// Only admins may assign leads to other agents.
	assignedAgent := caller.ID
	if req.AssignedAgent != nil && caller.IsAdmin() {
		ok, err := s.users.Exists(ctx, *req.AssignedAgent)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.NotFound("AGENT_NOT_FOUND", "Assigned agent not found")
		}
		assignedAgent = *req.AssignedAgent
	}

	budgetMin := toDecimal(req.BudgetMin)
	budgetMax := toDecimal(req.BudgetMax)

	l := &Lead{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Status:        StatusNew,
		Source:        Source(strings.ToUpper(req.Source)),
		BudgetMin:     budgetMin,
		BudgetMax:     budgetMax,
		Notes:         req.Notes,
		Score:         scoring.Score(scoring.Factors(budgetMin, budgetMax, req.Source, s.defaults)),
		AssignedAgent: assignedAgent,
		LastContact:   time.Now(),
	}
	if err := s.store.Create(ctx, l); err != nil {
		return nil, err
	}

	if len(req.PropertyInterests) > 0 {
		interests := make([]PropertyInterest, 0, len(req.PropertyInterests))
		for _, propertyID := range req.PropertyInterests {
			interests = append(interests, PropertyInterest{
				LeadID:     l.ID,
				PropertyID: propertyID,
				AddedBy:    caller.ID,
			})
		}
		if err := s.store.AddInterests(ctx, interests); err != nil {
			return nil, err
		}
		l.PropertyInterests = interests
	}

	s.log.Info("lead created", zap.String("lead_id", l.ID), zap.String("user_id", caller.ID))
	return l, nil
}

func (s *Service) Get(ctx context.Context, caller access.Caller, id string) (*Lead, error) {
	return s.owned(ctx, caller, id)
}

func (s *Service) List(ctx context.Context, caller access.Caller, filter ListFilter, page pagination.Params) ([]Lead, int64, error) {
	return s.store.List(ctx, access.ScopeFor(caller), filter, page)
}

func (s *Service) Update(ctx context.Context, caller access.Caller, id string, req UpdateRequest) (*Lead, error) {
	l, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if req.AssignedAgent != nil && caller.IsAdmin() {
		ok, err := s.users.Exists(ctx, *req.AssignedAgent)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.NotFound("AGENT_NOT_FOUND", "Assigned agent not found")
		}
		l.AssignedAgent = *req.AssignedAgent
	}

	if req.Name != nil {
		l.Name = *req.Name
	}
	if req.Email != nil {
		l.Email = *req.Email
	}
	if req.Phone != nil {
		l.Phone = req.Phone
	}
	if req.Status != nil {
		l.Status = Status(strings.ToUpper(*req.Status))
	}
	if req.Source != nil {
		l.Source = Source(strings.ToUpper(*req.Source))
	}
	if req.BudgetMin != nil {
		l.BudgetMin = toDecimal(req.BudgetMin)
	}
	if req.BudgetMax != nil {
		l.BudgetMax = toDecimal(req.BudgetMax)
	}
	if req.Notes != nil {
		l.Notes = req.Notes
	}

	// Score only moves when its inputs move; unrelated edits preserve it.
	if req.BudgetMin != nil || req.BudgetMax != nil || req.Source != nil {
		l.Score = scoring.Score(scoring.Factors(l.BudgetMin, l.BudgetMax, string(l.Source), s.defaults))
	}
	l.LastContact = time.Now()

	if err := s.store.Update(ctx, l); err != nil {
		return nil, err
	}
	s.log.Info("lead updated", zap.String("lead_id", l.ID), zap.String("user_id", caller.ID))
	return l, nil
}

func (s *Service) Delete(ctx context.Context, caller access.Caller, id string) error {
	if _, err := s.owned(ctx, caller, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("lead deleted", zap.String("lead_id", id), zap.String("user_id", caller.ID))
	return nil
}

// SetScore overrides a lead's score from explicit factors, or clamps a
// directly supplied value into [0,100].
func (s *Service) SetScore(ctx context.Context, caller access.Caller, id string, req SetScoreRequest) (*Lead, error) {
	l, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	switch {
	case len(req.Factors) > 0:
		l.Score = scoring.Score(req.Factors)
	case req.Score != nil:
		l.Score = scoring.Clamp(*req.Score)
	default:
		return nil, apperr.Validation(map[string]string{"score": "score or factors is required"})
	}

	if err := s.store.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) AddInterest(ctx context.Context, caller access.Caller, leadID string, req AddInterestRequest) (*PropertyInterest, error) {
	if _, err := s.owned(ctx, caller, leadID); err != nil {
		return nil, err
	}
	if err := s.properties.Accessible(ctx, caller, req.PropertyID); err != nil {
		return nil, err
	}

	existing, err := s.store.GetInterest(ctx, leadID, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("INTEREST_EXISTS", "Property interest already exists")
	}

	pi := &PropertyInterest{
		LeadID:     leadID,
		PropertyID: req.PropertyID,
		AddedBy:    caller.ID,
	}
	if err := s.store.AddInterest(ctx, pi); err != nil {
		return nil, err
	}
	return pi, nil
}

func (s *Service) RemoveInterest(ctx context.Context, caller access.Caller, leadID, propertyID string) error {
	if _, err := s.owned(ctx, caller, leadID); err != nil {
		return err
	}

	existing, err := s.store.GetInterest(ctx, leadID, propertyID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("INTEREST_NOT_FOUND", "Property interest not found")
	}
	return s.store.DeleteInterest(ctx, leadID, propertyID)
}

func (s *Service) owned(ctx context.Context, caller access.Caller, id string) (*Lead, error) {
	l, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apperr.NotFound("LEAD_NOT_FOUND", "Lead not found")
	}
	if !caller.Owns(l.AssignedAgent) {
		return nil, apperr.Forbidden("ACCESS_DENIED", "Access denied")
	}
	return l, nil
}

func toDecimal(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}
