package campaign

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
)

type Service struct {
	store      Store
	properties PropertyChecker
	log        *zap.Logger
}

func NewService(store Store, properties PropertyChecker, log *zap.Logger) *Service {
	return &Service{store: store, properties: properties, log: log}
}

func (s *Service) Create(ctx context.Context, caller access.Caller, req CreateRequest) (*Campaign, error) {
	if req.PropertyID != nil {
		if err := s.properties.Accessible(ctx, caller, *req.PropertyID); err != nil {
			return nil, err
		}
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, apperr.Validation(map[string]string{"startDate": "must be a valid date"})
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, apperr.Validation(map[string]string{"endDate": "must be a valid date"})
	}

	c := &Campaign{
		ID:             uuid.NewString(),
		Name:           req.Name,
		PropertyID:     req.PropertyID,
		Type:           Type(strings.ToUpper(req.Type)),
		Status:         StatusPlanning,
		Budget:         decimal.NewFromFloat(*req.Budget),
		Spent:          decimal.Zero,
		StartDate:      startDate,
		EndDate:        endDate,
		TargetAudience: req.TargetAudience,
		Platforms:      req.Platforms,
		CreatedBy:      caller.ID,
	}
	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("campaign created", zap.String("campaign_id", c.ID), zap.String("user_id", caller.ID))
	return c, nil
}

func (s *Service) Get(ctx context.Context, caller access.Caller, id string) (*WithPerformance, error) {
	c, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return &WithPerformance{Campaign: *c, Performance: ComputePerformance(c, true)}, nil
}

func (s *Service) List(ctx context.Context, caller access.Caller, filter ListFilter, page pagination.Params) ([]WithPerformance, int64, error) {
	campaigns, total, err := s.store.List(ctx, access.ScopeFor(caller), filter, page)
	if err != nil {
		return nil, 0, err
	}

	result := make([]WithPerformance, 0, len(campaigns))
	for i := range campaigns {
		result = append(result, WithPerformance{
			Campaign:    campaigns[i],
			Performance: ComputePerformance(&campaigns[i], false),
		})
	}
	return result, total, nil
}

func (s *Service) Update(ctx context.Context, caller access.Caller, id string, req UpdateRequest) (*Campaign, error) {
	c, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if req.PropertyID != nil && (c.PropertyID == nil || *req.PropertyID != *c.PropertyID) {
		if err := s.properties.Accessible(ctx, caller, *req.PropertyID); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.PropertyID != nil {
		c.PropertyID = req.PropertyID
	}
	if req.Type != nil {
		c.Type = Type(strings.ToUpper(*req.Type))
	}
	if req.Status != nil {
		c.Status = Status(strings.ToUpper(*req.Status))
	}
	if req.Budget != nil {
		c.Budget = decimal.NewFromFloat(*req.Budget)
	}
	if req.Spent != nil {
		c.Spent = decimal.NewFromFloat(*req.Spent)
	}
	if req.StartDate != nil {
		d, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, apperr.Validation(map[string]string{"startDate": "must be a valid date"})
		}
		c.StartDate = d
	}
	if req.EndDate != nil {
		d, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, apperr.Validation(map[string]string{"endDate": "must be a valid date"})
		}
		c.EndDate = d
	}
	if req.TargetAudience != nil {
		c.TargetAudience = *req.TargetAudience
	}
	if req.Platforms != nil {
		c.Platforms = req.Platforms
	}

	if err := s.store.Update(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("campaign updated", zap.String("campaign_id", c.ID), zap.String("user_id", caller.ID))
	return c, nil
}

func (s *Service) Delete(ctx context.Context, caller access.Caller, id string) error {
	if _, err := s.owned(ctx, caller, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("campaign deleted", zap.String("campaign_id", id), zap.String("user_id", caller.ID))
	return nil
}

func (s *Service) AddKPI(ctx context.Context, caller access.Caller, campaignID string, req AddKPIRequest) (*KPI, error) {
	if _, err := s.owned(ctx, caller, campaignID); err != nil {
		return nil, err
	}

	k := &KPI{
		ID:         uuid.NewString(),
		CampaignID: campaignID,
		Metric:     req.Metric,
		Target:     decimal.NewFromFloat(*req.Target),
		Current:    decimal.Zero,
		Unit:       req.Unit,
		UpdatedBy:  caller.ID,
	}
	if err := s.store.CreateKPI(ctx, k); err != nil {
		return nil, err
	}
	return k, nil
}

func (s *Service) UpdateKPI(ctx context.Context, caller access.Caller, campaignID, kpiID string, req UpdateKPIRequest) (*KPI, error) {
	if _, err := s.owned(ctx, caller, campaignID); err != nil {
		return nil, err
	}

	k, err := s.memberKPI(ctx, campaignID, kpiID)
	if err != nil {
		return nil, err
	}

	if req.Metric != nil {
		k.Metric = *req.Metric
	}
	if req.Target != nil {
		k.Target = decimal.NewFromFloat(*req.Target)
	}
	if req.Current != nil {
		k.Current = decimal.NewFromFloat(*req.Current)
	}
	if req.Unit != nil {
		k.Unit = *req.Unit
	}
	k.UpdatedBy = caller.ID

	if err := s.store.UpdateKPI(ctx, k); err != nil {
		return nil, err
	}
	return k, nil
}

func (s *Service) DeleteKPI(ctx context.Context, caller access.Caller, campaignID, kpiID string) error {
	if _, err := s.owned(ctx, caller, campaignID); err != nil {
		return err
	}
	if _, err := s.memberKPI(ctx, campaignID, kpiID); err != nil {
		return err
	}
	return s.store.DeleteKPI(ctx, kpiID)
}

// Accessible reports whether the caller may reference the campaign from
// another domain, with the same visibility rules as direct reads.
func (s *Service) Accessible(ctx context.Context, caller access.Caller, id string) error {
	_, err := s.owned(ctx, caller, id)
	return err
}

func (s *Service) owned(ctx context.Context, caller access.Caller, id string) (*Campaign, error) {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("CAMPAIGN_NOT_FOUND", "Campaign not found")
	}
	if !caller.Owns(c.CreatedBy) {
		return nil, apperr.Forbidden("ACCESS_DENIED", "Access denied")
	}
	return c, nil
}

// memberKPI loads a KPI and verifies it belongs to the campaign. A KPI id
// that exists under another campaign is indistinguishable from a missing
// one to the caller.
func (s *Service) memberKPI(ctx context.Context, campaignID, kpiID string) (*KPI, error) {
	k, err := s.store.GetKPI(ctx, kpiID)
	if err != nil {
		return nil, err
	}
	if k == nil || k.CampaignID != campaignID {
		return nil, apperr.NotFound("KPI_NOT_FOUND", "KPI not found")
	}
	return k, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
