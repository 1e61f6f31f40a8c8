package property

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
	store Store
	log   *zap.Logger
}

func NewService(store Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

func (s *Service) Create(ctx context.Context, caller access.Caller, req CreateRequest) (*Property, error) {
	p := &Property{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Type:        Type(strings.ToUpper(req.Type)),
		Status:      StatusAvailable,
		Price:       decimal.NewFromFloat(*req.Price),
		Area:        req.Area,
		Rooms:       req.Rooms,
		Features:    req.Features,
		AgentID:     caller.ID,
		ListingDate: time.Now(),
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("property created", zap.String("property_id", p.ID), zap.String("user_id", caller.ID))
	return p, nil
}

func (s *Service) Get(ctx context.Context, caller access.Caller, id string) (*Property, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("PROPERTY_NOT_FOUND", "Property not found")
	}
	if !caller.Owns(p.AgentID) {
		return nil, apperr.Forbidden("ACCESS_DENIED", "Access denied")
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, caller access.Caller, filter ListFilter, page pagination.Params) ([]Property, int64, error) {
	return s.store.List(ctx, access.ScopeFor(caller), filter, page)
}

func (s *Service) Update(ctx context.Context, caller access.Caller, id string, req UpdateRequest) (*Property, error) {
	p, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.Type != nil {
		p.Type = Type(strings.ToUpper(*req.Type))
	}
	if req.Status != nil {
		p.Status = Status(strings.ToUpper(*req.Status))
	}
	if req.Price != nil {
		p.Price = decimal.NewFromFloat(*req.Price)
	}
	if req.Area != nil {
		p.Area = *req.Area
	}
	if req.Rooms != nil {
		p.Rooms = *req.Rooms
	}
	if req.Features != nil {
		p.Features = req.Features
	}

	if err := s.store.Update(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("property updated", zap.String("property_id", p.ID), zap.String("user_id", caller.ID))
	return p, nil
}

func (s *Service) Delete(ctx context.Context, caller access.Caller, id string) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("property deleted", zap.String("property_id", id), zap.String("user_id", caller.ID))
	return nil
}

func (s *Service) AddImage(ctx context.Context, caller access.Caller, propertyID string, req AddImageRequest) (*Image, error) {
	if _, err := s.Get(ctx, caller, propertyID); err != nil {
		return nil, err
	}
	img := &Image{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		Filename:   req.Filename,
		URL:        req.URL,
		IsPrimary:  req.IsPrimary,
		SortOrder:  req.SortOrder,
		UploadedBy: caller.ID,
	}
	if err := s.store.AddImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Service) UpdateImage(ctx context.Context, caller access.Caller, propertyID, imageID string, req UpdateImageRequest) (*Image, error) {
	if _, err := s.Get(ctx, caller, propertyID); err != nil {
		return nil, err
	}
	img, err := s.store.GetImage(ctx, propertyID, imageID)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, apperr.NotFound("IMAGE_NOT_FOUND", "Image not found")
	}

	if req.IsPrimary != nil {
		img.IsPrimary = *req.IsPrimary
	}
	if req.SortOrder != nil {
		img.SortOrder = *req.SortOrder
	}
	if err := s.store.UpdateImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Service) DeleteImage(ctx context.Context, caller access.Caller, propertyID, imageID string) error {
	if _, err := s.Get(ctx, caller, propertyID); err != nil {
		return err
	}
	img, err := s.store.GetImage(ctx, propertyID, imageID)
	if err != nil {
		return err
	}
	if img == nil {
		return apperr.NotFound("IMAGE_NOT_FOUND", "Image not found")
	}
	return s.store.DeleteImage(ctx, propertyID, imageID)
}

// Accessible reports whether the caller may reference the property (e.g.
// when attaching a campaign or a lead interest to it).
func (s *Service) Accessible(ctx context.Context, caller access.Caller, id string) error {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFound("PROPERTY_NOT_FOUND", "Property not found")
	}
	if !caller.Owns(p.AgentID) {
		return apperr.Forbidden("ACCESS_DENIED", "Access denied to this property")
	}
	return nil
}
