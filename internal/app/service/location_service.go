package service

import (
	"context"
	"fmt"

	"galaxy_api/internal/common"
	"galaxy_api/internal/domain/model"
	"galaxy_api/internal/domain/repository"
)

type LocationService struct {
	locationRepo repository.LocationRepository
}

func NewLocationService(locationRepo repository.LocationRepository) *LocationService {
	return &LocationService{locationRepo: locationRepo}
}

type UpsertLocationRequest struct {
	StarSystem string `json:"star_system"`
	Area       string `json:"area"`
}

func (r UpsertLocationRequest) validate() error {
	if r.StarSystem == "" || r.Area == "" {
		return fmt.Errorf("star_system and area are required: %w", common.ErrValidation)
	}
	return nil
}

func (s *LocationService) Create(ctx context.Context, req UpsertLocationRequest) (*model.Location, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	location := &model.Location{StarSystem: req.StarSystem, Area: req.Area}
	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *LocationService) Get(ctx context.Context, id int64) (*model.Location, error) {
	return s.locationRepo.FindByID(ctx, id)
}

func (s *LocationService) Update(ctx context.Context, id int64, req UpsertLocationRequest) (*model.Location, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	location.StarSystem = req.StarSystem
	location.Area = req.Area
	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *LocationService) Delete(ctx context.Context, id int64) error {
	return s.locationRepo.Delete(ctx, id)
}
