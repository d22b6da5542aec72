package service

import (
	"context"
	"fmt"

	"galaxy_api/internal/common"
	"galaxy_api/internal/domain/model"
	"galaxy_api/internal/domain/repository"

	"github.com/gosimple/slug"
)

type EmpireService struct {
	empireRepo repository.EmpireRepository
}

func NewEmpireService(empireRepo repository.EmpireRepository) *EmpireService {
	return &EmpireService{empireRepo: empireRepo}
}

type UpsertEmpireRequest struct {
	Name        string `json:"name"`
	Slogan      string `json:"slogan"`
	LocationID  int64  `json:"location_id"`
	Description string `json:"description"`
}

func (r UpsertEmpireRequest) validate() error {
	if r.Name == "" || r.LocationID == 0 {
		return fmt.Errorf("name and location_id are required: %w", common.ErrValidation)
	}
	return nil
}

func (s *EmpireService) Create(ctx context.Context, req UpsertEmpireRequest) (*model.Empire, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	empire := &model.Empire{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Slogan:      req.Slogan,
		LocationID:  req.LocationID,
		Description: req.Description,
	}
	if err := s.empireRepo.Create(ctx, empire); err != nil {
		return nil, err
	}
	return empire, nil
}

func (s *EmpireService) Get(ctx context.Context, id int64) (*model.Empire, error) {
	return s.empireRepo.FindByID(ctx, id)
}

func (s *EmpireService) Update(ctx context.Context, id int64, req UpsertEmpireRequest) (*model.Empire, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	empire, err := s.empireRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	empire.Name = req.Name
	empire.Slug = slug.Make(req.Name)
	empire.Slogan = req.Slogan
	empire.LocationID = req.LocationID
	empire.Description = req.Description
	if err := s.empireRepo.Update(ctx, empire); err != nil {
		return nil, err
	}
	return empire, nil
}

func (s *EmpireService) Delete(ctx context.Context, id int64) error {
	return s.empireRepo.Delete(ctx, id)
}
