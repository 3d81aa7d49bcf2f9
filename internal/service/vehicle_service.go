package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nurpe/apper-api/internal/model"
	"github.com/nurpe/apper-api/internal/repository"
)

type VehicleService struct {
	repo *repository.VehicleRepository
}

func NewVehicleService(repo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{repo: repo}
}

func (s *VehicleService) Create(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error) {
	vehicle.Name = strings.TrimSpace(vehicle.Name)
	if vehicle.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := validateVehicleAttributes(vehicle.VehicleAttributes); err != nil {
		return nil, err
	}
	vehicle.ID = 0
	vehicle.ApplyDefaults()

	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, translate(err)
	}
	return vehicle, nil
}

func (s *VehicleService) List(ctx context.Context) ([]model.Vehicle, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(vehicles), nil
}

func (s *VehicleService) Get(ctx context.Context, id uint) (*model.Vehicle, error) {
	vehicle, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return vehicle, nil
}

func (s *VehicleService) ListByFIN(ctx context.Context, fin string) ([]model.Vehicle, error) {
	vehicles, err := s.repo.ListByFIN(ctx, strings.TrimSpace(fin))
	if err != nil {
		return nil, err
	}
	return nonNil(vehicles), nil
}

func (s *VehicleService) ListByBaumuster(ctx context.Context, baumuster string) ([]model.Vehicle, error) {
	vehicles, err := s.repo.ListByBaumuster(ctx, strings.TrimSpace(baumuster))
	if err != nil {
		return nil, err
	}
	return nonNil(vehicles), nil
}

func (s *VehicleService) ListByCondition(ctx context.Context, raw string) ([]model.Vehicle, error) {
	condition := model.VehicleCondition(raw)
	if !condition.Valid() {
		return nil, fmt.Errorf("%w: unsupported condition %q", ErrInvalidInput, raw)
	}
	vehicles, err := s.repo.ListByCondition(ctx, condition)
	if err != nil {
		return nil, err
	}
	return nonNil(vehicles), nil
}

func (s *VehicleService) ListByBrand(ctx context.Context, raw string) ([]model.Vehicle, error) {
	brand := model.VehicleBrand(raw)
	if !brand.Valid() {
		return nil, fmt.Errorf("%w: unsupported brand %q", ErrInvalidInput, raw)
	}
	vehicles, err := s.repo.ListByBrand(ctx, brand)
	if err != nil {
		return nil, err
	}
	return nonNil(vehicles), nil
}

// Update overwrites exactly the fields set in patch. A nil Name keeps the
// stored one.
func (s *VehicleService) Update(ctx context.Context, id uint, name *string, attrs model.VehicleAttributes) (*model.Vehicle, error) {
	patch := model.Vehicle{VehicleAttributes: attrs}
	if name != nil {
		patch.Name = strings.TrimSpace(*name)
		if patch.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
	}
	if err := validateVehicleAttributes(attrs); err != nil {
		return nil, err
	}

	vehicle, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, translate(err)
	}
	return vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, id uint) error {
	return translate(s.repo.Delete(ctx, id))
}

func validateVehicleAttributes(a model.VehicleAttributes) error {
	if a.Division != nil && !a.Division.Valid() {
		return fmt.Errorf("%w: unsupported division %q", ErrInvalidInput, *a.Division)
	}
	if a.Brand != nil && !a.Brand.Valid() {
		return fmt.Errorf("%w: unsupported brand %q", ErrInvalidInput, *a.Brand)
	}
	if a.Condition != nil && !a.Condition.Valid() {
		return fmt.Errorf("%w: unsupported condition %q", ErrInvalidInput, *a.Condition)
	}
	if a.FIN != nil && len(*a.FIN) > 17 {
		return fmt.Errorf("%w: fin exceeds 17 characters", ErrInvalidInput)
	}
	if a.Quantity != nil && *a.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	return nil
}
