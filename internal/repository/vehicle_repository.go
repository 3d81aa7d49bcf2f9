package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/apper-api/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *VehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).Order("id ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *VehicleRepository) Get(ctx context.Context, id uint) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) ListByFIN(ctx context.Context, fin string) ([]model.Vehicle, error) {
	return r.listWhere(ctx, "fin", fin)
}

func (r *VehicleRepository) ListByBaumuster(ctx context.Context, baumuster string) ([]model.Vehicle, error) {
	return r.listWhere(ctx, "baumuster", baumuster)
}

func (r *VehicleRepository) ListByCondition(ctx context.Context, condition model.VehicleCondition) ([]model.Vehicle, error) {
	return r.listWhere(ctx, "condition", string(condition))
}

func (r *VehicleRepository) ListByBrand(ctx context.Context, brand model.VehicleBrand) ([]model.Vehicle, error) {
	return r.listWhere(ctx, "brand", string(brand))
}

// column is always a literal from this file, never caller input.
func (r *VehicleRepository) listWhere(ctx context.Context, column, value string) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).
		Where(map[string]any{column: value}).
		Order("id ASC").
		Find(&vehicles).Error
	return vehicles, err
}

// Update writes the non-nil fields of patch and returns the stored row.
func (r *VehicleRepository) Update(ctx context.Context, id uint, patch model.Vehicle) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&vehicle, id).Error; err != nil {
			return err
		}
		patch.ID = 0
		if err := tx.Model(&vehicle).Updates(patch).Error; err != nil {
			return err
		}
		return tx.First(&vehicle, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Vehicle{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
