package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/apper-api/internal/model"
)

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(ctx context.Context, address *model.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *AddressRepository) List(ctx context.Context) ([]model.Address, error) {
	var addresses []model.Address
	err := r.db.WithContext(ctx).Order("id ASC").Find(&addresses).Error
	return addresses, err
}

func (r *AddressRepository) Get(ctx context.Context, id uint) (*model.Address, error) {
	var address model.Address
	if err := r.db.WithContext(ctx).First(&address, id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *AddressRepository) ListByCustomer(ctx context.Context, customerID uint) ([]model.Address, error) {
	var addresses []model.Address
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&addresses).Error
	return addresses, err
}
