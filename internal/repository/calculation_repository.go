package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/apper-api/internal/model"
)

// CalculationRepository is append-only: rows are created and read, never
// changed.
type CalculationRepository struct {
	db *gorm.DB
}

func NewCalculationRepository(db *gorm.DB) *CalculationRepository {
	return &CalculationRepository{db: db}
}

func (r *CalculationRepository) Create(ctx context.Context, calc *model.Calculation) error {
	return r.db.WithContext(ctx).Create(calc).Error
}

type CalculationFilter struct {
	Market    *model.MarketCode
	RequestID *string
	Limit     int
}

func (r *CalculationRepository) List(ctx context.Context, filter CalculationFilter) ([]model.Calculation, error) {
	query := r.db.WithContext(ctx).Model(&model.Calculation{})
	if filter.Market != nil {
		query = query.Where("market = ?", *filter.Market)
	}
	if filter.RequestID != nil {
		query = query.Where("request_id = ?", *filter.RequestID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var calcs []model.Calculation
	err := query.Order("created_at DESC").Order("id DESC").Find(&calcs).Error
	return calcs, err
}

func (r *CalculationRepository) Get(ctx context.Context, id uint) (*model.Calculation, error) {
	var calc model.Calculation
	if err := r.db.WithContext(ctx).First(&calc, id).Error; err != nil {
		return nil, err
	}
	return &calc, nil
}

// Ping checks the underlying connection.
func (r *CalculationRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
