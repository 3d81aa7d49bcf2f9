package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nurpe/apper-api/internal/model"
)

// Statements run after AutoMigrate. Both postgres and sqlite accept them.
var migrationStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contracts_contract_number ON contracts (contract_number);`,
	`CREATE INDEX IF NOT EXISTS idx_addresses_customer_primary ON addresses (customer_id, is_primary);`,
	`CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations (created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_calculations_market_created_at ON calculations (market, created_at);`,
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Customer{},
		&model.Address{},
		&model.Contract{},
		&model.Vehicle{},
		&model.Application{},
		&model.Calculation{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return runMigrations(db)
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
