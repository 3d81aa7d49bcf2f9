package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Contract values travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Contract struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	ContractNumber string          `gorm:"type:varchar(64);not null" json:"contractNumber"`
	Description    *string         `gorm:"type:text" json:"description"`
	StartDate      time.Time       `gorm:"not null" json:"startDate"`
	EndDate        *time.Time      `json:"endDate"`
	Value          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"value"`
	IsActive       bool            `gorm:"not null" json:"isActive"`
	CustomerID     uint            `gorm:"not null;index" json:"customerId"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
