package model

import "time"

type Customer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName     string    `gorm:"type:varchar(255);not null" json:"lastName"`
	MobileNumber *string   `gorm:"type:varchar(64)" json:"mobileNumber"`
	Email        *string   `gorm:"type:varchar(255)" json:"email"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Addresses []Address  `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"addresses"`
	Contracts []Contract `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"-"`
}

type Address struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Street     string    `gorm:"type:varchar(255);not null" json:"street"`
	City       string    `gorm:"type:varchar(255);not null" json:"city"`
	State      *string   `gorm:"type:varchar(255)" json:"state"`
	PostalCode string    `gorm:"type:varchar(32);not null" json:"postalCode"`
	Country    Country   `gorm:"type:varchar(32);not null" json:"country"`
	IsPrimary  bool      `gorm:"not null" json:"isPrimary"`
	CustomerID uint      `gorm:"not null;index" json:"customerId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
