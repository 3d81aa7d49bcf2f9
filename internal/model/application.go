package model

import "time"

// Application holds the metadata of an app the agent is going to build.
type Application struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	CodeStack   *CodeType `gorm:"type:varchar(16)" json:"codeStack"`
	DBType      *DBType   `gorm:"column:db_type;type:varchar(16)" json:"dbType"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
