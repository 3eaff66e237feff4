package types

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Ticker    string    `gorm:"column:ticker;index" json:"ticker,omitempty"`
	Sector    string    `gorm:"column:sector" json:"sector,omitempty"`
	Country   string    `gorm:"column:country" json:"country,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Company) TableName() string { return "companies" }
