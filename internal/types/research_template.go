package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ResearchTemplate is a named, reusable list of section identifiers meant to
// parameterize generation. Schema only for now; no endpoint operates on it.
type ResearchTemplate struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"column:title;not null" json:"title"`
	Description string         `gorm:"column:description;type:text" json:"description,omitempty"`
	Sections    datatypes.JSON `gorm:"column:sections;type:json;not null" json:"sections"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
}

func (ResearchTemplate) TableName() string { return "research_templates" }
