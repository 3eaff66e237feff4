package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NoteSections is the structured AI-generated content attached to a note.
// It is stored flat: business_model, risks and growth_drivers sit next to
// questions rather than under a nested framework key.
type NoteSections struct {
	Questions     []string `json:"questions,omitempty"`
	BusinessModel string   `json:"business_model,omitempty"`
	Risks         []string `json:"risks,omitempty"`
	GrowthDrivers []string `json:"growth_drivers,omitempty"`
}

type ResearchNote struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID *uuid.UUID     `gorm:"type:uuid;index" json:"company_id,omitempty"`
	Company   *Company       `gorm:"constraint:OnDelete:SET NULL;foreignKey:CompanyID;references:ID" json:"company,omitempty"`
	Title     string         `gorm:"column:title;not null" json:"title"`
	ContentMD string         `gorm:"column:content_md;type:text" json:"content_md"`
	Sections  datatypes.JSON `gorm:"column:sections;type:json" json:"sections,omitempty"`
	CreatedBy string         `gorm:"column:created_by" json:"created_by"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
}

func (ResearchNote) TableName() string { return "research_notes" }

// SetSections replaces the stored sections payload. A nil value clears it.
func (n *ResearchNote) SetSections(s *NoteSections) error {
	if s == nil {
		n.Sections = nil
		return nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	n.Sections = datatypes.JSON(raw)
	return nil
}

// GetSections decodes the stored sections payload, or nil when absent.
func (n *ResearchNote) GetSections() (*NoteSections, error) {
	if len(n.Sections) == 0 {
		return nil, nil
	}
	var s NoteSections
	if err := json.Unmarshal(n.Sections, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
