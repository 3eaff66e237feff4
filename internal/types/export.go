package types

import (
	"time"

	"github.com/google/uuid"
)

type Export struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	NoteID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"note_id"`
	Note      *ResearchNote `gorm:"constraint:OnDelete:CASCADE;foreignKey:NoteID;references:ID" json:"note,omitempty"`
	FileURL   string        `gorm:"column:file_url;not null" json:"file_url"`
	Format    string        `gorm:"column:format;not null" json:"format"`
	CreatedAt time.Time     `gorm:"not null" json:"created_at"`
}

func (Export) TableName() string { return "exports" }
