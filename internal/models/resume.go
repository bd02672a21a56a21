package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Resume is the persisted resume record. Data holds the full structured
// resume content as a single jsonb document; sub-entities are never
// decomposed into their own tables. UserID is immutable after creation.
// Deletes are hard deletes.
type Resume struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title      string         `gorm:"size:255;not null" json:"title"`
	TemplateID string         `gorm:"size:100;not null" json:"template_id"`
	Data       datatypes.JSON `gorm:"type:jsonb;not null" json:"data"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`
	LastEdited time.Time      `gorm:"not null" json:"last_edited"`
}
