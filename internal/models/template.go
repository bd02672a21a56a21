package models

import (
	"time"

	"github.com/google/uuid"
)

var TemplateCategories = []string{"modern", "classic", "minimal", "creative", "professional"}

// Template is a selectable resume layout. Resumes reference templates by
// key only; deactivating a template never touches existing resumes.
type Template struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	PreviewImage  string    `gorm:"type:text" json:"preview_image"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	IsAtsFriendly bool      `gorm:"not null;default:false" json:"is_ats_friendly"`
	Category      string    `gorm:"size:50;not null;index" json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
