package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated identity. Accounts are created either by
// email/password registration or lazily on the first successful Google
// sign-in, in which case Password stays nil.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name         string    `gorm:"not null;size:255" json:"name"`
	Image        *string   `gorm:"type:text" json:"image,omitempty"`
	Password     *string   `json:"-"`
	AuthProvider string    `gorm:"size:50;default:'email'" json:"-"`
	Role         string    `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
