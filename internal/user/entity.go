package user

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors the identity-provider record for an account. Rows are synced
// lazily the first time an authenticated request asks for the profile.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ExternalID string    `gorm:"type:text;not null;uniqueIndex" json:"external_id"`
	Email      string    `gorm:"type:text;not null" json:"email"`
	Name       *string   `gorm:"type:text" json:"name,omitempty"`
	Image      *string   `gorm:"type:text" json:"image,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
