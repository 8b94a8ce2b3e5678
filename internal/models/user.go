package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an applicant, created lazily the first time an identity-provider
// subject is seen.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ExternalID string    `gorm:"size:255;not null;uniqueIndex:idx_users_external_id" json:"external_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	Image      string    `gorm:"size:1024;not null" json:"image"`
	Resume     string    `gorm:"size:1024;not null;default:''" json:"resume"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
