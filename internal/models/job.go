package models

import (
	"time"

	"github.com/google/uuid"
)

// Job is a posting owned by a Company. Catalog enumeration order is
// insertion order (created_at, then seq).
type Job struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	// Seq is assigned by the database on insert and only ever grows.
	Seq         int64     `gorm:"autoIncrement;not null;uniqueIndex" json:"-"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Location    string    `gorm:"size:255;not null;index" json:"location"`
	Category    string    `gorm:"size:100;not null;index" json:"category"`
	Level       string    `gorm:"size:100;not null" json:"level"`
	Salary      int64     `gorm:"not null;default:0" json:"salary"`
	Visible     bool      `gorm:"not null;default:true" json:"visible"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Company     *Company  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (Job) TableName() string {
	return "jobs"
}
