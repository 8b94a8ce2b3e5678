package models

import (
	"time"

	"github.com/google/uuid"
)

const ApplicationStatusPending = "Pending"

// Application records one user's application to one job. CompanyID is
// copied from the job when the application is created and never follows
// later edits to the job.
type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job,priority:1" json:"user_id"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job,priority:2;index" json:"job_id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	Status    string    `gorm:"size:20;not null;default:'Pending'" json:"status"`
	Date      time.Time `gorm:"not null" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

func (Application) TableName() string {
	return "applications"
}
