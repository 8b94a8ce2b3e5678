package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jobboard/jobboard-api/internal/models"
)

type ApplyRequest struct {
	JobID string `json:"jobId" validate:"required,uuid"`
}

// ApplicationView is an application joined with live job and company data.
// CompanyID is the company recorded when the application was made;
// Job.CompanyID is the job's company now.
type ApplicationView struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	JobID     uuid.UUID       `json:"job_id"`
	CompanyID uuid.UUID       `json:"company_id"`
	Status    string          `json:"status"`
	Date      time.Time       `json:"date"`
	Company   *CompanySummary `json:"company,omitempty"`
	Job       *JobSummary     `json:"job,omitempty"`
}

type CompanySummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

type JobSummary struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Level       string    `json:"level"`
	Salary      int64     `json:"salary"`
	CompanyID   uuid.UUID `json:"company_id"`
}

type ApplyResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Application *models.Application `json:"application"`
}

type ApplicationsResponse struct {
	Success      bool              `json:"success"`
	Applications []ApplicationView `json:"applications"`
}
