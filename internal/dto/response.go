package dto

import "github.com/jobboard/jobboard-api/internal/models"

// Response is the envelope every endpoint answers with. Success is false
// whenever Message describes a failure.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
	Cache     string `json:"cache"`
	JobCount  int64  `json:"job_count"`
}

type UserResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

type ResumeResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Resume   string `json:"resume"`
	Uploaded bool   `json:"uploaded"`
}
