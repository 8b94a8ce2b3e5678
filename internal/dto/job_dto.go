package dto

import (
	"github.com/jobboard/jobboard-api/internal/listing"
	"github.com/jobboard/jobboard-api/internal/models"
)

type JobQuery struct {
	Title      string   `query:"title" validate:"max=200"`
	Location   string   `query:"location" validate:"max=200"`
	Categories []string `validate:"max=50,dive,max=100"`
	Locations  []string `validate:"max=50,dive,max=100"`
	Page       int      `query:"page" validate:"gte=0"`
}

type FilterOptionsResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
}

// JobListResponse is a projected page with the success flag alongside its
// fields.
type JobListResponse struct {
	Success bool `json:"success"`
	listing.Page
}

type JobResponse struct {
	Success bool        `json:"success"`
	Job     *models.Job `json:"job"`
}
