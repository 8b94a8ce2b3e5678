package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jobboard/jobboard-api/internal/listing"
	"github.com/jobboard/jobboard-api/internal/models"
	"github.com/jobboard/jobboard-api/internal/repository"
)

// JobQuery is one request against the job listing.
type JobQuery struct {
	Search    listing.SearchFilter
	Selection listing.FilterSelection
	Page      int
}

// CatalogService serves the browsable job listing.
type CatalogService struct {
	catalog JobCatalog
}

func NewCatalogService(catalog JobCatalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Browse projects the catalog through q.
func (s *CatalogService) Browse(ctx context.Context, q JobQuery) (listing.Page, error) {
	jobs, err := s.catalog.ListJobs(ctx)
	if err != nil {
		return listing.Page{}, fmt.Errorf("%w: list jobs: %w", ErrStorage, err)
	}
	return listing.Project(jobs, q.Selection, q.Search, q.Page), nil
}

func (s *CatalogService) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.catalog.FindJob(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("%w: find job: %w", ErrStorage, err)
	}
	return job, nil
}
