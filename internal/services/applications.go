package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jobboard/jobboard-api/internal/dto"
	"github.com/jobboard/jobboard-api/internal/models"
	"github.com/jobboard/jobboard-api/internal/repository"
)

// SubmitApplication applies the user identified by externalID to jobID.
// The job's company is copied onto the application at this point.
func (r *Registry) SubmitApplication(ctx context.Context, externalID string, jobID uuid.UUID) (*models.Application, error) {
	if jobID == uuid.Nil {
		return nil, fmt.Errorf("%w: job id is required", ErrValidation)
	}

	user, err := r.resolveUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	applied, err := r.applications.Exists(ctx, user.ID, jobID)
	if err != nil {
		return nil, fmt.Errorf("%w: check application: %w", ErrStorage, err)
	}
	if applied {
		return nil, ErrAlreadyApplied
	}

	job, err := r.catalog.FindJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("%w: find job: %w", ErrStorage, err)
	}

	app := &models.Application{
		ID:        uuid.New(),
		UserID:    user.ID,
		JobID:     job.ID,
		CompanyID: job.CompanyID,
		Status:    models.ApplicationStatusPending,
		Date:      r.now().UTC(),
	}

	// The unique index on (user_id, job_id) settles concurrent submissions.
	if err := r.applications.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("%w: create application: %w", ErrStorage, err)
	}

	slog.Info("application submitted",
		"user_id", externalID, "job_id", job.ID.String(), "action", "submit_application")
	return app, nil
}

// ListApplications returns the user's applications joined with the current
// job and company data. The company is looked up through the id frozen on
// the application, so it may differ from the job's current company.
func (r *Registry) ListApplications(ctx context.Context, externalID string) ([]dto.ApplicationView, error) {
	user, err := r.resolveUser(ctx, externalID)
	if err != nil {
		return nil, err
	}

	apps, err := r.applications.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: list applications: %w", ErrStorage, err)
	}

	jobIDs := make([]uuid.UUID, 0, len(apps))
	companyIDs := make([]uuid.UUID, 0, len(apps))
	for _, a := range apps {
		jobIDs = append(jobIDs, a.JobID)
		companyIDs = append(companyIDs, a.CompanyID)
	}

	jobs, err := r.catalog.JobsByIDs(ctx, uniqueIDs(jobIDs))
	if err != nil {
		return nil, fmt.Errorf("%w: load jobs: %w", ErrStorage, err)
	}
	companies, err := r.catalog.CompaniesByIDs(ctx, uniqueIDs(companyIDs))
	if err != nil {
		return nil, fmt.Errorf("%w: load companies: %w", ErrStorage, err)
	}

	views := make([]dto.ApplicationView, 0, len(apps))
	for _, a := range apps {
		view := dto.ApplicationView{
			ID:        a.ID,
			UserID:    a.UserID,
			JobID:     a.JobID,
			CompanyID: a.CompanyID,
			Status:    a.Status,
			Date:      a.Date,
		}
		if j, ok := jobs[a.JobID]; ok {
			view.Job = &dto.JobSummary{
				Title:       j.Title,
				Description: j.Description,
				Location:    j.Location,
				Category:    j.Category,
				Level:       j.Level,
				Salary:      j.Salary,
				CompanyID:   j.CompanyID,
			}
		}
		if c, ok := companies[a.CompanyID]; ok {
			view.Company = &dto.CompanySummary{
				Name:  c.Name,
				Email: c.Email,
				Image: c.Image,
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
