package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jobboard/jobboard-api/internal/models"
	"github.com/jobboard/jobboard-api/internal/storage"
)

// UserStore is the user directory, unique on external id and on email.
type UserStore interface {
	FindByExternalID(ctx context.Context, externalID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateResume(ctx context.Context, id uuid.UUID, resume string) error
}

// ApplicationStore persists applications. Create must reject a second
// application for the same user and job with repository.ErrDuplicate.
type ApplicationStore interface {
	Exists(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	Create(ctx context.Context, app *models.Application) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Application, error)
}

// JobCatalog is read access to jobs and companies.
type JobCatalog interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	FindJob(ctx context.Context, id uuid.UUID) (*models.Job, error)
	JobsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Job, error)
	CompaniesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Company, error)
}

// Registry records users and their job applications.
type Registry struct {
	users        UserStore
	applications ApplicationStore
	catalog      JobCatalog
	files        storage.Storage
	now          func() time.Time
}

func NewRegistry(users UserStore, applications ApplicationStore, catalog JobCatalog, files storage.Storage) *Registry {
	return &Registry{
		users:        users,
		applications: applications,
		catalog:      catalog,
		files:        files,
		now:          time.Now,
	}
}

// WithClock overrides the time source used for application dates.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.now = now
	return r
}
