package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobboard/jobboard-api/internal/models"
)

// JobRepository reads the job and company catalog.
type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// ListJobs returns every visible job with its company, in insertion order.
func (r *JobRepository) ListJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Scopes(Visible(), InsertionOrder()).
		Preload("Company").
		Find(&jobs).Error
	if err != nil {
		return nil, translate(err)
	}
	return jobs, nil
}

func (r *JobRepository) FindJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).Preload("Company").First(&job, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (r *JobRepository) JobsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Job, error) {
	out := make(map[uuid.UUID]models.Job, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var jobs []models.Job
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&jobs).Error; err != nil {
		return nil, translate(err)
	}
	for _, j := range jobs {
		out[j.ID] = j
	}
	return out, nil
}

func (r *JobRepository) CompaniesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Company, error) {
	out := make(map[uuid.UUID]models.Company, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var companies []models.Company
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&companies).Error; err != nil {
		return nil, translate(err)
	}
	for _, c := range companies {
		out[c.ID] = c
	}
	return out, nil
}

func (r *JobRepository) CountJobs(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).Scopes(Visible()).Count(&n).Error
	return n, translate(err)
}
