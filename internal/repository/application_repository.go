package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobboard/jobboard-api/internal/models"
)

const ApplicationUserJobIndex = "idx_applications_user_job"

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Exists(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Scopes(ForUser(userID)).
		Where("job_id = ?", jobID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// Create inserts app. A second application for the same user and job is
// rejected by idx_applications_user_job and reported as ErrDuplicate.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	return translate(r.db.WithContext(ctx).Create(app).Error)
}

// ListByUser returns the user's applications, newest first.
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Scopes(ForUser(userID)).
		Order("date DESC").
		Find(&apps).Error
	if err != nil {
		return nil, translate(err)
	}
	return apps, nil
}
