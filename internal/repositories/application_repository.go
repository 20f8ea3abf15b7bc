package repositories

import (
	"context"
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type ApplicationRepository interface {
	// Create inserts the application and increments the owning
	// company's total_applicants counter in one transaction, so the
	// counter can never undercount from a partial failure.
	Create(ctx context.Context, application *models.JobApplication) error
	FindByID(ctx context.Context, id string) (*models.JobApplication, error)
	ListByJob(ctx context.Context, jobID string) ([]models.JobApplication, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]models.JobApplication, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, application *models.JobApplication) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(application).Error; err != nil {
			return err
		}
		return tx.Model(&models.CompanyProfile{}).
			Where("id = ?", application.CompanyID).
			Update("total_applicants", gorm.Expr("total_applicants + ?", 1)).Error
	})
	if err != nil {
		// (job_id, applicant_id) unique index: the only place the
		// one-application-per-job invariant is enforced.
		if isUniqueViolation(err) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(ctx context.Context, id string) (*models.JobApplication, error) {
	var application models.JobApplication
	err := r.db.WithContext(ctx).First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ListByJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) ListByApplicant(ctx context.Context, applicantID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
