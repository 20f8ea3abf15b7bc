package repositories

import (
	"context"
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type CompanyProfileRepository interface {
	Create(ctx context.Context, profile *models.CompanyProfile) error
	FindByUserID(ctx context.Context, userID string) (*models.CompanyProfile, error)
	FindByID(ctx context.Context, id string) (*models.CompanyProfile, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.CompanyProfile, error)
	Update(ctx context.Context, profile *models.CompanyProfile) error

	// Counter maintenance. Increments are atomic column expressions at
	// the storage layer, never read-modify-write in application code.
	IncrementJobCounts(ctx context.Context, companyID string, jobPostsDelta, activeJobsDelta int) error
	RecountMetrics(ctx context.Context, companyID string) (*models.CompanyMetrics, error)
}

type CompanyProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyProfileRepository(db *gorm.DB) CompanyProfileRepository {
	return &CompanyProfileRepositoryImpl{db: db}
}

func (r *CompanyProfileRepositoryImpl) Create(ctx context.Context, profile *models.CompanyProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrCompanyAlreadyExists
		}
		return err
	}
	return nil
}

func (r *CompanyProfileRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CompanyProfileRepositoryImpl) FindByID(ctx context.Context, id string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CompanyProfileRepositoryImpl) FindByIDs(ctx context.Context, ids []string) ([]models.CompanyProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var profiles []models.CompanyProfile
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error
	return profiles, err
}

func (r *CompanyProfileRepositoryImpl) Update(ctx context.Context, profile *models.CompanyProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *CompanyProfileRepositoryImpl) IncrementJobCounts(ctx context.Context, companyID string, jobPostsDelta, activeJobsDelta int) error {
	updates := map[string]interface{}{}
	if jobPostsDelta != 0 {
		updates["job_posts_count"] = gorm.Expr("job_posts_count + ?", jobPostsDelta)
	}
	if activeJobsDelta != 0 {
		updates["active_jobs_count"] = gorm.Expr("active_jobs_count + ?", activeJobsDelta)
	}
	if len(updates) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).
		Model(&models.CompanyProfile{}).
		Where("id = ?", companyID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// RecountMetrics recomputes all three counters from source-of-truth
// rows and persists them. This is the repair path for counter drift.
func (r *CompanyProfileRepositoryImpl) RecountMetrics(ctx context.Context, companyID string) (*models.CompanyMetrics, error) {
	var metrics models.CompanyMetrics

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var jobPosts, activeJobs, applicants int64

		if err := tx.Model(&models.JobPosting{}).
			Where("company_id = ?", companyID).
			Count(&jobPosts).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.JobPosting{}).
			Where("company_id = ? AND status = ?", companyID, models.JobStatusOpen).
			Count(&activeJobs).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.JobApplication{}).
			Where("company_id = ?", companyID).
			Count(&applicants).Error; err != nil {
			return err
		}

		metrics = models.CompanyMetrics{
			JobPostsCount:   int(jobPosts),
			ActiveJobsCount: int(activeJobs),
			TotalApplicants: int(applicants),
		}

		res := tx.Model(&models.CompanyProfile{}).
			Where("id = ?", companyID).
			Updates(map[string]interface{}{
				"job_posts_count":   metrics.JobPostsCount,
				"active_jobs_count": metrics.ActiveJobsCount,
				"total_applicants":  metrics.TotalApplicants,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCompanyNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &metrics, nil
}
