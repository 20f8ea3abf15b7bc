package repositories

import (
	"context"
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// JobSearchCriteria filters the public listing. Only open postings are
// ever returned by SearchOpen.
type JobSearchCriteria struct {
	EmploymentTypes []models.EmploymentType
	Remote          *bool
	SalaryMin       *float64
	SalaryMax       *float64
	Page            int
	PageSize        int
}

type JobRepository interface {
	Create(ctx context.Context, job *models.JobPosting) error
	Update(ctx context.Context, job *models.JobPosting) error
	// UpdateStatus flips the status only when the row still holds from,
	// reporting whether a row actually changed. Counter maintenance
	// keys off that report, so a lost race never double-moves it.
	UpdateStatus(ctx context.Context, id string, from, to models.JobStatus) (bool, error)
	FindByID(ctx context.Context, id string) (*models.JobPosting, error)
	FindOpenByID(ctx context.Context, id string) (*models.JobPosting, error)
	// FindByIDAndEmployer resolves the job scoped to its owner in one
	// lookup; a miss does not reveal whether the job exists at all.
	FindByIDAndEmployer(ctx context.Context, id, employerID string) (*models.JobPosting, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.JobPosting, error)
	ListByEmployer(ctx context.Context, employerID string) ([]models.JobPosting, error)
	SearchOpen(ctx context.Context, criteria JobSearchCriteria) ([]models.JobPosting, int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.JobPosting) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepositoryImpl) Update(ctx context.Context, job *models.JobPosting) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *JobRepositoryImpl) UpdateStatus(ctx context.Context, id string, from, to models.JobStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.JobPosting{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindOpenByID(ctx context.Context, id string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.WithContext(ctx).
		First(&job, "id = ? AND status = ?", id, models.JobStatusOpen).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByIDAndEmployer(ctx context.Context, id, employerID string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.WithContext(ctx).
		First(&job, "id = ? AND employer_id = ?", id, employerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByIDs(ctx context.Context, ids []string) ([]models.JobPosting, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var jobs []models.JobPosting
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) ListByEmployer(ctx context.Context, employerID string) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) SearchOpen(ctx context.Context, criteria JobSearchCriteria) ([]models.JobPosting, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.JobPosting{}).
		Where("status = ?", models.JobStatusOpen)

	if len(criteria.EmploymentTypes) > 0 {
		query = query.Where("employment_type IN ?", criteria.EmploymentTypes)
	}
	if criteria.Remote != nil {
		query = query.Where("remote = ?", *criteria.Remote)
	}
	if criteria.SalaryMin != nil {
		query = query.Where("salary_min >= ?", *criteria.SalaryMin)
	}
	if criteria.SalaryMax != nil {
		query = query.Where("salary_max <= ?", *criteria.SalaryMax)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.JobPosting
	offset := (criteria.Page - 1) * criteria.PageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(criteria.PageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}
