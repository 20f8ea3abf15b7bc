package repositories

import (
	"context"
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// ApplicantProfileRepository owns the applicant aggregate and its
// nested collections. Every nested lookup is scoped by (profileID,
// entryID), so an identifier from another user's profile behaves as
// not-found.
type ApplicantProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.ApplicantProfile) error
	FindProfileByUserID(ctx context.Context, userID string) (*models.ApplicantProfile, error)
	FindProfilesByIDs(ctx context.Context, ids []string) ([]models.ApplicantProfile, error)
	UpdateProfile(ctx context.Context, profile *models.ApplicantProfile) error

	AddEducation(ctx context.Context, entry *models.Education) error
	FindEducation(ctx context.Context, profileID, entryID string) (*models.Education, error)
	UpdateEducation(ctx context.Context, entry *models.Education) error
	DeleteEducation(ctx context.Context, profileID, entryID string) error

	AddExperience(ctx context.Context, entry *models.Experience) error
	FindExperience(ctx context.Context, profileID, entryID string) (*models.Experience, error)
	UpdateExperience(ctx context.Context, entry *models.Experience) error
	DeleteExperience(ctx context.Context, profileID, entryID string) error

	CreateResume(ctx context.Context, resume *models.Resume) error
	FindResume(ctx context.Context, profileID, resumeID string) (*models.Resume, error)
	FindResumesByProfile(ctx context.Context, profileID string) ([]models.Resume, error)
	DeleteResume(ctx context.Context, profileID, resumeID string) error
}

type ApplicantProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicantProfileRepository(db *gorm.DB) ApplicantProfileRepository {
	return &ApplicantProfileRepositoryImpl{db: db}
}

func (r *ApplicantProfileRepositoryImpl) CreateProfile(ctx context.Context, profile *models.ApplicantProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		// user_id unique index enforces the 1:1 invariant
		if isUniqueViolation(err) {
			return ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicantProfileRepositoryImpl) FindProfileByUserID(ctx context.Context, userID string) (*models.ApplicantProfile, error) {
	var profile models.ApplicantProfile
	err := r.db.WithContext(ctx).
		Preload("Education").
		Preload("Experience").
		Preload("Resumes").
		First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ApplicantProfileRepositoryImpl) FindProfilesByIDs(ctx context.Context, ids []string) ([]models.ApplicantProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var profiles []models.ApplicantProfile
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error
	return profiles, err
}

func (r *ApplicantProfileRepositoryImpl) UpdateProfile(ctx context.Context, profile *models.ApplicantProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// Education

func (r *ApplicantProfileRepositoryImpl) AddEducation(ctx context.Context, entry *models.Education) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ApplicantProfileRepositoryImpl) FindEducation(ctx context.Context, profileID, entryID string) (*models.Education, error) {
	var entry models.Education
	err := r.db.WithContext(ctx).
		First(&entry, "id = ? AND profile_id = ?", entryID, profileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEducationNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *ApplicantProfileRepositoryImpl) UpdateEducation(ctx context.Context, entry *models.Education) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *ApplicantProfileRepositoryImpl) DeleteEducation(ctx context.Context, profileID, entryID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", entryID, profileID).
		Delete(&models.Education{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEducationNotFound
	}
	return nil
}

// Experience

func (r *ApplicantProfileRepositoryImpl) AddExperience(ctx context.Context, entry *models.Experience) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ApplicantProfileRepositoryImpl) FindExperience(ctx context.Context, profileID, entryID string) (*models.Experience, error) {
	var entry models.Experience
	err := r.db.WithContext(ctx).
		First(&entry, "id = ? AND profile_id = ?", entryID, profileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *ApplicantProfileRepositoryImpl) UpdateExperience(ctx context.Context, entry *models.Experience) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *ApplicantProfileRepositoryImpl) DeleteExperience(ctx context.Context, profileID, entryID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", entryID, profileID).
		Delete(&models.Experience{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrExperienceNotFound
	}
	return nil
}

// Resume

func (r *ApplicantProfileRepositoryImpl) CreateResume(ctx context.Context, resume *models.Resume) error {
	return r.db.WithContext(ctx).Create(resume).Error
}

func (r *ApplicantProfileRepositoryImpl) FindResume(ctx context.Context, profileID, resumeID string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.WithContext(ctx).
		First(&resume, "id = ? AND profile_id = ?", resumeID, profileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ApplicantProfileRepositoryImpl) FindResumesByProfile(ctx context.Context, profileID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("uploaded_at DESC").
		Find(&resumes).Error
	return resumes, err
}

func (r *ApplicantProfileRepositoryImpl) DeleteResume(ctx context.Context, profileID, resumeID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", resumeID, profileID).
		Delete(&models.Resume{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}
