package services

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadLimits restricts inbound files before they reach storage.
type UploadLimits struct {
	MaxSize      int64
	AllowedTypes []string
}

func (l UploadLimits) check(size int64, contentType string) error {
	if l.MaxSize > 0 && size > l.MaxSize {
		return apperrors.ErrFileTooLarge
	}
	if len(l.AllowedTypes) == 0 {
		return nil
	}
	for _, t := range l.AllowedTypes {
		if t == contentType {
			return nil
		}
	}
	return apperrors.ErrInvalidFileType
}

type ApplicantProfileService interface {
	CreateProfile(ctx context.Context, userID string, req *dto.CreateApplicantProfileRequest) (*models.ApplicantProfile, error)
	GetProfile(ctx context.Context, userID string) (*models.ApplicantProfile, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateApplicantProfileRequest) (*models.ApplicantProfile, error)

	AddEducation(ctx context.Context, userID string, req *dto.AddEducationRequest) (*models.Education, error)
	UpdateEducation(ctx context.Context, userID, entryID string, req *dto.UpdateEducationRequest) (*models.Education, error)
	DeleteEducation(ctx context.Context, userID, entryID string) error

	AddExperience(ctx context.Context, userID string, req *dto.AddExperienceRequest) (*models.Experience, error)
	UpdateExperience(ctx context.Context, userID, entryID string, req *dto.UpdateExperienceRequest) (*models.Experience, error)
	DeleteExperience(ctx context.Context, userID, entryID string) error

	UploadResume(ctx context.Context, userID string, upload *dto.ResumeUpload) (*models.Resume, error)
	DeleteResume(ctx context.Context, userID, resumeID string) error
}

type ApplicantProfileServiceImpl struct {
	profileRepo repositories.ApplicantProfileRepository
	store       storage.Storage
	limits      UploadLimits
}

func NewApplicantProfileService(
	profileRepo repositories.ApplicantProfileRepository,
	store storage.Storage,
	limits UploadLimits,
) ApplicantProfileService {
	return &ApplicantProfileServiceImpl{
		profileRepo: profileRepo,
		store:       store,
		limits:      limits,
	}
}

func (s *ApplicantProfileServiceImpl) CreateProfile(ctx context.Context, userID string, req *dto.CreateApplicantProfileRequest) (*models.ApplicantProfile, error) {
	profile := &models.ApplicantProfile{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Headline:  req.Headline,
	}
	profile.SetSkills(req.Skills)

	if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "profile", "Applicant profile already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "applicant profile created", "profile_id", profile.ID)
	return profile, nil
}

func (s *ApplicantProfileServiceImpl) GetProfile(ctx context.Context, userID string) (*models.ApplicantProfile, error) {
	return s.resolveProfile(ctx, userID)
}

func (s *ApplicantProfileServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateApplicantProfileRequest) (*models.ApplicantProfile, error) {
	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.Headline != nil {
		profile.Headline = *req.Headline
	}
	if req.Skills != nil {
		profile.SetSkills(req.Skills)
	}

	if err := s.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// Education

func (s *ApplicantProfileServiceImpl) AddEducation(ctx context.Context, userID string, req *dto.AddEducationRequest) (*models.Education, error) {
	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := &models.Education{
		ProfileID:    profile.ID,
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Current:      req.Current,
	}

	if err := s.profileRepo.AddEducation(ctx, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *ApplicantProfileServiceImpl) UpdateEducation(ctx context.Context, userID, entryID string, req *dto.UpdateEducationRequest) (*models.Education, error) {
	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Lookup scoped to the owner's profile: a foreign identifier is
	// indistinguishable from a missing one.
	entry, err := s.profileRepo.FindEducation(ctx, profile.ID, entryID)
	if err != nil {
		if errors.Is(err, repositories.ErrEducationNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Education entry not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.School != nil {
		entry.School = *req.School
	}
	if req.Degree != nil {
		entry.Degree = *req.Degree
	}
	if req.FieldOfStudy != nil {
		entry.FieldOfStudy = *req.FieldOfStudy
	}
	if req.StartDate != nil {
		entry.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		entry.EndDate = req.EndDate
	}
	if req.Current != nil {
		entry.Current = *req.Current
	}

	if err := s.profileRepo.UpdateEducation(ctx, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *ApplicantProfileServiceImpl) DeleteEducation(ctx context.Context, userID, entryID string) error {
	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.profileRepo.DeleteEducation(ctx, profile.ID, entryID); err != nil {
		if errors.Is(err, repositories.ErrEducationNotFound) {
			return apperrors.ErrNotFound(err, "profile", "Education entry not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Experience

func (s *ApplicantProfileServiceImpl) AddExperience(ctx context.Context, userID string, req *dto.AddExperienceRequest) (*models.Experience, error) {
	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := &models.Experience{
		ProfileID:   profile.ID,
		Company:     req.Company,
		Position:    req.Position,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Current:     req.Current,
	}

	if err := s.profileRepo.AddExperience(ctx, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *ApplicantProfileServiceImpl) UpdateExperience(ctx context.Context, userID, entryID string, req *dto.UpdateExperienceRequest) (*models.Experience, error) {
	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry, err := s.profileRepo.FindExperience(ctx, profile.ID, entryID)
	if err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Experience entry not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Company != nil {
		entry.Company = *req.Company
	}
	if req.Position != nil {
		entry.Position = *req.Position
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.StartDate != nil {
		entry.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		entry.EndDate = req.EndDate
	}
	if req.Current != nil {
		entry.Current = *req.Current
	}

	if err := s.profileRepo.UpdateExperience(ctx, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *ApplicantProfileServiceImpl) DeleteExperience(ctx context.Context, userID, entryID string) error {
	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.profileRepo.DeleteExperience(ctx, profile.ID, entryID); err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return apperrors.ErrNotFound(err, "profile", "Experience entry not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Resume

// UploadResume keeps the resume slot a singleton: any previously
// retained entry is removed before the new one is appended. Removal of
// the old stored object is best-effort; a failure there is logged and
// does not fail the upload. A storage failure on the NEW file aborts
// the whole operation with no partial state.
func (s *ApplicantProfileServiceImpl) UploadResume(ctx context.Context, userID string, upload *dto.ResumeUpload) (*models.Resume, error) {
	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.limits.check(upload.Size, upload.ContentType); err != nil {
		return nil, err
	}

	existing, err := s.profileRepo.FindResumesByProfile(ctx, profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, old := range existing {
		if err := s.store.Delete(ctx, old.StorageKey); err != nil {
			logger.CtxWarn(ctx, "failed to delete old resume object, continuing",
				"storage_key", old.StorageKey, "error", err.Error())
		}
		if err := s.profileRepo.DeleteResume(ctx, profile.ID, old.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	key := "resumes/" + profile.ID + "/" + uuid.NewString() + filepath.Ext(upload.FileName)
	if err := s.store.Save(ctx, key, bytes.NewReader(upload.Content), upload.ContentType); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "storage", "Failed to store resume", 502)
	}

	url, err := s.store.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "storage", "Failed to resolve resume URL", 502)
	}

	resume := &models.Resume{
		ProfileID:  profile.ID,
		FileName:   upload.FileName,
		FileURL:    url,
		StorageKey: key,
		UploadedAt: time.Now(),
	}
	if err := s.profileRepo.CreateResume(ctx, resume); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "resume uploaded", "profile_id", profile.ID, "resume_id", resume.ID)
	return resume, nil
}

func (s *ApplicantProfileServiceImpl) DeleteResume(ctx context.Context, userID, resumeID string) error {
	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return err
	}

	resume, err := s.profileRepo.FindResume(ctx, profile.ID, resumeID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return apperrors.ErrNotFound(err, "profile", "Resume not found")
		}
		return apperrors.InternalError(err)
	}

	if err := s.store.Delete(ctx, resume.StorageKey); err != nil {
		return apperrors.Wrap(err, apperrors.CodeExternalServiceError, "storage", "Failed to delete resume file", 502)
	}

	if err := s.profileRepo.DeleteResume(ctx, profile.ID, resumeID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicantProfileServiceImpl) resolveProfile(ctx context.Context, userID string) (*models.ApplicantProfile, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Applicant profile required")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
