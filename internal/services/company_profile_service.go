package services

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type CompanyProfileService interface {
	CreateProfile(ctx context.Context, userID string, req *dto.CreateCompanyProfileRequest) (*models.CompanyProfile, error)
	GetProfile(ctx context.Context, userID string) (*models.CompanyProfile, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateCompanyProfileRequest) (*models.CompanyProfile, error)
	UploadLogo(ctx context.Context, userID string, upload *dto.LogoUpload) (*models.CompanyProfile, error)
	RecountMetrics(ctx context.Context, userID string) (*models.CompanyMetrics, error)
}

type CompanyProfileServiceImpl struct {
	companyRepo repositories.CompanyProfileRepository
	store       storage.Storage
	limits      UploadLimits
}

func NewCompanyProfileService(
	companyRepo repositories.CompanyProfileRepository,
	store storage.Storage,
	limits UploadLimits,
) CompanyProfileService {
	return &CompanyProfileServiceImpl{
		companyRepo: companyRepo,
		store:       store,
		limits:      limits,
	}
}

func (s *CompanyProfileServiceImpl) CreateProfile(ctx context.Context, userID string, req *dto.CreateCompanyProfileRequest) (*models.CompanyProfile, error) {
	profile := &models.CompanyProfile{
		UserID:      userID,
		CompanyName: req.CompanyName,
		Description: req.Description,
		Industry:    req.Industry,
		Location:    req.Location,
	}
	profile.CredibilityScore = profile.ComputeCredibilityScore()

	if err := s.companyRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "company", "Company profile already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "company profile created", "company_id", profile.ID)
	return profile, nil
}

func (s *CompanyProfileServiceImpl) GetProfile(ctx context.Context, userID string) (*models.CompanyProfile, error) {
	return s.resolveCompany(ctx, userID)
}

func (s *CompanyProfileServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateCompanyProfileRequest) (*models.CompanyProfile, error) {
	profile, err := s.resolveCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.Industry != nil {
		profile.Industry = *req.Industry
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}

	// Recomputed from scratch on every write so the score can never
	// drift from the fields it summarizes.
	profile.CredibilityScore = profile.ComputeCredibilityScore()

	if err := s.companyRepo.Update(ctx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *CompanyProfileServiceImpl) UploadLogo(ctx context.Context, userID string, upload *dto.LogoUpload) (*models.CompanyProfile, error) {
	profile, err := s.resolveCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.limits.check(upload.Size, upload.ContentType); err != nil {
		return nil, err
	}

	if profile.LogoKey != "" {
		if err := s.store.Delete(ctx, profile.LogoKey); err != nil {
			logger.CtxWarn(ctx, "failed to delete old logo object, continuing",
				"storage_key", profile.LogoKey, "error", err.Error())
		}
	}

	key := "logos/" + profile.ID + "/" + uuid.NewString() + filepath.Ext(upload.FileName)
	if err := s.store.Save(ctx, key, bytes.NewReader(upload.Content), upload.ContentType); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "storage", "Failed to store logo", 502)
	}

	url, err := s.store.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "storage", "Failed to resolve logo URL", 502)
	}

	profile.LogoURL = url
	profile.LogoKey = key
	profile.CredibilityScore = profile.ComputeCredibilityScore()

	if err := s.companyRepo.Update(ctx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// RecountMetrics rebuilds the denormalized counters from source rows.
func (s *CompanyProfileServiceImpl) RecountMetrics(ctx context.Context, userID string) (*models.CompanyMetrics, error) {
	profile, err := s.resolveCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	metrics, err := s.companyRepo.RecountMetrics(ctx, profile.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "company", "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "company metrics recounted", "company_id", profile.ID,
		"job_posts", metrics.JobPostsCount, "active_jobs", metrics.ActiveJobsCount,
		"total_applicants", metrics.TotalApplicants)
	return metrics, nil
}

func (s *CompanyProfileServiceImpl) resolveCompany(ctx context.Context, userID string) (*models.CompanyProfile, error) {
	profile, err := s.companyRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "company", "Company profile required")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
