package services_test

import (
	"context"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type companyFixture struct {
	store   *memStore
	storage *fakeStorage
	service services.CompanyProfileService
	userID  string
}

func newCompanyFixture(t *testing.T) *companyFixture {
	t.Helper()
	store := newMemStore()
	fs := newFakeStorage()

	limits := services.UploadLimits{
		MaxSize:      1024,
		AllowedTypes: []string{"image/png"},
	}

	return &companyFixture{
		store:   store,
		storage: fs,
		service: services.NewCompanyProfileService(&fakeCompanyRepo{store: store}, fs, limits),
		userID:  "user-employer",
	}
}

func TestCompanyProfileService_CreateProfile_ScoresOnCreate(t *testing.T) {
	f := newCompanyFixture(t)

	profile, err := f.service.CreateProfile(context.Background(), f.userID, &dto.CreateCompanyProfileRequest{
		CompanyName: "Acme",
		Industry:    "Manufacturing",
	})
	require.NoError(t, err)
	assert.Equal(t, 40, profile.CredibilityScore)

	_, err = f.service.CreateProfile(context.Background(), f.userID, &dto.CreateCompanyProfileRequest{
		CompanyName: "Acme Again",
	})
	assertAppErrorCode(t, err, apperrors.CodeAlreadyExists)
}

func TestCompanyProfileService_UpdateProfile_RescoresEveryWrite(t *testing.T) {
	f := newCompanyFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateProfile(ctx, f.userID, &dto.CreateCompanyProfileRequest{
		CompanyName: "Acme",
	})
	require.NoError(t, err)

	updated, err := f.service.UpdateProfile(ctx, f.userID, &dto.UpdateCompanyProfileRequest{
		Description: strPtr("We make everything"),
		Location:    strPtr("Springfield"),
	})
	require.NoError(t, err)
	assert.Equal(t, 60, updated.CredibilityScore)

	// Clearing a field drops its points.
	updated, err = f.service.UpdateProfile(ctx, f.userID, &dto.UpdateCompanyProfileRequest{
		Description: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.CredibilityScore)
}

func TestCompanyProfileService_UploadLogo(t *testing.T) {
	f := newCompanyFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateProfile(ctx, f.userID, &dto.CreateCompanyProfileRequest{
		CompanyName: "Acme",
	})
	require.NoError(t, err)

	upload := &dto.LogoUpload{
		FileName:    "logo.png",
		ContentType: "image/png",
		Size:        64,
		Content:     make([]byte, 64),
	}
	profile, err := f.service.UploadLogo(ctx, f.userID, upload)
	require.NoError(t, err)
	assert.NotEmpty(t, profile.LogoURL)
	assert.Equal(t, 40, profile.CredibilityScore)

	// Replacing the logo removes the previous object.
	firstKey := profile.LogoKey
	profile, err = f.service.UploadLogo(ctx, f.userID, upload)
	require.NoError(t, err)
	assert.NotEqual(t, firstKey, profile.LogoKey)
	assert.Contains(t, f.storage.deleted, firstKey)
}

func TestCompanyProfileService_UploadLogo_RejectsWrongType(t *testing.T) {
	f := newCompanyFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateProfile(ctx, f.userID, &dto.CreateCompanyProfileRequest{
		CompanyName: "Acme",
	})
	require.NoError(t, err)

	_, err = f.service.UploadLogo(ctx, f.userID, &dto.LogoUpload{
		FileName:    "logo.svg",
		ContentType: "image/svg+xml",
		Size:        10,
		Content:     make([]byte, 10),
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 415, appErr.HTTPCode)
}

func TestCompanyProfileService_RecountMetrics_RepairsDrift(t *testing.T) {
	f := newCompanyFixture(t)
	ctx := context.Background()

	profile, err := f.service.CreateProfile(ctx, f.userID, &dto.CreateCompanyProfileRequest{
		CompanyName: "Acme",
	})
	require.NoError(t, err)

	// Seed source-of-truth rows directly, then corrupt the counters.
	jobRepo := &fakeJobRepo{store: f.store}
	openJob := &models.JobPosting{CompanyID: profile.ID, EmployerID: f.userID, Status: models.JobStatusOpen, Title: "A", EmploymentType: models.EmploymentTypeFullTime}
	closedJob := &models.JobPosting{CompanyID: profile.ID, EmployerID: f.userID, Status: models.JobStatusClosed, Title: "B", EmploymentType: models.EmploymentTypeFullTime}
	require.NoError(t, jobRepo.Create(ctx, openJob))
	require.NoError(t, jobRepo.Create(ctx, closedJob))

	appRepo := &fakeApplicationRepo{store: f.store}
	require.NoError(t, appRepo.Create(ctx, &models.JobApplication{
		JobID: openJob.ID, ApplicantID: "p1", EmployerID: f.userID, CompanyID: profile.ID, ResumeID: "r1",
	}))

	profile.Metrics = models.CompanyMetrics{JobPostsCount: 99, ActiveJobsCount: -3, TotalApplicants: 0}

	metrics, err := f.service.RecountMetrics(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 2, metrics.JobPostsCount)
	assert.Equal(t, 1, metrics.ActiveJobsCount)
	assert.Equal(t, 1, metrics.TotalApplicants)
	assert.Equal(t, *metrics, profile.Metrics)
}

func TestCompanyProfileService_GetProfile_NotFound(t *testing.T) {
	f := newCompanyFixture(t)

	_, err := f.service.GetProfile(context.Background(), "nobody")
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}
