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

type applicationFixture struct {
	store   *memStore
	service services.ApplicationService

	applicantUserID string
	profile         *models.ApplicantProfile
	resume          *models.Resume

	employerUserID string
	company        *models.CompanyProfile
	job            *models.JobPosting
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	store := newMemStore()
	profileRepo := &fakeProfileRepo{store: store}
	companyRepo := &fakeCompanyRepo{store: store}
	jobRepo := &fakeJobRepo{store: store}
	applicationRepo := &fakeApplicationRepo{store: store}

	f := &applicationFixture{
		store: store,
		service: services.NewApplicationService(
			applicationRepo, jobRepo, profileRepo, companyRepo,
		),
		applicantUserID: "user-applicant",
		employerUserID:  "user-employer",
	}

	ctx := context.Background()

	f.profile = &models.ApplicantProfile{UserID: f.applicantUserID, FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, profileRepo.CreateProfile(ctx, f.profile))

	f.resume = &models.Resume{ProfileID: f.profile.ID, FileName: "cv.pdf", FileURL: "u", StorageKey: "k"}
	require.NoError(t, profileRepo.CreateResume(ctx, f.resume))

	f.company = &models.CompanyProfile{UserID: f.employerUserID, CompanyName: "Acme"}
	require.NoError(t, companyRepo.Create(ctx, f.company))

	f.job = &models.JobPosting{
		EmployerID:     f.employerUserID,
		CompanyID:      f.company.ID,
		Title:          "Backend Engineer",
		EmploymentType: models.EmploymentTypeFullTime,
		Status:         models.JobStatusOpen,
	}
	require.NoError(t, jobRepo.Create(ctx, f.job))

	return f
}

func assertAppErrorCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func TestApplicationService_Apply_Success(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	application, err := f.service.Apply(ctx, f.applicantUserID, f.job.ID, &dto.ApplyRequest{
		ResumeID:    f.resume.ID,
		CoverLetter: "Hello",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, application.Status)
	assert.Equal(t, f.profile.ID, application.ApplicantID)
	assert.Equal(t, f.job.EmployerID, application.EmployerID)
	assert.Equal(t, f.job.CompanyID, application.CompanyID)
	assert.Equal(t, 1, f.company.Metrics.TotalApplicants)
}

func TestApplicationService_Apply_WithoutProfile(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.Apply(context.Background(), "user-no-profile", f.job.ID, &dto.ApplyRequest{
		ResumeID: f.resume.ID,
	})

	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestApplicationService_Apply_JobNotFound(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.Apply(context.Background(), f.applicantUserID, "missing-job", &dto.ApplyRequest{
		ResumeID: f.resume.ID,
	})

	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestApplicationService_Apply_ClosedJob(t *testing.T) {
	f := newApplicationFixture(t)
	f.job.Status = models.JobStatusClosed

	_, err := f.service.Apply(context.Background(), f.applicantUserID, f.job.ID, &dto.ApplyRequest{
		ResumeID: f.resume.ID,
	})

	assertAppErrorCode(t, err, apperrors.CodeInvalidStatus)
}

func TestApplicationService_Apply_ForeignResume(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	// A resume owned by a different profile must behave as missing.
	otherProfile := &models.ApplicantProfile{UserID: "other-user", FirstName: "Eve", LastName: "X"}
	profileRepo := &fakeProfileRepo{store: f.store}
	require.NoError(t, profileRepo.CreateProfile(ctx, otherProfile))
	foreignResume := &models.Resume{ProfileID: otherProfile.ID, FileName: "cv.pdf", FileURL: "u", StorageKey: "k2"}
	require.NoError(t, profileRepo.CreateResume(ctx, foreignResume))

	_, err := f.service.Apply(ctx, f.applicantUserID, f.job.ID, &dto.ApplyRequest{
		ResumeID: foreignResume.ID,
	})

	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	_, err := f.service.Apply(ctx, f.applicantUserID, f.job.ID, &dto.ApplyRequest{ResumeID: f.resume.ID})
	require.NoError(t, err)

	_, err = f.service.Apply(ctx, f.applicantUserID, f.job.ID, &dto.ApplyRequest{ResumeID: f.resume.ID})
	assertAppErrorCode(t, err, apperrors.CodeConflict)

	// Counter must not move on the rejected duplicate.
	assert.Equal(t, 1, f.company.Metrics.TotalApplicants)
}

func TestApplicationService_GetApplicantsByJob(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	_, err := f.service.Apply(ctx, f.applicantUserID, f.job.ID, &dto.ApplyRequest{
		ResumeID:    f.resume.ID,
		CoverLetter: "Hi",
	})
	require.NoError(t, err)

	views, err := f.service.GetApplicantsByJob(ctx, f.employerUserID, f.job.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Ada", views[0].Applicant.FirstName)
	assert.Equal(t, f.profile.ID, views[0].Applicant.ProfileID)
	assert.Equal(t, models.ApplicationStatusPending, views[0].Status)
}

func TestApplicationService_GetApplicantsByJob_NotOwner(t *testing.T) {
	f := newApplicationFixture(t)

	// Another employer, and an unknown job, both come back Forbidden:
	// the lookup is scoped to the owner, so neither case reveals
	// whether the job exists.
	_, err := f.service.GetApplicantsByJob(context.Background(), "other-employer", f.job.ID)
	assertAppErrorCode(t, err, apperrors.CodeForbidden)

	_, err = f.service.GetApplicantsByJob(context.Background(), f.employerUserID, "missing-job")
	assertAppErrorCode(t, err, apperrors.CodeForbidden)
}

func TestApplicationService_UpdateStatus_HappyPath(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	application, err := f.service.Apply(ctx, f.applicantUserID, f.job.ID, &dto.ApplyRequest{ResumeID: f.resume.ID})
	require.NoError(t, err)

	updated, err := f.service.UpdateStatus(ctx, f.employerUserID, application.ID,
		&dto.UpdateApplicationStatusRequest{Status: "reviewed"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusReviewed, updated.Status)

	updated, err = f.service.UpdateStatus(ctx, f.employerUserID, application.ID,
		&dto.UpdateApplicationStatusRequest{Status: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)
}

func TestApplicationService_UpdateStatus_ChecksRunInOrder(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	application, err := f.service.Apply(ctx, f.applicantUserID, f.job.ID, &dto.ApplyRequest{ResumeID: f.resume.ID})
	require.NoError(t, err)

	// Existence first.
	_, err = f.service.UpdateStatus(ctx, f.employerUserID, "missing-app",
		&dto.UpdateApplicationStatusRequest{Status: "reviewed"})
	assertAppErrorCode(t, err, apperrors.CodeNotFound)

	// Then ownership, even when the requested transition would also be
	// illegal.
	_, err = f.service.UpdateStatus(ctx, "other-employer", application.ID,
		&dto.UpdateApplicationStatusRequest{Status: "pending"})
	assertAppErrorCode(t, err, apperrors.CodeForbidden)

	// Then transition legality.
	_, err = f.service.UpdateStatus(ctx, f.employerUserID, application.ID,
		&dto.UpdateApplicationStatusRequest{Status: "pending"})
	assertAppErrorCode(t, err, apperrors.CodeInvalidTransition)
}

func TestApplicationService_UpdateStatus_TerminalIsFrozen(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	application, err := f.service.Apply(ctx, f.applicantUserID, f.job.ID, &dto.ApplyRequest{ResumeID: f.resume.ID})
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(ctx, f.employerUserID, application.ID,
		&dto.UpdateApplicationStatusRequest{Status: "rejected"})
	require.NoError(t, err)

	for _, next := range []string{"pending", "reviewed", "accepted", "rejected"} {
		_, err = f.service.UpdateStatus(ctx, f.employerUserID, application.ID,
			&dto.UpdateApplicationStatusRequest{Status: next})
		assertAppErrorCode(t, err, apperrors.CodeInvalidTransition)
	}
}

func TestApplicationService_GetMyApplications(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	_, err := f.service.Apply(ctx, f.applicantUserID, f.job.ID, &dto.ApplyRequest{ResumeID: f.resume.ID})
	require.NoError(t, err)

	views, err := f.service.GetMyApplications(ctx, f.applicantUserID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, f.job.Title, views[0].Job.Title)
	assert.Equal(t, "Acme", views[0].Company.CompanyName)
	assert.Equal(t, models.ApplicationStatusPending, views[0].Status)
}

func TestApplicationService_GetMyApplications_IsolatedPerApplicant(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	_, err := f.service.Apply(ctx, f.applicantUserID, f.job.ID, &dto.ApplyRequest{ResumeID: f.resume.ID})
	require.NoError(t, err)

	profileRepo := &fakeProfileRepo{store: f.store}
	otherProfile := &models.ApplicantProfile{UserID: "other-user", FirstName: "Eve", LastName: "X"}
	require.NoError(t, profileRepo.CreateProfile(ctx, otherProfile))

	views, err := f.service.GetMyApplications(ctx, "other-user")
	require.NoError(t, err)
	assert.Empty(t, views)
}
