package services

import (
	"context"
	"errors"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(ctx context.Context, userID, jobID string, req *dto.ApplyRequest) (*models.JobApplication, error)
	GetApplicantsByJob(ctx context.Context, employerID, jobID string) ([]dto.JobApplicantView, error)
	UpdateStatus(ctx context.Context, employerID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*models.JobApplication, error)
	GetMyApplications(ctx context.Context, userID string) ([]dto.MyApplicationView, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	profileRepo     repositories.ApplicantProfileRepository
	companyRepo     repositories.CompanyProfileRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ApplicantProfileRepository,
	companyRepo repositories.CompanyProfileRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
		companyRepo:     companyRepo,
	}
}

// Apply submits an application for an open job. Ownership fields are
// snapshotted from the job at submission time, and the duplicate check
// is left to the storage-level unique index so concurrent submissions
// cannot both succeed.
func (s *ApplicationServiceImpl) Apply(ctx context.Context, userID, jobID string, req *dto.ApplyRequest) (*models.JobApplication, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Applicant profile required before applying")
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrInvalidStatus("job", "Job is no longer accepting applications")
	}

	// Resume lookup scoped to the caller's own profile.
	resume, err := s.profileRepo.FindResume(ctx, profile.ID, req.ResumeID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Resume not found")
		}
		return nil, apperrors.InternalError(err)
	}

	application := &models.JobApplication{
		JobID:       job.ID,
		ApplicantID: profile.ID,
		EmployerID:  job.EmployerID,
		CompanyID:   job.CompanyID,
		ResumeID:    resume.ID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrConflict(err, "application", "You have already applied to this job")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application submitted",
		"application_id", application.ID, "job_id", job.ID, "applicant_id", profile.ID)
	return application, nil
}

// GetApplicantsByJob returns the applicant list for one of the
// employer's own jobs, with applicant identity projected in.
func (s *ApplicationServiceImpl) GetApplicantsByJob(ctx context.Context, employerID, jobID string) ([]dto.JobApplicantView, error) {
	job, err := s.jobRepo.FindByIDAndEmployer(ctx, jobID, employerID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrInsufficientPermissions
		}
		return nil, apperrors.InternalError(err)
	}

	applications, err := s.applicationRepo.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	applicantIDs := make([]string, 0, len(applications))
	for _, a := range applications {
		applicantIDs = append(applicantIDs, a.ApplicantID)
	}
	profiles, err := s.profileRepo.FindProfilesByIDs(ctx, applicantIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	profilesByID := make(map[string]models.ApplicantProfile, len(profiles))
	for _, p := range profiles {
		profilesByID[p.ID] = p
	}

	views := make([]dto.JobApplicantView, 0, len(applications))
	for _, a := range applications {
		view := dto.JobApplicantView{
			ApplicationID: a.ID,
			Status:        a.Status,
			ResumeID:      a.ResumeID,
			CoverLetter:   a.CoverLetter,
			AppliedAt:     a.CreatedAt,
		}
		if p, ok := profilesByID[a.ApplicantID]; ok {
			view.Applicant = dto.ApplicantSummary{
				ProfileID: p.ID,
				FirstName: p.FirstName,
				LastName:  p.LastName,
				Headline:  p.Headline,
				Skills:    p.GetSkills(),
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdateStatus moves an application through the status machine. Checks
// run in order: existence, ownership, transition legality.
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, employerID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*models.JobApplication, error) {
	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if application.EmployerID != employerID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	next := models.ApplicationStatus(req.Status)
	if !application.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidTransition("application",
			"Cannot change status from "+string(application.Status)+" to "+string(next))
	}

	if err := s.applicationRepo.UpdateStatus(ctx, application.ID, next); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	application.Status = next
	logger.CtxInfo(ctx, "application status updated",
		"application_id", application.ID, "status", next)
	return application, nil
}

// GetMyApplications lists the caller's applications with job and
// company summaries projected in.
func (s *ApplicationServiceImpl) GetMyApplications(ctx context.Context, userID string) ([]dto.MyApplicationView, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Applicant profile required")
		}
		return nil, apperrors.InternalError(err)
	}

	applications, err := s.applicationRepo.ListByApplicant(ctx, profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobIDs := make([]string, 0, len(applications))
	companyIDs := make([]string, 0, len(applications))
	for _, a := range applications {
		jobIDs = append(jobIDs, a.JobID)
		companyIDs = append(companyIDs, a.CompanyID)
	}

	jobs, err := s.jobRepo.FindByIDs(ctx, jobIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	jobsByID := make(map[string]models.JobPosting, len(jobs))
	for _, j := range jobs {
		jobsByID[j.ID] = j
	}

	companies, err := s.companyRepo.FindByIDs(ctx, companyIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	companiesByID := make(map[string]models.CompanyProfile, len(companies))
	for _, c := range companies {
		companiesByID[c.ID] = c
	}

	views := make([]dto.MyApplicationView, 0, len(applications))
	for _, a := range applications {
		view := dto.MyApplicationView{
			ApplicationID: a.ID,
			Status:        a.Status,
			AppliedAt:     a.CreatedAt,
		}
		if j, ok := jobsByID[a.JobID]; ok {
			view.Job = dto.JobSummary{
				ID:       j.ID,
				Title:    j.Title,
				Location: j.Location,
				Status:   j.Status,
			}
		}
		if c, ok := companiesByID[a.CompanyID]; ok {
			view.Company = dto.CompanySummary{
				ID:          c.ID,
				CompanyName: c.CompanyName,
				LogoURL:     c.LogoURL,
			}
		}
		views = append(views, view)
	}
	return views, nil
}
