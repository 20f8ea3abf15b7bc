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

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type JobService interface {
	CreateJob(ctx context.Context, employerID string, req *dto.CreateJobRequest) (*models.JobPosting, error)
	UpdateJob(ctx context.Context, employerID, jobID string, req *dto.UpdateJobRequest) (*models.JobPosting, error)
	ArchiveJob(ctx context.Context, employerID, jobID string) (*models.JobPosting, error)
	RestoreJob(ctx context.Context, employerID, jobID string) (*models.JobPosting, error)

	// Public surface: open postings only.
	GetJobByID(ctx context.Context, jobID string) (*models.JobPosting, error)
	SearchJobs(ctx context.Context, req *dto.SearchJobsRequest) (*dto.JobListResponse, error)

	GetEmployerJobs(ctx context.Context, employerID string) ([]models.JobPosting, error)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	companyRepo repositories.CompanyProfileRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyProfileRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

// CreateJob resolves the employer's company profile, persists the
// posting with server-side ownership fields, and bumps both counters.
func (s *JobServiceImpl) CreateJob(ctx context.Context, employerID string, req *dto.CreateJobRequest) (*models.JobPosting, error) {
	company, err := s.companyRepo.FindByUserID(ctx, employerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "company", "Company profile required before posting jobs")
		}
		return nil, apperrors.InternalError(err)
	}

	job := &models.JobPosting{
		EmployerID:      employerID,
		CompanyID:       company.ID,
		Title:           req.Title,
		Description:     req.Description,
		EmploymentType:  models.EmploymentType(req.EmploymentType),
		Location:        req.Location,
		Remote:          req.Remote,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		SalaryCurrency:  req.SalaryCurrency,
		ExperienceYears: req.ExperienceYears,
		EducationLevel:  req.EducationLevel,
		Status:          models.JobStatusOpen,
	}
	job.SetRequiredSkills(req.RequiredSkills)

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.companyRepo.IncrementJobCounts(ctx, company.ID, 1, 1); err != nil {
		// The posting exists; counter drift is repairable via recount.
		logger.CtxError(ctx, "failed to increment job counters after create",
			"company_id", company.ID, "job_id", job.ID, "error", err.Error())
	}

	logger.CtxInfo(ctx, "job posting created", "job_id", job.ID, "company_id", company.ID)
	return job, nil
}

func (s *JobServiceImpl) UpdateJob(ctx context.Context, employerID, jobID string, req *dto.UpdateJobRequest) (*models.JobPosting, error) {
	job, err := s.resolveOwnedJob(ctx, employerID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.EmploymentType != nil {
		job.EmploymentType = models.EmploymentType(*req.EmploymentType)
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Remote != nil {
		job.Remote = *req.Remote
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.SalaryCurrency != nil {
		job.SalaryCurrency = *req.SalaryCurrency
	}
	if req.RequiredSkills != nil {
		job.SetRequiredSkills(req.RequiredSkills)
	}
	if req.ExperienceYears != nil {
		job.ExperienceYears = req.ExperienceYears
	}
	if req.EducationLevel != nil {
		job.EducationLevel = *req.EducationLevel
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// ArchiveJob closes a posting. Archiving an already closed posting is a
// no-op, so the active counter moves only on an actual transition.
func (s *JobServiceImpl) ArchiveJob(ctx context.Context, employerID, jobID string) (*models.JobPosting, error) {
	return s.setStatus(ctx, employerID, jobID, models.JobStatusClosed, -1)
}

// RestoreJob reopens a closed posting, idempotently.
func (s *JobServiceImpl) RestoreJob(ctx context.Context, employerID, jobID string) (*models.JobPosting, error) {
	return s.setStatus(ctx, employerID, jobID, models.JobStatusOpen, 1)
}

func (s *JobServiceImpl) setStatus(ctx context.Context, employerID, jobID string, target models.JobStatus, activeDelta int) (*models.JobPosting, error) {
	job, err := s.resolveOwnedJob(ctx, employerID, jobID)
	if err != nil {
		return nil, err
	}

	if job.Status == target {
		return job, nil
	}

	// Conditional flip: a concurrent request that won the race leaves
	// zero rows affected here, and the counter stays untouched.
	changed, err := s.jobRepo.UpdateStatus(ctx, job.ID, job.Status, target)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !changed {
		current, err := s.jobRepo.FindByID(ctx, job.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return current, nil
	}

	job.Status = target
	if err := s.companyRepo.IncrementJobCounts(ctx, job.CompanyID, 0, activeDelta); err != nil {
		logger.CtxError(ctx, "failed to adjust active job counter",
			"company_id", job.CompanyID, "job_id", job.ID, "error", err.Error())
	}

	logger.CtxInfo(ctx, "job status changed", "job_id", job.ID, "status", job.Status)
	return job, nil
}

func (s *JobServiceImpl) GetJobByID(ctx context.Context, jobID string) (*models.JobPosting, error) {
	job, err := s.jobRepo.FindOpenByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) SearchJobs(ctx context.Context, req *dto.SearchJobsRequest) (*dto.JobListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	criteria := repositories.JobSearchCriteria{
		Remote:    req.Remote,
		SalaryMin: req.SalaryMin,
		SalaryMax: req.SalaryMax,
		Page:      page,
		PageSize:  limit,
	}
	for _, t := range req.EmploymentTypes {
		criteria.EmploymentTypes = append(criteria.EmploymentTypes, models.EmploymentType(t))
	}

	jobs, total, err := s.jobRepo.SearchOpen(ctx, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListResponse{
		Jobs:       jobs,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *JobServiceImpl) GetEmployerJobs(ctx context.Context, employerID string) ([]models.JobPosting, error) {
	jobs, err := s.jobRepo.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// resolveOwnedJob fetches the posting and checks ownership. A missing
// posting and a foreign posting are distinct failures here: existence
// first, then ownership.
func (s *JobServiceImpl) resolveOwnedJob(ctx context.Context, employerID, jobID string) (*models.JobPosting, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return job, nil
}
