package services

import (
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/storage"
)

// ServiceContainer holds every service the application wires at boot.
type ServiceContainer struct {
	AuthService             AuthService
	ApplicantProfileService ApplicantProfileService
	CompanyProfileService   CompanyProfileService
	JobService              JobService
	ApplicationService      ApplicationService
}

// NewServiceContainer builds the full service graph over one set of
// repositories and one storage backend.
func NewServiceContainer(
	userRepo repositories.UserRepository,
	profileRepo repositories.ApplicantProfileRepository,
	companyRepo repositories.CompanyProfileRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	store storage.Storage,
	limits UploadLimits,
) *ServiceContainer {
	return &ServiceContainer{
		AuthService:             NewAuthService(userRepo),
		ApplicantProfileService: NewApplicantProfileService(profileRepo, store, limits),
		CompanyProfileService:   NewCompanyProfileService(companyRepo, store, limits),
		JobService:              NewJobService(jobRepo, companyRepo),
		ApplicationService:      NewApplicationService(applicationRepo, jobRepo, profileRepo, companyRepo),
	}
}
