package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// AppHandlers holds every HTTP handler the router mounts.
type AppHandlers struct {
	AuthHandler             *AuthHandler
	ApplicantProfileHandler *ApplicantProfileHandler
	CompanyProfileHandler   *CompanyProfileHandler
	JobHandler              *JobHandler
	ApplicationHandler      *ApplicationHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:             NewAuthHandler(base, container.AuthService),
		ApplicantProfileHandler: NewApplicantProfileHandler(base, container.ApplicantProfileService),
		CompanyProfileHandler:   NewCompanyProfileHandler(base, container.CompanyProfileService),
		JobHandler:              NewJobHandler(base, container.JobService),
		ApplicationHandler:      NewApplicationHandler(base, container.ApplicationService),
	}
}
