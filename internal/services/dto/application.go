package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type ApplyRequest struct {
	ResumeID    string `json:"resume_id" validate:"required"`
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=10000"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

// ApplicantSummary projects applicant identity into the employer view
// so callers never need a second round-trip for display fields.
type ApplicantSummary struct {
	ProfileID string   `json:"profile_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Headline  string   `json:"headline"`
	Skills    []string `json:"skills"`
}

// JobApplicantView is one row of the "applicants for a job" view.
type JobApplicantView struct {
	ApplicationID string                   `json:"application_id"`
	Status        models.ApplicationStatus `json:"status"`
	ResumeID      string                   `json:"resume_id"`
	CoverLetter   string                   `json:"cover_letter,omitempty"`
	AppliedAt     time.Time                `json:"applied_at"`
	Applicant     ApplicantSummary         `json:"applicant"`
}

type JobSummary struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Location string           `json:"location"`
	Status   models.JobStatus `json:"status"`
}

type CompanySummary struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	LogoURL     string `json:"logo_url,omitempty"`
}

// MyApplicationView is one row of the "my applications" view.
type MyApplicationView struct {
	ApplicationID string                   `json:"application_id"`
	Status        models.ApplicationStatus `json:"status"`
	AppliedAt     time.Time                `json:"applied_at"`
	Job           JobSummary               `json:"job"`
	Company       CompanySummary           `json:"company"`
}
