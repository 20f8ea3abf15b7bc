package dto

import "time"

// --- Applicant profile requests ---

type CreateApplicantProfileRequest struct {
	FirstName string   `json:"first_name" validate:"required,max=100"`
	LastName  string   `json:"last_name" validate:"required,max=100"`
	Headline  string   `json:"headline" validate:"omitempty,max=200"`
	Skills    []string `json:"skills" validate:"omitempty,max=50,dive,max=100"`
}

type UpdateApplicantProfileRequest struct {
	FirstName *string  `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string  `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Headline  *string  `json:"headline,omitempty" validate:"omitempty,max=200"`
	Skills    []string `json:"skills,omitempty" validate:"omitempty,max=50,dive,max=100"`
}

type AddEducationRequest struct {
	School       string     `json:"school" validate:"required,max=200"`
	Degree       string     `json:"degree" validate:"omitempty,max=100"`
	FieldOfStudy string     `json:"field_of_study" validate:"omitempty,max=100"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Current      bool       `json:"current"`
}

type UpdateEducationRequest struct {
	School       *string    `json:"school,omitempty" validate:"omitempty,max=200"`
	Degree       *string    `json:"degree,omitempty" validate:"omitempty,max=100"`
	FieldOfStudy *string    `json:"field_of_study,omitempty" validate:"omitempty,max=100"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Current      *bool      `json:"current,omitempty"`
}

type AddExperienceRequest struct {
	Company     string     `json:"company" validate:"required,max=200"`
	Position    string     `json:"position" validate:"required,max=200"`
	Description string     `json:"description" validate:"omitempty,max=5000"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Current     bool       `json:"current"`
}

type UpdateExperienceRequest struct {
	Company     *string    `json:"company,omitempty" validate:"omitempty,max=200"`
	Position    *string    `json:"position,omitempty" validate:"omitempty,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Current     *bool      `json:"current,omitempty"`
}

// --- Resume upload ---

// ResumeUpload is the opaque file reference the boundary hands to the
// core: raw bytes plus the original filename and MIME type.
type ResumeUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     []byte
}
