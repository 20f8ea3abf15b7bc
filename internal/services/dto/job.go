package dto

import "jobboard_backend/internal/models"

type CreateJobRequest struct {
	Title          string `json:"title" validate:"required,min=3,max=200"`
	Description    string `json:"description" validate:"omitempty,max=10000"`
	EmploymentType string `json:"employment_type" validate:"required,is-employment-type"`
	Location       string `json:"location" validate:"omitempty,max=200"`
	Remote         bool   `json:"remote"`

	SalaryMin      *float64 `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax      *float64 `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	SalaryCurrency string   `json:"salary_currency,omitempty" validate:"omitempty,max=10"`

	RequiredSkills  []string `json:"required_skills,omitempty" validate:"omitempty,max=50,dive,max=100"`
	ExperienceYears *int     `json:"experience_years,omitempty" validate:"omitempty,min=0"`
	EducationLevel  string   `json:"education_level,omitempty" validate:"omitempty,max=100"`
}

// UpdateJobRequest deliberately has no employer, company or status
// fields: the general update path can never touch them.
type UpdateJobRequest struct {
	Title          *string `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description    *string `json:"description,omitempty" validate:"omitempty,max=10000"`
	EmploymentType *string `json:"employment_type,omitempty" validate:"omitempty,is-employment-type"`
	Location       *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Remote         *bool   `json:"remote,omitempty"`

	SalaryMin      *float64 `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax      *float64 `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	SalaryCurrency *string  `json:"salary_currency,omitempty" validate:"omitempty,max=10"`

	RequiredSkills  []string `json:"required_skills,omitempty" validate:"omitempty,max=50,dive,max=100"`
	ExperienceYears *int     `json:"experience_years,omitempty" validate:"omitempty,min=0"`
	EducationLevel  *string  `json:"education_level,omitempty" validate:"omitempty,max=100"`
}

type SearchJobsRequest struct {
	EmploymentTypes []string `form:"employment_type" validate:"omitempty,dive,is-employment-type"`
	Remote          *bool    `form:"remote"`
	SalaryMin       *float64 `form:"salary_min" validate:"omitempty,min=0"`
	SalaryMax       *float64 `form:"salary_max" validate:"omitempty,min=0"`
	Page            int      `form:"page"`
	Limit           int      `form:"limit"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int64 `json:"totalPages"`
}

type JobListResponse struct {
	Jobs       []models.JobPosting `json:"jobs"`
	Pagination Pagination          `json:"pagination"`
}

// NewPagination derives page metadata from a total count.
func NewPagination(page, limit int, totalItems int64) Pagination {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (totalItems + int64(limit) - 1) / int64(limit)
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
