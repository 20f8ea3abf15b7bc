package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// JobPosting is created by an employer and always resolved against
// exactly one CompanyProfile owned by that employer. EmployerID,
// CompanyID and Status are set server-side, never client-supplied.
type JobPosting struct {
	BaseModel
	EmployerID     string         `gorm:"not null;index" json:"employer_id"`
	CompanyID      string         `gorm:"not null;index" json:"company_id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `json:"description"`
	EmploymentType EmploymentType `gorm:"not null" json:"employment_type"`
	Location       string         `json:"location"`
	Remote         bool           `gorm:"default:false" json:"remote"`

	// Optional salary range
	SalaryMin      *float64 `json:"salary_min,omitempty"`
	SalaryMax      *float64 `json:"salary_max,omitempty"`
	SalaryCurrency string   `json:"salary_currency,omitempty"`

	// Optional requirements
	RequiredSkills  datatypes.JSON `gorm:"type:jsonb" json:"required_skills"`
	ExperienceYears *int           `json:"experience_years,omitempty"`
	EducationLevel  string         `json:"education_level,omitempty"`

	Status JobStatus `gorm:"not null;default:open" json:"status"`
}

// GetRequiredSkills decodes the JSONB skills requirement.
func (j *JobPosting) GetRequiredSkills() []string {
	var skills []string
	if len(j.RequiredSkills) > 0 {
		_ = json.Unmarshal(j.RequiredSkills, &skills)
	}
	return skills
}

// SetRequiredSkills encodes the skills requirement.
func (j *JobPosting) SetRequiredSkills(skills []string) {
	data, _ := json.Marshal(skills)
	j.RequiredSkills = datatypes.JSON(data)
}
