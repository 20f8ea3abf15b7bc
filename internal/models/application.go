package models

// JobApplication joins an applicant profile to a job posting. The
// composite unique index on (job_id, applicant_id) is the durable
// enforcement of the one-application-per-job invariant: concurrent
// duplicate applies race on the index, not on a check-then-insert.
//
// EmployerID and CompanyID are denormalized from the posting at apply
// time as a point-in-time snapshot and are never re-synced.
type JobApplication struct {
	BaseModel
	JobID       string `gorm:"not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	ApplicantID string `gorm:"not null;uniqueIndex:idx_job_applicant" json:"applicant_id"`
	EmployerID  string `gorm:"not null;index" json:"employer_id"`
	CompanyID   string `gorm:"not null;index" json:"company_id"`
	ResumeID    string `gorm:"not null" json:"resume_id"`
	CoverLetter string `json:"cover_letter,omitempty"`

	Status ApplicationStatus `gorm:"not null;default:pending" json:"status"`
}
