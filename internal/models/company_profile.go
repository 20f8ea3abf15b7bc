package models

// CompanyMetrics are denormalized counters over jobs and applications.
// They are caches of derivable facts; RecountMetrics on the repository
// is the repair path when they drift.
type CompanyMetrics struct {
	JobPostsCount   int `gorm:"default:0" json:"job_posts_count"`
	ActiveJobsCount int `gorm:"default:0" json:"active_jobs_count"`
	TotalApplicants int `gorm:"default:0" json:"total_applicants"`
}

// CompanyProfile is the employer-side aggregate: one per user account.
type CompanyProfile struct {
	BaseModel
	UserID      string `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName string `gorm:"not null" json:"company_name"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	LogoURL     string `json:"logo_url"`
	LogoKey     string `json:"-"`

	// CredibilityScore is a pure function of field presence, recomputed
	// on every create/update. It never drifts because it is never
	// incrementally maintained.
	CredibilityScore int `gorm:"default:0" json:"credibility_score"`

	Metrics CompanyMetrics `gorm:"embedded" json:"metrics"`
}

const credibilityFieldPoints = 20

// ComputeCredibilityScore returns the score for the profile's current
// state: fixed points per populated descriptive field plus logo.
// Idempotent by construction.
func (p *CompanyProfile) ComputeCredibilityScore() int {
	score := 0
	if p.CompanyName != "" {
		score += credibilityFieldPoints
	}
	if p.Description != "" {
		score += credibilityFieldPoints
	}
	if p.Industry != "" {
		score += credibilityFieldPoints
	}
	if p.Location != "" {
		score += credibilityFieldPoints
	}
	if p.LogoURL != "" {
		score += credibilityFieldPoints
	}
	return score
}
