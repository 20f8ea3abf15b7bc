package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// ApplicantProfile is the applicant-side aggregate: one per user
// account (user_id unique index), owning its nested collections.
// Deleting the profile cascades to every nested entry.
type ApplicantProfile struct {
	BaseModel
	UserID    string         `gorm:"uniqueIndex;not null" json:"user_id"`
	FirstName string         `gorm:"not null" json:"first_name"`
	LastName  string         `gorm:"not null" json:"last_name"`
	Headline  string         `json:"headline"`
	Skills    datatypes.JSON `gorm:"type:jsonb" json:"skills"`

	// Relations
	Education  []Education  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"education"`
	Experience []Experience `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"experience"`
	Resumes    []Resume     `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"resumes"`
}

// Education is a nested entry with a stable identifier, always looked
// up scoped to its owning profile.
type Education struct {
	BaseModel
	ProfileID    string     `gorm:"not null;index" json:"profile_id"`
	School       string     `gorm:"not null" json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Current      bool       `gorm:"default:false" json:"current"`
}

type Experience struct {
	BaseModel
	ProfileID   string     `gorm:"not null;index" json:"profile_id"`
	Company     string     `gorm:"not null" json:"company"`
	Position    string     `gorm:"not null" json:"position"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Current     bool       `gorm:"default:false" json:"current"`
}

// Resume is stored as a has-many but held to a single retained entry
// per profile: uploading a new resume removes the previous one first.
type Resume struct {
	BaseModel
	ProfileID  string    `gorm:"not null;index" json:"profile_id"`
	FileName   string    `gorm:"not null" json:"file_name"`
	FileURL    string    `gorm:"not null" json:"file_url"`
	StorageKey string    `gorm:"not null" json:"-"`
	UploadedAt time.Time `gorm:"default:now()" json:"uploaded_at"`
}

// GetSkills decodes the JSONB skills column.
func (p *ApplicantProfile) GetSkills() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	return skills
}

// SetSkills encodes skills into the JSONB column.
func (p *ApplicantProfile) SetSkills(skills []string) {
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}
