package models

// User carries the authenticated identity. Profile data lives on the
// role-specific aggregate, never here.
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"not null" json:"role"`
}
