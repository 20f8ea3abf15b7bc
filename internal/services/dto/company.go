package dto

type CreateCompanyProfileRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	Industry    string `json:"industry" validate:"omitempty,max=100"`
	Location    string `json:"location" validate:"omitempty,max=200"`
}

type UpdateCompanyProfileRequest struct {
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Industry    *string `json:"industry,omitempty" validate:"omitempty,max=100"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=200"`
}

// LogoUpload mirrors ResumeUpload for the company side.
type LogoUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     []byte
}
