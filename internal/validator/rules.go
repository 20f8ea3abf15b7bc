package validator

import (
	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// Custom rules for domain enums. Empty values pass; pair with
// "required" when the field is mandatory.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("is-employment-type", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return models.EmploymentType(value).IsValid()
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("is-application-status", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return models.ApplicationStatus(value).IsValid()
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("is-user-role", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		role := models.UserRole(value)
		return role == models.UserRoleApplicant || role == models.UserRoleEmployer
	}); err != nil {
		return err
	}

	return nil
}
