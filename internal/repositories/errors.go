package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyTaken = errors.New("email already taken")

	ErrProfileNotFound      = errors.New("applicant profile not found")
	ErrProfileAlreadyExists = errors.New("applicant profile already exists for this user")
	ErrEducationNotFound    = errors.New("education entry not found")
	ErrExperienceNotFound   = errors.New("experience entry not found")
	ErrResumeNotFound       = errors.New("resume not found")

	ErrCompanyNotFound      = errors.New("company profile not found")
	ErrCompanyAlreadyExists = errors.New("company profile already exists for this user")

	ErrJobNotFound = errors.New("job posting not found")

	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists for this job and applicant")
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err comes from a Postgres unique
// index. The durable uniqueness invariants (profile per user,
// application per job+applicant) surface here, not via check-then-insert.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
