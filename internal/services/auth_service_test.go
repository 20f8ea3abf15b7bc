package services_test

import (
	"context"
	"testing"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (services.AuthService, *memStore) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	store := newMemStore()
	return services.NewAuthService(&fakeUserRepo{store: store}), store
}

func TestAuthService_Register(t *testing.T) {
	service, _ := newAuthFixture(t)

	resp, err := service.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
		Role:     "applicant",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, models.UserRoleApplicant, resp.Role)

	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
	assert.Equal(t, "applicant", claims.Role)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	service, _ := newAuthFixture(t)
	ctx := context.Background()

	req := &dto.RegisterRequest{Email: "ada@example.com", Password: "correct horse", Role: "employer"}
	_, err := service.Register(ctx, req)
	require.NoError(t, err)

	_, err = service.Register(ctx, req)
	assertAppErrorCode(t, err, apperrors.CodeAlreadyExists)
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	service, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &dto.RegisterRequest{
		Email: "ada@example.com", Password: "short", Role: "applicant",
	})
	assertAppErrorCode(t, err, apperrors.CodeValidationFailed)

	_, err = service.Register(ctx, &dto.RegisterRequest{
		Email: "ada@example.com", Password: "correct horse", Role: "admin",
	})
	assertAppErrorCode(t, err, apperrors.CodeInvalidOperation)
}

func TestAuthService_Login(t *testing.T) {
	service, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &dto.RegisterRequest{
		Email: "ada@example.com", Password: "correct horse", Role: "applicant",
	})
	require.NoError(t, err)

	resp, err := service.Login(ctx, &dto.LoginRequest{
		Email: "ada@example.com", Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	// Wrong password and unknown email are indistinguishable.
	_, err = service.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assertAppErrorCode(t, err, apperrors.CodeInvalidCredentials)

	_, err = service.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "correct horse"})
	assertAppErrorCode(t, err, apperrors.CodeInvalidCredentials)
}
