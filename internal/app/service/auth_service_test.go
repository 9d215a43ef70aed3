package service

import (
	"testing"
	"time"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/repository"
	"github.com/eyesdeal/eyesdeal-backend/internal/db"
	"github.com/eyesdeal/eyesdeal-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func setupAuthServiceTest(t *testing.T) AuthService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(testDB)
	return NewAuthService(userRepo, testJWTSecret, time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, err := authService.Register("Ravi", "Ravi@Example.com", "password123", model.UserTypeAdmin, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ravi@example.com", user.Email)
	assert.Equal(t, model.UserTypeAdmin, user.Type)
	assert.NotEqual(t, "password123", user.PasswordHash)

	// Same email, any casing, is taken.
	_, err = authService.Register("Other", "RAVI@example.com", "password123", model.UserTypeStore, nil)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestAuthService_Register_DefaultsToStoreType(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, err := authService.Register("Maya", "maya@example.com", "password123", "", []string{"store-1"})
	require.NoError(t, err)
	assert.Equal(t, model.UserTypeStore, user.Type)
	assert.Equal(t, model.StringArray{"store-1"}, user.Stores)
}

func TestAuthService_Login(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, err := authService.Register("Ravi", "ravi@example.com", "password123", model.UserTypeAdmin, nil)
	require.NoError(t, err)

	user, token, err := authService.Login("ravi@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ravi@example.com", user.Email)

	claims, err := util.ValidateToken(token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Type)
}

func TestAuthService_Login_Failures(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, err := authService.Register("Ravi", "ravi@example.com", "password123", model.UserTypeAdmin, nil)
	require.NoError(t, err)

	_, _, err = authService.Login("ravi@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email answers identically to a wrong password.
	_, _, err = authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_GetUserByID(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, err := authService.Register("Ravi", "ravi@example.com", "password123", model.UserTypeAdmin, nil)
	require.NoError(t, err)

	found, err := authService.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	_, err = authService.GetUserByID("no-such-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
