package services

import (
	"testing"
	"time"

	"github.com/RxV00/Forgptabinote/domain"
	"github.com/RxV00/Forgptabinote/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies for testing
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService) domain.AuthService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if sessionRepo == nil {
		sessionRepo = mocks.NewMockSessionRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}

	return NewAuthService(userRepo, sessionRepo, passwordSvc, 30*24*time.Hour)
}

// createValidUser creates a valid user entity for testing
func createValidUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           1,
		Email:        "test@example.com",
		PasswordHash: "hashed_password123",
		Name:         "Test User",
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
		CreatedAt:    time.Now().Add(-24 * time.Hour),
		UpdatedAt:    time.Now().Add(-1 * time.Hour),
	}
}

// createBannedUser creates a banned user entity for testing
func createBannedUser(t *testing.T) *domain.User {
	t.Helper()

	user := createValidUser(t)
	user.Status = domain.StatusBanned
	return user
}

// createAdminUser creates an admin user entity for testing
func createAdminUser(t *testing.T) *domain.User {
	t.Helper()

	user := createValidUser(t)
	user.ID = 2
	user.Email = "admin@example.com"
	user.Role = domain.RoleAdmin
	return user
}

// createValidSession creates a valid session entity for testing
func createValidSession(t *testing.T, userID uint) *domain.Session {
	t.Helper()

	return &domain.Session{
		ID:        "f1db1c65-5be8-4b3d-9d9f-3f3a4a1d0001",
		UserID:    userID,
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
		CreatedAt: time.Now(),
	}
}

// createValidResetToken creates a live reset token entity for testing
func createValidResetToken(t *testing.T, userID uint) *domain.PasswordResetToken {
	t.Helper()

	return &domain.PasswordResetToken{
		ID:        1,
		Token:     "9a1f9a51-20b2-4c1e-93fa-8f5b3c2e0001",
		UserID:    userID,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}
}

// createExpiredResetToken creates an expired reset token entity for testing
func createExpiredResetToken(t *testing.T, userID uint) *domain.PasswordResetToken {
	t.Helper()

	token := createValidResetToken(t, userID)
	token.ExpiresAt = time.Now().Add(-time.Hour)
	return token
}
