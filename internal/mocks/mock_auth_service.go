package mocks

import (
	"context"

	"github.com/RxV00/Forgptabinote/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	SignupFunc  func(ctx context.Context, email, password, name string) (*domain.User, error)
	LoginFunc   func(ctx context.Context, email, password string) (*domain.User, *domain.Session, error)
	ResolveFunc func(ctx context.Context, sessionID string) (*domain.User, error)
	LogoutFunc  func(ctx context.Context, sessionID string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Signup registers a new account
func (m *MockAuthService) Signup(ctx context.Context, email, password, name string) (*domain.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, password, name)
	}
	// Default behavior: echo a fresh USER account
	return &domain.User{ID: 1, Email: email, Name: name, Role: domain.RoleUser, Status: domain.StatusActive}, nil
}

// Login verifies credentials and issues a session
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: bad credentials
	return nil, nil, domain.ErrInvalidCredentials
}

// Resolve maps a session ID to its user
func (m *MockAuthService) Resolve(ctx context.Context, sessionID string) (*domain.User, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, sessionID)
	}
	// Default behavior: unknown session
	return nil, domain.ErrSessionNotFound
}

// Logout revokes a session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
