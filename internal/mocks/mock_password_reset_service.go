package mocks

import (
	"context"

	"github.com/RxV00/Forgptabinote/domain"
)

// MockPasswordResetService implements domain.PasswordResetService interface for testing
type MockPasswordResetService struct {
	RequestFunc  func(ctx context.Context, email string) error
	ValidateFunc func(ctx context.Context, tokenValue string) (*domain.ResetTokenInfo, error)
	ConsumeFunc  func(ctx context.Context, tokenValue, newPassword string) error
}

// NewMockPasswordResetService creates a new MockPasswordResetService with default behaviors
func NewMockPasswordResetService() *MockPasswordResetService {
	return &MockPasswordResetService{}
}

// Request issues a reset token for the address if it is registered
func (m *MockPasswordResetService) Request(ctx context.Context, email string) error {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Validate checks a token without consuming it
func (m *MockPasswordResetService) Validate(ctx context.Context, tokenValue string) (*domain.ResetTokenInfo, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, tokenValue)
	}
	// Default behavior: unknown token
	return nil, domain.ErrTokenNotFound
}

// Consume redeems a token and sets the new password
func (m *MockPasswordResetService) Consume(ctx context.Context, tokenValue, newPassword string) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, tokenValue, newPassword)
	}
	// Default behavior: unknown token
	return domain.ErrTokenNotFound
}

// Compile-time interface compliance verification
var _ domain.PasswordResetService = (*MockPasswordResetService)(nil)
