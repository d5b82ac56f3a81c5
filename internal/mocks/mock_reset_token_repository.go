package mocks

import (
	"context"

	"github.com/RxV00/Forgptabinote/domain"
)

// MockResetTokenRepository implements domain.ResetTokenRepository interface for testing
type MockResetTokenRepository struct {
	CreateFunc        func(ctx context.Context, token *domain.PasswordResetToken) error
	FindByTokenFunc   func(ctx context.Context, tokenValue string) (*domain.PasswordResetToken, error)
	DeleteFunc        func(ctx context.Context, tokenValue string) error
	ConsumeFunc       func(ctx context.Context, tokenValue, newPasswordHash string) error
	DeleteExpiredFunc func(ctx context.Context) (int64, error)
}

// NewMockResetTokenRepository creates a new MockResetTokenRepository with default behaviors
func NewMockResetTokenRepository() *MockResetTokenRepository {
	return &MockResetTokenRepository{}
}

// Create persists a reset token
func (m *MockResetTokenRepository) Create(ctx context.Context, token *domain.PasswordResetToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	// Default behavior: success
	return nil
}

// FindByToken finds a reset token by its value
func (m *MockResetTokenRepository) FindByToken(ctx context.Context, tokenValue string) (*domain.PasswordResetToken, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, tokenValue)
	}
	// Default behavior: not found
	return nil, domain.ErrTokenNotFound
}

// Delete removes a reset token
func (m *MockResetTokenRepository) Delete(ctx context.Context, tokenValue string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tokenValue)
	}
	// Default behavior: success
	return nil
}

// Consume atomically redeems a reset token
func (m *MockResetTokenRepository) Consume(ctx context.Context, tokenValue, newPasswordHash string) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, tokenValue, newPasswordHash)
	}
	// Default behavior: success
	return nil
}

// DeleteExpired removes expired reset tokens
func (m *MockResetTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	// Default behavior: nothing removed
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.ResetTokenRepository = (*MockResetTokenRepository)(nil)
