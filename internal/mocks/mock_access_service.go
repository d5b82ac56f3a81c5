package mocks

import (
	"context"

	"github.com/RxV00/Forgptabinote/domain"
)

// MockAccessService implements domain.AccessService interface for testing
type MockAccessService struct {
	AuthorizeFunc func(ctx context.Context, user *domain.User, path, method string) error
}

// NewMockAccessService creates a new MockAccessService with default behaviors
func NewMockAccessService() *MockAccessService {
	return &MockAccessService{}
}

// Authorize decides whether the user may access the path
func (m *MockAccessService) Authorize(ctx context.Context, user *domain.User, path, method string) error {
	if m.AuthorizeFunc != nil {
		return m.AuthorizeFunc(ctx, user, path, method)
	}
	// Default behavior: allow
	return nil
}

// Compile-time interface compliance verification
var _ domain.AccessService = (*MockAccessService)(nil)
