package mocks

import (
	"context"

	"github.com/RxV00/Forgptabinote/domain"
)

// MockAdminService implements domain.AdminService interface for testing
type MockAdminService struct {
	ChangeRoleFunc    func(ctx context.Context, actorID, targetID uint, newRole domain.Role) (*domain.User, error)
	ChangeStatusFunc  func(ctx context.Context, actorID, targetID uint, newStatus domain.Status, reason string) (*domain.User, error)
	ListUsersFunc     func(ctx context.Context) ([]*domain.User, error)
	ListAuditLogsFunc func(ctx context.Context, limit int) ([]*domain.AuditLog, error)
}

// NewMockAdminService creates a new MockAdminService with default behaviors
func NewMockAdminService() *MockAdminService {
	return &MockAdminService{}
}

// ChangeRole changes a user's role
func (m *MockAdminService) ChangeRole(ctx context.Context, actorID, targetID uint, newRole domain.Role) (*domain.User, error) {
	if m.ChangeRoleFunc != nil {
		return m.ChangeRoleFunc(ctx, actorID, targetID, newRole)
	}
	// Default behavior: echo the change
	return &domain.User{ID: targetID, Role: newRole, Status: domain.StatusActive}, nil
}

// ChangeStatus changes a user's status
func (m *MockAdminService) ChangeStatus(ctx context.Context, actorID, targetID uint, newStatus domain.Status, reason string) (*domain.User, error) {
	if m.ChangeStatusFunc != nil {
		return m.ChangeStatusFunc(ctx, actorID, targetID, newStatus, reason)
	}
	// Default behavior: echo the change
	return &domain.User{ID: targetID, Role: domain.RoleUser, Status: newStatus}, nil
}

// ListUsers returns all users
func (m *MockAdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}

// ListAuditLogs returns recent audit entries
func (m *MockAdminService) ListAuditLogs(ctx context.Context, limit int) ([]*domain.AuditLog, error) {
	if m.ListAuditLogsFunc != nil {
		return m.ListAuditLogsFunc(ctx, limit)
	}
	// Default behavior: empty
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.AdminService = (*MockAdminService)(nil)
