package mocks

import (
	"context"

	"github.com/RxV00/Forgptabinote/domain"
)

// MockAuditLogRepository implements domain.AuditLogRepository interface for testing
type MockAuditLogRepository struct {
	CreateFunc func(ctx context.Context, entry *domain.AuditLog) error
	ListFunc   func(ctx context.Context, limit int) ([]*domain.AuditLog, error)

	// Entries collects successfully created records when CreateFunc is unset
	Entries []*domain.AuditLog
}

// NewMockAuditLogRepository creates a new MockAuditLogRepository with default behaviors
func NewMockAuditLogRepository() *MockAuditLogRepository {
	return &MockAuditLogRepository{}
}

// Create appends an audit record
func (m *MockAuditLogRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	// Default behavior: record for later inspection
	m.Entries = append(m.Entries, entry)
	return nil
}

// List returns recorded audit entries
func (m *MockAuditLogRepository) List(ctx context.Context, limit int) ([]*domain.AuditLog, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	// Default behavior: whatever was collected
	return m.Entries, nil
}

// Compile-time interface compliance verification
var _ domain.AuditLogRepository = (*MockAuditLogRepository)(nil)
