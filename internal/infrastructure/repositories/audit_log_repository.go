package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/RxV00/Forgptabinote/domain"
)

// AuditLogRepositoryImpl implements domain.AuditLogRepository using GORM
type AuditLogRepositoryImpl struct {
	db *gorm.DB
}

// DBAuditLog represents the database model for AuditLog. Rows are append
// only; there is no update or delete path.
type DBAuditLog struct {
	ID        uint           `gorm:"primaryKey"`
	ActorID   uint           `gorm:"index"`
	Action    string         `gorm:"index;size:64"`
	Details   datatypes.JSON `gorm:"type:json"`
	CreatedAt time.Time      `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBAuditLog) TableName() string {
	return "audit_logs"
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) domain.AuditLogRepository {
	return &AuditLogRepositoryImpl{db: db}
}

// Create implements domain.AuditLogRepository
func (r *AuditLogRepositoryImpl) Create(ctx context.Context, entry *domain.AuditLog) error {
	details := entry.Details
	if details == nil {
		details = map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal audit details: %w", err)
	}

	dbEntry := &DBAuditLog{
		ActorID: entry.ActorID,
		Action:  entry.Action,
		Details: datatypes.JSON(raw),
	}
	if err := r.db.WithContext(ctx).Create(dbEntry).Error; err != nil {
		return err
	}
	entry.ID = dbEntry.ID
	entry.CreatedAt = dbEntry.CreatedAt
	return nil
}

// List implements domain.AuditLogRepository, newest first
func (r *AuditLogRepositoryImpl) List(ctx context.Context, limit int) ([]*domain.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}

	var dbEntries []DBAuditLog
	if err := r.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&dbEntries).Error; err != nil {
		return nil, err
	}

	entries := make([]*domain.AuditLog, 0, len(dbEntries))
	for i := range dbEntries {
		var details map[string]any
		if len(dbEntries[i].Details) > 0 {
			if err := json.Unmarshal(dbEntries[i].Details, &details); err != nil {
				return nil, fmt.Errorf("failed to unmarshal audit details: %w", err)
			}
		}
		entries = append(entries, &domain.AuditLog{
			ID:        dbEntries[i].ID,
			ActorID:   dbEntries[i].ActorID,
			Action:    dbEntries[i].Action,
			Details:   details,
			CreatedAt: dbEntries[i].CreatedAt,
		})
	}
	return entries, nil
}
