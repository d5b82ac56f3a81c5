package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/RxV00/Forgptabinote/domain"
)

// AdminServiceImpl implements domain.AdminService
type AdminServiceImpl struct {
	userRepo  domain.UserRepository
	auditRepo domain.AuditLogRepository
	logger    zerolog.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo domain.UserRepository, auditRepo domain.AuditLogRepository, logger zerolog.Logger) domain.AdminService {
	return &AdminServiceImpl{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// ChangeRole implements domain.AdminService
func (s *AdminServiceImpl) ChangeRole(ctx context.Context, actorID, targetID uint, newRole domain.Role) (*domain.User, error) {
	if !newRole.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateRole(ctx, targetID, newRole); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	s.audit(ctx, actorID, domain.AuditUserRoleChanged, map[string]any{
		"targetUserId": targetID,
		"oldRole":      string(target.Role),
		"newRole":      string(newRole),
	})

	target.Role = newRole
	return target, nil
}

// ChangeStatus implements domain.AdminService. Sessions of a user moved to
// SUSPENDED or BANNED are not revoked here; they die lazily on their next
// resolve.
func (s *AdminServiceImpl) ChangeStatus(ctx context.Context, actorID, targetID uint, newStatus domain.Status, reason string) (*domain.User, error) {
	if !newStatus.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateStatus(ctx, targetID, newStatus); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	s.audit(ctx, actorID, domain.AuditUserStatusChanged, map[string]any{
		"targetUserId": targetID,
		"oldStatus":    string(target.Status),
		"newStatus":    string(newStatus),
		"reason":       reason,
	})

	target.Status = newStatus
	return target, nil
}

// ListUsers implements domain.AdminService
func (s *AdminServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

// ListAuditLogs implements domain.AdminService
func (s *AdminServiceImpl) ListAuditLogs(ctx context.Context, limit int) ([]*domain.AuditLog, error) {
	return s.auditRepo.List(ctx, limit)
}

func (s *AdminServiceImpl) requireAdmin(ctx context.Context, actorID uint) error {
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor.Role != domain.RoleAdmin {
		return domain.ErrInsufficientRole
	}
	return nil
}

// audit writes the append-only record; failures are logged and never fail
// the administrative action itself.
func (s *AdminServiceImpl) audit(ctx context.Context, actorID uint, action string, details map[string]any) {
	entry := &domain.AuditLog{
		ActorID: actorID,
		Action:  action,
		Details: details,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.logger.Error().Err(err).Str("action", action).Uint("actor_id", actorID).Msg("failed to write audit log")
	}
}
