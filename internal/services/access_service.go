package services

import (
	"context"
	"fmt"

	"github.com/RxV00/Forgptabinote/domain"
)

// AccessServiceImpl implements domain.AccessService on top of a casbin
// enforcer. The status gate runs first: SUSPENDED and BANNED accounts are
// denied everything regardless of role. The role check is hierarchical via
// casbin grouping policies (admin > provider > user).
type AccessServiceImpl struct {
	enforcer domain.CasbinEnforcer
}

// NewAccessService creates a new access service
func NewAccessService(enforcer domain.CasbinEnforcer) domain.AccessService {
	return &AccessServiceImpl{enforcer: enforcer}
}

// Authorize implements domain.AccessService
func (s *AccessServiceImpl) Authorize(ctx context.Context, user *domain.User, path, method string) error {
	if user == nil {
		return domain.ErrUnauthorized
	}

	if !user.Status.CanAccess() {
		return domain.ErrUserSuspended
	}

	allowed, err := s.enforcer.Enforce(CasbinSubject(user.Role), path, method)
	if err != nil {
		return fmt.Errorf("authorization check failed: %w", err)
	}
	if !allowed {
		return domain.ErrInsufficientRole
	}

	return nil
}

// CasbinSubject converts a role to its casbin subject name
func CasbinSubject(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "role_admin"
	case domain.RoleProvider:
		return "role_provider"
	default:
		return "role_user"
	}
}

// SeedPolicies installs the default route policies and the role hierarchy
// when the policy store is empty.
func SeedPolicies(e domain.CasbinEnforcer) error {
	policies, err := e.GetPolicy()
	if err != nil {
		return err
	}
	if len(policies) > 0 {
		return nil
	}

	seed := [][]string{
		{"role_user", "/api/auth/me", "GET"},
		{"role_user", "/api/auth/logout", "POST"},
		{"role_user", "/api/user/*", "(GET|POST|PUT|DELETE)"},
		{"role_provider", "/api/provider/*", "(GET|POST|PUT|DELETE)"},
		{"role_admin", "/api/admin/*", "(GET|POST|PUT|DELETE)"},
	}
	for _, p := range seed {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}

	// Role hierarchy: admins do everything providers do, providers
	// everything users do.
	if _, err := e.AddGroupingPolicy("role_admin", "role_provider"); err != nil {
		return err
	}
	if _, err := e.AddGroupingPolicy("role_provider", "role_user"); err != nil {
		return err
	}

	return e.SavePolicy()
}
