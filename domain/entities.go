package domain

import "time"

// Role is the coarse capability tier of an account. Higher roles
// implicitly satisfy lower ones (ADMIN > PROVIDER > USER).
type Role string

const (
	RoleUser     Role = "USER"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

// Satisfies reports whether r meets the required tier.
func (r Role) Satisfies(required Role) bool {
	rank := map[Role]int{RoleUser: 1, RoleProvider: 2, RoleAdmin: 3}
	return rank[r] >= rank[required]
}

// Status is the account standing. SUSPENDED and BANNED accounts keep
// their rows but lose access to everything.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusWarned    Status = "WARNED"
	StatusSuspended Status = "SUSPENDED"
	StatusBanned    Status = "BANNED"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusWarned, StatusSuspended, StatusBanned:
		return true
	}
	return false
}

// CanAccess reports whether the standing still permits using the product.
// WARNED accounts keep access; SUSPENDED and BANNED never do.
func (s Status) CanAccess() bool {
	return s == StatusActive || s == StatusWarned
}

// User represents an account in the system
type User struct {
	ID           uint
	Email        string
	PasswordHash string `gorm:"column:password"`
	Name         string
	Role         Role
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session represents a logged-in user session. The ID doubles as the
// cookie value, so it must be unguessable.
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// PasswordResetToken is a single-use, time-boxed credential that lets a
// user set a new password without presenting the old one.
type PasswordResetToken struct {
	ID        uint
	Token     string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry at the given instant.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// ResetTokenInfo is the projection returned by a read-only token check,
// used to gate the reset form before the user submits a new password.
type ResetTokenInfo struct {
	UserID uint
	Email  string
}

// AuditLog is an append-only record of an administrative action.
type AuditLog struct {
	ID        uint
	ActorID   uint
	Action    string
	Details   map[string]any
	CreatedAt time.Time
}

// Audit action tags
const (
	AuditUserRoleChanged   = "USER_ROLE_CHANGED"
	AuditUserStatusChanged = "USER_STATUS_CHANGED"
)
