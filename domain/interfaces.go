package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
	UpdateRole(ctx context.Context, userID uint, role Role) error
	UpdateStatus(ctx context.Context, userID uint, status Status) error
	List(ctx context.Context) ([]*User, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// ResetTokenRepository defines password-reset token data access operations.
// Consume must delete the token row and update the owner's password hash in
// one atomic unit so a token can never be redeemed twice under a race.
type ResetTokenRepository interface {
	Create(ctx context.Context, token *PasswordResetToken) error
	FindByToken(ctx context.Context, tokenValue string) (*PasswordResetToken, error)
	Delete(ctx context.Context, tokenValue string) error
	Consume(ctx context.Context, tokenValue, newPasswordHash string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// AuditLogRepository defines append-only audit record access
type AuditLogRepository interface {
	Create(ctx context.Context, entry *AuditLog) error
	List(ctx context.Context, limit int) ([]*AuditLog, error)
}

// AuthService defines credential and session business logic
type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, *Session, error)
	Resolve(ctx context.Context, sessionID string) (*User, error)
	Logout(ctx context.Context, sessionID string) error
}

// PasswordResetService defines the reset token lifecycle
type PasswordResetService interface {
	Request(ctx context.Context, email string) error
	Validate(ctx context.Context, tokenValue string) (*ResetTokenInfo, error)
	Consume(ctx context.Context, tokenValue, newPassword string) error
}

// AccessService derives an authorization decision from a user's role and
// status for a request path
type AccessService interface {
	Authorize(ctx context.Context, user *User, path, method string) error
}

// AdminService defines administrative account operations
type AdminService interface {
	ChangeRole(ctx context.Context, actorID, targetID uint, newRole Role) (*User, error)
	ChangeStatus(ctx context.Context, actorID, targetID uint, newStatus Status, reason string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	ListAuditLogs(ctx context.Context, limit int) ([]*AuditLog, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// Mailer defines outbound mail delivery. Delivery is best-effort: callers
// log failures but never roll back state that was already persisted.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	AddGroupingPolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
