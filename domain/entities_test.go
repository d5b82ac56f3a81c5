package domain

import (
	"testing"
	"time"
)

func TestRole_Satisfies(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		required Role
		want     bool
	}{
		{"admin satisfies admin", RoleAdmin, RoleAdmin, true},
		{"admin satisfies provider", RoleAdmin, RoleProvider, true},
		{"admin satisfies user", RoleAdmin, RoleUser, true},
		{"provider satisfies user", RoleProvider, RoleUser, true},
		{"provider does not satisfy admin", RoleProvider, RoleAdmin, false},
		{"user does not satisfy provider", RoleUser, RoleProvider, false},
		{"user satisfies user", RoleUser, RoleUser, true},
		{"unknown role satisfies nothing", Role("GUEST"), RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.Satisfies(tt.required); got != tt.want {
				t.Errorf("Satisfies(%s, %s) = %v, want %v", tt.role, tt.required, got, tt.want)
			}
		})
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleUser, RoleProvider, RoleAdmin} {
		if !r.Valid() {
			t.Errorf("expected %s to be valid", r)
		}
	}
	if Role("SUPERUSER").Valid() {
		t.Error("expected unknown role to be invalid")
	}
	if Role("").Valid() {
		t.Error("expected empty role to be invalid")
	}
}

func TestStatus_CanAccess(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusActive, true},
		{StatusWarned, true},
		{StatusSuspended, false},
		{StatusBanned, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.CanAccess(); got != tt.want {
				t.Errorf("CanAccess(%s) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()

	live := &Session{ID: "s1", UserID: 1, ExpiresAt: now.Add(time.Hour)}
	if live.Expired(now) {
		t.Error("session expiring in one hour should not be expired")
	}

	dead := &Session{ID: "s2", UserID: 1, ExpiresAt: now.Add(-time.Minute)}
	if !dead.Expired(now) {
		t.Error("session past its expiry should be expired")
	}

	// Expiry is an absolute instant; exactly at the boundary is still valid.
	edge := &Session{ID: "s3", UserID: 1, ExpiresAt: now}
	if edge.Expired(now) {
		t.Error("session at its exact expiry instant should still be valid")
	}
}

func TestPasswordResetToken_Expired(t *testing.T) {
	now := time.Now()

	live := &PasswordResetToken{Token: "t1", UserID: 1, ExpiresAt: now.Add(24 * time.Hour)}
	if live.Expired(now) {
		t.Error("token expiring in 24h should not be expired")
	}

	dead := &PasswordResetToken{Token: "t2", UserID: 1, ExpiresAt: now.Add(-time.Second)}
	if !dead.Expired(now) {
		t.Error("token past its expiry should be expired")
	}
}
