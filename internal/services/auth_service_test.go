package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RxV00/Forgptabinote/domain"
	"github.com/RxV00/Forgptabinote/internal/mocks"
)

func TestAuthServiceImpl_Signup(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		displayName   string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockPasswordService)
		expectedError error
		validateUser  func(t *testing.T, user *domain.User)
	}{
		{
			name:        "successful signup",
			email:       "newuser@example.com",
			password:    "securepassword123",
			displayName: "New User",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					user.ID = 7
					return nil
				}
			},
			expectedError: nil,
			validateUser: func(t *testing.T, user *domain.User) {
				if user == nil {
					t.Fatal("user is nil")
				}
				if user.Email != "newuser@example.com" {
					t.Errorf("expected email %s, got %s", "newuser@example.com", user.Email)
				}
				if user.Name != "New User" {
					t.Errorf("expected name %s, got %s", "New User", user.Name)
				}
				if user.Role != domain.RoleUser {
					t.Errorf("expected role %s, got %s", domain.RoleUser, user.Role)
				}
				if user.Status != domain.StatusActive {
					t.Errorf("expected status %s, got %s", domain.StatusActive, user.Status)
				}
				if user.PasswordHash != "hashed_securepassword123" {
					t.Errorf("unexpected password hash %s", user.PasswordHash)
				}
			},
		},
		{
			name:        "email already in use",
			email:       "existing@example.com",
			password:    "password123",
			displayName: "Existing",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil when already exists")
				}
			},
		},
		{
			name:        "password hashing fails",
			email:       "newuser@example.com",
			password:    "password123",
			displayName: "New User",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
				passwordSvc.HashFunc = func(password string) (string, error) {
					return "", errors.New("hashing failed")
				}
			},
			expectedError: errors.New("failed to hash password: hashing failed"),
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil when hashing fails")
				}
			},
		},
		{
			name:        "user creation fails",
			email:       "newuser@example.com",
			password:    "password123",
			displayName: "New User",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return errors.New("database error")
				}
			},
			expectedError: errors.New("failed to create user: database error"),
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil when creation fails")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tt.setupMocks(userRepo, passwordSvc)

			svc := createAuthServiceForTest(t, userRepo, nil, passwordSvc)
			user, err := svc.Signup(context.Background(), tt.email, tt.password, tt.displayName)

			if tt.expectedError == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Fatalf("expected error %q, got nil", tt.expectedError)
				}
				if err.Error() != tt.expectedError.Error() {
					t.Errorf("expected error %q, got %q", tt.expectedError, err)
				}
			}
			tt.validateUser(t, user)
		})
	}
}

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockSessionRepository, *mocks.MockPasswordService)
		expectedError error
		validate      func(t *testing.T, user *domain.User, session *domain.Session)
	}{
		{
			name:     "successful login issues a 30 day session",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: nil,
			validate: func(t *testing.T, user *domain.User, session *domain.Session) {
				if user == nil || session == nil {
					t.Fatal("expected user and session")
				}
				if session.UserID != user.ID {
					t.Errorf("session bound to user %d, want %d", session.UserID, user.ID)
				}
				if session.ID == "" {
					t.Error("expected opaque session id")
				}
				wantExpiry := time.Now().Add(30 * 24 * time.Hour)
				if session.ExpiresAt.Before(wantExpiry.Add(-time.Minute)) || session.ExpiresAt.After(wantExpiry.Add(time.Minute)) {
					t.Errorf("expiry %v not ~30 days out", session.ExpiresAt)
				}
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
			},
			expectedError: domain.ErrUserNotFound,
			validate: func(t *testing.T, user *domain.User, session *domain.Session) {
				if user != nil || session != nil {
					t.Error("expected no user or session")
				}
			},
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrongpassword",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
			validate:      func(t *testing.T, user *domain.User, session *domain.Session) {},
		},
		{
			name:     "banned user cannot log in",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createBannedUser(t), nil
				}
			},
			expectedError: domain.ErrUserSuspended,
			validate:      func(t *testing.T, user *domain.User, session *domain.Session) {},
		},
		{
			name:     "warned user can still log in",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					u := createValidUser(t)
					u.Status = domain.StatusWarned
					return u, nil
				}
			},
			expectedError: nil,
			validate: func(t *testing.T, user *domain.User, session *domain.Session) {
				if session == nil {
					t.Fatal("expected a session for a WARNED user")
				}
			},
		},
		{
			name:     "session store failure",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
				sessionRepo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
					return errors.New("redis down")
				}
			},
			expectedError: errors.New("failed to create session: redis down"),
			validate:      func(t *testing.T, user *domain.User, session *domain.Session) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			sessionRepo := mocks.NewMockSessionRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tt.setupMocks(userRepo, sessionRepo, passwordSvc)

			svc := createAuthServiceForTest(t, userRepo, sessionRepo, passwordSvc)
			user, session, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Fatalf("expected error %q, got nil", tt.expectedError)
				}
				if err.Error() != tt.expectedError.Error() {
					t.Errorf("expected error %q, got %q", tt.expectedError, err)
				}
			}
			tt.validate(t, user, session)
		})
	}
}

func TestAuthServiceImpl_Resolve(t *testing.T) {
	t.Run("valid session returns its user", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		sessionRepo := mocks.NewMockSessionRepository()

		session := createValidSession(t, 1)
		sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
			if sessionID != session.ID {
				return nil, domain.ErrSessionNotFound
			}
			return session, nil
		}
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return createValidUser(t), nil
		}

		svc := createAuthServiceForTest(t, userRepo, sessionRepo, nil)
		user, err := svc.Resolve(context.Background(), session.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 1 {
			t.Errorf("resolved user %d, want 1", user.ID)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		svc := createAuthServiceForTest(t, nil, nil, nil)
		_, err := svc.Resolve(context.Background(), "missing")
		if !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("banned user's session is revoked on resolve", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		sessionRepo := mocks.NewMockSessionRepository()

		session := createValidSession(t, 1)
		deleted := false
		sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
			return session, nil
		}
		sessionRepo.DeleteFunc = func(ctx context.Context, sessionID string) error {
			if sessionID == session.ID {
				deleted = true
			}
			return nil
		}
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return createBannedUser(t), nil
		}

		svc := createAuthServiceForTest(t, userRepo, sessionRepo, nil)
		_, err := svc.Resolve(context.Background(), session.ID)
		if !errors.Is(err, domain.ErrUserSuspended) {
			t.Errorf("expected ErrUserSuspended, got %v", err)
		}
		if !deleted {
			t.Error("expected the session to be revoked as a side effect")
		}
	})
}

func TestAuthServiceImpl_Logout(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepository()
	deletedID := ""
	sessionRepo.DeleteFunc = func(ctx context.Context, sessionID string) error {
		deletedID = sessionID
		return nil
	}

	svc := createAuthServiceForTest(t, nil, sessionRepo, nil)
	if err := svc.Logout(context.Background(), "sess-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deletedID != "sess-1" {
		t.Errorf("deleted %q, want sess-1", deletedID)
	}

	// Logout of an already-gone session stays a no-op
	if err := svc.Logout(context.Background(), "sess-1"); err != nil {
		t.Fatalf("expected idempotent logout, got %v", err)
	}
}
