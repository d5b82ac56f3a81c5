package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/RxV00/Forgptabinote/domain"
	"github.com/RxV00/Forgptabinote/internal/mocks"
)

func createResetServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	tokenRepo domain.ResetTokenRepository,
	passwordSvc domain.PasswordService,
	mailer domain.Mailer) domain.PasswordResetService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if tokenRepo == nil {
		tokenRepo = mocks.NewMockResetTokenRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if mailer == nil {
		mailer = mocks.NewMockMailer()
	}

	cfg := PasswordResetConfig{
		TokenTTL: 24 * time.Hour,
		BaseURL:  "http://localhost:8080",
	}
	return NewPasswordResetService(userRepo, tokenRepo, passwordSvc, mailer, nil, cfg, zerolog.Nop())
}

func TestPasswordResetServiceImpl_Request(t *testing.T) {
	t.Run("known email gets a token and a mail", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		tokenRepo := mocks.NewMockResetTokenRepository()
		mailer := mocks.NewMockMailer()

		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return createValidUser(t), nil
		}
		var created *domain.PasswordResetToken
		tokenRepo.CreateFunc = func(ctx context.Context, token *domain.PasswordResetToken) error {
			created = token
			return nil
		}

		svc := createResetServiceForTest(t, userRepo, tokenRepo, nil, mailer)
		if err := svc.Request(context.Background(), "test@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if created == nil {
			t.Fatal("expected a token to be persisted")
		}
		if created.Token == "" {
			t.Error("expected an opaque token value")
		}
		wantExpiry := time.Now().Add(24 * time.Hour)
		if created.ExpiresAt.Before(wantExpiry.Add(-time.Minute)) || created.ExpiresAt.After(wantExpiry.Add(time.Minute)) {
			t.Errorf("expiry %v not ~24h out", created.ExpiresAt)
		}

		if len(mailer.Sent) != 1 {
			t.Fatalf("expected one mail, got %d", len(mailer.Sent))
		}
		if mailer.Sent[0].To != "test@example.com" {
			t.Errorf("mail went to %s", mailer.Sent[0].To)
		}
		if !strings.Contains(mailer.Sent[0].Body, "token="+created.Token) {
			t.Error("reset link does not carry the token")
		}
	})

	t.Run("unknown email is indistinguishable from success", func(t *testing.T) {
		tokenRepo := mocks.NewMockResetTokenRepository()
		createdCount := 0
		tokenRepo.CreateFunc = func(ctx context.Context, token *domain.PasswordResetToken) error {
			createdCount++
			return nil
		}
		mailer := mocks.NewMockMailer()

		svc := createResetServiceForTest(t, nil, tokenRepo, nil, mailer)
		if err := svc.Request(context.Background(), "nobody@example.com"); err != nil {
			t.Fatalf("expected nil for unknown email, got %v", err)
		}
		if createdCount != 0 {
			t.Error("no token should be issued for an unknown email")
		}
		if len(mailer.Sent) != 0 {
			t.Error("no mail should be sent for an unknown email")
		}
	})

	t.Run("mail failure does not fail the request", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return createValidUser(t), nil
		}
		mailer := mocks.NewMockMailer()
		mailer.SendFunc = func(to, subject, htmlBody string) error {
			return errors.New("smtp unreachable")
		}

		svc := createResetServiceForTest(t, userRepo, nil, nil, mailer)
		if err := svc.Request(context.Background(), "test@example.com"); err != nil {
			t.Fatalf("token issuance must survive a mail failure, got %v", err)
		}
	})

	t.Run("issuing does not touch older tokens", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return createValidUser(t), nil
		}
		tokenRepo := mocks.NewMockResetTokenRepository()
		deletes := 0
		tokenRepo.DeleteFunc = func(ctx context.Context, tokenValue string) error {
			deletes++
			return nil
		}

		svc := createResetServiceForTest(t, userRepo, tokenRepo, nil, nil)
		if err := svc.Request(context.Background(), "test@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.Request(context.Background(), "test@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deletes != 0 {
			t.Error("reissuing must not invalidate outstanding tokens")
		}
	})
}

func TestPasswordResetServiceImpl_Validate(t *testing.T) {
	t.Run("live token returns owner info", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		tokenRepo := mocks.NewMockResetTokenRepository()

		token := createValidResetToken(t, 1)
		tokenRepo.FindByTokenFunc = func(ctx context.Context, tokenValue string) (*domain.PasswordResetToken, error) {
			return token, nil
		}
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return createValidUser(t), nil
		}

		svc := createResetServiceForTest(t, userRepo, tokenRepo, nil, nil)
		info, err := svc.Validate(context.Background(), token.Token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.UserID != 1 || info.Email != "test@example.com" {
			t.Errorf("unexpected info %+v", info)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		svc := createResetServiceForTest(t, nil, nil, nil, nil)
		_, err := svc.Validate(context.Background(), "missing")
		if !errors.Is(err, domain.ErrTokenNotFound) {
			t.Errorf("expected ErrTokenNotFound, got %v", err)
		}
	})

	t.Run("expired token is reported but not deleted", func(t *testing.T) {
		tokenRepo := mocks.NewMockResetTokenRepository()
		token := createExpiredResetToken(t, 1)
		tokenRepo.FindByTokenFunc = func(ctx context.Context, tokenValue string) (*domain.PasswordResetToken, error) {
			return token, nil
		}
		deleted := false
		tokenRepo.DeleteFunc = func(ctx context.Context, tokenValue string) error {
			deleted = true
			return nil
		}

		svc := createResetServiceForTest(t, nil, tokenRepo, nil, nil)
		_, err := svc.Validate(context.Background(), token.Token)
		if !errors.Is(err, domain.ErrTokenExpired) {
			t.Errorf("expected ErrTokenExpired, got %v", err)
		}
		if deleted {
			t.Error("validate is read-only; it must not purge expired rows")
		}
	})
}

func TestPasswordResetServiceImpl_Consume(t *testing.T) {
	t.Run("successful consume hashes and redeems atomically", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		tokenRepo := mocks.NewMockResetTokenRepository()

		token := createValidResetToken(t, 1)
		tokenRepo.FindByTokenFunc = func(ctx context.Context, tokenValue string) (*domain.PasswordResetToken, error) {
			return token, nil
		}
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return createValidUser(t), nil
		}
		var consumedToken, consumedHash string
		tokenRepo.ConsumeFunc = func(ctx context.Context, tokenValue, newPasswordHash string) error {
			consumedToken = tokenValue
			consumedHash = newPasswordHash
			return nil
		}

		svc := createResetServiceForTest(t, userRepo, tokenRepo, nil, nil)
		if err := svc.Consume(context.Background(), token.Token, "brandnewpass1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if consumedToken != token.Token {
			t.Errorf("consumed %q, want %q", consumedToken, token.Token)
		}
		if consumedHash != "hashed_brandnewpass1" {
			t.Errorf("unexpected hash %q", consumedHash)
		}
	})

	t.Run("expired token is removed and rejected, password untouched", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		tokenRepo := mocks.NewMockResetTokenRepository()

		token := createExpiredResetToken(t, 1)
		tokenRepo.FindByTokenFunc = func(ctx context.Context, tokenValue string) (*domain.PasswordResetToken, error) {
			return token, nil
		}
		deleted := false
		tokenRepo.DeleteFunc = func(ctx context.Context, tokenValue string) error {
			deleted = true
			return nil
		}
		consumed := false
		tokenRepo.ConsumeFunc = func(ctx context.Context, tokenValue, newPasswordHash string) error {
			consumed = true
			return nil
		}

		svc := createResetServiceForTest(t, userRepo, tokenRepo, nil, nil)
		err := svc.Consume(context.Background(), token.Token, "brandnewpass1")
		if !errors.Is(err, domain.ErrTokenExpired) {
			t.Errorf("expected ErrTokenExpired, got %v", err)
		}
		if !deleted {
			t.Error("a consume attempt on an expired token removes the row")
		}
		if consumed {
			t.Error("the password must not change for an expired token")
		}
	})

	t.Run("same password is rejected and token stays live", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		tokenRepo := mocks.NewMockResetTokenRepository()

		token := createValidResetToken(t, 1)
		tokenRepo.FindByTokenFunc = func(ctx context.Context, tokenValue string) (*domain.PasswordResetToken, error) {
			return token, nil
		}
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return createValidUser(t), nil // hash is hashed_password123
		}
		consumed := false
		tokenRepo.ConsumeFunc = func(ctx context.Context, tokenValue, newPasswordHash string) error {
			consumed = true
			return nil
		}

		svc := createResetServiceForTest(t, userRepo, tokenRepo, nil, nil)
		err := svc.Consume(context.Background(), token.Token, "password123")
		if !errors.Is(err, domain.ErrSamePassword) {
			t.Errorf("expected ErrSamePassword, got %v", err)
		}
		if consumed {
			t.Error("a no-op reset must not consume the token")
		}
	})

	t.Run("second consume loses the race", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		tokenRepo := mocks.NewMockResetTokenRepository()

		token := createValidResetToken(t, 1)
		tokenRepo.FindByTokenFunc = func(ctx context.Context, tokenValue string) (*domain.PasswordResetToken, error) {
			return token, nil
		}
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return createValidUser(t), nil
		}
		tokenRepo.ConsumeFunc = func(ctx context.Context, tokenValue, newPasswordHash string) error {
			return domain.ErrTokenNotFound // row already deleted by the winner
		}

		svc := createResetServiceForTest(t, userRepo, tokenRepo, nil, nil)
		err := svc.Consume(context.Background(), token.Token, "brandnewpass1")
		if !errors.Is(err, domain.ErrTokenNotFound) {
			t.Errorf("expected ErrTokenNotFound, got %v", err)
		}
	})
}
