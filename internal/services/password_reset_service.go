package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/RxV00/Forgptabinote/domain"
	"github.com/RxV00/Forgptabinote/internal/infrastructure/notifications"
)

// PasswordResetConfig holds reset flow settings
type PasswordResetConfig struct {
	TokenTTL   time.Duration
	MailWindow time.Duration // min interval between reset mails per address; 0 disables the throttle
	BaseURL    string
}

// PasswordResetServiceImpl implements domain.PasswordResetService
type PasswordResetServiceImpl struct {
	userRepo    domain.UserRepository
	tokenRepo   domain.ResetTokenRepository
	passwordSvc domain.PasswordService
	mailer      domain.Mailer
	redisClient *redis.Client
	cfg         PasswordResetConfig
	logger      zerolog.Logger
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(
	userRepo domain.UserRepository,
	tokenRepo domain.ResetTokenRepository,
	passwordSvc domain.PasswordService,
	mailer domain.Mailer,
	redisClient *redis.Client,
	cfg PasswordResetConfig,
	logger zerolog.Logger,
) domain.PasswordResetService {
	return &PasswordResetServiceImpl{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		passwordSvc: passwordSvc,
		mailer:      mailer,
		redisClient: redisClient,
		cfg:         cfg,
		logger:      logger,
	}
}

// Request implements domain.PasswordResetService. It returns nil for
// unknown addresses so callers cannot probe which emails are registered.
// Outstanding tokens for the same user stay valid.
func (s *PasswordResetServiceImpl) Request(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token := &domain.PasswordResetToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.cfg.TokenTTL),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}

	if !s.allowMail(ctx, email) {
		s.logger.Debug().Str("email", email).Msg("reset mail throttled")
		return nil
	}

	// Token issuance is already committed; a delivery failure must not
	// undo it, so the mail error is only logged.
	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", s.cfg.BaseURL, token.Token)
	if err := s.mailer.Send(email, notifications.ResetEmailSubject, notifications.ResetEmailBody(resetURL)); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to send reset email")
	}

	return nil
}

// allowMail enforces a per-address cool-down on outbound reset mails.
// Redis being down or unconfigured never blocks the flow.
func (s *PasswordResetServiceImpl) allowMail(ctx context.Context, email string) bool {
	if s.redisClient == nil || s.cfg.MailWindow <= 0 {
		return true
	}
	ok, err := s.redisClient.SetNX(ctx, "reset_mail:"+email, 1, s.cfg.MailWindow).Result()
	if err != nil {
		s.logger.Warn().Err(err).Msg("reset mail throttle check failed")
		return true
	}
	return ok
}

// Validate implements domain.PasswordResetService. Read-only: an expired
// token is reported but its row stays until a consume attempt or the sweep
// removes it.
func (s *PasswordResetServiceImpl) Validate(ctx context.Context, tokenValue string) (*domain.ResetTokenInfo, error) {
	token, err := s.tokenRepo.FindByToken(ctx, tokenValue)
	if err != nil {
		return nil, err
	}

	if token.Expired(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	user, err := s.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return nil, err
	}

	return &domain.ResetTokenInfo{UserID: user.ID, Email: user.Email}, nil
}

// Consume implements domain.PasswordResetService
func (s *PasswordResetServiceImpl) Consume(ctx context.Context, tokenValue, newPassword string) error {
	token, err := s.tokenRepo.FindByToken(ctx, tokenValue)
	if err != nil {
		return err
	}

	if token.Expired(time.Now()) {
		// found-expired counts as the token's one consumption
		if err := s.tokenRepo.Delete(ctx, tokenValue); err != nil && !errors.Is(err, domain.ErrTokenNotFound) {
			return err
		}
		return domain.ErrTokenExpired
	}

	user, err := s.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return err
	}

	if s.passwordSvc.Verify(user.PasswordHash, newPassword) {
		return domain.ErrSamePassword
	}

	newHash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.tokenRepo.Consume(ctx, tokenValue, newHash)
}
