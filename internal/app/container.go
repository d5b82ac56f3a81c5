package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/RxV00/Forgptabinote/domain"
	"github.com/RxV00/Forgptabinote/internal/config"
	"github.com/RxV00/Forgptabinote/internal/infrastructure/auth"
	"github.com/RxV00/Forgptabinote/internal/infrastructure/database"
	"github.com/RxV00/Forgptabinote/internal/infrastructure/notifications"
	"github.com/RxV00/Forgptabinote/internal/infrastructure/repositories"
	"github.com/RxV00/Forgptabinote/internal/logger"
	"github.com/RxV00/Forgptabinote/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger zerolog.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	// Repositories
	UserRepo    domain.UserRepository
	SessionRepo domain.SessionRepository
	TokenRepo   domain.ResetTokenRepository
	AuditRepo   domain.AuditLogRepository

	// Services
	PasswordSvc domain.PasswordService
	Mailer      domain.Mailer
	AuthSvc     domain.AuthService
	ResetSvc    domain.PasswordResetService
	AccessSvc   domain.AccessService
	AdminSvc    domain.AdminService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger.New(cfg.Environment)}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	if err := c.initRedis(); err != nil {
		return nil, err
	}

	c.initRepositories()

	if err := c.initServices(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}
	c.Casbin = cas
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient, c.Config.SessionTTL)
	c.TokenRepo = repositories.NewResetTokenRepository(c.DB)
	c.AuditRepo = repositories.NewAuditLogRepository(c.DB)
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService(c.Config.BcryptCost)
	c.Mailer = notifications.NewSMTPService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUser,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
	)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.SessionRepo, c.PasswordSvc, c.Config.SessionTTL)
	c.ResetSvc = services.NewPasswordResetService(
		c.UserRepo,
		c.TokenRepo,
		c.PasswordSvc,
		c.Mailer,
		c.RedisClient,
		services.PasswordResetConfig{
			TokenTTL:   c.Config.ResetTokenTTL,
			MailWindow: c.Config.ResetMailWindow,
			BaseURL:    c.Config.BaseURL,
		},
		c.Logger,
	)
	c.AccessSvc = services.NewAccessService(c.Casbin.E)
	c.AdminSvc = services.NewAdminService(c.UserRepo, c.AuditRepo, c.Logger)

	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
