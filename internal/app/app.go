package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RxV00/Forgptabinote/internal/config"
	httpx "github.com/RxV00/Forgptabinote/internal/http"
	"github.com/RxV00/Forgptabinote/internal/http/handlers"
	"github.com/RxV00/Forgptabinote/internal/http/middleware"
	"github.com/RxV00/Forgptabinote/internal/jobs"
	"github.com/RxV00/Forgptabinote/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	if err := services.SeedPolicies(c.Casbin.E); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc, int(cfg.SessionTTL.Seconds()), cfg.IsProduction())
	resetH := handlers.NewPasswordResetHandlers(c.ResetSvc)
	adminH := handlers.NewAdminHandlers(c.AdminSvc)

	sessionMW := middleware.NewSessionMW(c.AuthSvc, cfg.IsProduction())
	accessMW := middleware.NewAccessMW(c.AccessSvc)

	r := httpx.BuildRouter(authH, resetH, adminH, sessionMW, accessMW, c.Logger)

	sweeper := jobs.NewSweeper(c.TokenRepo, c.Logger)
	if err := sweeper.Start(); err != nil {
		return err
	}
	defer sweeper.Stop()

	addr := ":" + cfg.Port
	c.Logger.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, r)
}
