package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/RxV00/Forgptabinote/internal/http/handlers"
	"github.com/RxV00/Forgptabinote/internal/http/middleware"
)

func BuildRouter(
	ah *handlers.AuthHandlers,
	rh *handlers.PasswordResetHandlers,
	adh *handlers.AdminHandlers,
	sessionMW *middleware.SessionMW,
	accessMW *middleware.AccessMW,
	log zerolog.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(log))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/signup", ah.Signup)
	auth.POST("/login", ah.Login)
	auth.POST("/forgot-password", rh.ForgotPassword)
	auth.GET("/verify-token", rh.VerifyToken)
	auth.POST("/reset-password", rh.ResetPassword)

	v := r.Group("/api/auth").Use(sessionMW.RequireSession(), accessMW.Enforce())
	v.GET("/me", ah.Me)
	v.POST("/logout", ah.Logout)

	prov := r.Group("/api/provider").Use(sessionMW.RequireSession(), accessMW.Enforce())
	prov.GET("/dashboard", func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		c.JSON(200, gin.H{"provider_id": user.ID, "email": user.Email})
	})

	adm := r.Group("/api/admin").Use(sessionMW.RequireSession(), accessMW.Enforce())
	adm.GET("/users", adh.ListUsers)
	adm.PUT("/users/:id/role", adh.ChangeRole)
	adm.PUT("/users/:id/status", adh.ChangeStatus)
	adm.GET("/audit-logs", adh.ListAuditLogs)

	return r
}
