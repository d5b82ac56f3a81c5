package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RxV00/Forgptabinote/domain"
)

// AccessMW enforces the role/status gate close to the data, after the
// session perimeter has resolved a user.
type AccessMW struct {
	accessSvc domain.AccessService
}

// NewAccessMW creates new access middleware
func NewAccessMW(accessSvc domain.AccessService) *AccessMW {
	return &AccessMW{accessSvc: accessSvc}
}

// Enforce returns the authorization middleware
func (mw *AccessMW) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		err := mw.accessSvc.Authorize(c.Request.Context(), user, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUserSuspended), errors.Is(err, domain.ErrInsufficientRole):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access Denied"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			}
			return
		}

		c.Next()
	}
}
