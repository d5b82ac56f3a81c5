package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RxV00/Forgptabinote/domain"
)

// SessionCookieName is the cookie carrying the opaque session identifier
const SessionCookieName = "sessionId"

// Context keys set for downstream handlers
const (
	ContextUserKey      = "current_user"
	ContextSessionIDKey = "session_id"
)

// SessionMW resolves the session cookie into a user for protected routes
type SessionMW struct {
	authSvc domain.AuthService
	secure  bool
}

// NewSessionMW creates new session middleware
func NewSessionMW(authSvc domain.AuthService, secure bool) *SessionMW {
	return &SessionMW{authSvc: authSvc, secure: secure}
}

// RequireSession returns the session authentication middleware. The cookie
// presence check is the cheap perimeter; only then is the store consulted.
func (mw *SessionMW) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"user": nil, "error": "Not authenticated"})
			return
		}

		user, err := mw.authSvc.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrSessionNotFound),
				errors.Is(err, domain.ErrSessionExpired),
				errors.Is(err, domain.ErrUserSuspended),
				errors.Is(err, domain.ErrUserNotFound):
				// stale cookie is cleared; the session itself was already
				// removed by the resolve path where applicable
				ClearSessionCookie(c, mw.secure)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"user": nil, "error": "Not authenticated"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextSessionIDKey, sessionID)
		c.Next()
	}
}

// CurrentUser pulls the resolved user out of the request context
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

// SetSessionCookie attaches the session cookie: HTTP-only, lax, site-wide,
// secure in production.
func SetSessionCookie(c *gin.Context, sessionID string, maxAgeSeconds int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, sessionID, maxAgeSeconds, "/", "", secure, true)
}

// ClearSessionCookie removes the session cookie from the response
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
