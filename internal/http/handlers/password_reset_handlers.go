package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RxV00/Forgptabinote/domain"
)

// resetAckMessage is returned for every forgot-password request so the
// endpoint cannot be used to probe which addresses are registered.
const resetAckMessage = "If your email is registered, you will receive a password reset link"

// PasswordResetHandlers handles the reset token lifecycle over HTTP
type PasswordResetHandlers struct {
	resetSvc domain.PasswordResetService
}

// NewPasswordResetHandlers creates new password reset handlers
func NewPasswordResetHandlers(resetSvc domain.PasswordResetService) *PasswordResetHandlers {
	return &PasswordResetHandlers{resetSvc: resetSvc}
}

// ForgotPasswordRequest represents a reset link request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents a token redemption request
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// ForgotPassword handles reset link requests
func (h *PasswordResetHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	if err := h.resetSvc.Request(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": resetAckMessage})
}

// VerifyToken handles the read-only token check that gates the reset form
func (h *PasswordResetHandlers) VerifyToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token is required"})
		return
	}

	info, err := h.resetSvc.Validate(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Token has expired"})
		case errors.Is(err, domain.ErrTokenNotFound), errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "email": info.Email})
}

// ResetPassword consumes a token and sets the new password
func (h *PasswordResetHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	if err := h.resetSvc.Consume(c.Request.Context(), req.Token, req.Password); err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Token has expired"})
		case errors.Is(err, domain.ErrTokenNotFound), errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		case errors.Is(err, domain.ErrSamePassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "New password cannot be the same as your current password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully"})
}
