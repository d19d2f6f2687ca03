package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/service"
)

// AuthHandler handles REST API for authentication.
type AuthHandler struct {
	svc service.AuthServicer
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(svc service.AuthServicer) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Register godoc
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// Refresh godoc
// POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req model.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	tokens, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, tokens)
}

// Logout godoc
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CurrentUser godoc
// GET /auth/me
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, err := h.svc.CurrentUser(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}

// ChangePassword godoc
// POST /auth/password/change
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.svc.ChangePassword(c.Request.Context(), bearerToken(c), req); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"changed": true})
}

// RequestPasswordReset godoc
// POST /auth/password/forgot
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.svc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"sent": true})
}

// VerifyResetToken godoc
// GET /auth/password/reset/:token
func (h *AuthHandler) VerifyResetToken(c *gin.Context) {
	valid := h.svc.VerifyResetToken(c.Request.Context(), c.Param("token"))
	respond(c, http.StatusOK, gin.H{"valid": valid})
}

// ResetPassword godoc
// POST /auth/password/reset
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.svc.ResetPassword(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"reset": true})
}

// RequestChangeEmail godoc
// POST /auth/email/change
func (h *AuthHandler) RequestChangeEmail(c *gin.Context) {
	var req struct {
		NewEmail string `json:"new_email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.svc.RequestChangeEmail(c.Request.Context(), bearerToken(c), req.NewEmail); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"sent": true})
}

// VerifyChangeEmail godoc
// POST /auth/email/change/verify
func (h *AuthHandler) VerifyChangeEmail(c *gin.Context) {
	var req struct {
		OTP string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.svc.VerifyChangeEmail(c.Request.Context(), bearerToken(c), req.OTP); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"verified": true})
}

// VerifyEmail godoc
// POST /auth/email/verify
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	user, err := h.svc.VerifyEmail(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}
