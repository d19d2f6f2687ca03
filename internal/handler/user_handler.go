package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/service"
)

// UserHandler handles REST API for user profiles and settings.
type UserHandler struct {
	svc service.UserServicer
}

// NewUserHandler creates a user handler.
func NewUserHandler(svc service.UserServicer) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetProfile godoc
// GET /users/:id
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.svc.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}

// UpdateProfile godoc
// PATCH /users/:id
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	user, err := h.svc.UpdateProfile(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}

// VerifyPhoneNumber godoc
// POST /users/phone/verify
func (h *UserHandler) VerifyPhoneNumber(c *gin.Context) {
	var req model.VerifyPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	user, err := h.svc.VerifyPhoneNumber(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}

// ResendEmailVerification godoc
// POST /users/email/resend
func (h *UserHandler) ResendEmailVerification(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.svc.ResendEmailVerification(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"sent": true})
}

// SuspendAccount godoc
// POST /users/:id/suspend
func (h *UserHandler) SuspendAccount(c *gin.Context) {
	if err := h.svc.SuspendAccount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"suspended": true})
}

// ReactivateAccount godoc
// POST /users/:id/reactivate
func (h *UserHandler) ReactivateAccount(c *gin.Context) {
	if err := h.svc.ReactivateAccount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"reactivated": true})
}

// GetSettings godoc
// GET /users/:id/settings
func (h *UserHandler) GetSettings(c *gin.Context) {
	settings, err := h.svc.GetSettings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, settings)
}

// UpdateSettings godoc
// PUT /users/:id/settings
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	var settings model.UserSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := h.svc.UpdateSettings(c.Request.Context(), c.Param("id"), settings)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, updated)
}
