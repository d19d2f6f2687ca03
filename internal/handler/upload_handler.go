package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/service"
)

// UploadHandler handles REST API for the upload pipeline.
type UploadHandler struct {
	svc service.UploadServicer
}

// NewUploadHandler creates an upload handler.
func NewUploadHandler(svc service.UploadServicer) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Initiate godoc
// POST /uploads
func (h *UploadHandler) Initiate(c *gin.Context) {
	var req model.InitiateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	resp, err := h.svc.InitiateUpload(c.Request.Context(), c.Query("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// Complete godoc
// POST /uploads/:id/complete
func (h *UploadHandler) Complete(c *gin.Context) {
	resp, err := h.svc.CompleteUpload(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Cancel godoc
// POST /uploads/:id/cancel
func (h *UploadHandler) Cancel(c *gin.Context) {
	if err := h.svc.CancelUpload(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Status godoc
// GET /uploads/:id
func (h *UploadHandler) Status(c *gin.Context) {
	up, err := h.svc.GetUploadStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, up)
}

// History godoc
// GET /users/:id/uploads
func (h *UploadHandler) History(c *gin.Context) {
	resp, err := h.svc.GetUploadHistory(c.Request.Context(), c.Param("id"),
		queryInt(c, "page", 1), queryInt(c, "page_size", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// UpdateProgress godoc
// PATCH /uploads/:id/progress
func (h *UploadHandler) UpdateProgress(c *gin.Context) {
	var req model.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	up, err := h.svc.UpdateUploadProgress(c.Request.Context(), c.Param("id"), req.Progress)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, up)
}

// Moderation godoc
// GET /uploads/:id/moderation
func (h *UploadHandler) Moderation(c *gin.Context) {
	mod, err := h.svc.GetModerationResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, mod)
}

// Delete godoc
// DELETE /uploads/:id
func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteUpload(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
