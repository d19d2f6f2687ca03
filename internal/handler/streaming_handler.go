package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/service"
)

// StreamingHandler handles REST API for playback sessions.
type StreamingHandler struct {
	svc service.StreamingServicer
}

// NewStreamingHandler creates a streaming handler.
func NewStreamingHandler(svc service.StreamingServicer) *StreamingHandler {
	return &StreamingHandler{svc: svc}
}

// Start godoc
// POST /streams
func (h *StreamingHandler) Start(c *gin.Context) {
	var req model.StartStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	resp, err := h.svc.StartStream(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// CheckLimit godoc
// GET /users/:id/streams/limit
func (h *StreamingHandler) CheckLimit(c *gin.Context) {
	allowed, err := h.svc.CheckConcurrentStreamLimit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"allowed": allowed})
}

// UpdateProgress godoc
// PATCH /streams/:id/progress
func (h *StreamingHandler) UpdateProgress(c *gin.Context) {
	var req model.StreamProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.svc.UpdateStreamProgress(c.Request.Context(), c.Param("id"), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// End godoc
// POST /streams/:id/end
func (h *StreamingHandler) End(c *gin.Context) {
	var req model.EndStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	history, err := h.svc.EndStream(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, history)
}

// Status godoc
// GET /streams/:id
func (h *StreamingHandler) Status(c *gin.Context) {
	sess, err := h.svc.GetStreamStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, sess)
}

// History godoc
// GET /users/:id/history
func (h *StreamingHandler) History(c *gin.Context) {
	items, pagination, err := h.svc.GetViewingHistory(c.Request.Context(), c.Param("id"),
		queryInt(c, "page", 1), queryInt(c, "page_size", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"history": items, "pagination": pagination})
}

// ResumePoint godoc
// GET /users/:id/resume/:mediaId
func (h *StreamingHandler) ResumePoint(c *gin.Context) {
	pos, err := h.svc.GetResumePoint(c.Request.Context(), c.Param("id"), c.Param("mediaId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"position": pos})
}

// ActiveStreams godoc
// GET /users/:id/streams
func (h *StreamingHandler) ActiveStreams(c *gin.Context) {
	sessions, err := h.svc.GetActiveStreams(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, sessions)
}
