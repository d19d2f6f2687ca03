package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/service"
)

// NotificationHandler handles REST API for notifications.
type NotificationHandler struct {
	svc service.NotificationServicer
}

// NewNotificationHandler creates a notification handler.
func NewNotificationHandler(svc service.NotificationServicer) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List godoc
// GET /users/:id/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	resp, err := h.svc.GetNotifications(c.Request.Context(), c.Param("id"),
		queryInt(c, "page", 1), queryInt(c, "page_size", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// UnreadCount godoc
// GET /users/:id/notifications/unread
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.svc.GetUnreadCount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"unread_count": count})
}

// MarkRead godoc
// POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.svc.MarkAsRead(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead godoc
// POST /users/:id/notifications/read
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.svc.MarkAllAsRead(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// DELETE /notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteNotification(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Send godoc
// POST /notifications
func (h *NotificationHandler) Send(c *gin.Context) {
	var req model.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	n, err := h.svc.SendNotification(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, n)
}
