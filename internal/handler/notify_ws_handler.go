package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/streamvault/platform-service/internal/service"
)

// NotifyWSHandler handles WebSocket connections for /ws/notifications/:user_id.
type NotifyWSHandler struct {
	hub    service.NotifyHubForHandler
	logger *zap.Logger
}

// NewNotifyWSHandler creates the WebSocket notification handler.
func NewNotifyWSHandler(hub service.NotifyHubForHandler, logger *zap.Logger) *NotifyWSHandler {
	return &NotifyWSHandler{hub: hub, logger: logger}
}

// ServeWS upgrades the request to WebSocket and streams the user's
// notifications until the peer disconnects.
// Path: /ws/notifications/:user_id
func (h *NotifyWSHandler) ServeWS(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id required"})
		return
	}

	conn, err := h.hub.Upgrader().Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	h.hub.Serve(userID, conn)
}
