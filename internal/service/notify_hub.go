package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const notifyWriteTimeout = 10 * time.Second

// NotifyHubForHandler is the interface the WebSocket handler depends on.
type NotifyHubForHandler interface {
	Upgrader() *websocket.Upgrader
	Serve(userID string, conn *websocket.Conn)
}

// NotifyHub bridges the notification service's subscriber channels onto
// WebSocket connections.
type NotifyHub struct {
	notifications NotificationServicer
	upgrader      websocket.Upgrader
	log           *zap.Logger
}

// NewNotifyHub creates a notification push hub.
func NewNotifyHub(notifications NotificationServicer, log *zap.Logger) *NotifyHub {
	return &NotifyHub{
		notifications: notifications,
		log:           log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024 * 4,
			WriteBufferSize: 1024 * 4,
			// Allow all origins for dev; in prod set CheckOrigin.
		},
	}
}

// Upgrader returns the WebSocket upgrader for HTTP handlers.
func (h *NotifyHub) Upgrader() *websocket.Upgrader {
	return &h.upgrader
}

// Serve pumps the user's notification feed into the connection until the
// peer goes away. It owns the connection and closes it on return.
func (h *NotifyHub) Serve(userID string, conn *websocket.Conn) {
	feed, unsubscribe := h.notifications.Subscribe(userID)
	defer unsubscribe()
	defer conn.Close()

	h.log.Info("notification peer connected", zap.String("user_id", userID))

	// Reader goroutine drains the connection so close frames and pings are
	// processed; its exit signals a gone peer.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case n, ok := <-feed:
			if !ok {
				return
			}
			raw, err := json.Marshal(n)
			if err != nil {
				h.log.Error("marshal notification", zap.Error(err))
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(notifyWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				h.log.Info("notification peer gone",
					zap.String("user_id", userID),
					zap.Error(err))
				return
			}
		case <-done:
			h.log.Info("notification peer disconnected", zap.String("user_id", userID))
			return
		}
	}
}

// NotifyWSURL returns the WebSocket URL advertised to clients for the
// notification feed (e.g. wss://host/ws/notifications/userID).
func NotifyWSURL(baseURL, userID string) string {
	if baseURL == "" {
		return fmt.Sprintf("/ws/notifications/%s", userID)
	}
	if baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return fmt.Sprintf("%s/ws/notifications/%s", baseURL, userID)
}
