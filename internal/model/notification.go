package model

import "time"

// NotificationType enumerates notification causes.
type NotificationType string

const (
	NotifySubscriptionExpiry NotificationType = "subscription_expiry"
	NotifyMediaApproved      NotificationType = "media_approved"
	NotifyMediaRejected      NotificationType = "media_rejected"
	NotifyPaymentReceived    NotificationType = "payment_received"
	NotifyNewContent         NotificationType = "new_content"
	NotifySystem             NotificationType = "system"
)

// Notification is a message delivered to one user.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Data      map[string]any   `json:"data,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

// SendNotificationRequest is the body for POST /notifications.
type SendNotificationRequest struct {
	UserID  string           `json:"user_id" binding:"required"`
	Type    NotificationType `json:"type" binding:"required"`
	Title   string           `json:"title" binding:"required"`
	Message string           `json:"message"`
	Data    map[string]any   `json:"data"`
}

// NotificationsResponse is the paginated notification list. UnreadCount is
// derived from the stored collection on every call, never cached.
type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
	Pagination    Pagination     `json:"pagination"`
}
