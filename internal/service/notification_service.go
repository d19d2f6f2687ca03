package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/streamvault/platform-service/internal/config"
	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/store"
)

// subscriberBuffer is the per-subscriber channel depth. A subscriber that
// falls this far behind starts losing notifications rather than blocking
// the sender.
const subscriberBuffer = 16

// NotificationServicer is the notification contract consumed by handlers
// and the WebSocket hub.
type NotificationServicer interface {
	GetNotifications(ctx context.Context, userID string, page, pageSize int) (model.NotificationsResponse, error)
	GetUnreadCount(ctx context.Context, userID string) (int, error)
	MarkAsRead(ctx context.Context, notificationID string) error
	MarkAllAsRead(ctx context.Context, userID string) error
	DeleteNotification(ctx context.Context, notificationID string) error
	SendNotification(ctx context.Context, req model.SendNotificationRequest) (model.Notification, error)
	Subscribe(userID string) (<-chan model.Notification, func())
}

// NotificationService stores notifications and fans them out to live
// subscribers.
type NotificationService struct {
	store *store.Store
	cfg   *config.Config
	log   *zap.Logger

	mu          sync.Mutex
	subscribers map[string]map[int]chan model.Notification
	nextSubID   int
}

// NewNotificationService creates the notification service.
func NewNotificationService(st *store.Store, cfg *config.Config, log *zap.Logger) *NotificationService {
	return &NotificationService{
		store:       st,
		cfg:         cfg,
		log:         log,
		subscribers: make(map[string]map[int]chan model.Notification),
	}
}

// GetNotifications returns the user's notifications newest first, with the
// unread count derived on every call.
func (s *NotificationService) GetNotifications(ctx context.Context, userID string, page, pageSize int) (model.NotificationsResponse, error) {
	simulate(ctx, s.cfg.SimLatency)
	all := s.store.ListNotificationsByUser(userID)
	items, pagination := model.Paginate(all, page, pageSize, s.cfg.DefaultPageSize)
	return model.NotificationsResponse{
		Notifications: items,
		UnreadCount:   s.store.CountUnread(userID),
		Pagination:    pagination,
	}, nil
}

// GetUnreadCount returns the number of unread notifications.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	simulate(ctx, s.cfg.SimLatency)
	return s.store.CountUnread(userID), nil
}

// MarkAsRead marks one notification read. Unknown IDs and already-read
// notifications are no-ops.
func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID string) error {
	simulate(ctx, s.cfg.SimLatency)
	s.store.UpdateNotification(notificationID, func(n *model.Notification) {
		n.Read = true
	})
	return nil
}

// MarkAllAsRead marks every notification of a user read; idempotent.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	simulate(ctx, s.cfg.SimLatency)
	s.store.MarkAllRead(userID)
	return nil
}

// DeleteNotification removes a notification; absent IDs are a no-op.
func (s *NotificationService) DeleteNotification(ctx context.Context, notificationID string) error {
	simulate(ctx, s.cfg.SimLatency)
	s.store.DeleteNotification(notificationID)
	return nil
}

// SendNotification stores the notification and pushes it to every live
// subscriber of the target user without blocking on slow ones.
func (s *NotificationService) SendNotification(ctx context.Context, req model.SendNotificationRequest) (model.Notification, error) {
	simulate(ctx, s.cfg.SimLatency)

	n := model.Notification{
		ID:        "notif-" + uuid.New().String(),
		UserID:    req.UserID,
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		Data:      req.Data,
		Read:      false,
		CreatedAt: time.Now(),
	}
	s.store.PutNotification(n)
	s.publish(n)
	return n, nil
}

// Subscribe registers a live feed for one user. The returned function must
// be called to release the subscription; after it returns the channel is
// closed.
func (s *NotificationService) Subscribe(userID string) (<-chan model.Notification, func()) {
	ch := make(chan model.Notification, subscriberBuffer)

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	if s.subscribers[userID] == nil {
		s.subscribers[userID] = make(map[int]chan model.Notification)
	}
	s.subscribers[userID][id] = ch
	s.mu.Unlock()

	unsubscribe := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		subs, ok := s.subscribers[userID]
		if !ok {
			return
		}
		if _, ok := subs[id]; !ok {
			return
		}
		delete(subs, id)
		if len(subs) == 0 {
			delete(s.subscribers, userID)
		}
		close(ch)
	}
	return ch, unsubscribe
}

func (s *NotificationService) publish(n model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subscribers[n.UserID] {
		select {
		case ch <- n:
		default:
			s.log.Warn("notification dropped for slow subscriber",
				zap.String("user_id", n.UserID),
				zap.String("notification_id", n.ID))
		}
	}
}
