package store

import (
	"slices"

	"github.com/streamvault/platform-service/internal/model"
)

// PutNotification inserts or replaces a notification.
func (s *Store) PutNotification(n model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications[n.ID] = n
}

// GetNotification returns a notification by ID.
func (s *Store) GetNotification(id string) (model.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	return n, ok
}

// UpdateNotification applies fn to the stored notification under the lock.
// Unknown IDs are a no-op.
func (s *Store) UpdateNotification(id string, fn func(*model.Notification)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok {
		return false
	}
	fn(&n)
	s.notifications[id] = n
	return true
}

// MarkAllRead flips every unread notification of a user to read.
func (s *Store) MarkAllRead(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			s.notifications[id] = n
		}
	}
}

// DeleteNotification removes a notification; absent IDs are a no-op.
func (s *Store) DeleteNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notifications, id)
}

// ListNotificationsByUser returns a user's notifications, newest first.
func (s *Store) ListNotificationsByUser(userID string) []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	slices.SortFunc(out, func(a, b model.Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

// CountUnread derives the unread count from the stored collection; it is
// never cached separately.
func (s *Store) CountUnread(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}
