package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/store"
)

func newNotificationService() *NotificationService {
	return NewNotificationService(store.NewSeeded(), testConfig(), zap.NewNop())
}

func sendReq(userID, title string) model.SendNotificationRequest {
	return model.SendNotificationRequest{
		UserID:  userID,
		Type:    model.NotifySystem,
		Title:   title,
		Message: "hello",
	}
}

func TestSendAndListNotifications(t *testing.T) {
	svc := newNotificationService()
	ctx := context.Background()

	_, err := svc.SendNotification(ctx, sendReq("user-001", "first"))
	require.NoError(t, err)
	n2, err := svc.SendNotification(ctx, sendReq("user-001", "second"))
	require.NoError(t, err)
	_, err = svc.SendNotification(ctx, sendReq("user-002", "other user"))
	require.NoError(t, err)

	resp, err := svc.GetNotifications(ctx, "user-001", 1, 10)
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, 2, resp.UnreadCount)
	// Newest first.
	assert.Equal(t, n2.ID, resp.Notifications[0].ID)
}

func TestMarkAsReadAndUnreadCount(t *testing.T) {
	svc := newNotificationService()
	ctx := context.Background()

	n, err := svc.SendNotification(ctx, sendReq("user-001", "ping"))
	require.NoError(t, err)

	require.NoError(t, svc.MarkAsRead(ctx, n.ID))
	// Re-marking and unknown IDs are no-ops.
	require.NoError(t, svc.MarkAsRead(ctx, n.ID))
	require.NoError(t, svc.MarkAsRead(ctx, "notif-missing"))

	count, err := svc.GetUnreadCount(ctx, "user-001")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMarkAllAsReadIsIdempotent(t *testing.T) {
	svc := newNotificationService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.SendNotification(ctx, sendReq("user-001", "batch"))
		require.NoError(t, err)
	}

	require.NoError(t, svc.MarkAllAsRead(ctx, "user-001"))
	require.NoError(t, svc.MarkAllAsRead(ctx, "user-001"))

	count, err := svc.GetUnreadCount(ctx, "user-001")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteNotification(t *testing.T) {
	svc := newNotificationService()
	ctx := context.Background()

	n, err := svc.SendNotification(ctx, sendReq("user-001", "bye"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteNotification(ctx, n.ID))
	require.NoError(t, svc.DeleteNotification(ctx, n.ID))

	resp, err := svc.GetNotifications(ctx, "user-001", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, resp.Notifications)
}

func TestSubscribeReceivesLiveNotifications(t *testing.T) {
	svc := newNotificationService()
	ctx := context.Background()

	feed, unsubscribe := svc.Subscribe("user-001")
	defer unsubscribe()

	sent, err := svc.SendNotification(ctx, sendReq("user-001", "live"))
	require.NoError(t, err)
	// Another user's notification must not land on this feed.
	_, err = svc.SendNotification(ctx, sendReq("user-002", "not for us"))
	require.NoError(t, err)

	select {
	case got := <-feed:
		assert.Equal(t, sent.ID, got.ID)
	case <-time.After(time.Second):
		t.Fatal("expected a notification on the feed")
	}

	select {
	case extra := <-feed:
		t.Fatalf("unexpected notification: %s", extra.Title)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribeClosesFeed(t *testing.T) {
	svc := newNotificationService()

	feed, unsubscribe := svc.Subscribe("user-001")
	unsubscribe()
	// Calling twice must not panic.
	unsubscribe()

	_, open := <-feed
	assert.False(t, open)

	// Publishing after unsubscribe must not block or panic.
	_, err := svc.SendNotification(context.Background(), sendReq("user-001", "after"))
	assert.NoError(t, err)
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	svc := newNotificationService()
	ctx := context.Background()

	_, unsubscribe := svc.Subscribe("user-001")
	defer unsubscribe()

	// Overflow the buffered channel; sends must not block.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer+5; i++ {
			_, _ = svc.SendNotification(ctx, sendReq("user-001", "flood"))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publishing blocked on a slow subscriber")
	}
}
