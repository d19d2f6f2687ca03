package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/streamvault/platform-service/internal/errs"
	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/store"
)

func newSubscriptionService() *SubscriptionService {
	return NewSubscriptionService(store.NewSeeded(), testConfig(), zap.NewNop())
}

func TestSubscribeCreatesActiveSubscriptionWithPayment(t *testing.T) {
	svc := newSubscriptionService()
	ctx := context.Background()

	resp, err := svc.Subscribe(ctx, "user-001", model.SubscribeRequest{PlanID: "plan-standard"})
	require.NoError(t, err)

	sub := resp.Subscription
	assert.Equal(t, model.SubscriptionActive, sub.Status)
	assert.Equal(t, "plan-standard", sub.PlanID)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), sub.EndDate, time.Minute)
	assert.True(t, sub.AutoRenew)

	p := resp.Payment
	assert.Equal(t, model.PaymentCompleted, p.Status)
	assert.Equal(t, sub.Plan.PricePerMonth, p.Amount)
	assert.Equal(t, sub.ID, p.SubscriptionID)

	active, err := svc.IsSubscriptionActive(ctx, "user-001")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestSubscribeTwiceIsRejected(t *testing.T) {
	svc := newSubscriptionService()
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "user-001", model.SubscribeRequest{PlanID: "plan-basic"})
	require.NoError(t, err)

	_, err = svc.Subscribe(ctx, "user-001", model.SubscribeRequest{PlanID: "plan-premium"})
	assert.ErrorIs(t, err, errs.ErrAlreadySubscribed)
}

func TestResubscribeAfterCancelHoldsSingleActiveSubscription(t *testing.T) {
	svc := newSubscriptionService()
	ctx := context.Background()

	// user-003 carries a seeded active subscription.
	_, err := svc.CancelSubscription(ctx, "user-003")
	require.NoError(t, err)

	resp, err := svc.Subscribe(ctx, "user-003", model.SubscribeRequest{PlanID: "plan-standard"})
	require.NoError(t, err)
	assert.Equal(t, model.SubscriptionActive, resp.Subscription.Status)

	_, err = svc.Subscribe(ctx, "user-003", model.SubscribeRequest{PlanID: "plan-premium"})
	assert.ErrorIs(t, err, errs.ErrAlreadySubscribed)

	// Lookups resolve to the active record, not an old cancelled one.
	current, err := svc.GetUserSubscription(ctx, "user-003")
	require.NoError(t, err)
	assert.Equal(t, resp.Subscription.ID, current.ID)
	assert.Equal(t, "plan-standard", current.PlanID)

	// Cancelling it leaves the user with no active subscription at all.
	_, err = svc.CancelSubscription(ctx, "user-003")
	require.NoError(t, err)
	active, err := svc.IsSubscriptionActive(ctx, "user-003")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestSubscribeUnknownPlan(t *testing.T) {
	svc := newSubscriptionService()
	_, err := svc.Subscribe(context.Background(), "user-001", model.SubscribeRequest{PlanID: "plan-missing"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCancelKeepsAccessUntilEndDate(t *testing.T) {
	svc := newSubscriptionService()
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "user-001", model.SubscribeRequest{PlanID: "plan-basic"})
	require.NoError(t, err)

	sub, err := svc.CancelSubscription(ctx, "user-001")
	require.NoError(t, err)
	assert.Equal(t, model.SubscriptionCancelled, sub.Status)
	assert.False(t, sub.AutoRenew)
	assert.True(t, sub.EndDate.After(time.Now()))

	// Cancelled means no longer active for gating purposes.
	active, err := svc.IsSubscriptionActive(ctx, "user-001")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestUpgradeReplacesPlanSnapshotWithoutProration(t *testing.T) {
	svc := newSubscriptionService()
	ctx := context.Background()

	resp, err := svc.Subscribe(ctx, "user-001", model.SubscribeRequest{PlanID: "plan-basic"})
	require.NoError(t, err)
	endBefore := resp.Subscription.EndDate

	sub, err := svc.UpgradeSubscription(ctx, "user-001", "plan-premium")
	require.NoError(t, err)
	assert.Equal(t, "plan-premium", sub.PlanID)
	assert.Equal(t, "plan-premium", sub.Plan.ID)
	assert.Equal(t, endBefore, sub.EndDate)

	history, err := svc.GetPaymentHistory(ctx, "user-001", 1, 10)
	require.NoError(t, err)
	assert.Len(t, history.Payments, 1)
}

func TestRenewRestartsWindowFromNow(t *testing.T) {
	svc := newSubscriptionService()
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "user-001", model.SubscribeRequest{PlanID: "plan-standard"})
	require.NoError(t, err)
	_, err = svc.CancelSubscription(ctx, "user-001")
	require.NoError(t, err)

	sub, err := svc.RenewSubscription(ctx, "user-001")
	require.NoError(t, err)
	assert.Equal(t, model.SubscriptionActive, sub.Status)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), sub.EndDate, time.Minute)

	history, err := svc.GetPaymentHistory(ctx, "user-001", 1, 10)
	require.NoError(t, err)
	assert.Len(t, history.Payments, 2)
}

func TestRefundPaymentExactlyOnce(t *testing.T) {
	svc := newSubscriptionService()
	ctx := context.Background()

	resp, err := svc.Subscribe(ctx, "user-001", model.SubscribeRequest{PlanID: "plan-basic"})
	require.NoError(t, err)

	refunded, err := svc.RefundPayment(ctx, resp.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentRefunded, refunded.Status)

	_, err = svc.RefundPayment(ctx, resp.Payment.ID)
	assert.ErrorIs(t, err, errs.ErrRefundNotCompleted)
}

func TestProcessPaymentAlwaysSettles(t *testing.T) {
	svc := newSubscriptionService()
	ctx := context.Background()

	resp, err := svc.Subscribe(ctx, "user-001", model.SubscribeRequest{PlanID: "plan-basic"})
	require.NoError(t, err)

	p, err := svc.ProcessPayment(ctx, "user-001", model.ProcessPaymentRequest{
		SubscriptionID: resp.Subscription.ID,
		Amount:         4.99,
		Method:         model.MethodPayPal,
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentCompleted, p.Status)
	assert.Equal(t, model.MethodPayPal, p.Method)
	assert.NotEmpty(t, p.TransactionID)

	got, err := svc.GetPaymentByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestGetUserSubscriptionMissing(t *testing.T) {
	svc := newSubscriptionService()
	_, err := svc.GetUserSubscription(context.Background(), "user-001")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	active, err := svc.IsSubscriptionActive(context.Background(), "user-001")
	require.NoError(t, err)
	assert.False(t, active)
}
