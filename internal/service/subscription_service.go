package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/streamvault/platform-service/internal/config"
	"github.com/streamvault/platform-service/internal/errs"
	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/store"
)

const billingPeriod = 30 * 24 * time.Hour

// SubscriptionServicer is the billing contract consumed by handlers.
type SubscriptionServicer interface {
	GetSubscriptionPlans(ctx context.Context) ([]model.SubscriptionPlan, error)
	GetPlanByID(ctx context.Context, planID string) (model.SubscriptionPlan, error)
	GetUserSubscription(ctx context.Context, userID string) (model.Subscription, error)
	Subscribe(ctx context.Context, userID string, req model.SubscribeRequest) (model.SubscribeResponse, error)
	CancelSubscription(ctx context.Context, userID string) (model.Subscription, error)
	UpgradeSubscription(ctx context.Context, userID, planID string) (model.Subscription, error)
	DowngradeSubscription(ctx context.Context, userID, planID string) (model.Subscription, error)
	RenewSubscription(ctx context.Context, userID string) (model.Subscription, error)
	IsSubscriptionActive(ctx context.Context, userID string) (bool, error)
	ProcessPayment(ctx context.Context, userID string, req model.ProcessPaymentRequest) (model.Payment, error)
	GetPaymentHistory(ctx context.Context, userID string, page, pageSize int) (model.PaymentHistoryResponse, error)
	GetPaymentByID(ctx context.Context, paymentID string) (model.Payment, error)
	RefundPayment(ctx context.Context, paymentID string) (model.Payment, error)
}

// SubscriptionService manages plans, subscriptions and payments.
type SubscriptionService struct {
	store *store.Store
	cfg   *config.Config
	log   *zap.Logger
}

// NewSubscriptionService creates the subscription service.
func NewSubscriptionService(st *store.Store, cfg *config.Config, log *zap.Logger) *SubscriptionService {
	return &SubscriptionService{store: st, cfg: cfg, log: log}
}

// GetSubscriptionPlans lists the reference plans.
func (s *SubscriptionService) GetSubscriptionPlans(ctx context.Context) ([]model.SubscriptionPlan, error) {
	simulate(ctx, s.cfg.SimLatency)
	return s.store.ListPlans(), nil
}

// GetPlanByID returns one plan.
func (s *SubscriptionService) GetPlanByID(ctx context.Context, planID string) (model.SubscriptionPlan, error) {
	simulate(ctx, s.cfg.SimLatency)
	p, ok := s.store.GetPlan(planID)
	if !ok {
		return model.SubscriptionPlan{}, errs.ErrNotFound
	}
	return p, nil
}

// GetUserSubscription returns the user's subscription, any status.
func (s *SubscriptionService) GetUserSubscription(ctx context.Context, userID string) (model.Subscription, error) {
	simulate(ctx, s.cfg.SimLatency)
	sub, ok := s.store.FindSubscriptionByUser(userID)
	if !ok {
		return model.Subscription{}, errs.ErrNotFound
	}
	return sub, nil
}

// Subscribe activates a 30-day subscription and records its first payment.
// A user with an active subscription cannot subscribe again.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID string, req model.SubscribeRequest) (model.SubscribeResponse, error) {
	simulate(ctx, s.cfg.SimLatency)

	plan, ok := s.store.GetPlan(req.PlanID)
	if !ok {
		return model.SubscribeResponse{}, errs.ErrNotFound
	}
	if existing, ok := s.store.FindSubscriptionByUser(userID); ok && existing.Status == model.SubscriptionActive {
		return model.SubscribeResponse{}, errs.ErrAlreadySubscribed
	}

	now := time.Now()
	sub := model.Subscription{
		ID:        "sub-" + uuid.New().String(),
		UserID:    userID,
		PlanID:    plan.ID,
		Status:    model.SubscriptionActive,
		Plan:      plan,
		StartDate: now,
		EndDate:   now.Add(billingPeriod),
		AutoRenew: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.store.PutSubscription(sub)

	payment := s.recordPayment(userID, sub.ID, plan.PricePerMonth, model.MethodCard)
	s.log.Info("subscription created",
		zap.String("user_id", userID),
		zap.String("plan_id", plan.ID))

	return model.SubscribeResponse{Subscription: sub, Payment: payment}, nil
}

// CancelSubscription stops renewal; access runs until EndDate.
func (s *SubscriptionService) CancelSubscription(ctx context.Context, userID string) (model.Subscription, error) {
	simulate(ctx, s.cfg.SimLatency)

	sub, ok := s.store.FindSubscriptionByUser(userID)
	if !ok {
		return model.Subscription{}, errs.ErrNotFound
	}
	updated, _ := s.store.UpdateSubscription(sub.ID, func(sub *model.Subscription) {
		sub.Status = model.SubscriptionCancelled
		sub.AutoRenew = false
		sub.UpdatedAt = time.Now()
	})
	return updated, nil
}

// UpgradeSubscription swaps the plan snapshot. No proration; the first full
// charge at the new price lands at renewal.
func (s *SubscriptionService) UpgradeSubscription(ctx context.Context, userID, planID string) (model.Subscription, error) {
	return s.switchPlan(ctx, userID, planID)
}

// DowngradeSubscription swaps the plan snapshot, same mechanics as upgrade.
func (s *SubscriptionService) DowngradeSubscription(ctx context.Context, userID, planID string) (model.Subscription, error) {
	return s.switchPlan(ctx, userID, planID)
}

func (s *SubscriptionService) switchPlan(ctx context.Context, userID, planID string) (model.Subscription, error) {
	simulate(ctx, s.cfg.SimLatency)

	plan, ok := s.store.GetPlan(planID)
	if !ok {
		return model.Subscription{}, errs.ErrNotFound
	}
	sub, ok := s.store.FindSubscriptionByUser(userID)
	if !ok {
		return model.Subscription{}, errs.ErrNotFound
	}
	updated, _ := s.store.UpdateSubscription(sub.ID, func(sub *model.Subscription) {
		sub.PlanID = plan.ID
		sub.Plan = plan
		sub.UpdatedAt = time.Now()
	})
	return updated, nil
}

// RenewSubscription reactivates and restarts the 30-day window from now.
// The new window is not additive to any remaining time.
func (s *SubscriptionService) RenewSubscription(ctx context.Context, userID string) (model.Subscription, error) {
	simulate(ctx, s.cfg.SimLatency)

	sub, ok := s.store.FindSubscriptionByUser(userID)
	if !ok {
		return model.Subscription{}, errs.ErrNotFound
	}
	now := time.Now()
	updated, _ := s.store.UpdateSubscription(sub.ID, func(sub *model.Subscription) {
		sub.Status = model.SubscriptionActive
		sub.StartDate = now
		sub.EndDate = now.Add(billingPeriod)
		sub.UpdatedAt = now
	})
	s.recordPayment(userID, sub.ID, updated.Plan.PricePerMonth, model.MethodCard)
	return updated, nil
}

// IsSubscriptionActive reports active status with an end date strictly in
// the future. A missing subscription is simply inactive, not an error.
func (s *SubscriptionService) IsSubscriptionActive(ctx context.Context, userID string) (bool, error) {
	simulate(ctx, s.cfg.SimLatency)
	sub, ok := s.store.FindSubscriptionByUser(userID)
	if !ok {
		return false, nil
	}
	return sub.Status == model.SubscriptionActive && sub.EndDate.After(time.Now()), nil
}

// ProcessPayment charges against a subscription. The mock gateway always
// settles.
func (s *SubscriptionService) ProcessPayment(ctx context.Context, userID string, req model.ProcessPaymentRequest) (model.Payment, error) {
	simulate(ctx, s.cfg.SimLatency)

	if _, ok := s.store.GetSubscription(req.SubscriptionID); !ok {
		return model.Payment{}, errs.ErrNotFound
	}
	method := req.Method
	if method == "" {
		method = model.MethodCard
	}
	return s.recordPayment(userID, req.SubscriptionID, req.Amount, method), nil
}

// GetPaymentHistory returns the user's payments, paginated.
func (s *SubscriptionService) GetPaymentHistory(ctx context.Context, userID string, page, pageSize int) (model.PaymentHistoryResponse, error) {
	simulate(ctx, s.cfg.SimLatency)
	all := s.store.ListPaymentsByUser(userID)
	items, pagination := model.Paginate(all, page, pageSize, s.cfg.DefaultPageSize)
	return model.PaymentHistoryResponse{Payments: items, Pagination: pagination}, nil
}

// GetPaymentByID returns one payment.
func (s *SubscriptionService) GetPaymentByID(ctx context.Context, paymentID string) (model.Payment, error) {
	simulate(ctx, s.cfg.SimLatency)
	p, ok := s.store.GetPayment(paymentID)
	if !ok {
		return model.Payment{}, errs.ErrNotFound
	}
	return p, nil
}

// RefundPayment moves a completed payment to refunded. Any other state,
// including an earlier refund, is rejected.
func (s *SubscriptionService) RefundPayment(ctx context.Context, paymentID string) (model.Payment, error) {
	simulate(ctx, s.cfg.SimLatency)

	p, ok := s.store.GetPayment(paymentID)
	if !ok {
		return model.Payment{}, errs.ErrNotFound
	}
	if p.Status != model.PaymentCompleted {
		return model.Payment{}, errs.ErrRefundNotCompleted
	}
	updated, _ := s.store.UpdatePayment(paymentID, func(p *model.Payment) {
		p.Status = model.PaymentRefunded
		p.UpdatedAt = time.Now()
	})
	s.log.Info("payment refunded", zap.String("payment_id", paymentID))
	return updated, nil
}

func (s *SubscriptionService) recordPayment(userID, subscriptionID string, amount float64, method model.PaymentMethod) model.Payment {
	now := time.Now()
	p := model.Payment{
		ID:             "payment-" + uuid.New().String(),
		UserID:         userID,
		SubscriptionID: subscriptionID,
		Amount:         amount,
		Currency:       "USD",
		Status:         model.PaymentCompleted,
		Method:         method,
		TransactionID:  "txn-" + uuid.New().String(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.store.AppendPayment(p)
	return p
}
