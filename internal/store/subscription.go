package store

import (
	"slices"

	"github.com/streamvault/platform-service/internal/model"
)

// ListPlans returns the subscription plans.
func (s *Store) ListPlans() []model.SubscriptionPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.plans)
}

// GetPlan returns a plan by ID.
func (s *Store) GetPlan(id string) (model.SubscriptionPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.plans {
		if p.ID == id {
			return p, true
		}
	}
	return model.SubscriptionPlan{}, false
}

// GetSubscription returns a subscription by ID.
func (s *Store) GetSubscription(id string) (model.Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subscriptions[id]
	return sub, ok
}

// FindSubscriptionByUser returns a user's subscription, if any. A user may
// accumulate records across cancel/resubscribe cycles; an active record wins
// over inactive ones, ties go to the most recently created.
func (s *Store) FindSubscriptionByUser(userID string) (model.Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var best model.Subscription
	found := false
	for _, sub := range s.subscriptions {
		if sub.UserID != userID {
			continue
		}
		if !found {
			best = sub
			found = true
			continue
		}
		subActive := sub.Status == model.SubscriptionActive
		bestActive := best.Status == model.SubscriptionActive
		if subActive != bestActive {
			if subActive {
				best = sub
			}
			continue
		}
		if sub.CreatedAt.After(best.CreatedAt) {
			best = sub
		}
	}
	return best, found
}

// PutSubscription inserts or replaces a subscription.
func (s *Store) PutSubscription(sub model.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscriptions[sub.ID] = sub
}

// UpdateSubscription applies fn to the stored subscription under the lock.
func (s *Store) UpdateSubscription(id string, fn func(*model.Subscription)) (model.Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subscriptions[id]
	if !ok {
		return model.Subscription{}, false
	}
	fn(&sub)
	s.subscriptions[id] = sub
	return sub, true
}

// AppendPayment records a payment.
func (s *Store) AppendPayment(p model.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, p)
}

// GetPayment returns a payment by ID.
func (s *Store) GetPayment(id string) (model.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.ID == id {
			return p, true
		}
	}
	return model.Payment{}, false
}

// UpdatePayment applies fn to the stored payment under the lock.
func (s *Store) UpdatePayment(id string, fn func(*model.Payment)) (model.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID == id {
			fn(&s.payments[i])
			return s.payments[i], true
		}
	}
	return model.Payment{}, false
}

// ListPaymentsByUser returns a user's payments in recording order.
func (s *Store) ListPaymentsByUser(userID string) []model.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Payment
	for _, p := range s.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}
