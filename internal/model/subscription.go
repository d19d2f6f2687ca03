package model

import "time"

// SubscriptionStatus represents the subscription state machine:
// pending -> active -> {cancelled, expired}.
type SubscriptionStatus string

const (
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// VideoQuality tiers offered by plans.
type VideoQuality string

const (
	QualitySD  VideoQuality = "SD"
	QualityHD  VideoQuality = "HD"
	Quality4K  VideoQuality = "4K"
)

// SubscriptionPlan is immutable reference data.
// MaxDownloads of -1 means unlimited.
type SubscriptionPlan struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Description          string       `json:"description"`
	PricePerMonth        float64      `json:"price_per_month"`
	Features             []string     `json:"features"`
	MaxConcurrentStreams int          `json:"max_concurrent_streams"`
	MaxDownloads         int          `json:"max_downloads"`
	VideoQuality         VideoQuality `json:"video_quality"`
	IsActive             bool         `json:"is_active"`
}

// Subscription carries a snapshot of its plan; upgrading replaces the
// snapshot, it does not mutate the reference plan.
type Subscription struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	PlanID    string             `json:"plan_id"`
	Status    SubscriptionStatus `json:"status"`
	Plan      SubscriptionPlan   `json:"plan"`
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `json:"end_date"`
	AutoRenew bool               `json:"auto_renew"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// PaymentStatus represents payment state. Only completed payments may move
// to refunded.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// PaymentMethod enumerates accepted instruments.
type PaymentMethod string

const (
	MethodCard      PaymentMethod = "card"
	MethodPayPal    PaymentMethod = "paypal"
	MethodApplePay  PaymentMethod = "applepay"
	MethodGooglePay PaymentMethod = "googlepay"
)

// Payment records a charge against a subscription.
type Payment struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	SubscriptionID string        `json:"subscription_id"`
	Amount         float64       `json:"amount"`
	Currency       string        `json:"currency"`
	Status         PaymentStatus `json:"status"`
	Method         PaymentMethod `json:"payment_method"`
	TransactionID  string        `json:"transaction_id"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// SubscribeRequest is the body for POST /subscriptions.
type SubscribeRequest struct {
	PlanID          string `json:"plan_id" binding:"required"`
	PaymentMethodID string `json:"payment_method_id"`
}

// SubscribeResponse bundles the created subscription with its payment.
type SubscribeResponse struct {
	Subscription Subscription `json:"subscription"`
	Payment      Payment      `json:"payment"`
}

// ProcessPaymentRequest is the body for POST /payments.
type ProcessPaymentRequest struct {
	SubscriptionID string        `json:"subscription_id" binding:"required"`
	Amount         float64       `json:"amount" binding:"min=0"`
	Method         PaymentMethod `json:"payment_method"`
}

// PaymentHistoryResponse is the paginated payment list.
type PaymentHistoryResponse struct {
	Payments   []Payment  `json:"payments"`
	Pagination Pagination `json:"pagination"`
}
