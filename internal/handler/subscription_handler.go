package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streamvault/platform-service/internal/model"
	"github.com/streamvault/platform-service/internal/service"
)

// SubscriptionHandler handles REST API for plans, subscriptions and
// payments.
type SubscriptionHandler struct {
	svc service.SubscriptionServicer
}

// NewSubscriptionHandler creates a subscription handler.
func NewSubscriptionHandler(svc service.SubscriptionServicer) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// ListPlans godoc
// GET /plans
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.svc.GetSubscriptionPlans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, plans)
}

// GetPlan godoc
// GET /plans/:id
func (h *SubscriptionHandler) GetPlan(c *gin.Context) {
	plan, err := h.svc.GetPlanByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, plan)
}

// GetUserSubscription godoc
// GET /users/:id/subscription
func (h *SubscriptionHandler) GetUserSubscription(c *gin.Context) {
	sub, err := h.svc.GetUserSubscription(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, sub)
}

// Subscribe godoc
// POST /users/:id/subscription
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	resp, err := h.svc.Subscribe(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// Cancel godoc
// POST /users/:id/subscription/cancel
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	sub, err := h.svc.CancelSubscription(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, sub)
}

// Upgrade godoc
// POST /users/:id/subscription/upgrade
func (h *SubscriptionHandler) Upgrade(c *gin.Context) {
	var req struct {
		PlanID string `json:"plan_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	sub, err := h.svc.UpgradeSubscription(c.Request.Context(), c.Param("id"), req.PlanID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, sub)
}

// Downgrade godoc
// POST /users/:id/subscription/downgrade
func (h *SubscriptionHandler) Downgrade(c *gin.Context) {
	var req struct {
		PlanID string `json:"plan_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	sub, err := h.svc.DowngradeSubscription(c.Request.Context(), c.Param("id"), req.PlanID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, sub)
}

// Renew godoc
// POST /users/:id/subscription/renew
func (h *SubscriptionHandler) Renew(c *gin.Context) {
	sub, err := h.svc.RenewSubscription(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, sub)
}

// IsActive godoc
// GET /users/:id/subscription/active
func (h *SubscriptionHandler) IsActive(c *gin.Context) {
	active, err := h.svc.IsSubscriptionActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"active": active})
}

// ProcessPayment godoc
// POST /users/:id/payments
func (h *SubscriptionHandler) ProcessPayment(c *gin.Context) {
	var req model.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	p, err := h.svc.ProcessPayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, p)
}

// PaymentHistory godoc
// GET /users/:id/payments
func (h *SubscriptionHandler) PaymentHistory(c *gin.Context) {
	resp, err := h.svc.GetPaymentHistory(c.Request.Context(), c.Param("id"),
		queryInt(c, "page", 1), queryInt(c, "page_size", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// GetPayment godoc
// GET /payments/:id
func (h *SubscriptionHandler) GetPayment(c *gin.Context) {
	p, err := h.svc.GetPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, p)
}

// RefundPayment godoc
// POST /payments/:id/refund
func (h *SubscriptionHandler) RefundPayment(c *gin.Context) {
	p, err := h.svc.RefundPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, p)
}
