package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/knotapp/circle-management-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

func getAccessContextFromContext(c *gin.Context) (middleware.AccessContext, bool) {
	accessContext, ok := middleware.GetAccessContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access context missing"})
		return middleware.AccessContext{}, false
	}
	return accessContext, true
}

func eventIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return 0, false
	}
	return uint(id), true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrManagerOnly):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ErrEventNotFound), errors.Is(err, ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNothingToPay), errors.Is(err, ErrGatewayDisabled):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ===========================
// ✍️ Toggle Payment - PATCH /events/:id/payments/:user_id
// @Summary Mark a member's event fee paid or unpaid (owner/admin only)
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param user_id path string true "Member user ID"
// @Param body body SetStatusRequest true "Status"
// @Success 200 {object} Payment
// @Failure 403 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/events/{id}/payments/{user_id} [patch]
func (h *Handler) SetPaymentStatus(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.Service.SetPaymentStatus(c.Request.Context(), accessContext, eventID, c.Param("user_id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// ===========================
// 📄 List Payments - GET /events/:id/payments
// @Summary List payment records for an event
// @Tags Payment
// @Produce json
// @Param id path int true "Event ID"
// @Param status query string false "Filter by status (paid or unpaid)"
// @Success 200 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/events/{id}/payments [get]
func (h *Handler) ListEventPayments(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	rows, err := h.Service.ListEventPayments(c.Request.Context(), accessContext, eventID, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": rows, "count": len(rows)})
}

// ===========================
// 📊 Collection Summary - GET /events/:id/payments/summary
// @Summary Fee collection totals for an event
// @Tags Payment
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} CollectionSummary
// @Failure 404 {object} gin.H
// @Router /api/v1/events/{id}/payments/summary [get]
func (h *Handler) GetCollectionSummary(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	summary, err := h.Service.GetCollectionSummary(c.Request.Context(), accessContext, eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ===========================
// 🔄 Reconcile - POST /events/:id/payments/reconcile
// @Summary Repair payment records from RSVPs (owner/admin only)
// @Tags Payment
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} ReconcileResult
// @Failure 403 {object} gin.H
// @Router /api/v1/events/{id}/payments/reconcile [post]
func (h *Handler) ReconcileEvent(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	result, err := h.Service.ReconcileEvent(c.Request.Context(), accessContext, eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ===========================
// 💳 Start Fee Payment - POST /events/:id/payments/order
// @Summary Create a gateway order for the member's own outstanding fee
// @Tags Payment
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} StartFeePaymentResponse
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/events/{id}/payments/order [post]
func (h *Handler) StartFeePayment(c *gin.Context) {
	accessContext, ok := getAccessContextFromContext(c)
	if !ok {
		return
	}

	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	resp, err := h.Service.StartFeePayment(c.Request.Context(), accessContext, eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ===========================
// 💳 Verify Fee Payment - POST /payments/verify
// @Summary Verify a gateway payment and mark the fee paid
// @Tags Payment
// @Accept json
// @Produce json
// @Param body body VerifyFeePaymentRequest true "Gateway callback payload"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Router /api/v1/payments/verify [post]
func (h *Handler) VerifyFeePayment(c *gin.Context) {
	if _, ok := getAccessContextFromContext(c); !ok {
		return
	}

	var req VerifyFeePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.VerifyFeePayment(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "payment verified"})
}
