package handlers

import (
	"net/http"

	"wheelify/models"
	"wheelify/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler exposes the checkout state machine endpoints.
type CheckoutHandler struct {
	Checkout booking.CheckoutService
	Logger   *zap.Logger
}

func NewCheckoutHandler(checkout booking.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{Checkout: checkout, Logger: logger}
}

// Proceed commits the session to checkout: the reservation is created
// remotely and the process moves to AWAITING_PAYMENT.
func (h *CheckoutHandler) Proceed(c *gin.Context) {
	sessionID := c.Param("sessionID")

	proc, err := h.Checkout.Proceed(c.Request.Context(), sessionID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, proc)
}

// Pay runs the payment phase with the opaque card handle from the processor UI.
func (h *CheckoutHandler) Pay(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Card models.CardDetails `json:"card" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	proc, err := h.Checkout.Pay(c.Request.Context(), sessionID, input.Card)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, proc)
}

// Inspect returns the current checkout process state.
func (h *CheckoutHandler) Inspect(c *gin.Context) {
	sessionID := c.Param("sessionID")

	proc, err := h.Checkout.Inspect(c.Request.Context(), sessionID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, proc)
}
