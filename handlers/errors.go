package handlers

import (
	"errors"
	"net/http"

	"wheelify/services/booking"

	"github.com/gin-gonic/gin"
)

// respondBookingError maps the booking error taxonomy onto HTTP responses.
// Each error keeps its distinct code so clients can tell a decline from a
// transport failure, and a sync failure from a failed payment.
func respondBookingError(c *gin.Context, err error) {
	var (
		invalidRange *booking.InvalidRangeError
		notReady     *booking.NotReadyError
		boundary     *booking.BoundaryUnavailableError
		creation     *booking.ReservationCreationError
		intentErr    *booking.PaymentIntentError
		declined     *booking.PaymentDeclinedError
		syncErr      *booking.ConfirmationSyncError
	)

	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": "sessionNotFound"})
	case errors.As(err, &invalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidRange.Message, "code": "invalidRange"})
	case errors.As(err, &notReady):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "notReady", "missing": notReady.Missing})
	case errors.As(err, &boundary):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "availability service unavailable", "code": "boundaryUnavailable"})
	case errors.As(err, &declined):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": declined.Message, "code": "paymentDeclined", "declineCode": declined.Code})
	case errors.As(err, &syncErr):
		// Payment went through. The response must never read as a payment
		// failure, or the client will prompt the user to pay again.
		c.JSON(http.StatusBadGateway, gin.H{
			"error":         "payment succeeded but the reservation could not be updated; do not retry payment",
			"code":          "confirmationSync",
			"reservationId": syncErr.ReservationID,
			"paymentRef":    syncErr.PaymentRef,
		})
	case errors.As(err, &creation):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":          "failed to create reservation",
			"code":           "reservationCreation",
			"outcomeUnknown": creation.OutcomeUnknown,
		})
	case errors.As(err, &intentErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to initialize payment", "code": "paymentIntent"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
