package handlers

import (
	"net/http"

	reservationRepo "wheelify/database/repository/reservation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler exposes the reservation history endpoints used outside
// the checkout flow.
type ReservationHandler struct {
	Reservations reservationRepo.ReservationRepository
	Logger       *zap.Logger
}

func NewReservationHandler(reservations reservationRepo.ReservationRepository, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Reservations: reservations, Logger: logger}
}

// ListReservations returns the authenticated user's reservations.
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	userID := c.GetString("userID")

	reservations, err := h.Reservations.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to list reservations", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reservations"})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservation returns one reservation if it belongs to the caller.
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	reservation, err := h.Reservations.GetByID(c.Request.Context(), c.Param("reservationID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	if reservation.UserID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "reservation belongs to another user"})
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// CancelReservation cancels a pending or confirmed reservation with a reason.
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	reservationID := c.Param("reservationID")
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	reservation, err := h.Reservations.GetByID(c.Request.Context(), reservationID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	if reservation.UserID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "reservation belongs to another user"})
		return
	}

	if err := h.Reservations.Cancel(c.Request.Context(), reservationID, input.Reason); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
