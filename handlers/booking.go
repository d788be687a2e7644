package handlers

import (
	"net/http"
	"time"

	"wheelify/models"
	"wheelify/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking session endpoints.
type BookingHandler struct {
	Sessions     booking.SessionService
	Availability booking.AvailabilityChecker
	Logger       *zap.Logger
}

func NewBookingHandler(sessions booking.SessionService, availability booking.AvailabilityChecker, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Sessions: sessions, Availability: availability, Logger: logger}
}

// StartSession creates a new booking session for the authenticated user.
func (h *BookingHandler) StartSession(c *gin.Context) {
	userID := c.GetString("userID")

	session, err := h.Sessions.Create(c.Request.Context(), userID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSession returns the session with its current price breakdown.
func (h *BookingHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	pricing, err := h.Sessions.Quote(c.Request.Context(), sessionID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	session, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "pricing": pricing})
}

// SetDates replaces the rental window.
func (h *BookingHandler) SetDates(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Start time.Time `json:"start" binding:"required"`
		End   time.Time `json:"end" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.SetDates(c.Request.Context(), sessionID, input.Start, input.End)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectVehicle checks availability for the session's window and, only if the
// vehicle is free, attaches it to the session.
func (h *BookingHandler) SelectVehicle(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		VehicleID string `json:"vehicleId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if session.DateRange == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "select dates before choosing a vehicle", "code": "invalidRange"})
		return
	}

	result, err := h.Availability.Check(c.Request.Context(), input.VehicleID, *session.DateRange)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if !result.Available {
		c.JSON(http.StatusConflict, gin.H{"error": "vehicle not available", "code": "unavailable", "reason": result.Reason})
		return
	}

	session, err = h.Sessions.SelectVehicle(c.Request.Context(), sessionID, input.VehicleID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ToggleExtra adds or removes an add-on from the session.
func (h *BookingHandler) ToggleExtra(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Extra models.Extra `json:"extra" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.ToggleExtra(c.Request.Context(), sessionID, input.Extra)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateDetails replaces locations and notes.
func (h *BookingHandler) UpdateDetails(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		PickupLocation  string `json:"pickupLocation"`
		DropoffLocation string `json:"dropoffLocation"`
		Notes           string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.UpdateDetails(c.Request.Context(), sessionID, input.PickupLocation, input.DropoffLocation, input.Notes)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CheckAvailability answers an availability query without touching the session.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var input struct {
		VehicleID string    `json:"vehicleId" binding:"required"`
		Start     time.Time `json:"start" binding:"required"`
		End       time.Time `json:"end" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Availability.Check(c.Request.Context(), input.VehicleID, models.DateRange{Start: input.Start, End: input.End})
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ResetSession clears all selections but keeps the session alive.
func (h *BookingHandler) ResetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Sessions.Reset(c.Request.Context(), sessionID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AbandonSession discards the session and any checkout attached to it.
func (h *BookingHandler) AbandonSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Sessions.Abandon(c.Request.Context(), sessionID); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "abandoned"})
}
