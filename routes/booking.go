package routes

import (
	"wheelify/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	booking := r.Group("/api/v1/booking")
	{
		booking.Use(middleware.AuthMiddleware())

		// Session lifecycle.
		booking.POST("/session", hb.Booking.StartSession)
		booking.GET("/session/:sessionID", hb.Booking.GetSession)
		booking.PUT("/session/:sessionID/dates", hb.Booking.SetDates)
		booking.PUT("/session/:sessionID/vehicle", hb.Booking.SelectVehicle)
		booking.POST("/session/:sessionID/extras", hb.Booking.ToggleExtra)
		booking.PUT("/session/:sessionID/details", hb.Booking.UpdateDetails)
		booking.POST("/session/:sessionID/reset", hb.Booking.ResetSession)
		booking.DELETE("/session/:sessionID", hb.Booking.AbandonSession)

		// Checkout state machine.
		booking.POST("/session/:sessionID/checkout", hb.Checkout.Proceed)
		booking.GET("/session/:sessionID/checkout", hb.Checkout.Inspect)
		booking.POST("/session/:sessionID/payment", hb.Checkout.Pay)
	}
}
