package routes

import (
	"net/http"
	"time"

	"wheelify/handlers"
	"wheelify/middleware"
	"wheelify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the route tree needs.
type HandlerBundle struct {
	Booking      *handlers.BookingHandler
	Checkout     *handlers.CheckoutHandler
	Vehicles     *handlers.VehicleHandler
	Reservations *handlers.ReservationHandler
}

// RegisterVehicleRoutes registers the public catalogue endpoints.
func RegisterVehicleRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/v1/vehicles")
	{
		api.GET("", hb.Vehicles.ListVehicles)
		api.GET("/:vehicleID", hb.Vehicles.GetVehicle)
		api.POST("/availability", hb.Booking.CheckAvailability)
	}
}

// RegisterReservationRoutes registers reservation history endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/v1/reservations")
	{
		api.Use(middleware.AuthMiddleware())
		api.GET("", hb.Reservations.ListReservations)
		api.GET("/:reservationID", hb.Reservations.GetReservation)
		api.POST("/:reservationID/cancel", hb.Reservations.CancelReservation)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterVehicleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
}
