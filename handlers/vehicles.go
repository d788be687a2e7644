package handlers

import (
	"net/http"

	vehicleRepo "wheelify/database/repository/vehicle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VehicleHandler exposes read-only catalogue endpoints.
type VehicleHandler struct {
	Vehicles vehicleRepo.VehicleRepository
	Logger   *zap.Logger
}

func NewVehicleHandler(vehicles vehicleRepo.VehicleRepository, logger *zap.Logger) *VehicleHandler {
	return &VehicleHandler{Vehicles: vehicles, Logger: logger}
}

// ListVehicles returns the catalogue.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.Vehicles.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list vehicles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list vehicles"})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// GetVehicle returns a single catalogue record.
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.Vehicles.GetByID(c.Request.Context(), c.Param("vehicleID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}
	c.JSON(http.StatusOK, vehicle)
}
