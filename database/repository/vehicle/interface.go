package vehicleRepo

import (
	"context"

	"wheelify/models"
)

// VehicleRepository is the read-side boundary for the vehicle catalogue.
type VehicleRepository interface {
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
	List(ctx context.Context) ([]models.Vehicle, error)
}
