package reservationRepo

import (
	"context"
	"time"

	"wheelify/models"
)

// ReservationRepository is the persistence boundary for reservation records.
type ReservationRepository interface {
	Create(ctx context.Context, r *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	// FindOverlapping returns blocking reservations for the vehicle whose
	// window intersects [start, end). Cancelled and completed records do not
	// block.
	FindOverlapping(ctx context.Context, vehicleID string, start, end time.Time) ([]models.Reservation, error)
	// MarkPaid records the payment reference and moves the reservation from
	// PENDING_PAYMENT to CONFIRMED.
	MarkPaid(ctx context.Context, id, paymentRef string) error
	Cancel(ctx context.Context, id, reason string) error
	// CancelIfUnpaid cancels the reservation only if it is still awaiting
	// payment, and reports whether a record was released.
	CancelIfUnpaid(ctx context.Context, id, reason string) (bool, error)
}
