package booking

import (
	"context"
	"time"

	"wheelify/models"
)

// SessionService manages the lifecycle of a stateful booking session.
type SessionService interface {
	Create(ctx context.Context, userID string) (*models.BookingSession, error)
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SetDates(ctx context.Context, sessionID string, start, end time.Time) (*models.BookingSession, error)
	SelectVehicle(ctx context.Context, sessionID, vehicleID string) (*models.BookingSession, error)
	ToggleExtra(ctx context.Context, sessionID string, extra models.Extra) (*models.BookingSession, error)
	UpdateDetails(ctx context.Context, sessionID, pickup, dropoff, notes string) (*models.BookingSession, error)
	Quote(ctx context.Context, sessionID string) (models.PriceBreakdown, error)
	Reset(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Abandon(ctx context.Context, sessionID string) error
}

// CheckoutService drives a booking session through reservation creation and
// payment to a terminal state.
type CheckoutService interface {
	// Proceed creates the remote reservation for a checkout-ready session and
	// moves the process to AWAITING_PAYMENT.
	Proceed(ctx context.Context, sessionID string) (*models.CheckoutProcess, error)
	// Pay obtains a payment intent, confirms the card, and syncs the payment
	// back to the reservation record.
	Pay(ctx context.Context, sessionID string, card models.CardDetails) (*models.CheckoutProcess, error)
	// Inspect returns the current checkout process without advancing it.
	Inspect(ctx context.Context, sessionID string) (*models.CheckoutProcess, error)
}

// PaymentIntent is the processor-side handle for an authorized-but-unconfirmed
// charge attempt.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentProcessor is the external payment boundary.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, reservationID string, amount float64, currency string) (*PaymentIntent, error)
	// ConfirmIntent submits the opaque card handle and returns the payment
	// reference on success. Processor declines surface as PaymentDeclinedError.
	ConfirmIntent(ctx context.Context, intentID string, card models.CardDetails) (string, error)
}

// ExpiryScheduler queues the release of a reservation that stays unpaid past
// the hold window.
type ExpiryScheduler interface {
	ScheduleExpiry(reservationID string, at time.Time) error
}
