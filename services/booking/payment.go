package booking

import (
	"context"
	"errors"
	"fmt"
	"math"

	"wheelify/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripePaymentProcessor implements PaymentProcessor against Stripe.
// stripe.Key must be set before use (done in main from config).
type StripePaymentProcessor struct {
	Logger *zap.Logger
}

// NewStripePaymentProcessor constructs a Stripe-backed processor.
func NewStripePaymentProcessor(logger *zap.Logger) *StripePaymentProcessor {
	return &StripePaymentProcessor{Logger: logger}
}

// CreateIntent opens a payment intent for the reservation's grand total.
// The reservation id doubles as the idempotency key so one CreatingReservation
// entry can never charge twice.
func (p *StripePaymentProcessor) CreateIntent(ctx context.Context, reservationID string, amount float64, currency string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(currency),
		Metadata: map[string]string{"reservation_id": reservationID},
	}
	params.Context = ctx
	params.SetIdempotencyKey("resv-intent-" + reservationID)

	pi, err := paymentintent.New(params)
	if err != nil {
		p.Logger.Error("failed to create payment intent",
			zap.String("reservationID", reservationID), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	p.Logger.Info("payment intent created",
		zap.String("reservationID", reservationID), zap.String("intentID", pi.ID))
	return &PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// ConfirmIntent submits the opaque payment method for confirmation. Card
// declines come back as PaymentDeclinedError; anything else is a transport
// or processor failure.
func (p *StripePaymentProcessor) ConfirmIntent(ctx context.Context, intentID string, card models.CardDetails) (string, error) {
	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(card.PaymentMethod),
	}
	params.Context = ctx

	pi, err := paymentintent.Confirm(intentID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return "", &PaymentDeclinedError{
				Code:    string(stripeErr.Code),
				Message: stripeErr.Msg,
			}
		}
		return "", fmt.Errorf("failed to confirm payment intent %s: %w", intentID, err)
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return "", &PaymentDeclinedError{
			Code:    string(pi.Status),
			Message: "payment was not completed by the processor",
		}
	}

	ref := pi.ID
	if pi.LatestCharge != nil && pi.LatestCharge.ID != "" {
		ref = pi.LatestCharge.ID
	}
	return ref, nil
}
