package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationRepo "wheelify/database/repository/reservation"
	"wheelify/models"
	"wheelify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Checkout error codes recorded on the process.
const (
	codeReservationCreateFailed = "RESERVATION_CREATE_FAILED"
	codePaymentIntentFailed     = "PAYMENT_INTENT_FAILED"
	codePaymentDeclined         = "PAYMENT_DECLINED"
	codePaymentConfirmFailed    = "PAYMENT_CONFIRM_FAILED"
	codeConfirmationSyncFailed  = "CONFIRMATION_SYNC_FAILED"
)

// DefaultCheckoutService implements the two-phase checkout state machine:
// reservation creation against the booking store, then payment against the
// processor, with an explicit recovery point after each remote call.
type DefaultCheckoutService struct {
	Store        SessionStore
	Reservations reservationRepo.ReservationRepository
	Payments     PaymentProcessor
	Expiry       ExpiryScheduler
	HoldWindow   time.Duration
	Currency     string
}

// Proceed moves a checkout-ready session into AWAITING_PAYMENT by creating
// the remote reservation. It issues at most one create call per entry; after
// a failure the caller retries by calling Proceed again, which starts a
// fresh attempt.
func (svc *DefaultCheckoutService) Proceed(ctx context.Context, sessionID string) (*models.CheckoutProcess, error) {
	logger := utils.GetLogger()

	session, err := svc.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	proc, err := svc.Store.GetCheckout(ctx, sessionID)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		proc = newProcess(sessionID)
	case err != nil:
		return nil, err
	}

	switch proc.State {
	case models.CheckoutConfirmed:
		return proc, fmt.Errorf("checkout already completed for session %s", sessionID)
	case models.CheckoutAwaitingPayment:
		return proc, fmt.Errorf("a reservation is already awaiting payment for session %s", sessionID)
	case models.CheckoutFailed:
		// Terminal for that attempt only; the session selections survive, so
		// a fresh process restarts from SELECTING_EXTRAS.
		proc = newProcess(sessionID)
	}

	if !session.IsCheckoutReady() {
		var missing []string
		if session.DateRange == nil || !session.DateRange.Valid() {
			missing = append(missing, "dateRange")
		}
		if session.Vehicle == nil {
			missing = append(missing, "vehicle")
		}
		// Readiness failures block the transition without touching state.
		return proc, &NotReadyError{Missing: missing}
	}

	pricing := session.Pricing
	if pricing == nil {
		breakdown := Compute(session.DateRange, session.Vehicle, session.Extras)
		pricing = &breakdown
	}

	proc.State = models.CheckoutCreatingReservation
	proc.UpdatedAt = time.Now()
	if err := svc.Store.SaveCheckout(ctx, proc); err != nil {
		return nil, err
	}

	now := time.Now()
	reservation := &models.Reservation{
		ID:              uuid.New().String(),
		UserID:          session.UserID,
		VehicleID:       session.Vehicle.ID,
		VehicleName:     session.Vehicle.Name,
		StartDate:       session.DateRange.Start,
		EndDate:         session.DateRange.End,
		ExtraIDs:        session.ExtraIDs(),
		PickupLocation:  session.PickupLocation,
		DropoffLocation: session.DropoffLocation,
		Notes:           session.Notes,
		Pricing:         *pricing,
		Status:          models.StatusPendingPayment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := svc.Reservations.Create(ctx, reservation); err != nil {
		// A timeout means the reservation may exist remotely; flag the
		// outcome as unknown instead of asserting failure.
		outcomeUnknown := errors.Is(err, context.DeadlineExceeded)
		svc.fail(ctx, proc, &models.CheckoutError{
			Code:           codeReservationCreateFailed,
			Message:        err.Error(),
			OutcomeUnknown: outcomeUnknown,
		})
		logger.Error("reservation creation failed",
			zap.String("sessionID", sessionID),
			zap.Bool("outcomeUnknown", outcomeUnknown),
			zap.Error(err))
		return proc, &ReservationCreationError{Err: err, OutcomeUnknown: outcomeUnknown}
	}

	proc.ReservationID = reservation.ID
	proc.State = models.CheckoutAwaitingPayment
	proc.LastError = nil
	proc.UpdatedAt = time.Now()
	if err := svc.Store.SaveCheckout(ctx, proc); err != nil {
		return nil, err
	}

	if svc.Expiry != nil {
		if err := svc.Expiry.ScheduleExpiry(reservation.ID, now.Add(svc.HoldWindow)); err != nil {
			logger.Warn("failed to schedule payment-hold expiry",
				zap.String("reservationID", reservation.ID), zap.Error(err))
		}
	}

	logger.Info("reservation created, awaiting payment",
		zap.String("sessionID", sessionID),
		zap.String("reservationID", reservation.ID))
	return proc, nil
}

// Pay drives the payment phase: intent creation, card confirmation, then the
// mark-paid sync. The two processor calls are strictly sequential. A failed
// sync leaves the process in AWAITING_PAYMENT with the payment reference
// retained, so calling Pay again retries only the sync and never re-charges.
func (svc *DefaultCheckoutService) Pay(ctx context.Context, sessionID string, card models.CardDetails) (*models.CheckoutProcess, error) {
	logger := utils.GetLogger()

	proc, err := svc.Store.GetCheckout(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if proc.State != models.CheckoutAwaitingPayment {
		return proc, fmt.Errorf("no reservation awaiting payment for session %s (state %s)", sessionID, proc.State)
	}

	if proc.PaymentRef == "" {
		reservation, err := svc.Reservations.GetByID(ctx, proc.ReservationID)
		if err != nil {
			return proc, fmt.Errorf("failed to load reservation %s: %w", proc.ReservationID, err)
		}

		if proc.IntentID == "" {
			intent, err := svc.Payments.CreateIntent(ctx, proc.ReservationID, reservation.Pricing.GrandTotal, svc.Currency)
			if err != nil {
				// The reservation stays created; reconciliation is handled by
				// the expiry worker, not rolled back here.
				svc.fail(ctx, proc, &models.CheckoutError{
					Code:    codePaymentIntentFailed,
					Message: err.Error(),
				})
				logger.Error("payment intent creation failed",
					zap.String("reservationID", proc.ReservationID), zap.Error(err))
				return proc, &PaymentIntentError{Err: err}
			}
			proc.IntentID = intent.ID
			proc.ClientSecret = intent.ClientSecret
			proc.UpdatedAt = time.Now()
			if err := svc.Store.SaveCheckout(ctx, proc); err != nil {
				return nil, err
			}
		}

		ref, err := svc.Payments.ConfirmIntent(ctx, proc.IntentID, card)
		if err != nil {
			var declined *PaymentDeclinedError
			if errors.As(err, &declined) {
				svc.fail(ctx, proc, &models.CheckoutError{
					Code:    codePaymentDeclined,
					Message: declined.Message,
				})
				return proc, declined
			}
			svc.fail(ctx, proc, &models.CheckoutError{
				Code:    codePaymentConfirmFailed,
				Message: err.Error(),
			})
			logger.Error("payment confirmation failed",
				zap.String("intentID", proc.IntentID), zap.Error(err))
			return proc, fmt.Errorf("payment confirmation failed: %w", err)
		}

		proc.PaymentRef = ref
		proc.UpdatedAt = time.Now()
		if err := svc.Store.SaveCheckout(ctx, proc); err != nil {
			return nil, err
		}
	}

	if err := svc.Reservations.MarkPaid(ctx, proc.ReservationID, proc.PaymentRef); err != nil {
		// The charge went through; this must never look like a payment
		// failure or the user will be prompted to pay twice.
		proc.LastError = &models.CheckoutError{
			Code:    codeConfirmationSyncFailed,
			Message: err.Error(),
		}
		proc.UpdatedAt = time.Now()
		if saveErr := svc.Store.SaveCheckout(ctx, proc); saveErr != nil {
			logger.Error("failed to persist confirmation-sync failure",
				zap.String("sessionID", sessionID), zap.Error(saveErr))
		}
		logger.Error("payment succeeded but reservation sync failed",
			zap.String("reservationID", proc.ReservationID),
			zap.String("paymentRef", proc.PaymentRef),
			zap.Error(err))
		return proc, &ConfirmationSyncError{
			ReservationID: proc.ReservationID,
			PaymentRef:    proc.PaymentRef,
			Err:           err,
		}
	}

	proc.State = models.CheckoutConfirmed
	proc.LastError = nil
	proc.UpdatedAt = time.Now()
	if err := svc.Store.SaveCheckout(ctx, proc); err != nil {
		return nil, err
	}

	// The flow is over; the session is cleared so a new booking starts clean.
	if err := svc.Store.DeleteSession(ctx, sessionID); err != nil {
		logger.Warn("failed to clear session after confirmation",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	logger.Info("checkout confirmed",
		zap.String("sessionID", sessionID),
		zap.String("reservationID", proc.ReservationID),
		zap.String("paymentRef", proc.PaymentRef))
	return proc, nil
}

// Inspect returns the checkout process without advancing it.
func (svc *DefaultCheckoutService) Inspect(ctx context.Context, sessionID string) (*models.CheckoutProcess, error) {
	return svc.Store.GetCheckout(ctx, sessionID)
}

func newProcess(sessionID string) *models.CheckoutProcess {
	now := time.Now()
	return &models.CheckoutProcess{
		SessionID: sessionID,
		State:     models.CheckoutSelectingExtras,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// fail records the error and moves the process to FAILED before the caller
// sees the transition.
func (svc *DefaultCheckoutService) fail(ctx context.Context, proc *models.CheckoutProcess, cerr *models.CheckoutError) {
	proc.LastError = cerr
	proc.State = models.CheckoutFailed
	proc.UpdatedAt = time.Now()
	if err := svc.Store.SaveCheckout(ctx, proc); err != nil {
		utils.GetLogger().Error("failed to persist checkout failure",
			zap.String("sessionID", proc.SessionID), zap.Error(err))
	}
}
