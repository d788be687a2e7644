package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"wheelify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	svc       *DefaultCheckoutService
	store     *memStore
	repo      *fakeReservationRepo
	payments  *fakePayments
	expiry    *fakeExpiry
	sessionID string
}

// newCheckoutFixture seeds a checkout-ready session and wires the service to
// fakes that succeed by default.
func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	store := newMemStore()
	repo := newFakeReservationRepo()
	payments := &fakePayments{
		intent:     PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"},
		confirmRef: "ch_456",
	}
	expiry := &fakeExpiry{}

	start := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	session := &models.BookingSession{
		SessionID:       "sess-1",
		UserID:          "u1",
		PickupLocation:  models.DefaultLocation,
		DropoffLocation: models.DefaultLocation,
		CreatedAt:       time.Now(),
	}
	session.SetDateRange(start, start.AddDate(0, 0, 3))
	session.SetVehicle(models.VehicleSummary{ID: "v1", Name: "Toyota Corolla", DailyRate: 60})
	session.ToggleExtra(models.Extra{ID: "gps", Name: "GPS", DailyRate: 10})
	require.NoError(t, store.SaveSession(context.Background(), session))

	return &checkoutFixture{
		svc: &DefaultCheckoutService{
			Store:        store,
			Reservations: repo,
			Payments:     payments,
			Expiry:       expiry,
			HoldWindow:   30 * time.Minute,
			Currency:     "usd",
		},
		store:     store,
		repo:      repo,
		payments:  payments,
		expiry:    expiry,
		sessionID: "sess-1",
	}
}

func TestProceedRejectsIncompleteSession(t *testing.T) {
	fx := newCheckoutFixture(t)
	session, _ := fx.store.GetSession(context.Background(), fx.sessionID)
	session.Vehicle = nil
	require.NoError(t, fx.store.SaveSession(context.Background(), session))

	_, err := fx.svc.Proceed(context.Background(), fx.sessionID)

	var notReady *NotReadyError
	require.ErrorAs(t, err, &notReady)
	assert.Contains(t, notReady.Missing, "vehicle")
	assert.Empty(t, fx.repo.created, "reservation created for incomplete session")
	// The readiness gate fires before any state transition is persisted.
	_, err = fx.store.GetCheckout(context.Background(), fx.sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestProceedCreatesReservationAndAwaitsPayment(t *testing.T) {
	fx := newCheckoutFixture(t)

	proc, err := fx.svc.Proceed(context.Background(), fx.sessionID)
	require.NoError(t, err)

	assert.Equal(t, models.CheckoutAwaitingPayment, proc.State)
	assert.NotEmpty(t, proc.ReservationID)
	assert.Nil(t, proc.LastError)

	require.Len(t, fx.repo.created, 1)
	created := fx.repo.created[0]
	assert.Equal(t, models.StatusPendingPayment, created.Status)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, "v1", created.VehicleID)
	assert.Equal(t, []string{"gps"}, created.ExtraIDs)
	// 3 days * (60 + 10) plus 10% tax.
	assert.InDelta(t, 231.0, created.Pricing.GrandTotal, 0.001)

	assert.Equal(t, []string{created.ID}, fx.expiry.scheduled)
}

func TestProceedFailureKeepsSessionSelections(t *testing.T) {
	fx := newCheckoutFixture(t)
	fx.repo.createErr = errors.New("boundary rejected the request")

	proc, err := fx.svc.Proceed(context.Background(), fx.sessionID)

	var creation *ReservationCreationError
	require.ErrorAs(t, err, &creation)
	assert.False(t, creation.OutcomeUnknown)

	assert.Equal(t, models.CheckoutFailed, proc.State)
	assert.Empty(t, proc.ReservationID)
	require.NotNil(t, proc.LastError)
	assert.Equal(t, "RESERVATION_CREATE_FAILED", proc.LastError.Code)
	assert.False(t, proc.LastError.OutcomeUnknown)

	// The session survives intact so the user can retry without re-entering.
	session, err := fx.store.GetSession(context.Background(), fx.sessionID)
	require.NoError(t, err)
	assert.True(t, session.IsCheckoutReady())
}

func TestProceedTimeoutFlagsOutcomeUnknown(t *testing.T) {
	fx := newCheckoutFixture(t)
	fx.repo.createErr = context.DeadlineExceeded

	proc, err := fx.svc.Proceed(context.Background(), fx.sessionID)

	var creation *ReservationCreationError
	require.ErrorAs(t, err, &creation)
	assert.True(t, creation.OutcomeUnknown, "timeout must not assert failure")
	require.NotNil(t, proc.LastError)
	assert.True(t, proc.LastError.OutcomeUnknown)
}

func TestProceedBlockedWhileAwaitingPayment(t *testing.T) {
	fx := newCheckoutFixture(t)
	_, err := fx.svc.Proceed(context.Background(), fx.sessionID)
	require.NoError(t, err)

	_, err = fx.svc.Proceed(context.Background(), fx.sessionID)
	assert.Error(t, err)
	assert.Len(t, fx.repo.created, 1, "second Proceed must not create another reservation")
}

func TestProceedRestartsAfterFailedAttempt(t *testing.T) {
	fx := newCheckoutFixture(t)
	fx.repo.createErr = errors.New("boundary rejected the request")
	_, err := fx.svc.Proceed(context.Background(), fx.sessionID)
	require.Error(t, err)

	fx.repo.createErr = nil
	proc, err := fx.svc.Proceed(context.Background(), fx.sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.CheckoutAwaitingPayment, proc.State)
	assert.Nil(t, proc.LastError, "stale error carried into the fresh attempt")
}

func TestPayConfirmsReservation(t *testing.T) {
	fx := newCheckoutFixture(t)
	proc, err := fx.svc.Proceed(context.Background(), fx.sessionID)
	require.NoError(t, err)

	proc, err = fx.svc.Pay(context.Background(), fx.sessionID, models.CardDetails{PaymentMethod: "pm_card"})
	require.NoError(t, err)

	assert.Equal(t, models.CheckoutConfirmed, proc.State)
	// CONFIRMED is only legal with both the reservation and the payment ref.
	assert.NotEmpty(t, proc.ReservationID)
	assert.Equal(t, "ch_456", proc.PaymentRef)
	assert.Nil(t, proc.LastError)

	assert.Equal(t, "ch_456", fx.repo.paidRefs[proc.ReservationID])

	// The flow is over; the session is gone.
	_, err = fx.store.GetSession(context.Background(), fx.sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPayRequiresAwaitingPayment(t *testing.T) {
	fx := newCheckoutFixture(t)

	_, err := fx.svc.Pay(context.Background(), fx.sessionID, models.CardDetails{PaymentMethod: "pm_card"})
	assert.Error(t, err)
	assert.Zero(t, fx.payments.createCalls)
}

func TestPayIntentFailure(t *testing.T) {
	fx := newCheckoutFixture(t)
	_, err := fx.svc.Proceed(context.Background(), fx.sessionID)
	require.NoError(t, err)

	fx.payments.createErr = errors.New("processor unreachable")
	proc, err := fx.svc.Pay(context.Background(), fx.sessionID, models.CardDetails{PaymentMethod: "pm_card"})

	var intentErr *PaymentIntentError
	require.ErrorAs(t, err, &intentErr)
	assert.Equal(t, models.CheckoutFailed, proc.State)
	assert.Equal(t, "PAYMENT_INTENT_FAILED", proc.LastError.Code)
	assert.Zero(t, fx.payments.confirmCalls)
	// The reservation is not rolled back; the expiry worker reconciles it.
	assert.Len(t, fx.repo.created, 1)
}

func TestPayDeclined(t *testing.T) {
	fx := newCheckoutFixture(t)
	_, err := fx.svc.Proceed(context.Background(), fx.sessionID)
	require.NoError(t, err)

	fx.payments.confirmErr = &PaymentDeclinedError{Code: "card_declined", Message: "insufficient funds"}
	proc, err := fx.svc.Pay(context.Background(), fx.sessionID, models.CardDetails{PaymentMethod: "pm_card"})

	var declined *PaymentDeclinedError
	require.ErrorAs(t, err, &declined)
	assert.Equal(t, "card_declined", declined.Code)
	assert.Equal(t, models.CheckoutFailed, proc.State)
	assert.Equal(t, "PAYMENT_DECLINED", proc.LastError.Code)
	assert.Empty(t, proc.PaymentRef)
	assert.Zero(t, fx.repo.markPaidCalls)
}

func TestPaySyncFailureIsNotAPaymentFailure(t *testing.T) {
	fx := newCheckoutFixture(t)
	_, err := fx.svc.Proceed(context.Background(), fx.sessionID)
	require.NoError(t, err)

	fx.repo.markPaidErr = errors.New("boundary unreachable")
	proc, err := fx.svc.Pay(context.Background(), fx.sessionID, models.CardDetails{PaymentMethod: "pm_card"})

	var syncErr *ConfirmationSyncError
	require.ErrorAs(t, err, &syncErr)
	assert.NotEmpty(t, syncErr.ReservationID)
	assert.Equal(t, "ch_456", syncErr.PaymentRef)

	var declined *PaymentDeclinedError
	assert.False(t, errors.As(err, &declined), "sync failure surfaced as a decline")

	// The process stays recoverable: not FAILED, payment ref retained.
	assert.Equal(t, models.CheckoutAwaitingPayment, proc.State)
	assert.Equal(t, "ch_456", proc.PaymentRef)
	assert.Equal(t, "CONFIRMATION_SYNC_FAILED", proc.LastError.Code)
}

func TestPayRetryAfterSyncFailureDoesNotRecharge(t *testing.T) {
	fx := newCheckoutFixture(t)
	_, err := fx.svc.Proceed(context.Background(), fx.sessionID)
	require.NoError(t, err)

	fx.repo.markPaidErr = errors.New("boundary unreachable")
	_, err = fx.svc.Pay(context.Background(), fx.sessionID, models.CardDetails{PaymentMethod: "pm_card"})
	require.Error(t, err)

	fx.repo.markPaidErr = nil
	proc, err := fx.svc.Pay(context.Background(), fx.sessionID, models.CardDetails{PaymentMethod: "pm_card"})
	require.NoError(t, err)

	assert.Equal(t, models.CheckoutConfirmed, proc.State)
	assert.Equal(t, 1, fx.payments.createCalls, "retry created a second intent")
	assert.Equal(t, 1, fx.payments.confirmCalls, "retry charged the card again")
	assert.Equal(t, 2, fx.repo.markPaidCalls)
}

func TestInspectDoesNotAdvance(t *testing.T) {
	fx := newCheckoutFixture(t)
	_, err := fx.svc.Proceed(context.Background(), fx.sessionID)
	require.NoError(t, err)

	proc, err := fx.svc.Inspect(context.Background(), fx.sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.CheckoutAwaitingPayment, proc.State)

	again, err := fx.svc.Inspect(context.Background(), fx.sessionID)
	require.NoError(t, err)
	assert.Equal(t, proc.State, again.State)
	assert.Len(t, fx.repo.created, 1)
}
