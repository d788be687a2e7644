package models

import "time"

type CheckoutState string

const (
	CheckoutSelectingExtras     CheckoutState = "SELECTING_EXTRAS"
	CheckoutCreatingReservation CheckoutState = "CREATING_RESERVATION"
	CheckoutAwaitingPayment     CheckoutState = "AWAITING_PAYMENT"
	CheckoutConfirmed           CheckoutState = "CONFIRMED"
	CheckoutFailed              CheckoutState = "FAILED"
)

// CheckoutError records the most recent failed step of a checkout attempt.
type CheckoutError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// OutcomeUnknown is set when a call timed out: the remote side effect may
	// still have happened even though no response was observed.
	OutcomeUnknown bool `json:"outcomeUnknown,omitempty"`
}

// CheckoutProcess is the transient state machine instance driving one
// checkout attempt for a booking session.
type CheckoutProcess struct {
	SessionID     string        `json:"sessionId"`
	State         CheckoutState `json:"state"`
	ReservationID string        `json:"reservationId,omitempty"`
	// IntentID and ClientSecret identify the processor-side payment intent.
	IntentID     string `json:"intentId,omitempty"`
	ClientSecret string `json:"clientSecret,omitempty"`
	// PaymentRef is set once the processor has confirmed the charge. A process
	// may only be CONFIRMED with both ReservationID and PaymentRef present.
	PaymentRef string         `json:"paymentRef,omitempty"`
	LastError  *CheckoutError `json:"lastError,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// CardDetails is the opaque payment-method handle collected by the processor
// UI. The checkout engine passes it through without inspecting it.
type CardDetails struct {
	PaymentMethod string `json:"paymentMethod"`
}
