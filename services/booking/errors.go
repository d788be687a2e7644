package booking

import "fmt"

// InvalidRangeError reports a malformed or reversed date range. It is raised
// by local validation and never reaches a remote boundary.
type InvalidRangeError struct {
	Message string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalidRange: %s", e.Message)
}

func NewInvalidRangeError(msg string) error {
	return &InvalidRangeError{Message: msg}
}

// NotReadyError reports a checkout attempt on an incomplete session.
type NotReadyError struct {
	Missing []string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("notReady: session is missing %v", e.Missing)
}

// BoundaryUnavailableError reports a transport or server failure of the
// availability boundary, distinct from a clean "not available" answer.
type BoundaryUnavailableError struct {
	Err error
}

func (e *BoundaryUnavailableError) Error() string {
	return fmt.Sprintf("boundaryUnavailable: %v", e.Err)
}

func (e *BoundaryUnavailableError) Unwrap() error { return e.Err }

// ReservationCreationError reports a failed reservation-create call.
// OutcomeUnknown is set when the call timed out: the reservation may exist
// remotely even though no response was observed.
type ReservationCreationError struct {
	Err            error
	OutcomeUnknown bool
}

func (e *ReservationCreationError) Error() string {
	if e.OutcomeUnknown {
		return fmt.Sprintf("reservationCreation: outcome unknown: %v", e.Err)
	}
	return fmt.Sprintf("reservationCreation: %v", e.Err)
}

func (e *ReservationCreationError) Unwrap() error { return e.Err }

// PaymentIntentError reports a failure to obtain a payment intent. The
// reservation stays created; reconciliation is an external concern.
type PaymentIntentError struct {
	Err error
}

func (e *PaymentIntentError) Error() string {
	return fmt.Sprintf("paymentIntent: %v", e.Err)
}

func (e *PaymentIntentError) Unwrap() error { return e.Err }

// PaymentDeclinedError reports a processor-level decline, distinct from a
// transport failure.
type PaymentDeclinedError struct {
	Code    string
	Message string
}

func (e *PaymentDeclinedError) Error() string {
	return fmt.Sprintf("paymentDeclined (%s): %s", e.Code, e.Message)
}

// ConfirmationSyncError reports that payment succeeded but the backend
// mark-paid call failed. Must never be surfaced as a payment failure: the
// user has paid and must not be prompted to pay again.
type ConfirmationSyncError struct {
	ReservationID string
	PaymentRef    string
	Err           error
}

func (e *ConfirmationSyncError) Error() string {
	return fmt.Sprintf("confirmationSync: payment %s succeeded but reservation %s was not marked paid: %v",
		e.PaymentRef, e.ReservationID, e.Err)
}

func (e *ConfirmationSyncError) Unwrap() error { return e.Err }
