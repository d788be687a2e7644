package models

import "time"

type ReservationStatus string

const (
	// StatusPendingPayment marks a reservation that exists remotely but has
	// not been paid for. It is a first-class state so orphaned reservations
	// can be found and released.
	StatusPendingPayment ReservationStatus = "PENDING_PAYMENT"
	StatusConfirmed      ReservationStatus = "CONFIRMED"
	StatusActive         ReservationStatus = "ACTIVE"
	StatusCompleted      ReservationStatus = "COMPLETED"
	StatusCancelled      ReservationStatus = "CANCELLED"
)

// Reservation is the committed booking record for a vehicle over a date range.
type Reservation struct {
	ID              string            `bson:"id" json:"id"`
	UserID          string            `bson:"user_id" json:"userId"`
	VehicleID       string            `bson:"vehicle_id" json:"vehicleId"`
	VehicleName     string            `bson:"vehicle_name" json:"vehicleName"`
	StartDate       time.Time         `bson:"start_date" json:"startDate"`
	EndDate         time.Time         `bson:"end_date" json:"endDate"`
	ExtraIDs        []string          `bson:"extra_ids,omitempty" json:"extraIds,omitempty"`
	PickupLocation  string            `bson:"pickup_location" json:"pickupLocation"`
	DropoffLocation string            `bson:"dropoff_location" json:"dropoffLocation"`
	Notes           string            `bson:"notes,omitempty" json:"notes,omitempty"`
	Pricing         PriceBreakdown    `bson:"pricing" json:"pricing"`
	Status          ReservationStatus `bson:"status" json:"status"`
	PaymentRef      string            `bson:"payment_ref,omitempty" json:"paymentRef,omitempty"`
	CancelReason    string            `bson:"cancel_reason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt       time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time         `bson:"updated_at" json:"updatedAt"`
}
