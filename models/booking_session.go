package models

import "time"

// DefaultLocation is used for pickup and dropoff until the user chooses otherwise.
const DefaultLocation = "Main Office"

// DateRange is a half-open rental window over calendar dates. Time-of-day is
// not significant; Start must precede End.
type DateRange struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Valid reports whether the range is fully populated and ordered.
func (r DateRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && r.Start.Before(r.End)
}

// BookingSession holds a user's in-progress reservation choices between pages.
// It lives in the session cache for the duration of one booking flow.
type BookingSession struct {
	SessionID       string          `json:"sessionId"`
	UserID          string          `json:"userId"`
	DateRange       *DateRange      `json:"dateRange,omitempty"`
	Vehicle         *VehicleSummary `json:"vehicle,omitempty"`
	Extras          []Extra         `json:"extras,omitempty"`
	PickupLocation  string          `json:"pickupLocation"`
	DropoffLocation string          `json:"dropoffLocation"`
	Notes           string          `json:"notes,omitempty"`
	// Pricing is the cached breakdown for the current selections. Any change
	// to dates, vehicle or extras clears it.
	Pricing   *PriceBreakdown `json:"pricing,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// SetDateRange replaces the rental window. The caller validates ordering
// before calling; this mutator only records and invalidates.
func (s *BookingSession) SetDateRange(start, end time.Time) {
	s.DateRange = &DateRange{Start: start, End: end}
	s.Pricing = nil
}

// SetVehicle attaches a vehicle to the session. Availability is the caller's
// concern and must be checked before the vehicle is attached.
func (s *BookingSession) SetVehicle(v VehicleSummary) {
	s.Vehicle = &v
	s.Pricing = nil
}

// ToggleExtra adds the extra if absent (by ID) and removes it if present.
func (s *BookingSession) ToggleExtra(extra Extra) {
	for i, e := range s.Extras {
		if e.ID == extra.ID {
			s.Extras = append(s.Extras[:i], s.Extras[i+1:]...)
			s.Pricing = nil
			return
		}
	}
	s.Extras = append(s.Extras, extra)
	s.Pricing = nil
}

// HasExtra reports whether the extra with the given ID is selected.
func (s *BookingSession) HasExtra(id string) bool {
	for _, e := range s.Extras {
		if e.ID == id {
			return true
		}
	}
	return false
}

// ExtraIDs returns the IDs of the selected extras.
func (s *BookingSession) ExtraIDs() []string {
	ids := make([]string, 0, len(s.Extras))
	for _, e := range s.Extras {
		ids = append(ids, e.ID)
	}
	return ids
}

// SetLocations replaces pickup and dropoff. No pricing impact.
func (s *BookingSession) SetLocations(pickup, dropoff string) {
	if pickup != "" {
		s.PickupLocation = pickup
	}
	if dropoff != "" {
		s.DropoffLocation = dropoff
	}
}

// SetNotes replaces the free-text notes. No pricing impact.
func (s *BookingSession) SetNotes(text string) {
	s.Notes = text
}

// IsCheckoutReady reports whether the session can enter checkout: a complete
// date range and a selected vehicle. Extras and notes do not matter.
func (s *BookingSession) IsCheckoutReady() bool {
	return s.DateRange != nil && s.DateRange.Valid() && s.Vehicle != nil
}

// Reset restores all selections to empty defaults. All-or-nothing; there is
// no partial reset.
func (s *BookingSession) Reset() {
	s.DateRange = nil
	s.Vehicle = nil
	s.Extras = nil
	s.PickupLocation = DefaultLocation
	s.DropoffLocation = DefaultLocation
	s.Notes = ""
	s.Pricing = nil
}
