package models

import (
	"testing"
	"time"
)

func sampleSession() *BookingSession {
	return &BookingSession{
		SessionID:       "s1",
		UserID:          "u1",
		PickupLocation:  DefaultLocation,
		DropoffLocation: DefaultLocation,
		CreatedAt:       time.Now(),
	}
}

func window() (time.Time, time.Time) {
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 3)
}

func TestToggleExtraIsSelfInverse(t *testing.T) {
	s := sampleSession()
	gps := Extra{ID: "gps", Name: "GPS", DailyRate: 10}

	s.ToggleExtra(gps)
	if !s.HasExtra("gps") {
		t.Fatal("extra missing after first toggle")
	}
	s.ToggleExtra(gps)
	if s.HasExtra("gps") {
		t.Fatal("extra still present after second toggle")
	}
	if len(s.Extras) != 0 {
		t.Errorf("Extras = %v, want empty", s.Extras)
	}
}

func TestToggleExtraMatchesByID(t *testing.T) {
	s := sampleSession()
	s.ToggleExtra(Extra{ID: "gps", Name: "GPS", DailyRate: 10})
	// Same ID with a different rate must remove, not add a duplicate.
	s.ToggleExtra(Extra{ID: "gps", Name: "GPS Premium", DailyRate: 15})
	if len(s.Extras) != 0 {
		t.Errorf("Extras = %v, want empty after toggling same ID twice", s.Extras)
	}
}

func TestMutatorsInvalidatePricing(t *testing.T) {
	start, end := window()

	cases := []struct {
		name   string
		mutate func(s *BookingSession)
	}{
		{"SetDateRange", func(s *BookingSession) { s.SetDateRange(start, end) }},
		{"SetVehicle", func(s *BookingSession) { s.SetVehicle(VehicleSummary{ID: "v1", DailyRate: 50}) }},
		{"ToggleExtra", func(s *BookingSession) { s.ToggleExtra(Extra{ID: "gps", DailyRate: 10}) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := sampleSession()
			s.Pricing = &PriceBreakdown{GrandTotal: 100}
			tc.mutate(s)
			if s.Pricing != nil {
				t.Errorf("Pricing survived %s, want nil", tc.name)
			}
		})
	}
}

func TestDetailsDoNotInvalidatePricing(t *testing.T) {
	s := sampleSession()
	s.Pricing = &PriceBreakdown{GrandTotal: 100}

	s.SetLocations("Airport", "Downtown")
	s.SetNotes("late arrival")

	if s.Pricing == nil {
		t.Error("Pricing cleared by details update, want it kept")
	}
}

func TestSetLocationsKeepsPriorOnEmpty(t *testing.T) {
	s := sampleSession()
	s.SetLocations("Airport", "")
	if s.PickupLocation != "Airport" {
		t.Errorf("PickupLocation = %q, want Airport", s.PickupLocation)
	}
	if s.DropoffLocation != DefaultLocation {
		t.Errorf("DropoffLocation = %q, want %q", s.DropoffLocation, DefaultLocation)
	}
}

func TestIsCheckoutReady(t *testing.T) {
	start, end := window()

	tests := []struct {
		name  string
		setup func(s *BookingSession)
		want  bool
	}{
		{"empty session", func(s *BookingSession) {}, false},
		{"dates only", func(s *BookingSession) { s.SetDateRange(start, end) }, false},
		{"vehicle only", func(s *BookingSession) { s.SetVehicle(VehicleSummary{ID: "v1"}) }, false},
		{"dates and vehicle", func(s *BookingSession) {
			s.SetDateRange(start, end)
			s.SetVehicle(VehicleSummary{ID: "v1"})
		}, true},
		{"extras do not matter", func(s *BookingSession) {
			s.SetDateRange(start, end)
			s.SetVehicle(VehicleSummary{ID: "v1"})
			s.ToggleExtra(Extra{ID: "gps"})
		}, true},
		{"invalid range blocks", func(s *BookingSession) {
			s.SetDateRange(end, start)
			s.SetVehicle(VehicleSummary{ID: "v1"})
		}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := sampleSession()
			tc.setup(s)
			if got := s.IsCheckoutReady(); got != tc.want {
				t.Errorf("IsCheckoutReady() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResetClearsEverything(t *testing.T) {
	start, end := window()
	s := sampleSession()
	s.SetDateRange(start, end)
	s.SetVehicle(VehicleSummary{ID: "v1", DailyRate: 50})
	s.ToggleExtra(Extra{ID: "gps", DailyRate: 10})
	s.SetLocations("Airport", "Downtown")
	s.SetNotes("late arrival")
	s.Pricing = &PriceBreakdown{GrandTotal: 100}

	s.Reset()

	if s.DateRange != nil || s.Vehicle != nil || len(s.Extras) != 0 || s.Pricing != nil {
		t.Errorf("selections survived Reset: %+v", s)
	}
	if s.Notes != "" {
		t.Errorf("Notes = %q, want empty", s.Notes)
	}
	if s.PickupLocation != DefaultLocation || s.DropoffLocation != DefaultLocation {
		t.Errorf("locations = %q/%q, want defaults", s.PickupLocation, s.DropoffLocation)
	}
	if s.SessionID != "s1" || s.UserID != "u1" {
		t.Errorf("identity changed by Reset: %s/%s", s.SessionID, s.UserID)
	}
}

func TestDateRangeValid(t *testing.T) {
	start, end := window()
	tests := []struct {
		name string
		dr   DateRange
		want bool
	}{
		{"ordered", DateRange{Start: start, End: end}, true},
		{"reversed", DateRange{Start: end, End: start}, false},
		{"equal", DateRange{Start: start, End: start}, false},
		{"missing end", DateRange{Start: start}, false},
		{"empty", DateRange{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.dr.Valid(); got != tc.want {
				t.Errorf("Valid() = %v, want %v", got, tc.want)
			}
		})
	}
}
