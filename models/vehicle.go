package models

// Vehicle is the catalogue record for a rentable vehicle.
type Vehicle struct {
	ID           string  `bson:"id" json:"id"`
	Make         string  `bson:"make" json:"make"`
	Model        string  `bson:"model" json:"model"`
	Year         int     `bson:"year" json:"year"`
	Category     string  `bson:"category" json:"category"` // e.g. "SUV", "Economy"
	Seats        int     `bson:"seats" json:"seats"`
	Transmission string  `bson:"transmission" json:"transmission"`
	DailyRate    float64 `bson:"daily_rate" json:"dailyRate"`
	ImageURL     string  `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
}

// Summary reduces a catalogue record to what a booking session carries.
func (v Vehicle) Summary() VehicleSummary {
	return VehicleSummary{
		ID:        v.ID,
		Name:      v.Make + " " + v.Model,
		DailyRate: v.DailyRate,
		ImageURL:  v.ImageURL,
	}
}

// VehicleSummary is the session-side reference to a vehicle. The session does
// not own the catalogue record, only enough of it to display and price.
type VehicleSummary struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	DailyRate float64 `bson:"daily_rate" json:"dailyRate"`
	ImageURL  string  `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
}

// Extra is an optional per-day add-on (insurance, GPS, child seat).
type Extra struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	DailyRate float64 `bson:"daily_rate" json:"dailyRate"`
}
