package booking

import (
	"math"
	"time"

	"wheelify/models"
)

// TaxRate is applied to the base price plus extras.
const TaxRate = 0.10

// TotalDays returns the ceiling of the range length in whole days, or 0 if
// either date is absent. The difference is taken as an absolute value so the
// function stays total; reversed ranges are rejected by validation before
// they ever reach pricing.
func TotalDays(dr *models.DateRange) int {
	if dr == nil || dr.Start.IsZero() || dr.End.IsZero() {
		return 0
	}
	diff := dr.End.Sub(dr.Start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(float64(diff) / float64(24*time.Hour)))
}

// Compute derives a price breakdown from a snapshot of the session's
// selections. Pure: equal inputs always yield identical output.
func Compute(dr *models.DateRange, vehicle *models.VehicleSummary, extras []models.Extra) models.PriceBreakdown {
	days := TotalDays(dr)
	if days == 0 {
		return models.PriceBreakdown{}
	}

	var base float64
	if vehicle != nil {
		base = vehicle.DailyRate * float64(days)
	}

	var extrasTotal float64
	for _, e := range extras {
		extrasTotal += e.DailyRate * float64(days)
	}

	tax := (base + extrasTotal) * TaxRate
	return models.PriceBreakdown{
		TotalDays:   days,
		BasePrice:   base,
		ExtrasTotal: extrasTotal,
		TaxAmount:   tax,
		GrandTotal:  base + extrasTotal + tax,
	}
}
