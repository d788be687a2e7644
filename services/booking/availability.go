package booking

import (
	"context"
	"fmt"

	reservationRepo "wheelify/database/repository/reservation"
	"wheelify/models"
	"wheelify/utils"

	"go.uber.org/zap"
)

// AvailabilityResult is the answer of an availability query. Reason carries a
// human-readable explanation when the vehicle is taken.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// AvailabilityChecker determines whether a vehicle is free for a date range.
type AvailabilityChecker interface {
	Check(ctx context.Context, vehicleID string, dr models.DateRange) (AvailabilityResult, error)
}

// DefaultAvailabilityChecker queries the reservation store for overlaps.
type DefaultAvailabilityChecker struct {
	Reservations reservationRepo.ReservationRepository
}

// Check validates the range locally, then consults the reservation boundary.
// A repository failure surfaces as BoundaryUnavailableError so callers can
// tell "the query failed" apart from "the vehicle is taken".
func (c *DefaultAvailabilityChecker) Check(ctx context.Context, vehicleID string, dr models.DateRange) (AvailabilityResult, error) {
	logger := utils.GetLogger()

	if vehicleID == "" {
		return AvailabilityResult{}, fmt.Errorf("vehicle id is required")
	}
	if dr.Start.IsZero() || dr.End.IsZero() {
		return AvailabilityResult{}, NewInvalidRangeError("both start and end dates are required")
	}
	if !dr.Start.Before(dr.End) {
		return AvailabilityResult{}, NewInvalidRangeError("start date must be before end date")
	}

	overlapping, err := c.Reservations.FindOverlapping(ctx, vehicleID, dr.Start, dr.End)
	if err != nil {
		logger.Error("availability query failed",
			zap.String("vehicleID", vehicleID), zap.Error(err))
		return AvailabilityResult{}, &BoundaryUnavailableError{Err: err}
	}

	if len(overlapping) > 0 {
		first := overlapping[0]
		return AvailabilityResult{
			Available: false,
			Reason: fmt.Sprintf("vehicle is reserved from %s to %s",
				first.StartDate.Format("2006-01-02"), first.EndDate.Format("2006-01-02")),
		}, nil
	}
	return AvailabilityResult{Available: true}, nil
}
