package booking

import (
	"context"
	"fmt"
	"time"

	vehicleRepo "wheelify/database/repository/vehicle"
	"wheelify/models"
	"wheelify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSessionService implements SessionService on top of a SessionStore.
type DefaultSessionService struct {
	Store    SessionStore
	Vehicles vehicleRepo.VehicleRepository
}

// Create starts a fresh booking session for the user and stores it.
func (svc *DefaultSessionService) Create(ctx context.Context, userID string) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID:       uuid.New().String(),
		UserID:          userID,
		PickupLocation:  models.DefaultLocation,
		DropoffLocation: models.DefaultLocation,
		CreatedAt:       time.Now(),
	}
	if err := svc.Store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("booking session started",
		zap.String("sessionID", session.SessionID), zap.String("userID", userID))
	return session, nil
}

// Get returns the session as stored.
func (svc *DefaultSessionService) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return svc.Store.GetSession(ctx, sessionID)
}

// SetDates replaces the rental window. A reversed or degenerate range fails
// with InvalidRangeError and leaves the stored range untouched.
func (svc *DefaultSessionService) SetDates(ctx context.Context, sessionID string, start, end time.Time) (*models.BookingSession, error) {
	if start.IsZero() || end.IsZero() {
		return nil, NewInvalidRangeError("both start and end dates are required")
	}
	if !start.Before(end) {
		return nil, NewInvalidRangeError("start date must be before end date")
	}

	session, err := svc.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.SetDateRange(start, end)
	if err := svc.Store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectVehicle attaches the vehicle to the session. Availability must have
// been verified by the caller before this is invoked.
func (svc *DefaultSessionService) SelectVehicle(ctx context.Context, sessionID, vehicleID string) (*models.BookingSession, error) {
	session, err := svc.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	vehicle, err := svc.Vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicle %s: %w", vehicleID, err)
	}

	session.SetVehicle(vehicle.Summary())
	if err := svc.Store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ToggleExtra adds or removes the add-on, by ID.
func (svc *DefaultSessionService) ToggleExtra(ctx context.Context, sessionID string, extra models.Extra) (*models.BookingSession, error) {
	if extra.ID == "" {
		return nil, fmt.Errorf("extra id is required")
	}
	session, err := svc.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.ToggleExtra(extra)
	if err := svc.Store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateDetails replaces locations and notes. No pricing impact.
func (svc *DefaultSessionService) UpdateDetails(ctx context.Context, sessionID, pickup, dropoff, notes string) (*models.BookingSession, error) {
	session, err := svc.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.SetLocations(pickup, dropoff)
	session.SetNotes(notes)
	if err := svc.Store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Quote returns the cached price breakdown if the selections have not changed
// since it was computed, otherwise recomputes and caches it. The caller never
// observes pricing inconsistent with the current selections.
func (svc *DefaultSessionService) Quote(ctx context.Context, sessionID string) (models.PriceBreakdown, error) {
	session, err := svc.Store.GetSession(ctx, sessionID)
	if err != nil {
		return models.PriceBreakdown{}, err
	}
	if session.Pricing != nil {
		return *session.Pricing, nil
	}

	breakdown := Compute(session.DateRange, session.Vehicle, session.Extras)
	session.Pricing = &breakdown
	if err := svc.Store.SaveSession(ctx, session); err != nil {
		return models.PriceBreakdown{}, err
	}
	return breakdown, nil
}

// Reset clears every selection while keeping the session alive. All or
// nothing; there is no partial reset.
func (svc *DefaultSessionService) Reset(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := svc.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Reset()
	if err := svc.Store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	if err := svc.Store.DeleteCheckout(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to delete checkout process on reset",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return session, nil
}

// Abandon discards the session and any checkout process attached to it.
func (svc *DefaultSessionService) Abandon(ctx context.Context, sessionID string) error {
	if err := svc.Store.DeleteCheckout(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to delete checkout process on abandon",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return svc.Store.DeleteSession(ctx, sessionID)
}
