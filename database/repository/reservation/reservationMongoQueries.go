package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"wheelify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// blockingStatuses are the reservation states that make a vehicle unavailable.
var blockingStatuses = []models.ReservationStatus{
	models.StatusPendingPayment,
	models.StatusConfirmed,
	models.StatusActive,
}

// FindOverlapping returns blocking reservations for the vehicle whose window
// intersects [start, end).
func (repo *MongoReservationRepo) FindOverlapping(ctx context.Context, vehicleID string, start, end time.Time) ([]models.Reservation, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"vehicle_id": vehicleID,
		"status":     bson.M{"$in": blockingStatuses},
		"start_date": bson.M{"$lt": end},
		"end_date":   bson.M{"$gt": start},
	}
	cursor, err := repo.coll.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("error querying overlapping reservations: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var reservations []models.Reservation
	for cursor.Next(ctxWithTimeout) {
		var r models.Reservation
		if err := cursor.Decode(&r); err != nil {
			return nil, fmt.Errorf("error decoding reservation: %w", err)
		}
		reservations = append(reservations, r)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return reservations, nil
}

// ListByUser returns the user's reservations, newest first.
func (repo *MongoReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations for user %s: %w", userID, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var reservations []models.Reservation
	for cursor.Next(ctxWithTimeout) {
		var r models.Reservation
		if err := cursor.Decode(&r); err != nil {
			return nil, fmt.Errorf("error decoding reservation: %w", err)
		}
		reservations = append(reservations, r)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return reservations, nil
}
