package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"wheelify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new reservation document.
func (repo *MongoReservationRepo) Create(ctx context.Context, r *models.Reservation) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctxWithTimeout, r)
	if err != nil {
		return fmt.Errorf("error creating reservation: %w", err)
	}
	return nil
}

// GetByID retrieves a reservation by its ID.
func (repo *MongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var r models.Reservation
	if err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&r); err != nil {
		return nil, fmt.Errorf("reservation not found: %w", err)
	}
	return &r, nil
}

// MarkPaid records the payment reference and confirms the reservation.
func (repo *MongoReservationRepo) MarkPaid(ctx context.Context, id, paymentRef string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.StatusPendingPayment}
	update := bson.M{"$set": bson.M{
		"status":      models.StatusConfirmed,
		"payment_ref": paymentRef,
		"updated_at":  time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return fmt.Errorf("error marking reservation %s paid: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("reservation %s is not awaiting payment", id)
	}
	return nil
}

// Cancel marks a reservation cancelled with the given reason.
func (repo *MongoReservationRepo) Cancel(ctx context.Context, id, reason string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": []models.ReservationStatus{models.StatusPendingPayment, models.StatusConfirmed}},
	}
	update := bson.M{"$set": bson.M{
		"status":        models.StatusCancelled,
		"cancel_reason": reason,
		"updated_at":    time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return fmt.Errorf("error cancelling reservation %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("reservation %s cannot be cancelled in its current state", id)
	}
	return nil
}

// CancelIfUnpaid releases a reservation still awaiting payment.
func (repo *MongoReservationRepo) CancelIfUnpaid(ctx context.Context, id, reason string) (bool, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.StatusPendingPayment}
	update := bson.M{"$set": bson.M{
		"status":        models.StatusCancelled,
		"cancel_reason": reason,
		"updated_at":    time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return false, fmt.Errorf("error releasing reservation %s: %w", id, err)
	}
	return res.ModifiedCount > 0, nil
}
