package reservationRepo

import (
	"wheelify/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new instance of MongoReservationRepo.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database("wheelify")
	return &MongoReservationRepo{
		coll: db.Collection("reservations"),
	}
}
