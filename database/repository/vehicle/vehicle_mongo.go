package vehicleRepo

import (
	"context"
	"fmt"
	"time"

	"wheelify/database"
	"wheelify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoVehicleRepo implements VehicleRepository using MongoDB.
type MongoVehicleRepo struct {
	coll *mongo.Collection
}

// NewMongoVehicleRepo constructs a new instance of MongoVehicleRepo.
func NewMongoVehicleRepo() VehicleRepository {
	db := database.MongoClient.Database("wheelify")
	return &MongoVehicleRepo{
		coll: db.Collection("vehicles"),
	}
}

// GetByID retrieves a vehicle document by ID.
func (repo *MongoVehicleRepo) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var v models.Vehicle
	if err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&v); err != nil {
		return nil, fmt.Errorf("error fetching vehicle with id %s: %w", id, err)
	}
	return &v, nil
}

// List returns the vehicle catalogue sorted by daily rate.
func (repo *MongoVehicleRepo) List(ctx context.Context) ([]models.Vehicle, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "daily_rate", Value: 1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing vehicles: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var vehicles []models.Vehicle
	for cursor.Next(ctxWithTimeout) {
		var v models.Vehicle
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("error decoding vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return vehicles, nil
}
