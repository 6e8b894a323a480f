// File: database/repository/driver/interface.go
package driverRepo

import (
	"context"

	"fleetdesk/database"
	"fleetdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DriverRepository reads driver reference records.
type DriverRepository interface {
	ListByIDs(ctx context.Context, ids []int64) ([]models.Driver, error)
}

type mongoDriverRepo struct {
	coll *mongo.Collection
}

// NewMongoDriverRepo constructs a new MongoDB DriverRepository.
func NewMongoDriverRepo() DriverRepository {
	return &mongoDriverRepo{
		coll: database.DB().Collection("drivers"),
	}
}
