// File: database/repository/vehicle/interface.go
package vehicleRepo

import (
	"context"

	"fleetdesk/database"
	"fleetdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// VehicleRepository reads the vehicle catalog. The catalog is reference data owned
// by external systems; this repository never writes.
type VehicleRepository interface {
	ListActive(ctx context.Context, categories []string, excludeIDs []int64) ([]models.Vehicle, error)
}

type mongoVehicleRepo struct {
	coll *mongo.Collection
}

// NewMongoVehicleRepo constructs a new MongoDB VehicleRepository.
func NewMongoVehicleRepo() VehicleRepository {
	return &mongoVehicleRepo{
		coll: database.DB().Collection("vehicles"),
	}
}
