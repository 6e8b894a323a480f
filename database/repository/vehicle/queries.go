// File: database/repository/vehicle/queries.go
package vehicleRepo

import (
	"context"
	"fmt"
	"time"

	"fleetdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoVehicleRepo) ListActive(ctx context.Context, categories []string, excludeIDs []int64) ([]models.Vehicle, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"active":   true,
		"category": bson.M{"$in": categories},
	}
	if len(excludeIDs) > 0 {
		filter["id"] = bson.M{"$nin": excludeIDs}
	}

	opts := options.Find().SetSort(bson.D{{Key: "model", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := repo.coll.Find(queryCtx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}
	defer cursor.Close(queryCtx)

	var vehicles []models.Vehicle
	if err := cursor.All(queryCtx, &vehicles); err != nil {
		return nil, fmt.Errorf("error decoding vehicles: %w", err)
	}

	return vehicles, nil
}
