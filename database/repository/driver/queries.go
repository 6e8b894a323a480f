// File: database/repository/driver/queries.go
package driverRepo

import (
	"context"
	"fmt"
	"time"

	"fleetdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (repo *mongoDriverRepo) ListByIDs(ctx context.Context, ids []int64) ([]models.Driver, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(queryCtx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch drivers: %w", err)
	}
	defer cursor.Close(queryCtx)

	var drivers []models.Driver
	if err := cursor.All(queryCtx, &drivers); err != nil {
		return nil, fmt.Errorf("error decoding drivers: %w", err)
	}

	return drivers, nil
}
