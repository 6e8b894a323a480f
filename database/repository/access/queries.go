// File: database/repository/access/queries.go
package accessRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleetdesk/database"
	"fleetdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (repo *mongoAccessRuleRepo) GetByPosition(ctx context.Context, position string) (*models.AccessRule, error) {
	coll, err := database.ResolveTable(ctx, repo.tableID)
	if err != nil {
		return nil, err
	}

	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rule models.AccessRule
	err = coll.FindOne(queryCtx, bson.M{"position": position}).Decode(&rule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch access rule: %w", err)
	}

	return &rule, nil
}
