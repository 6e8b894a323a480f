// File: database/repository/user/queries.go
package userRepo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"fleetdesk/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoUserRepo) GetPosition(ctx context.Context, userID int64) (string, error) {
	cacheKey := utils.PositionCachePrefix + strconv.FormatInt(userID, 10)

	// Attempt the cache first; any cache error degrades to a direct DB read.
	cacheEnabled := repo.cache != nil
	if cacheEnabled {
		cached, err := repo.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			log.Printf("WARNING: Error retrieving position cache key: %v. Falling back to DB lookup.", err)
		}
	}

	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var row struct {
		WorkPosition string `bson:"work_position"`
	}
	opts := options.FindOne().SetProjection(bson.M{"work_position": 1})
	err := repo.coll.FindOne(queryCtx, bson.M{"id": userID}, opts).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", fmt.Errorf("failed to fetch user position: %w", err)
	}

	if cacheEnabled {
		_ = repo.cache.Set(ctx, cacheKey, row.WorkPosition, utils.PositionCacheTTL).Err()
	}

	return row.WorkPosition, nil
}
