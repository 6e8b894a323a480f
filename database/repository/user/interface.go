// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"fleetdesk/database"
	"fleetdesk/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository reads user records owned by the platform's account system.
type UserRepository interface {
	// GetPosition returns the user's work position, or an empty string when the
	// user does not exist or has no position set.
	GetPosition(ctx context.Context, userID int64) (string, error)
}

type mongoUserRepo struct {
	coll  *mongo.Collection
	cache *redis.Client
}

// NewMongoUserRepo constructs a new MongoDB UserRepository with a Redis
// read-through cache for position lookups.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{
		coll:  database.DB().Collection("users"),
		cache: utils.GetCacheClient(),
	}
}
