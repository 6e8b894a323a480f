package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrTableNotRegistered is returned when a custom data table id has no entry in the
// table registry. Callers treat this as a configuration fault, not user input.
var ErrTableNotRegistered = errors.New("table not registered")

// tableHandles memoizes table id → collection handle for the process lifetime.
// Resolution is idempotent, so a redundant recompute under concurrent first
// access is harmless.
var tableHandles sync.Map

type registryEntry struct {
	TableID    int    `bson:"table_id"`
	Collection string `bson:"collection"`
}

// ResolveTable maps a registered custom-table id to its collection handle, looking
// the mapping up in the table_registry collection at most once per id.
func ResolveTable(ctx context.Context, tableID int) (*mongo.Collection, error) {
	if h, ok := tableHandles.Load(tableID); ok {
		return h.(*mongo.Collection), nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry registryEntry
	err := DB().Collection("table_registry").
		FindOne(lookupCtx, bson.M{"table_id": tableID}).
		Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("table id %d: %w", tableID, ErrTableNotRegistered)
		}
		return nil, fmt.Errorf("resolve table id %d: %w", tableID, err)
	}

	handle, _ := tableHandles.LoadOrStore(tableID, DB().Collection(entry.Collection))
	return handle.(*mongo.Collection), nil
}
