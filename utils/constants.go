// File: utils/constants.go
package utils

import "time"

// PositionCachePrefix is the prefix used for Redis work-position cache keys.
const PositionCachePrefix = "position:"

// PositionCacheTTL is the time-to-live for cached work-position lookups.
const PositionCacheTTL = time.Hour
