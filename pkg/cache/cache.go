// Package cache provides content-addressed caching for layout results.
//
// Layouts are pure functions of (graph, options), so a SHA-256 hash of both
// is a safe cache key: identical requests always produce identical
// coordinates. Three backends cover the deployment modes:
//   - FileCache: local directory, used by the CLI
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching without branching at call sites
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads under string keys with a TTL.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The boolean reports whether the key was
	// present and unexpired; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
