// Package cache provides artifact caching for rendered spirals.
//
// Rendering the same index with the same options always produces the
// same bytes, so artifacts are cached under a content key derived from
// every input that affects the output. Backends:
//
//   - [FileCache]: directory-backed, used by the CLI
//     (default location $XDG_CACHE_HOME/fibspiral)
//   - [RedisCache]: shared backend for setups that already run redis
//   - [NullCache]: disables caching
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by helpers that treat a miss as an error.
var ErrCacheMiss = errors.New("cache miss")

// TTLArtifact is how long rendered artifacts stay cached. Artifacts are
// deterministic, so the TTL only bounds disk usage.
const TTLArtifact = 7 * 24 * time.Hour

// Cache stores rendered artifacts by key.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present (a miss is not an error).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts captures every render input that affects the output
// bytes. Two renders with equal opts are byte-identical, so they may
// share a cache entry.
type ArtifactKeyOpts struct {
	N      uint32
	Format string
	Width  float64
	Height float64
	Grid   bool
	Title  bool
	Theme  string
}

// ArtifactKey builds the cache key for a rendered artifact.
func ArtifactKey(opts ArtifactKeyOpts) string {
	return hashKey("artifact", opts)
}
