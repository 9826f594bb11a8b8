// Package cache provides byte-level caching for rendered word clouds.
//
// The HTTP server uses a cache to avoid re-running the layout and render
// stages for identical requests. Keys are derived from a hash of the full
// request options, so any change to the input text or layout parameters
// produces a distinct entry.
//
// Two implementations are provided: MemoryCache for single-process serving
// and FileCache for caches that survive restarts. NullCache disables
// caching entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores opaque byte payloads under string keys.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKey generates a cache key for a render request by hashing its
// JSON-marshaled options. The "render:" prefix keeps render entries
// distinct from any future key families sharing the same cache.
func RenderKey(opts interface{}) string {
	return hashKey("render", opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Use full SHA-256 hash (64 hex chars / 256 bits) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
