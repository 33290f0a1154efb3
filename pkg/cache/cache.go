// Package cache provides content-addressed caching of rendered output.
//
// Rendering a schematic is deterministic, so the cache key is a hash of the
// netlist bytes together with the draw options; any edit to the circuit or
// the flags produces a fresh key.
package cache

import (
	"context"
	"time"
)

// Cache is the storage backend for rendered artifacts.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL. A zero TTL means no
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKeyOpts are the draw settings that affect rendered output.
type RenderKeyOpts struct {
	DrawNodes   bool
	LabelIDs    bool
	LabelValues bool
	Link        bool
	Standalone  bool
}

// RenderKey generates the cache key for a rendered netlist.
func RenderKey(netlist []byte, opts RenderKeyOpts) string {
	return hashKey("render", Hash(netlist), opts)
}
