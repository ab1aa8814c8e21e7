package cache

import (
	"context"
	"time"

	"github.com/matzehuels/depscape/pkg/layout"
)

// Cache stores opaque byte blobs under string keys with optional TTL.
// Implementations: FileCache for CLI runs, NullCache to disable caching.
type Cache interface {
	// Get returns the cached data and whether the key was found.
	// A miss is (nil, false, nil); errors are reserved for real failures.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer builds cache keys for the cacheable stages of a run. Keys must be
// deterministic: the same inputs always produce the same key, and any
// input that changes the output must change the key.
type Keyer interface {
	// SceneKey identifies a parsed scene by the hash of its source file.
	SceneKey(sceneHash string) string

	// LayoutKey identifies a computed layout: the scene content plus every
	// knob that affects positioning.
	LayoutKey(sceneHash string, cfg layout.Config) string

	// ClusterKey identifies a computed cluster set for a scene.
	ClusterKey(sceneHash string, cfg layout.Config) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SceneKey generates a key for a parsed scene.
func (k *DefaultKeyer) SceneKey(sceneHash string) string {
	return "scene:" + sceneHash
}

// LayoutKey generates a key covering the scene content and the layout config.
func (k *DefaultKeyer) LayoutKey(sceneHash string, cfg layout.Config) string {
	return hashKey("layout", sceneHash, cfg)
}

// ClusterKey generates a key for the cluster set of a scene.
func (k *DefaultKeyer) ClusterKey(sceneHash string, cfg layout.Config) string {
	return hashKey("clusters", sceneHash, cfg.ClusterRadius)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
