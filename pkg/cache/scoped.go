package cache

import "github.com/matzehuels/depscape/pkg/layout"

// ScopedKeyer wraps a Keyer with a prefix so separate projects sharing one
// cache directory get isolated namespaces.
//
// Example usage:
//
//	// Per-project keys when several scenes share a cache dir
//	projKeyer := NewScopedKeyer(NewDefaultKeyer(), "proj:backend:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SceneKey generates a prefixed key for a parsed scene.
func (k *ScopedKeyer) SceneKey(sceneHash string) string {
	return k.prefix + k.inner.SceneKey(sceneHash)
}

// LayoutKey generates a prefixed key for a computed layout.
func (k *ScopedKeyer) LayoutKey(sceneHash string, cfg layout.Config) string {
	return k.prefix + k.inner.LayoutKey(sceneHash, cfg)
}

// ClusterKey generates a prefixed key for a computed cluster set.
func (k *ScopedKeyer) ClusterKey(sceneHash string, cfg layout.Config) string {
	return k.prefix + k.inner.ClusterKey(sceneHash, cfg)
}
