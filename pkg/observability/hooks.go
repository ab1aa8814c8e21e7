// Package observability provides hooks for metrics around the frame loop
// and the layout engine.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends to the engine packages.
// Consumers register hooks at startup to receive events about frame
// processing and layout runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which avoids import
// cycles and keeps the engine free of backend dependencies. A Prometheus
// implementation is provided in prom.go.
//
// # Usage
//
//	func main() {
//	    ph := observability.NewPromHooks()
//	    observability.SetFrameHooks(ph)
//	    observability.SetLayoutHooks(ph)
//	    http.Handle("/metrics", ph.Handler())
//	    // ... run frame loop
//	}
package observability

import (
	"sync"
	"time"
)

// FrameHooks receives events from the per-frame LOD pipeline.
// OnFrameComplete is called on the render-loop hot path; implementations
// must be cheap and must not block.
type FrameHooks interface {
	OnFrameStart(frame uint64)
	OnFrameComplete(frame uint64, rendered, culled int, fps float32)
}

// LayoutHooks receives events from layout engine runs.
type LayoutHooks interface {
	OnLayoutStart(algorithm string, artifactCount int)
	OnLayoutComplete(algorithm string, duration time.Duration, err error)
}

// NoopFrameHooks is a no-op implementation of FrameHooks.
type NoopFrameHooks struct{}

func (NoopFrameHooks) OnFrameStart(uint64)                       {}
func (NoopFrameHooks) OnFrameComplete(uint64, int, int, float32) {}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(string, int)                     {}
func (NoopLayoutHooks) OnLayoutComplete(string, time.Duration, error) {}

var (
	frameHooks  FrameHooks  = NoopFrameHooks{}
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	hooksMu     sync.RWMutex
)

// SetFrameHooks registers custom frame hooks.
// Call once at application startup before the frame loop begins.
func SetFrameHooks(h FrameHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		frameHooks = h
	}
}

// SetLayoutHooks registers custom layout hooks.
// Call once at application startup before any layout runs.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// Frame returns the registered frame hooks.
func Frame() FrameHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return frameHooks
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	frameHooks = NoopFrameHooks{}
	layoutHooks = NoopLayoutHooks{}
}
