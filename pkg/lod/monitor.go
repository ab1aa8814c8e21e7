package lod

import (
	"runtime"
	"time"
)

// historySize is the number of FPS samples retained for smoothing.
const historySize = 60

// Metrics is the per-frame performance snapshot exposed to callers.
type Metrics struct {
	FPS         float32   `json:"fps"`
	FrameTime   float32   `json:"frame_time"` // milliseconds
	RenderCount int       `json:"render_count"`
	CulledCount int       `json:"culled_count"`
	MemoryUsage uint64    `json:"memory_usage"` // heap bytes
	LastUpdate  time.Time `json:"last_update"`
}

// Monitor tracks rolling frame-rate statistics. Record is called once per
// frame with the frame's delta time; SetCounts is called by the manager
// after the frame's render plan is known.
//
// Not safe for concurrent use; the render loop is single-threaded.
type Monitor struct {
	current Metrics

	history [historySize]float32 // FPS ring buffer
	next    int                  // next write slot
	filled  int                  // samples recorded, capped at historySize
}

// NewMonitor creates an empty monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// Record ingests one frame's delta time in seconds and pushes the derived
// FPS sample into the ring buffer, dropping the oldest beyond 60 samples.
// Non-positive delta times are ignored (first frame, paused loop).
func (m *Monitor) Record(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}
	frameTime := deltaTime * 1000
	fps := 1000 / frameTime

	m.current.FrameTime = frameTime
	m.current.FPS = fps
	m.current.LastUpdate = time.Now()

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	m.current.MemoryUsage = ms.HeapAlloc

	m.history[m.next] = fps
	m.next = (m.next + 1) % historySize
	if m.filled < historySize {
		m.filled++
	}
}

// SetCounts records how many artifacts were rendered vs culled this frame.
func (m *Monitor) SetCounts(rendered, culled int) {
	m.current.RenderCount = rendered
	m.current.CulledCount = culled
}

// Metrics returns the current snapshot.
func (m *Monitor) Metrics() Metrics {
	return m.current
}

// AverageFPS returns the mean of the retained FPS samples, or 0 when no
// frame has been recorded yet.
func (m *Monitor) AverageFPS() float32 {
	if m.filled == 0 {
		return 0
	}
	var sum float32
	for i := 0; i < m.filled; i++ {
		sum += m.history[i]
	}
	return sum / float32(m.filled)
}

// SampleCount returns how many FPS samples are currently retained.
func (m *Monitor) SampleCount() int {
	return m.filled
}
