package lod

import (
	"io"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depscape/pkg/observability"
	"github.com/matzehuels/depscape/pkg/scene"
)

// ArtifactLOD is the derived, transient render decision for one artifact,
// recomputed every frame. It never aliases mutable manager state: the level
// fields are copied out so a later budget change cannot retroactively alter
// an emitted plan.
type ArtifactLOD struct {
	Artifact *scene.Artifact
	Level    string  // level name
	Distance float32 // camera distance this frame

	// Visible means within max render distance and inside the frustum.
	// ShouldRender additionally passed the level budget and thinning draw.
	Visible      bool
	ShouldRender bool

	GeometryComplexity float32
	ShowLabels         bool
	ShowDetails        bool
}

// Label/detail distances: labels are pointless beyond 50 units and detail
// panels beyond 20, regardless of the level flags.
const (
	labelDistance  = 50.0
	detailDistance = 20.0
)

// Manager orchestrates the LOD pipeline every frame: distance sort, level
// selection, frustum culling, per-level budgets, probabilistic thinning,
// and adaptive quality control.
//
// Single-threaded by contract: the caller serializes Update against layout
// passes over the same artifact slice.
type Manager struct {
	cfg      *Config
	selector *Selector
	monitor  *Monitor
	control  *Controller
	rng      *rand.Rand
	logger   *log.Logger

	frame uint64 // frames processed, for debug logging
}

// NewManager creates a manager over the given config. A nil logger
// discards debug output. The thinning RNG defaults to a fixed seed;
// use SetSeed for reproducible runs with a different stream.
func NewManager(cfg *Config, logger *log.Logger) *Manager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	m := &Manager{
		cfg:      cfg,
		selector: NewSelector(cfg),
		monitor:  NewMonitor(),
		control:  NewController(cfg),
		logger:   logger,
	}
	m.SetSeed(1)
	return m
}

// SetSeed resets the thinning RNG so a run can be reproduced exactly.
func (m *Manager) SetSeed(seed uint64) {
	m.rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Config returns the live config (mutated by the adaptive controller).
func (m *Manager) Config() *Config {
	return m.cfg
}

// Metrics returns the current performance snapshot.
func (m *Manager) Metrics() Metrics {
	return m.monitor.Metrics()
}

// AverageFPS returns the rolling average FPS over the retained samples.
func (m *Manager) AverageFPS() float32 {
	return m.monitor.AverageFPS()
}

// Update runs one frame of the LOD pipeline and returns the render plan,
// one entry per artifact, ordered by ascending camera distance.
//
// deltaTime is the seconds elapsed since the previous frame. The camera's
// matrices must be current (call Camera.UpdateMatrix after moving it);
// absent camera data is a caller contract violation, not handled here.
func (m *Manager) Update(cam *scene.Camera, artifacts []*scene.Artifact, deltaTime float32) []ArtifactLOD {
	observability.Frame().OnFrameStart(m.frame)
	m.monitor.Record(deltaTime)

	var culler *Culler
	if m.cfg.FrustumCulling {
		culler = NewCuller(cam)
	}

	plan := make([]ArtifactLOD, 0, len(artifacts))
	for _, a := range artifacts {
		plan = append(plan, ArtifactLOD{
			Artifact: a,
			Distance: cam.DistTo(a.Position),
		})
	}

	// Nearest first, so per-level budgets favor what the user is close to.
	slices.SortFunc(plan, func(a, b ArtifactLOD) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		default:
			return 0
		}
	})

	fps := m.monitor.Metrics().FPS
	target := m.cfg.PerformanceTarget
	rendered := 0
	budgets := make(map[*Level]int, len(m.cfg.Levels))

	for i := range plan {
		p := &plan[i]
		level := m.selector.DetermineLevel(p.Distance)

		inFrustum := true
		if culler != nil && level.CullingEnabled {
			inFrustum = culler.ContainsPoint(p.Artifact.Position)
		}
		p.Visible = inFrustum && p.Distance <= m.cfg.MaxRenderDistance

		render := p.Visible
		if render && budgets[level] >= level.MaxArtifacts {
			render = false
		}
		if render && fps > 0 && fps < target {
			// Thin preferentially among low-complexity artifacts when
			// behind target; important artifacts always survive the draw.
			if m.rng.Float32() < 1-fps/target && p.Artifact.Complexity < m.cfg.ComplexityBias {
				render = false
			}
		}

		p.ShouldRender = render
		p.Level = level.Name
		p.GeometryComplexity = level.GeometryComplexity
		p.ShowLabels = level.ShowLabels && p.Distance < labelDistance
		p.ShowDetails = level.ShowDetails && p.Distance < detailDistance

		if render {
			budgets[level]++
			rendered++
		}
	}

	culled := len(plan) - rendered
	m.monitor.SetCounts(rendered, culled)

	if m.cfg.AdaptiveQuality {
		if dir := m.control.Update(m.monitor.AverageFPS()); dir != 0 {
			m.logger.Debug("adaptive quality step",
				"direction", dir,
				"avg_fps", m.monitor.AverageFPS(),
				"max_render_distance", m.cfg.MaxRenderDistance)
		}
	}

	observability.Frame().OnFrameComplete(m.frame, rendered, culled, m.monitor.Metrics().FPS)
	m.frame++
	return plan
}
