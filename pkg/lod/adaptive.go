package lod

import "math"

// Controller is the adaptive quality feedback loop. Once per frame, when
// adaptive quality is enabled, it compares the rolling average FPS against
// the configured target and shrinks or grows the render budgets.
//
// The hysteresis band [0.8*target, 1.2*target] prevents oscillation, and
// the step sizes are asymmetric (shrink 0.9, grow 1.05): frame rate is
// protected faster than visual richness is restored.
type Controller struct {
	cfg *Config
}

// NewController creates a controller that mutates the given config's
// MaxRenderDistance and per-level MaxArtifacts budgets in place.
func NewController(cfg *Config) *Controller {
	return &Controller{cfg: cfg}
}

// Update evaluates the control law for one frame against avgFPS.
// Returns +1 when quality grew, -1 when it shrank, 0 when inside the band.
func (c *Controller) Update(avgFPS float32) int {
	target := c.cfg.PerformanceTarget
	switch {
	case avgFPS < target*0.8:
		c.ReduceQuality()
		return -1
	case avgFPS > target*1.2:
		c.IncreaseQuality()
		return 1
	default:
		return 0
	}
}

// ReduceQuality shrinks the render distance by 10% (floor 50) and each
// level's artifact budget by 10%, integer-truncated (floor 10).
func (c *Controller) ReduceQuality() {
	c.cfg.MaxRenderDistance = max(c.cfg.MaxRenderDistance*0.9, MinRenderDistance)
	for i := range c.cfg.Levels {
		l := &c.cfg.Levels[i]
		l.MaxArtifacts = max(int(float32(l.MaxArtifacts)*0.9), MinLevelArtifacts)
	}
}

// IncreaseQuality grows the render distance by 5% (ceiling 200) and each
// level's artifact budget by 5% (ceiling 1000). Budgets round up so small
// budgets can actually recover after truncated shrinks.
func (c *Controller) IncreaseQuality() {
	c.cfg.MaxRenderDistance = min(c.cfg.MaxRenderDistance*1.05, MaxRenderDistanceCeiling)
	for i := range c.cfg.Levels {
		l := &c.cfg.Levels[i]
		grown := int(math.Ceil(float64(l.MaxArtifacts) * 1.05))
		l.MaxArtifacts = min(grown, MaxLevelArtifacts)
	}
}
