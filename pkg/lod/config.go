package lod

import (
	"github.com/matzehuels/depscape/pkg/errors"
)

// Default global knobs. Floors and ceilings bound what the adaptive
// controller may do to the config at runtime.
const (
	// DefaultPerformanceTarget is the FPS the controller steers toward.
	DefaultPerformanceTarget = 60.0

	// DefaultMaxRenderDistance is the distance beyond which nothing renders.
	DefaultMaxRenderDistance = 150.0

	// DefaultComplexityBias is the complexity below which artifacts are
	// eligible for probabilistic thinning under load. Artifacts at or above
	// it are considered important and are always spared.
	DefaultComplexityBias = 5.0

	// MinRenderDistance is the floor the controller never shrinks below.
	MinRenderDistance = 50.0

	// MaxRenderDistanceCeiling is the ceiling the controller never grows past.
	MaxRenderDistanceCeiling = 200.0

	// MinLevelArtifacts is the per-level render budget floor.
	MinLevelArtifacts = 10

	// MaxLevelArtifacts is the per-level render budget ceiling.
	MaxLevelArtifacts = 1000
)

// Level is one tier of rendering fidelity, selected by camera distance.
// Levels are ordered and should tile [0, MaxRenderDistance) without gaps;
// the last level acts as a catch-all fallback for any unmatched distance.
type Level struct {
	Name               string  `toml:"name" json:"name"`
	MinDistance        float32 `toml:"min_distance" json:"min_distance"`
	MaxDistance        float32 `toml:"max_distance" json:"max_distance"`
	GeometryComplexity float32 `toml:"geometry_complexity" json:"geometry_complexity"`
	ShowLabels         bool    `toml:"show_labels" json:"show_labels"`
	ShowDetails        bool    `toml:"show_details" json:"show_details"`
	MaxArtifacts       int     `toml:"max_artifacts" json:"max_artifacts"`
	CullingEnabled     bool    `toml:"culling_enabled" json:"culling_enabled"`
}

// Contains reports whether distance falls inside [MinDistance, MaxDistance).
func (l *Level) Contains(distance float32) bool {
	return distance >= l.MinDistance && distance < l.MaxDistance
}

// Config holds the ordered level table and the global LOD knobs.
// A Config is created once by the caller and may be hot-updated between
// frames via Apply; the adaptive controller also mutates MaxRenderDistance
// and the per-level budgets at runtime.
type Config struct {
	Levels []Level `toml:"levels" json:"levels"`

	AdaptiveQuality   bool    `toml:"adaptive_quality" json:"adaptive_quality"`
	PerformanceTarget float32 `toml:"performance_target" json:"performance_target"`
	MaxRenderDistance float32 `toml:"max_render_distance" json:"max_render_distance"`
	FrustumCulling    bool    `toml:"frustum_culling" json:"frustum_culling"`

	// OcclusionCulling is reserved: accepted in configs for forward
	// compatibility, not consulted by the current pipeline.
	OcclusionCulling bool `toml:"occlusion_culling" json:"occlusion_culling"`

	// ComplexityBias is the importance threshold for probabilistic thinning.
	ComplexityBias float32 `toml:"complexity_bias" json:"complexity_bias"`
}

// DefaultConfig returns the standard four-tier level table covering
// [0,25) High Detail, [25,75) Medium Detail, [75,150) Low Detail, and
// [150,∞) Minimal, with adaptive quality and frustum culling enabled.
func DefaultConfig() *Config {
	return &Config{
		Levels: []Level{
			{
				Name:               "High Detail",
				MinDistance:        0,
				MaxDistance:        25,
				GeometryComplexity: 1.0,
				ShowLabels:         true,
				ShowDetails:        true,
				MaxArtifacts:       100,
				CullingEnabled:     true,
			},
			{
				Name:               "Medium Detail",
				MinDistance:        25,
				MaxDistance:        75,
				GeometryComplexity: 0.6,
				ShowLabels:         true,
				ShowDetails:        false,
				MaxArtifacts:       300,
				CullingEnabled:     true,
			},
			{
				Name:               "Low Detail",
				MinDistance:        75,
				MaxDistance:        150,
				GeometryComplexity: 0.3,
				ShowLabels:         false,
				ShowDetails:        false,
				MaxArtifacts:       500,
				CullingEnabled:     true,
			},
			{
				Name:               "Minimal",
				MinDistance:        150,
				MaxDistance:        300,
				GeometryComplexity: 0.1,
				ShowLabels:         false,
				ShowDetails:        false,
				MaxArtifacts:       1000,
				CullingEnabled:     true,
			},
		},
		AdaptiveQuality:   true,
		PerformanceTarget: DefaultPerformanceTarget,
		MaxRenderDistance: DefaultMaxRenderDistance,
		FrustumCulling:    true,
		ComplexityBias:    DefaultComplexityBias,
	}
}

// Validate checks that the config is usable: at least one level, positive
// performance target, and non-inverted level ranges. Gaps between levels
// are permitted (the last level is the fallback), overlaps resolve to the
// first match.
func (c *Config) Validate() error {
	if len(c.Levels) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "at least one LOD level is required")
	}
	if c.PerformanceTarget <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "performance_target must be positive, got %v", c.PerformanceTarget)
	}
	if c.MaxRenderDistance <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_render_distance must be positive, got %v", c.MaxRenderDistance)
	}
	for i := range c.Levels {
		l := &c.Levels[i]
		if l.MaxDistance <= l.MinDistance {
			return errors.New(errors.ErrCodeInvalidConfig,
				"level %q has inverted range [%v, %v)", l.Name, l.MinDistance, l.MaxDistance)
		}
		if l.MaxArtifacts < 0 {
			return errors.New(errors.ErrCodeInvalidConfig,
				"level %q has negative max_artifacts", l.Name)
		}
	}
	return nil
}

// Update is a partial config change: only non-nil fields are applied.
// A non-nil Levels slice replaces the whole level table.
type Update struct {
	Levels            []Level
	AdaptiveQuality   *bool
	PerformanceTarget *float32
	MaxRenderDistance *float32
	FrustumCulling    *bool
	OcclusionCulling  *bool
	ComplexityBias    *float32
}

// Apply merges a partial update over the existing config between frames.
func (c *Config) Apply(u Update) {
	if u.Levels != nil {
		c.Levels = u.Levels
	}
	if u.AdaptiveQuality != nil {
		c.AdaptiveQuality = *u.AdaptiveQuality
	}
	if u.PerformanceTarget != nil {
		c.PerformanceTarget = *u.PerformanceTarget
	}
	if u.MaxRenderDistance != nil {
		c.MaxRenderDistance = *u.MaxRenderDistance
	}
	if u.FrustumCulling != nil {
		c.FrustumCulling = *u.FrustumCulling
	}
	if u.OcclusionCulling != nil {
		c.OcclusionCulling = *u.OcclusionCulling
	}
	if u.ComplexityBias != nil {
		c.ComplexityBias = *u.ComplexityBias
	}
}
