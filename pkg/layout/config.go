package layout

import (
	"github.com/matzehuels/depscape/pkg/errors"
)

// Algorithm selects a positioning strategy.
type Algorithm string

// Positioning strategies.
const (
	AlgorithmHierarchical  Algorithm = "hierarchical"
	AlgorithmForceDirected Algorithm = "force-directed"
	AlgorithmCircular      Algorithm = "circular"
	AlgorithmGrid          Algorithm = "grid"
	AlgorithmClustered     Algorithm = "clustered"
)

// ValidAlgorithms is the set of supported positioning strategies.
var ValidAlgorithms = map[Algorithm]bool{
	AlgorithmHierarchical:  true,
	AlgorithmForceDirected: true,
	AlgorithmCircular:      true,
	AlgorithmGrid:          true,
	AlgorithmClustered:     true,
}

// Default values applied by SetDefaults.
const (
	DefaultSpacing           = 5.0
	DefaultClusterRadius     = 20.0
	DefaultForceStrength     = 0.1
	DefaultIterations        = 100
	DefaultCenterAttraction  = 0.01
	DefaultRepulsionStrength = 50.0

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)
)

// Config contains all knobs for the positioning strategies.
// Zero values are filled in by SetDefaults; partial updates merge over an
// existing config via Apply.
type Config struct {
	Algorithm         Algorithm `toml:"algorithm" json:"algorithm"`
	Spacing           float32   `toml:"spacing" json:"spacing"`
	ClusterRadius     float32   `toml:"cluster_radius" json:"cluster_radius"`
	ForceStrength     float32   `toml:"force_strength" json:"force_strength"`
	Iterations        int       `toml:"iterations" json:"iterations"`
	CenterAttraction  float32   `toml:"center_attraction" json:"center_attraction"`
	RepulsionStrength float32   `toml:"repulsion_strength" json:"repulsion_strength"`
	Seed              uint64    `toml:"seed" json:"seed"`
}

// DefaultConfig returns a hierarchical layout config with standard knobs.
func DefaultConfig() Config {
	cfg := Config{Algorithm: AlgorithmHierarchical}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills in zero-valued fields. Idempotent.
func (c *Config) SetDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = AlgorithmHierarchical
	}
	if c.Spacing == 0 {
		c.Spacing = DefaultSpacing
	}
	if c.ClusterRadius == 0 {
		c.ClusterRadius = DefaultClusterRadius
	}
	if c.ForceStrength == 0 {
		c.ForceStrength = DefaultForceStrength
	}
	if c.Iterations == 0 {
		c.Iterations = DefaultIterations
	}
	if c.CenterAttraction == 0 {
		c.CenterAttraction = DefaultCenterAttraction
	}
	if c.RepulsionStrength == 0 {
		c.RepulsionStrength = DefaultRepulsionStrength
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
}

// Validate checks that the config describes a runnable layout.
func (c *Config) Validate() error {
	if !ValidAlgorithms[c.Algorithm] {
		return errors.New(errors.ErrCodeInvalidAlgorithm,
			"unknown algorithm: %q (must be one of: hierarchical, force-directed, circular, grid, clustered)", c.Algorithm)
	}
	if c.Spacing <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "spacing must be positive, got %v", c.Spacing)
	}
	if c.Iterations < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "iterations must not be negative, got %d", c.Iterations)
	}
	if c.ClusterRadius <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cluster_radius must be positive, got %v", c.ClusterRadius)
	}
	return nil
}

// Update is a partial config change: only non-nil fields are applied.
type Update struct {
	Algorithm         *Algorithm
	Spacing           *float32
	ClusterRadius     *float32
	ForceStrength     *float32
	Iterations        *int
	CenterAttraction  *float32
	RepulsionStrength *float32
	Seed              *uint64
}

// Apply merges a partial update over the existing config.
func (c *Config) Apply(u Update) {
	if u.Algorithm != nil {
		c.Algorithm = *u.Algorithm
	}
	if u.Spacing != nil {
		c.Spacing = *u.Spacing
	}
	if u.ClusterRadius != nil {
		c.ClusterRadius = *u.ClusterRadius
	}
	if u.ForceStrength != nil {
		c.ForceStrength = *u.ForceStrength
	}
	if u.Iterations != nil {
		c.Iterations = *u.Iterations
	}
	if u.CenterAttraction != nil {
		c.CenterAttraction = *u.CenterAttraction
	}
	if u.RepulsionStrength != nil {
		c.RepulsionStrength = *u.RepulsionStrength
	}
	if u.Seed != nil {
		c.Seed = *u.Seed
	}
}
