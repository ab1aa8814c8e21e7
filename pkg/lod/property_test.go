package lod

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestPipelineInvariants verifies properties that must hold for any input,
// complementing the example-driven unit tests.
func TestPipelineInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Every distance maps to a level; there is no unhandled range.
	properties.Property("level selection is total", prop.ForAll(
		func(distance float32) bool {
			s := NewSelector(DefaultConfig())
			return s.DetermineLevel(distance) != nil
		},
		gen.Float32Range(0, 1e7),
	))

	// No FPS history can push the controller outside its bounds.
	properties.Property("controller respects floors and ceilings", prop.ForAll(
		func(samples []float32) bool {
			cfg := DefaultConfig()
			c := NewController(cfg)
			for _, fps := range samples {
				c.Update(fps)
			}
			if cfg.MaxRenderDistance < MinRenderDistance || cfg.MaxRenderDistance > MaxRenderDistanceCeiling {
				return false
			}
			for _, l := range cfg.Levels {
				if l.MaxArtifacts < MinLevelArtifacts || l.MaxArtifacts > MaxLevelArtifacts {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float32Range(0, 500)),
	))

	properties.TestingRun(t)
}
