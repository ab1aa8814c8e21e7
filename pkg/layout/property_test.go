package layout

import (
	"fmt"
	"testing"

	"github.com/goki/mat32"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/matzehuels/depscape/pkg/scene"
)

// TestLayoutInvariants verifies properties that must hold for any input,
// not just the handpicked cases in the unit tests.
func TestLayoutInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Every artifact lands in exactly one cluster, misc included.
	properties.Property("clusters partition the artifact set", prop.ForAll(
		func(dirIdx []uint8) bool {
			arts := make([]*scene.Artifact, len(dirIdx))
			for i, d := range dirIdx {
				arts[i] = &scene.Artifact{
					ID:       fmt.Sprintf("artifact-%d", i),
					FilePath: fmt.Sprintf("/src/dir%d/file%d.go", d%4, i),
				}
			}

			seen := make(map[string]int)
			for _, c := range BuildClusters(arts, DefaultConfig()) {
				for _, id := range c.MemberIDs {
					seen[id]++
				}
			}
			for _, a := range arts {
				if seen[a.ID] != 1 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt8()),
	))

	// An early exit from the overlap resolver certifies the minimum
	// distance holds for every pair.
	properties.Property("overlap early exit implies separation", prop.ForAll(
		func(coords []int8, minDist uint8) bool {
			n := len(coords) / 3
			if n > 12 {
				n = 12
			}
			arts := make([]*scene.Artifact, n)
			for i := range arts {
				arts[i] = &scene.Artifact{
					ID: fmt.Sprintf("a%d", i),
					Position: mat32.NewVec3(
						float32(coords[i*3]),
						float32(coords[i*3+1]),
						float32(coords[i*3+2]),
					),
				}
			}
			md := float32(minDist%10) + 1

			passes := Optimize(arts, md)
			if passes >= maxOverlapPasses {
				return true // no guarantee when the bound was hit
			}
			for i := 0; i < len(arts); i++ {
				for j := i + 1; j < len(arts); j++ {
					if arts[i].Position.Sub(arts[j].Position).Length() < md-1e-3 {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.Int8()),
		gen.UInt8(),
	))

	// The same seed reproduces the same force-directed layout.
	properties.Property("force layout is deterministic per seed", prop.ForAll(
		func(seed uint64, n uint8) bool {
			count := int(n%8) + 2
			build := func() []*scene.Artifact {
				arts := make([]*scene.Artifact, count)
				for i := range arts {
					arts[i] = &scene.Artifact{ID: fmt.Sprintf("a%d", i)}
					if i > 0 {
						arts[i].DependsOn = []string{"a0"}
					}
				}
				return arts
			}
			cfg := DefaultConfig()
			cfg.Algorithm = AlgorithmForceDirected
			cfg.Iterations = 10
			if seed != 0 {
				cfg.Seed = seed
			}

			first, second := build(), build()
			if err := NewEngine(nil).Position(first, cfg); err != nil {
				return false
			}
			if err := NewEngine(nil).Position(second, cfg); err != nil {
				return false
			}
			for i := range first {
				if first[i].Position != second[i].Position {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}
