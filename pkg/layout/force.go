package layout

import (
	"math/rand/v2"

	"github.com/goki/mat32"

	"github.com/matzehuels/depscape/pkg/scene"
)

// minSeparation guards the repulsion term against division by zero;
// pairs closer than this are skipped for the step.
const minSeparation = 0.1

// positionForceDirected runs a fixed-budget force simulation. Artifacts
// still at the origin are seeded uniformly inside a cube of half-width 10;
// existing positions are kept as the starting state.
//
// Each of the exactly cfg.Iterations steps accumulates three forces per
// artifact and adds the sum directly to its position (the force magnitude
// is the per-step displacement; there is no velocity term):
//
//   - pairwise repulsion RepulsionStrength/d² along the separating unit
//     vector, for every unordered pair (O(n²) per step)
//   - attraction d*ForceStrength along each dependency edge, pulling the
//     dependent toward its dependency
//   - a center-seeking force -CenterAttraction * position
//
// Iteration count is a config constant rather than a convergence
// criterion, so the cost is bounded and predictable.
func positionForceDirected(artifacts []*scene.Artifact, cfg Config, rng *rand.Rand) {
	for _, a := range artifacts {
		if a.Position == mat32.Vec3Zero {
			a.Position = mat32.NewVec3(
				(rng.Float32()-0.5)*20,
				(rng.Float32()-0.5)*20,
				(rng.Float32()-0.5)*20,
			)
		}
	}

	slot := make(map[string]int, len(artifacts))
	for i, a := range artifacts {
		slot[a.ID] = i
	}

	forces := make([]mat32.Vec3, len(artifacts))
	for iter := 0; iter < cfg.Iterations; iter++ {
		for i := range forces {
			forces[i] = mat32.Vec3Zero
		}

		// Repulsion over every unordered pair.
		for i := 0; i < len(artifacts); i++ {
			for j := i + 1; j < len(artifacts); j++ {
				delta := artifacts[i].Position.Sub(artifacts[j].Position)
				dist := delta.Length()
				if dist < minSeparation {
					continue
				}
				push := delta.DivScalar(dist).MulScalar(cfg.RepulsionStrength / (dist * dist))
				forces[i].SetAdd(push)
				forces[j].SetSub(push)
			}
		}

		// Attraction along dependency edges: dependent toward dependency.
		for i, a := range artifacts {
			for _, depID := range a.DependsOn {
				j, ok := slot[depID]
				if !ok {
					continue
				}
				delta := artifacts[j].Position.Sub(a.Position)
				forces[i].SetAdd(delta.MulScalar(cfg.ForceStrength))
			}
		}

		// Center pull and displacement.
		for i, a := range artifacts {
			forces[i].SetAdd(a.Position.MulScalar(-cfg.CenterAttraction))
			a.Position.SetAdd(forces[i])
		}
	}
}
