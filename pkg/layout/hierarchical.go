package layout

import (
	"github.com/goki/mat32"

	"github.com/matzehuels/depscape/pkg/scene"
)

// dependencyLevels computes each artifact's depth in the dependency graph:
// 0 for artifacts with no dependencies, otherwise 1 + the maximum depth of
// its dependencies.
//
// The traversal is a DFS with white/gray/black coloring so cyclic graphs
// terminate: a back edge (target still gray) contributes depth 0, which
// means every member of a cycle is measured from the cycle's lowest level.
// Dependencies on unknown IDs are skipped.
func dependencyLevels(artifacts []*scene.Artifact) map[string]int {
	const (
		white = iota
		gray
		black
	)

	idx := index(artifacts)
	color := make(map[string]int, len(artifacts))
	depth := make(map[string]int, len(artifacts))

	var dfs func(a *scene.Artifact) int
	dfs = func(a *scene.Artifact) int {
		switch color[a.ID] {
		case gray:
			return -1 // back edge; contributes 1 + (-1) = 0
		case black:
			return depth[a.ID]
		}
		color[a.ID] = gray

		d := 0
		for _, depID := range a.DependsOn {
			dep, ok := idx[depID]
			if !ok {
				continue
			}
			if nd := dfs(dep) + 1; nd > d {
				d = nd
			}
		}

		color[a.ID] = black
		depth[a.ID] = d
		return d
	}

	for _, a := range artifacts {
		dfs(a)
	}
	return depth
}

// positionHierarchical stacks artifacts in rings by dependency depth:
// leaves (depth 0) at the bottom, each further level a ring of radius
// max(5, count*0.5) at height level * spacing * 2, members evenly spaced
// by angle.
func positionHierarchical(artifacts []*scene.Artifact, cfg Config) {
	depths := dependencyLevels(artifacts)

	groups := make(map[int][]*scene.Artifact)
	maxDepth := 0
	for _, a := range artifacts {
		d := depths[a.ID]
		groups[d] = append(groups[d], a)
		if d > maxDepth {
			maxDepth = d
		}
	}

	for level := 0; level <= maxDepth; level++ {
		members := groups[level]
		if len(members) == 0 {
			continue
		}
		radius := max(5, float32(len(members))*0.5)
		height := float32(level) * cfg.Spacing * 2
		step := 2 * mat32.Pi / float32(len(members))
		for i, a := range members {
			angle := float32(i) * step
			a.Position = mat32.NewVec3(
				mat32.Cos(angle)*radius,
				height,
				mat32.Sin(angle)*radius,
			)
		}
	}
}
