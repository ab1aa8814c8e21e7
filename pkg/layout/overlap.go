package layout

import (
	"github.com/goki/mat32"

	"github.com/matzehuels/depscape/pkg/scene"
)

// maxOverlapPasses bounds the relaxation loop; heavily overconstrained
// inputs stop pushed-but-still-overlapping rather than looping forever.
const maxOverlapPasses = 10

// Optimize pushes apart artifact pairs closer than minDistance. Each
// pass moves both members of an offending pair by half the deficit in
// opposite directions along their separating axis, and the loop exits
// early once a full pass makes no change. Coincident points are nudged
// apart along X. Returns the number of passes run.
func Optimize(artifacts []*scene.Artifact, minDistance float32) int {
	passes := 0
	for range maxOverlapPasses {
		passes++
		changed := false
		for i := 0; i < len(artifacts); i++ {
			for j := i + 1; j < len(artifacts); j++ {
				delta := artifacts[i].Position.Sub(artifacts[j].Position)
				dist := delta.Length()
				if dist >= minDistance {
					continue
				}
				var dir mat32.Vec3
				if dist > 0 {
					dir = delta.DivScalar(dist)
				} else {
					dir = mat32.NewVec3(1, 0, 0)
				}
				push := dir.MulScalar((minDistance - dist) / 2)
				artifacts[i].Position.SetAdd(push)
				artifacts[j].Position.SetSub(push)
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return passes
}
