package lod

import (
	"github.com/goki/mat32"

	"github.com/matzehuels/depscape/pkg/scene"
)

// Culler tests world-space points against the camera's view frustum.
// It is a pure geometric predicate with no side effects. Construct one per
// frame from the current camera matrices and reuse it for every
// containment test that frame; the six planes are extracted once.
type Culler struct {
	frustum *mat32.Frustum
}

// NewCuller builds the frustum for this frame from the camera's combined
// projection * view matrix.
func NewCuller(cam *scene.Camera) *Culler {
	return &Culler{frustum: mat32.NewFrustumFromMatrix(&cam.VPMatrix)}
}

// ContainsPoint reports whether the point is inside the view volume.
func (c *Culler) ContainsPoint(pos mat32.Vec3) bool {
	return c.frustum.ContainsPoint(pos)
}
