package layout

import (
	"github.com/goki/mat32"

	"github.com/matzehuels/depscape/pkg/scene"
)

// positionCircular spaces all artifacts evenly on a single ring of
// radius max(5, n*0.8), with a gentle sinusoidal height wave so the
// ring reads as three-dimensional from a shallow camera angle.
func positionCircular(artifacts []*scene.Artifact) {
	n := len(artifacts)
	if n == 0 {
		return
	}
	radius := mat32.Max(5, float32(n)*0.8)
	step := 2 * mat32.Pi / float32(n)
	for i, a := range artifacts {
		angle := float32(i) * step
		a.Position = mat32.NewVec3(
			mat32.Cos(angle)*radius,
			mat32.Sin(float32(i)*0.5)*2,
			mat32.Sin(angle)*radius,
		)
	}
}
