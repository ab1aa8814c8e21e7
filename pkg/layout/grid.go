package layout

import (
	"github.com/goki/mat32"

	"github.com/matzehuels/depscape/pkg/scene"
)

// positionGrid lays artifacts out row-major on a square grid of side
// ceil(sqrt(n)), centered on the origin in the XZ plane. Height encodes
// complexity at half scale, so the grid doubles as a bar chart.
func positionGrid(artifacts []*scene.Artifact, cfg Config) {
	n := len(artifacts)
	if n == 0 {
		return
	}
	side := int(mat32.Ceil(mat32.Sqrt(float32(n))))
	half := float32(side) * cfg.Spacing / 2
	for i, a := range artifacts {
		a.Position = mat32.NewVec3(
			float32(i%side)*cfg.Spacing-half,
			a.Complexity*0.5,
			float32(i/side)*cfg.Spacing-half,
		)
	}
}
