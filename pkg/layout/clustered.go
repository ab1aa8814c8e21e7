package layout

import (
	"math/rand/v2"
	"path"

	"github.com/goki/mat32"

	"github.com/matzehuels/depscape/pkg/scene"
)

// MiscClusterID names the catch-all cluster holding artifacts whose
// directory contains no other artifact.
const MiscClusterID = "misc"

// clusterPalette is cycled round-robin by cluster index.
var clusterPalette = []string{
	"#4c9aff", "#57d9a3", "#ffab00", "#ff7452", "#998dd9",
	"#00c7e6", "#ff8f73", "#79e2f2", "#c0b6f2", "#79f2c0",
}

// ClusterInfo describes one spatial group of artifacts.
type ClusterInfo struct {
	ID        string     `json:"id"`
	Center    mat32.Vec3 `json:"center"`
	Radius    float32    `json:"radius"`
	MemberIDs []string   `json:"member_ids"`
	Color     string     `json:"color"`
}

// BuildClusters partitions artifacts into clusters by the parent
// directory of their file path. Directories with a single artifact do
// not form a cluster of their own; those artifacts, along with any
// artifact without a file path, are folded into the misc cluster.
// Every artifact lands in exactly one cluster.
//
// Directory clusters are placed evenly on a ring of radius
// cfg.ClusterRadius in the XZ plane; the misc cluster sits above the
// origin. Cluster radius grows with member count as max(3, n*0.5), and
// colors cycle through a fixed palette by cluster index.
func BuildClusters(artifacts []*scene.Artifact, cfg Config) []*ClusterInfo {
	if len(artifacts) == 0 {
		return nil
	}
	cfg.SetDefaults()

	byDir := make(map[string][]string)
	var dirs []string // first-seen order
	for _, a := range artifacts {
		dir := ""
		if a.FilePath != "" {
			dir = path.Dir(a.FilePath)
		}
		if _, seen := byDir[dir]; !seen {
			dirs = append(dirs, dir)
		}
		byDir[dir] = append(byDir[dir], a.ID)
	}

	var clusters []*ClusterInfo
	var misc []string
	for _, dir := range dirs {
		members := byDir[dir]
		if dir == "" || len(members) < 2 {
			misc = append(misc, members...)
			continue
		}
		clusters = append(clusters, &ClusterInfo{
			ID:        dir,
			MemberIDs: members,
			Radius:    clusterRadius(len(members)),
		})
	}

	step := 2 * mat32.Pi / float32(max(len(clusters), 1))
	for i, c := range clusters {
		angle := float32(i) * step
		c.Center = mat32.NewVec3(
			mat32.Cos(angle)*cfg.ClusterRadius,
			0,
			mat32.Sin(angle)*cfg.ClusterRadius,
		)
	}
	if len(misc) > 0 {
		clusters = append(clusters, &ClusterInfo{
			ID:        MiscClusterID,
			MemberIDs: misc,
			Radius:    clusterRadius(len(misc)),
			Center:    mat32.NewVec3(0, cfg.ClusterRadius*0.5, 0),
		})
	}
	for i, c := range clusters {
		c.Color = clusterPalette[i%len(clusterPalette)]
	}
	return clusters
}

func clusterRadius(members int) float32 {
	return mat32.Max(3, float32(members)*0.5)
}

// positionClustered places each artifact inside its cluster: a random
// angle around the cluster center, a radial distance in the inner
// 30..70% band of the cluster radius, and a small vertical jitter.
func positionClustered(artifacts []*scene.Artifact, cfg Config, rng *rand.Rand) {
	clusters := BuildClusters(artifacts, cfg)
	byID := index(artifacts)
	for _, c := range clusters {
		for _, id := range c.MemberIDs {
			a, ok := byID[id]
			if !ok {
				continue
			}
			angle := rng.Float32() * 2 * mat32.Pi
			dist := (0.3 + 0.4*rng.Float32()) * c.Radius
			a.Position = mat32.NewVec3(
				c.Center.X+mat32.Cos(angle)*dist,
				c.Center.Y+(rng.Float32()-0.5)*2,
				c.Center.Z+mat32.Sin(angle)*dist,
			)
		}
	}
}
