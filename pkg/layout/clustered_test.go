package layout

import (
	"testing"

	"github.com/goki/mat32"

	"github.com/matzehuels/depscape/pkg/scene"
)

func TestBuildClustersSingleDirectory(t *testing.T) {
	arts := []*scene.Artifact{
		{ID: "user", FilePath: "/src/models/user.go"},
		{ID: "order", FilePath: "/src/models/order.go"},
		{ID: "invoice", FilePath: "/src/models/invoice.go"},
		{ID: "cart", FilePath: "/src/models/cart.go"},
	}

	clusters := BuildClusters(arts, DefaultConfig())
	if len(clusters) != 1 {
		t.Fatalf("cluster count = %d, want 1", len(clusters))
	}
	c := clusters[0]
	if c.ID != "/src/models" {
		t.Errorf("cluster ID = %q, want %q", c.ID, "/src/models")
	}
	if len(c.MemberIDs) != 4 {
		t.Errorf("member count = %d, want 4", len(c.MemberIDs))
	}
	// radius = max(3, 4*0.5) = 3
	if c.Radius != 3 {
		t.Errorf("radius = %v, want 3", c.Radius)
	}
}

func TestBuildClustersMisc(t *testing.T) {
	arts := []*scene.Artifact{
		{ID: "a", FilePath: "/src/api/a.go"},
		{ID: "b", FilePath: "/src/api/b.go"},
		{ID: "lonely", FilePath: "/src/util/lonely.go"},
		{ID: "pathless"},
	}
	cfg := DefaultConfig()

	clusters := BuildClusters(arts, cfg)
	if len(clusters) != 2 {
		t.Fatalf("cluster count = %d, want 2", len(clusters))
	}

	misc := clusters[len(clusters)-1]
	if misc.ID != MiscClusterID {
		t.Fatalf("last cluster = %q, want %q", misc.ID, MiscClusterID)
	}
	if len(misc.MemberIDs) != 2 {
		t.Errorf("misc member count = %d, want 2", len(misc.MemberIDs))
	}
	if misc.Center.Y <= 0 {
		t.Errorf("misc center Y = %v, want above origin", misc.Center.Y)
	}
}

func TestBuildClustersPartition(t *testing.T) {
	arts := []*scene.Artifact{
		{ID: "a", FilePath: "/x/a.go"},
		{ID: "b", FilePath: "/x/b.go"},
		{ID: "c", FilePath: "/y/c.go"},
		{ID: "d", FilePath: "/y/d.go"},
		{ID: "e", FilePath: "/z/e.go"},
	}

	seen := make(map[string]int)
	for _, c := range BuildClusters(arts, DefaultConfig()) {
		for _, id := range c.MemberIDs {
			seen[id]++
		}
	}
	for _, a := range arts {
		if seen[a.ID] != 1 {
			t.Errorf("artifact %s appears in %d clusters, want 1", a.ID, seen[a.ID])
		}
	}
}

func TestBuildClustersColors(t *testing.T) {
	arts := []*scene.Artifact{
		{ID: "a1", FilePath: "/a/1.go"}, {ID: "a2", FilePath: "/a/2.go"},
		{ID: "b1", FilePath: "/b/1.go"}, {ID: "b2", FilePath: "/b/2.go"},
	}

	clusters := BuildClusters(arts, DefaultConfig())
	if len(clusters) != 2 {
		t.Fatalf("cluster count = %d, want 2", len(clusters))
	}
	if clusters[0].Color == "" || clusters[1].Color == "" {
		t.Error("clusters should have palette colors assigned")
	}
	if clusters[0].Color == clusters[1].Color {
		t.Errorf("adjacent clusters share color %q", clusters[0].Color)
	}
}

func TestPositionClusteredStaysInBand(t *testing.T) {
	arts := []*scene.Artifact{
		{ID: "a", FilePath: "/pkg/a.go"},
		{ID: "b", FilePath: "/pkg/b.go"},
		{ID: "c", FilePath: "/pkg/c.go"},
	}
	cfg := DefaultConfig()
	cfg.Algorithm = AlgorithmClustered

	if err := NewEngine(nil).Position(arts, cfg); err != nil {
		t.Fatalf("Position() error: %v", err)
	}

	clusters := BuildClusters(arts, cfg)
	center := clusters[0].Center
	radius := clusters[0].Radius
	for _, a := range arts {
		dx := a.Position.X - center.X
		dz := a.Position.Z - center.Z
		d := mat32.Sqrt(dx*dx + dz*dz)
		if d < 0.3*radius-1e-4 || d > 0.7*radius+1e-4 {
			t.Errorf("%s placed at ring distance %v, want within [%v, %v]",
				a.ID, d, 0.3*radius, 0.7*radius)
		}
		if mat32.Abs(a.Position.Y-center.Y) > 1 {
			t.Errorf("%s vertical jitter = %v, want within 1 of center",
				a.ID, a.Position.Y-center.Y)
		}
	}
}
