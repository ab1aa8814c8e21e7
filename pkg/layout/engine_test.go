package layout

import (
	"fmt"
	"testing"

	"github.com/goki/mat32"

	"github.com/matzehuels/depscape/pkg/errors"
	"github.com/matzehuels/depscape/pkg/scene"
)

func testArtifacts(n int) []*scene.Artifact {
	arts := make([]*scene.Artifact, n)
	for i := range arts {
		arts[i] = &scene.Artifact{
			ID:         fmt.Sprintf("pkg-%d", i),
			Complexity: float32(i),
		}
	}
	return arts
}

func TestPositionInvalidAlgorithm(t *testing.T) {
	e := NewEngine(nil)
	cfg := DefaultConfig()
	cfg.Algorithm = "spiral"

	err := e.Position(testArtifacts(3), cfg)
	if err == nil {
		t.Fatal("Position() with unknown algorithm should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidAlgorithm) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidAlgorithm)
	}
}

func TestPositionEmptySlice(t *testing.T) {
	e := NewEngine(nil)
	for alg := range ValidAlgorithms {
		cfg := DefaultConfig()
		cfg.Algorithm = alg
		if err := e.Position(nil, cfg); err != nil {
			t.Errorf("Position(%s) on empty slice: %v", alg, err)
		}
	}
}

func TestForceDirectedDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = AlgorithmForceDirected
	cfg.Seed = 7

	run := func() []*scene.Artifact {
		arts := testArtifacts(2)
		arts[0].DependsOn = []string{"pkg-1"}
		if err := NewEngine(nil).Position(arts, cfg); err != nil {
			t.Fatalf("Position() error: %v", err)
		}
		return arts
	}

	first, second := run(), run()
	for i := range first {
		if first[i].Position != second[i].Position {
			t.Errorf("artifact %d: positions differ across runs with same seed: %v vs %v",
				i, first[i].Position, second[i].Position)
		}
	}
}

func TestForceDirectedSeedsOrigin(t *testing.T) {
	arts := testArtifacts(3)
	cfg := DefaultConfig()
	cfg.Algorithm = AlgorithmForceDirected
	cfg.Iterations = 1

	if err := NewEngine(nil).Position(arts, cfg); err != nil {
		t.Fatalf("Position() error: %v", err)
	}
	for _, a := range arts {
		if a.Position == mat32.Vec3Zero {
			t.Errorf("artifact %s still at origin after force layout", a.ID)
		}
	}
}

func TestGridPlacement(t *testing.T) {
	arts := testArtifacts(4)
	cfg := DefaultConfig()
	cfg.Algorithm = AlgorithmGrid
	cfg.Spacing = 2

	if err := NewEngine(nil).Position(arts, cfg); err != nil {
		t.Fatalf("Position() error: %v", err)
	}

	// side = ceil(sqrt(4)) = 2, half = 2.
	want := []mat32.Vec3{
		{X: -2, Y: 0, Z: -2},
		{X: 0, Y: 0.5, Z: -2},
		{X: -2, Y: 1, Z: 0},
		{X: 0, Y: 1.5, Z: 0},
	}
	for i, a := range arts {
		if a.Position != want[i] {
			t.Errorf("artifact %d: position = %v, want %v", i, a.Position, want[i])
		}
	}
}

func TestCircularRing(t *testing.T) {
	arts := testArtifacts(4)
	cfg := DefaultConfig()
	cfg.Algorithm = AlgorithmCircular

	if err := NewEngine(nil).Position(arts, cfg); err != nil {
		t.Fatalf("Position() error: %v", err)
	}

	// radius = max(5, 4*0.8) = 5
	for i, a := range arts {
		r := mat32.Sqrt(a.Position.X*a.Position.X + a.Position.Z*a.Position.Z)
		if mat32.Abs(r-5) > 1e-4 {
			t.Errorf("artifact %d: ring distance = %v, want 5", i, r)
		}
		if mat32.Abs(a.Position.Y) > 2 {
			t.Errorf("artifact %d: height = %v, want within [-2, 2]", i, a.Position.Y)
		}
	}
}

func TestOptimizeMethodUsesSpacing(t *testing.T) {
	arts := testArtifacts(2)
	arts[1].Position = mat32.NewVec3(0.1, 0, 0)

	cfg := DefaultConfig()
	cfg.Spacing = 3
	passes := NewEngine(nil).Optimize(arts, cfg)
	if passes < 1 {
		t.Errorf("passes = %d, want at least 1", passes)
	}

	dist := arts[0].Position.Sub(arts[1].Position).Length()
	if mat32.Abs(dist-2.4) > 1e-3 {
		t.Errorf("distance after optimize = %v, want 2.4", dist)
	}
}
