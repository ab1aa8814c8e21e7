package cli

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/goki/mat32"

	"github.com/matzehuels/depscape/pkg/layout"
	"github.com/matzehuels/depscape/pkg/scene"
)

func writeScene(t *testing.T, s scene.Scene) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := scene.WriteSceneFile(s, path); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	return path
}

func TestRunLayout(t *testing.T) {
	input := writeScene(t, scene.Scene{
		ID: "test",
		Artifacts: []*scene.Artifact{
			{ID: "app", DependsOn: []string{"lib"}},
			{ID: "lib"},
		},
	})
	output := filepath.Join(t.TempDir(), "out.json")

	c := New(io.Discard, LogInfo)
	cfg := layout.DefaultConfig()
	cfg.Algorithm = layout.AlgorithmGrid

	if err := c.runLayout(context.Background(), input, cfg, output, true, false); err != nil {
		t.Fatalf("runLayout() error: %v", err)
	}

	got, err := scene.ReadSceneFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(got.Artifacts) != 2 {
		t.Fatalf("artifact count = %d, want 2", len(got.Artifacts))
	}
	positioned := false
	for _, a := range got.Artifacts {
		if a.Position != mat32.Vec3Zero {
			positioned = true
		}
	}
	if !positioned {
		t.Error("output scene has no positioned artifacts")
	}
}

func TestRunLayoutInvalidScene(t *testing.T) {
	input := writeScene(t, scene.Scene{
		ID: "dup",
		Artifacts: []*scene.Artifact{
			{ID: "a"},
			{ID: "a"},
		},
	})

	c := New(io.Discard, LogInfo)
	if err := c.runLayout(context.Background(), input, layout.DefaultConfig(), "", true, false); err == nil {
		t.Error("runLayout() should reject duplicate artifact IDs")
	}
}

func TestRunLayoutMissingInput(t *testing.T) {
	c := New(io.Discard, LogInfo)
	err := c.runLayout(context.Background(), "/nonexistent/scene.json", layout.DefaultConfig(), "", true, false)
	if err == nil {
		t.Error("runLayout() should fail for a missing input")
	}
}

func TestApplyPositions(t *testing.T) {
	s := &scene.Scene{
		Artifacts: []*scene.Artifact{{ID: "a"}, {ID: "b"}},
	}

	full := map[string]mat32.Vec3{
		"a": mat32.NewVec3(1, 0, 0),
		"b": mat32.NewVec3(0, 1, 0),
	}
	if !applyPositions(s, full) {
		t.Error("applyPositions() should succeed with a full position set")
	}
	if s.Artifacts[0].Position != full["a"] {
		t.Errorf("position not applied: %v", s.Artifacts[0].Position)
	}

	partial := map[string]mat32.Vec3{"a": mat32.NewVec3(2, 0, 0)}
	if applyPositions(s, partial) {
		t.Error("applyPositions() should report a mismatch for missing IDs")
	}
}
