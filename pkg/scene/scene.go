// Package scene defines the artifact data model shared by the layout engine
// and the per-frame LOD pipeline, together with its JSON interchange format.
//
// A Scene is the canonical serialization format for artifact graphs.
// The format is human-readable and designed for round-trip fidelity:
// import → layout → export → re-import produces identical results.
//
// Ownership contract: artifacts are owned by the caller. The layout engine
// mutates Position in place; the LOD manager only reads artifacts and emits
// derived records.
package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/goki/mat32"

	"github.com/matzehuels/depscape/pkg/errors"
)

// Artifact is a node in the scene graph: a code entity with a position in
// 3D space and directed dependency edges to other artifacts.
//
// DependsOn may contain cycles; consumers must traverse cycle-safely.
// Edges referencing unknown IDs are skipped silently by consumers.
type Artifact struct {
	ID         string   `json:"id"`
	Label      string   `json:"label,omitempty"`     // Display label (defaults to ID)
	FilePath   string   `json:"file_path,omitempty"` // Used for path-based clustering
	Complexity float32  `json:"complexity,omitempty"`
	Size       float32  `json:"size,omitempty"`
	DependsOn  []string `json:"depends_on,omitempty"`

	// Position is mutated in place by the layout engine and read by the
	// LOD manager every frame.
	Position mat32.Vec3 `json:"position"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (a *Artifact) DisplayLabel() string {
	if a.Label != "" {
		return a.Label
	}
	return a.ID
}

// Scene is the serialization format for an artifact graph.
type Scene struct {
	ID        string      `json:"id,omitempty"`
	Name      string      `json:"name,omitempty"`
	Artifacts []*Artifact `json:"artifacts"`
}

// Index returns a lookup map from artifact ID to artifact.
// Later duplicates win; Validate rejects scenes with duplicate IDs.
func (s *Scene) Index() map[string]*Artifact {
	idx := make(map[string]*Artifact, len(s.Artifacts))
	for _, a := range s.Artifacts {
		idx[a.ID] = a
	}
	return idx
}

// Validate checks that every artifact has a usable, unique ID.
// Dependency edges to unknown IDs are allowed: consumers skip them.
func (s *Scene) Validate() error {
	seen := make(map[string]bool, len(s.Artifacts))
	for _, a := range s.Artifacts {
		if err := errors.ValidateArtifactID(a.ID); err != nil {
			return err
		}
		if seen[a.ID] {
			return errors.New(errors.ErrCodeInvalidScene, "duplicate artifact ID: %s", a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}

// Sort orders artifacts by ID for deterministic output.
func (s *Scene) Sort() {
	slices.SortFunc(s.Artifacts, func(a, b *Artifact) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
}

// Marshal serializes a Scene to pretty-printed JSON bytes.
func Marshal(s Scene) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Scene and validates it.
func Unmarshal(data []byte) (Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, errors.Wrap(errors.ErrCodeInvalidScene, err, "unmarshal scene")
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// ReadSceneFile reads a Scene from a JSON file.
func ReadSceneFile(path string) (Scene, error) {
	if err := errors.ValidateScenePath(path); err != nil {
		return Scene{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Scene{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return Scene{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}

// WriteSceneFile writes a Scene to a JSON file.
func WriteSceneFile(s Scene, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
