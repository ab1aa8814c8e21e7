package layout

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depscape/pkg/observability"
	"github.com/matzehuels/depscape/pkg/scene"
)

// Engine runs positioning strategies over an artifact slice, mutating
// positions in place.
type Engine struct {
	logger *log.Logger
}

// NewEngine creates an engine. A nil logger discards output.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Engine{logger: logger}
}

// Position dispatches on cfg.Algorithm and rewrites every artifact's
// Position. Positions from a previous layout are overwritten, except for
// force-directed, which keeps existing positions as its starting state and
// only seeds artifacts still at the origin.
func (e *Engine) Position(artifacts []*scene.Artifact, cfg Config) error {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	start := time.Now()
	observability.Layout().OnLayoutStart(string(cfg.Algorithm), len(artifacts))
	e.logger.Debug("layout start", "algorithm", cfg.Algorithm, "artifacts", len(artifacts))

	rng := newRand(cfg.Seed)
	switch cfg.Algorithm {
	case AlgorithmHierarchical:
		positionHierarchical(artifacts, cfg)
	case AlgorithmForceDirected:
		positionForceDirected(artifacts, cfg, rng)
	case AlgorithmCircular:
		positionCircular(artifacts)
	case AlgorithmGrid:
		positionGrid(artifacts, cfg)
	case AlgorithmClustered:
		positionClustered(artifacts, cfg, rng)
	}

	elapsed := time.Since(start)
	observability.Layout().OnLayoutComplete(string(cfg.Algorithm), elapsed, nil)
	e.logger.Debug("layout complete", "algorithm", cfg.Algorithm, "elapsed", elapsed)
	return nil
}

// Optimize runs the overlap resolver with the config-derived minimum
// distance (spacing * 0.8) and returns the number of passes used.
func (e *Engine) Optimize(artifacts []*scene.Artifact, cfg Config) int {
	cfg.SetDefaults()
	passes := Optimize(artifacts, cfg.Spacing*0.8)
	e.logger.Debug("overlap resolution", "passes", passes)
	return passes
}

// newRand derives the layout RNG from a seed, so the same seed and inputs
// reproduce identical output.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// index builds an ID lookup over the artifact slice.
func index(artifacts []*scene.Artifact) map[string]*scene.Artifact {
	idx := make(map[string]*scene.Artifact, len(artifacts))
	for _, a := range artifacts {
		idx[a.ID] = a
	}
	return idx
}
