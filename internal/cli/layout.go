package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goki/mat32"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depscape/pkg/cache"
	"github.com/matzehuels/depscape/pkg/layout"
	"github.com/matzehuels/depscape/pkg/scene"
)

// layoutTTL bounds how long cached layouts are reused.
const layoutTTL = 7 * 24 * time.Hour

// layoutCommand creates the layout command for positioning scene artifacts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		configPath string
		noCache    bool
		optimize   bool
		algorithm  string
		spacing    float32
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "layout [scene.json]",
		Short: "Compute artifact positions for a scene",
		Long: `Compute artifact positions for a scene.

The layout command takes a scene.json file, runs the selected positioning
algorithm over its artifacts, and writes a scene file with positions filled
in. Pass --optimize to resolve residual overlaps afterwards.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if algorithm != "" {
				cfg.Algorithm = layout.Algorithm(algorithm)
			}
			if spacing > 0 {
				cfg.Spacing = spacing
			}
			if seed != 0 {
				cfg.Seed = seed
			}
			return c.runLayout(cmd.Context(), args[0], cfg, output, noCache, optimize)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&optimize, "optimize", false, "resolve overlaps after positioning")

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "positioning algorithm: hierarchical (default), force-directed, circular, grid, clustered")
	cmd.Flags().Float32Var(&spacing, "spacing", 0, "base spacing between artifacts")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible layouts")

	return cmd
}

// runLayout loads the scene, computes positions, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, cfg layout.Config, output string, noCache, optimize bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}
	s, err := scene.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("parse scene %s: %w", input, err)
	}
	if err := s.Validate(); err != nil {
		return err
	}

	store, err := newCache(noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	keyer := cache.NewDefaultKeyer()
	key := keyer.LayoutKey(cache.Hash(data), cfg)
	if optimize {
		key += ":optimized"
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", cfg.Algorithm))
	spinner.Start()

	cacheHit, err := c.positionScene(ctx, &s, cfg, store, key, optimize)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := scene.WriteSceneFile(s, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	clusters := 0
	if cfg.Algorithm == layout.AlgorithmClustered {
		clusters = len(layout.BuildClusters(s.Artifacts, cfg))
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(s.Artifacts), clusters, cacheHit)
	printNewline()
	printNextStep("Simulate", "depscape simulate "+outputPath)

	return nil
}

// positionScene fills in artifact positions, consulting the cache first.
// Returns whether the positions came from the cache.
func (c *CLI) positionScene(ctx context.Context, s *scene.Scene, cfg layout.Config, store cache.Cache, key string, optimize bool) (bool, error) {
	if cached, hit, err := store.Get(ctx, key); err == nil && hit {
		var positions map[string]mat32.Vec3
		if err := json.Unmarshal(cached, &positions); err == nil {
			if applyPositions(s, positions) {
				return true, nil
			}
		}
		// Stale or mismatched entry: recompute.
		_ = store.Delete(ctx, key)
	}

	engine := layout.NewEngine(c.Logger)
	p := newProgress(c.Logger)
	if err := engine.Position(s.Artifacts, cfg); err != nil {
		return false, err
	}
	if optimize {
		passes := engine.Optimize(s.Artifacts, cfg)
		c.Logger.Debug("overlap passes", "count", passes)
	}
	p.done(fmt.Sprintf("Positioned %d artifacts", len(s.Artifacts)))

	positions := make(map[string]mat32.Vec3, len(s.Artifacts))
	for _, a := range s.Artifacts {
		positions[a.ID] = a.Position
	}
	if data, err := json.Marshal(positions); err == nil {
		if err := store.Set(ctx, key, data, layoutTTL); err != nil {
			c.Logger.Debug("cache write failed", "err", err)
		}
	}
	return false, nil
}

// applyPositions copies cached positions onto the scene. Returns false if
// any artifact is missing from the cached set.
func applyPositions(s *scene.Scene, positions map[string]mat32.Vec3) bool {
	for _, a := range s.Artifacts {
		pos, ok := positions[a.ID]
		if !ok {
			return false
		}
		a.Position = pos
	}
	return true
}
