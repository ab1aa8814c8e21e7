package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goki/mat32"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depscape/pkg/lod"
	"github.com/matzehuels/depscape/pkg/observability"
	"github.com/matzehuels/depscape/pkg/scene"
)

// simulateCommand creates the simulate command: a headless render loop
// that drives the LOD pipeline with an orbiting camera.
func (c *CLI) simulateCommand() *cobra.Command {
	var (
		frames      int
		fps         float32
		seed        uint64
		configPath  string
		metricsAddr string
		orbitRadius float32
		watch       bool
	)

	cmd := &cobra.Command{
		Use:   "simulate [scene.json]",
		Short: "Run the LOD pipeline over a scene with a moving camera",
		Long: `Run the LOD pipeline over a scene with a moving camera.

The simulate command orbits a camera around the scene and runs every frame
through level selection, frustum culling, render budgets, and the adaptive
quality controller, then reports what a renderer would have drawn. Use it
to tune LOD configs against a scene without a GPU in the loop.

With --watch, a live dashboard shows per-frame metrics. With
--metrics-addr, Prometheus metrics are served for the duration of the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lodCfg, _, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			opts := simOptions{
				frames:      frames,
				fps:         fps,
				seed:        seed,
				metricsAddr: metricsAddr,
				orbitRadius: orbitRadius,
				watch:       watch,
			}
			return c.runSimulate(cmd.Context(), args[0], lodCfg, opts)
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 300, "number of frames to simulate")
	cmd.Flags().Float32Var(&fps, "fps", 60, "simulated frame rate (sets the per-frame delta time)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for the thinning draw (0 keeps the default)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	cmd.Flags().Float32Var(&orbitRadius, "orbit-radius", 40, "camera orbit radius")
	cmd.Flags().BoolVar(&watch, "watch", false, "show a live metrics dashboard")

	return cmd
}

type simOptions struct {
	frames      int
	fps         float32
	seed        uint64
	metricsAddr string
	orbitRadius float32
	watch       bool
}

// runSimulate loads the scene and drives the frame loop.
func (c *CLI) runSimulate(ctx context.Context, input string, cfg *lod.Config, opts simOptions) error {
	s, err := scene.ReadSceneFile(input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if opts.fps <= 0 {
		opts.fps = 60
	}

	if opts.metricsAddr != "" {
		hooks := observability.NewPromHooks()
		observability.SetFrameHooks(hooks)
		observability.SetLayoutHooks(hooks)
		defer observability.Reset()

		srv := &http.Server{Addr: opts.metricsAddr, Handler: hooks.Handler()}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				c.Logger.Error("metrics server", "err", err)
			}
		}()
		defer func() {
			shutCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(shutCtx)
		}()
		c.Logger.Info("serving metrics", "addr", opts.metricsAddr)
	}

	mgr := lod.NewManager(cfg, c.Logger)
	if opts.seed != 0 {
		mgr.SetSeed(opts.seed)
	}
	sim := newSimulation(mgr, s.Artifacts, opts.orbitRadius, 1/opts.fps)

	if opts.watch {
		if err := runDashboard(ctx, sim, opts.frames); err != nil {
			return err
		}
	} else {
		p := newProgress(c.Logger)
		for i := 0; i < opts.frames; i++ {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sim.Step()
		}
		p.done(fmt.Sprintf("Simulated %d frames", opts.frames))
	}

	printSimSummary(mgr, sim)
	return nil
}

// simulation advances an orbiting camera and the LOD manager one frame at
// a time.
type simulation struct {
	mgr       *lod.Manager
	artifacts []*scene.Artifact
	cam       *scene.Camera

	radius    float32
	deltaTime float32
	frame     int
	lastPlan  []lod.ArtifactLOD
}

func newSimulation(mgr *lod.Manager, artifacts []*scene.Artifact, radius, deltaTime float32) *simulation {
	return &simulation{
		mgr:       mgr,
		artifacts: artifacts,
		cam:       scene.NewCamera(),
		radius:    radius,
		deltaTime: deltaTime,
	}
}

// Step advances the orbit and runs one frame through the pipeline.
func (s *simulation) Step() {
	angle := float32(s.frame) * 0.01
	s.cam.Position = mat32.NewVec3(
		mat32.Cos(angle)*s.radius,
		s.radius*0.3,
		mat32.Sin(angle)*s.radius,
	)
	s.cam.LookAt(mat32.Vec3Zero, mat32.Vec3Y)
	s.cam.UpdateMatrix()

	s.lastPlan = s.mgr.Update(s.cam, s.artifacts, s.deltaTime)
	s.frame++
}

// printSimSummary reports the end state of the run.
func printSimSummary(mgr *lod.Manager, sim *simulation) {
	m := mgr.Metrics()
	cfg := mgr.Config()

	printSuccess("Simulation complete")
	printKeyValue("frames", fmt.Sprintf("%d", sim.frame))
	printKeyValue("avg fps", fmt.Sprintf("%.1f", mgr.AverageFPS()))
	printKeyValue("rendered", fmt.Sprintf("%d", m.RenderCount))
	printKeyValue("culled", fmt.Sprintf("%d", m.CulledCount))
	printKeyValue("render distance", fmt.Sprintf("%.1f", cfg.MaxRenderDistance))
	printKeyValue("memory", fmt.Sprintf("%.1f MiB", float64(m.MemoryUsage)/(1024*1024)))
}

// runDashboard runs the live bubbletea dashboard until the frame budget is
// spent or the user quits.
func runDashboard(ctx context.Context, sim *simulation, frames int) error {
	model := newDashboardModel(sim, frames)
	_, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}
