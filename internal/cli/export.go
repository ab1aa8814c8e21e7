package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depscape/pkg/errors"
	"github.com/matzehuels/depscape/pkg/layout"
	"github.com/matzehuels/depscape/pkg/scene"
	"github.com/matzehuels/depscape/pkg/viz"
)

// Export formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// exportCommand creates the export command for node-link diagrams.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output     string
		format     string
		detailed   bool
		clustering bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "export [scene.json]",
		Short: "Export a scene as a node-link diagram",
		Long: `Export a scene as a node-link diagram.

The export command converts a scene's artifacts and dependency edges to
Graphviz DOT, optionally rendered to SVG. With --clusters, nodes are
colored by cluster membership using the same grouping as the clustered
layout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, layoutCfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return c.runExport(args[0], output, format, detailed, clustering, layoutCfg)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot (default), svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include complexity and position in node labels")
	cmd.Flags().BoolVar(&clustering, "clusters", false, "color nodes by cluster membership")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file")

	return cmd
}

// runExport loads the scene and writes the diagram.
func (c *CLI) runExport(input, output, format string, detailed, clustering bool, cfg layout.Config) error {
	s, err := scene.ReadSceneFile(input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}
	if err := s.Validate(); err != nil {
		return err
	}

	opts := viz.Options{Detailed: detailed}
	clusterCount := 0
	if clustering {
		opts.Clusters = layout.BuildClusters(s.Artifacts, cfg)
		clusterCount = len(opts.Clusters)
	}

	dot := viz.ToDOT(&s, opts)

	var data []byte
	switch format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		p := newProgress(c.Logger)
		data, err = viz.RenderSVG(dot)
		if err != nil {
			return fmt.Errorf("render SVG: %w", err)
		}
		p.done("Rendered SVG")
	default:
		return errors.New(errors.ErrCodeUnsupported, "unknown format %q (must be dot or svg)", format)
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + "." + format
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Export complete")
	printFile(outputPath)
	printStats(len(s.Artifacts), clusterCount, false)

	return nil
}
