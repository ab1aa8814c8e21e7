// Package viz exports scenes as Graphviz node-link diagrams, the 2D
// companion to the 3D view: same artifacts and dependency edges, with
// cluster membership encoded as fill color.
package viz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/depscape/pkg/layout"
	"github.com/matzehuels/depscape/pkg/scene"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes complexity and position in node labels.
	// When false, only the display label is shown.
	Detailed bool

	// Clusters colors nodes by cluster membership when non-nil.
	Clusters []*layout.ClusterInfo
}

// ToDOT converts a scene to Graphviz DOT format for node-link
// visualization. The resulting DOT string can be rendered with [RenderSVG].
// Nodes are emitted in ID order so output is stable regardless of artifact
// ordering. Edges point from the dependent artifact to its dependency;
// edges to unknown IDs are dropped.
func ToDOT(s *scene.Scene, opts Options) string {
	colors := clusterColors(opts.Clusters)
	known := s.Index()

	artifacts := slices.Clone(s.Artifacts)
	slices.SortFunc(artifacts, func(a, b *scene.Artifact) int {
		return strings.Compare(a.ID, b.ID)
	})

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, a := range artifacts {
		label := fmtLabel(a, opts.Detailed)
		attrs := fmtAttrs(a, label, colors)
		fmt.Fprintf(&buf, "  %q [%s];\n", a.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, a := range artifacts {
		for _, dep := range a.DependsOn {
			if _, ok := known[dep]; !ok {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", a.ID, dep)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(a *scene.Artifact, detailed bool) string {
	if !detailed {
		return a.DisplayLabel()
	}
	return fmt.Sprintf("%s\ncomplexity: %.1f\npos: (%.1f, %.1f, %.1f)",
		a.DisplayLabel(), a.Complexity, a.Position.X, a.Position.Y, a.Position.Z)
}

func fmtAttrs(a *scene.Artifact, label string, colors map[string]string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if color, ok := colors[a.ID]; ok {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", color), "fontcolor=black")
	}
	return attrs
}

// clusterColors maps artifact IDs to their cluster's palette color.
func clusterColors(clusters []*layout.ClusterInfo) map[string]string {
	colors := make(map[string]string)
	for _, c := range clusters {
		for _, id := range c.MemberIDs {
			colors[id] = c.Color
		}
	}
	return colors
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
