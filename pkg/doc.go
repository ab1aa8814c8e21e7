// Package pkg provides the core libraries for Depscape 3D dependency scenes.
//
// # Overview
//
// Depscape positions dependency graphs in 3D space and decides, frame by
// frame, how much of the scene a renderer should draw. The pkg directory is
// organized into these areas:
//
//  1. [scene] - Domain types (artifacts, scenes, the camera)
//  2. [layout] - Positioning strategies and overlap resolution
//  3. [lod] - Level-of-detail pipeline (selection, culling, adaptive quality)
//  4. [cache] - Local result caching for CLI runs
//  5. [viz] - Node-link export (DOT, SVG)
//  6. [observability] - Frame and layout hooks, Prometheus metrics
//
// # Architecture
//
// The typical data flow through Depscape:
//
//	scene.json
//	     ↓
//	[scene] package (parse + validate artifacts)
//	     ↓
//	[layout] package (position artifacts in 3D)
//	     ↓
//	[lod] package (per-frame render decisions)
//	     ↓
//	render plan / exported diagram
//
// # Quick Start
//
//	s, err := scene.ReadSceneFile("scene.json")
//	if err != nil {
//	    return err
//	}
//	engine := layout.NewEngine(nil)
//	if err := engine.Position(s.Artifacts, layout.DefaultConfig()); err != nil {
//	    return err
//	}
//	mgr := lod.NewManager(lod.DefaultConfig(), nil)
//	plan := mgr.Update(cam, s.Artifacts, deltaTime)
package pkg
