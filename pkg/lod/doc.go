// Package lod implements the per-frame level-of-detail pipeline: distance
// based level selection, frustum culling, rolling performance monitoring,
// and a closed-loop quality controller that trades visual detail for frame
// rate stability.
//
// # Architecture
//
// The pipeline consists of small, independently testable parts wired
// together by [Manager]:
//
//   - [Selector] maps camera distance to a configured [Level]
//   - [Culler] tests artifact positions against the camera frustum
//   - [Monitor] tracks rolling frame-rate statistics (last 60 samples)
//   - [Controller] shrinks or grows render budgets from measured FPS
//
// Every rendered frame, [Manager.Update] consumes the camera state and the
// artifact list and produces one [ArtifactLOD] per artifact. Artifacts are
// processed in ascending distance order so per-level render budgets are
// spent on the nearest artifacts first. The manager never mutates
// artifacts; it only emits derived records.
//
// # Usage
//
//	mgr := lod.NewManager(lod.DefaultConfig(), logger)
//	for frame := range frames {
//	    plan := mgr.Update(cam, artifacts, deltaTime)
//	    // hand plan to the renderer
//	}
//
// All state is per-Manager; two scenes can run side by side without
// interference.
package lod
