// Package layout computes 3D positions for scene artifacts.
//
// Five interchangeable strategies are dispatched by [Config.Algorithm]:
//
//   - hierarchical: rings stacked by dependency depth
//   - force-directed: iterative repulsion/attraction simulation
//   - circular: a single ring with slight height variation
//   - grid: row-major placement on a square grid
//   - clustered: directory-based groups around ring-placed centers
//
// A post-pass overlap resolver ([Optimize]) relaxes artifacts apart, and
// [BuildClusters] is the clustering sub-routine shared by the clustered
// strategy and cluster visualization.
//
// All randomness (force seeding, cluster jitter) flows through a seedable
// generator derived from [Config.Seed], so layouts are reproducible: the
// same seed and inputs produce identical output.
//
// The engine mutates artifact positions in place and is the single writer
// by contract; callers serialize layout runs against per-frame LOD passes
// over the same artifact slice.
package layout
