// Package transform provides analyses over a [dag.Graph] that help keep a
// plan's dependency structure minimal.
//
// # Transitive Reduction
//
// A dependency A→C is redundant when A already reaches C through another of
// its dependencies, for example A→B→C. Redundant edges never change the
// scheduler's output order, but they clutter a plan and hide which
// dependencies actually gate a task.
//
// [RedundantEdges] reports such edges without modifying the graph, and
// [TransitiveReduction] removes them in place.
//
// # Performance
//
// Both functions compute full reachability with one depth-first walk per
// node: O(V·(V+E)) time and O(V²) space. This is comfortable for planning
// graphs with hundreds of tasks.
package transform
