// Package dag provides a generic directed acyclic graph (DAG) that rejects
// cycles at insertion time.
//
// # Overview
//
// Nodes are opaque comparable keys supplied by the caller. The graph relies
// only on key equality, never on a node's content, so callers keep mutable
// records elsewhere and use stable identifiers (such as task IDs) as keys.
//
// An edge From → To means "From depends on To": To must be resolved before
// From. A node whose dependency list is empty has nothing left to wait for.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Graph.InsertNode] and edges
// with [Graph.InsertEdge]. Inserting an edge automatically inserts missing
// endpoints:
//
//	g := dag.New[string]()
//	g.InsertEdge("app", "lib")
//	g.InsertEdge("lib", "core")
//
// Query the structure with [Graph.Nodes], [Graph.Edges],
// [Graph.Dependencies] and [Graph.Dependants]. Iteration order is always
// the order in which nodes were first inserted, so every derived result is
// deterministic.
//
// # Acyclicity
//
// [Graph.InsertEdge] is the single gate through which adjacency grows. Before
// committing from → to it checks whether to can already reach from; if so the
// edge would close a cycle and the call returns [ErrCycle] without touching
// the graph. Duplicate edges are rejected with [ErrDuplicateEdge]. Rejections
// are ordinary errors, never panics, and the graph stays consistent.
//
// Removals never fail: removing an unknown node or edge is a no-op.
//
// # Copies
//
// [Graph.Clone] returns an independent graph sharing node keys but owning
// its node set and dependency lists.
//
// [Graph.Snapshot] returns an index-based [Snapshot] intended for
// destructive peeling algorithms such as the task scheduler. Indices are
// assigned once in insertion order and never shift while nodes are removed.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. A graph is expected to be
// owned by a single mutator; callers must synchronize access otherwise.
//
// # Related Packages
//
// The [transform] subpackage finds and removes redundant (transitively
// implied) dependencies.
//
// [transform]: github.com/matzehuels/taskchain/pkg/dag/transform
package dag
