package dag

import (
	"cmp"
	"errors"
	"slices"
)

var (
	// ErrCycle is returned by [Graph.InsertEdge] when the target can already
	// reach the source, so adding the edge would close a cycle. Inserting a
	// self-loop (from == to) also returns ErrCycle.
	ErrCycle = errors.New("edge would create a cycle")

	// ErrDuplicateEdge is returned by [Graph.InsertEdge] when the exact edge
	// already exists. The graph never holds two identical edges.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrInvalidEdgeEndpoint is returned by [Graph.Validate] when an edge
	// references a node that is not in the node set. This indicates graph
	// corruption and cannot happen through the public API.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")

	// ErrGraphHasCycle is returned by [Graph.Validate] when a cycle is detected.
	// Cycles are detected using depth-first search with white/gray/black coloring.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Edge is a directed dependency: From depends on To, so To must be resolved
// before From.
type Edge[K comparable] struct {
	From K
	To   K
}

type entry[K comparable] struct {
	seq  uint64
	deps []K
}

// Graph is a directed acyclic graph over comparable node keys.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph[K comparable] struct {
	nodes map[K]*entry[K]
	next  uint64
}

// New creates an empty graph.
func New[K comparable]() *Graph[K] {
	return &Graph[K]{nodes: make(map[K]*entry[K])}
}

// InsertNode adds n with an empty dependency list. Inserting a node that is
// already present is a no-op and keeps its original position in [Graph.Nodes].
func (g *Graph[K]) InsertNode(n K) {
	if _, ok := g.nodes[n]; ok {
		return
	}
	g.nodes[n] = &entry[K]{seq: g.next}
	g.next++
}

// InsertEdge records that from depends on to.
//
// Returns ErrCycle if to can already reach from (including from == to), or
// ErrDuplicateEdge if the edge exists. In both cases the graph is left
// unchanged. Otherwise missing endpoints are inserted (from first, then to),
// the edge is appended to from's dependency list and returned.
//
// This is the only operation that adds adjacency, which keeps the graph
// acyclic at all times.
func (g *Graph[K]) InsertEdge(from, to K) (Edge[K], error) {
	if g.Reachable(to, from) {
		return Edge[K]{}, ErrCycle
	}
	if g.HasEdge(from, to) {
		return Edge[K]{}, ErrDuplicateEdge
	}
	g.InsertNode(from)
	g.InsertNode(to)
	e := g.nodes[from]
	e.deps = append(e.deps, to)
	return Edge[K]{From: from, To: to}, nil
}

// RemoveEdge removes the edge from→to if it exists.
// Nothing happens if from is unknown or the edge is absent.
func (g *Graph[K]) RemoveEdge(from, to K) {
	e, ok := g.nodes[from]
	if !ok {
		return
	}
	if i := slices.Index(e.deps, to); i >= 0 {
		e.deps = slices.Delete(e.deps, i, i+1)
	}
}

// RemoveNode deletes n along with every edge that starts or ends at n.
// Removing an unknown node is a no-op.
//
// This is an O(N+E) operation as every dependency list must be scanned.
func (g *Graph[K]) RemoveNode(n K) {
	if _, ok := g.nodes[n]; !ok {
		return
	}
	delete(g.nodes, n)
	for _, e := range g.nodes {
		e.deps = slices.DeleteFunc(e.deps, func(k K) bool { return k == n })
	}
}

// HasNode reports whether n is in the graph.
func (g *Graph[K]) HasNode(n K) bool {
	_, ok := g.nodes[n]
	return ok
}

// HasEdge reports whether from depends directly on to.
func (g *Graph[K]) HasEdge(from, to K) bool {
	e, ok := g.nodes[from]
	return ok && slices.Contains(e.deps, to)
}

// Nodes returns all nodes in insertion order.
func (g *Graph[K]) Nodes() []K {
	type ranked struct {
		key K
		seq uint64
	}
	tmp := make([]ranked, 0, len(g.nodes))
	for k, e := range g.nodes {
		tmp = append(tmp, ranked{k, e.seq})
	}
	slices.SortFunc(tmp, func(a, b ranked) int { return cmp.Compare(a.seq, b.seq) })
	out := make([]K, len(tmp))
	for i, r := range tmp {
		out[i] = r.key
	}
	return out
}

// Edges returns every edge once, ordered by the insertion order of the
// source node and then by the order of its dependency list.
func (g *Graph[K]) Edges() []Edge[K] {
	var out []Edge[K]
	seen := make(map[Edge[K]]struct{})
	for _, n := range g.Nodes() {
		for _, d := range g.nodes[n].deps {
			e := Edge[K]{From: n, To: d}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// Dependencies returns the nodes n depends on, in the order the edges were
// inserted. The boolean is false if n is not in the graph. The returned
// slice is a copy.
func (g *Graph[K]) Dependencies(n K) ([]K, bool) {
	e, ok := g.nodes[n]
	if !ok {
		return nil, false
	}
	return slices.Clone(e.deps), true
}

// Dependants returns the nodes that depend directly on n, in insertion order.
// Returns nil if n has no dependants or doesn't exist.
func (g *Graph[K]) Dependants(n K) []K {
	var out []K
	for _, k := range g.Nodes() {
		if slices.Contains(g.nodes[k].deps, n) {
			out = append(out, k)
		}
	}
	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph[K]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph[K]) EdgeCount() int {
	n := 0
	for _, e := range g.nodes {
		n += len(e.deps)
	}
	return n
}

// Reachable reports whether to can be reached from from by following
// dependency edges. A node always reaches itself.
//
// The search is an iterative depth-first walk with an explicit stack, so
// deep chains do not grow the goroutine stack.
func (g *Graph[K]) Reachable(from, to K) bool {
	if from == to {
		return true
	}
	stack := []K{from}
	visited := map[K]struct{}{from: {}}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		e, ok := g.nodes[curr]
		if !ok {
			continue
		}
		for _, next := range e.deps {
			if next == to {
				return true
			}
			if _, seen := visited[next]; !seen {
				visited[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}
	return false
}

// Clone returns an independent copy of the graph. Node keys are shared, but
// the node set and every dependency list are copied, so mutating the clone
// never affects g and vice versa.
func (g *Graph[K]) Clone() *Graph[K] {
	c := &Graph[K]{nodes: make(map[K]*entry[K], len(g.nodes)), next: g.next}
	for k, e := range g.nodes {
		c.nodes[k] = &entry[K]{seq: e.seq, deps: slices.Clone(e.deps)}
	}
	return c
}

// Validate checks graph integrity and returns nil if valid.
//
// Returns ErrInvalidEdgeEndpoint if an edge references a missing node, or
// ErrGraphHasCycle if a cycle is detected. Graphs built exclusively through
// InsertNode and InsertEdge always validate.
//
// Cycle detection runs in O(N+E) time using depth-first search.
func (g *Graph[K]) Validate() error {
	for _, e := range g.nodes {
		for _, d := range e.deps {
			if _, ok := g.nodes[d]; !ok {
				return ErrInvalidEdgeEndpoint
			}
		}
	}
	return g.detectCycles()
}

func (g *Graph[K]) detectCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[K]int, len(g.nodes))
	var hasCycle bool

	var dfs func(n K)
	dfs = func(n K) {
		color[n] = gray
		for _, d := range g.nodes[n].deps {
			switch color[d] {
			case white:
				dfs(d)
			case gray:
				hasCycle = true
				return
			}
			if hasCycle {
				return
			}
		}
		color[n] = black
	}

	for _, n := range g.Nodes() {
		if color[n] == white {
			dfs(n)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}
