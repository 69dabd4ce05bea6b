package dag

// Snapshot is an index-based copy of a graph's structure, meant to be
// consumed destructively by peeling algorithms.
//
// Every node present when the snapshot was taken gets a stable index in
// insertion order. Dependencies are stored as index sets, and removed nodes
// are only marked dead, so indices never shift while peeling. The snapshot
// shares node keys with the graph but nothing else: removing nodes from a
// snapshot never affects the graph it came from.
type Snapshot[K comparable] struct {
	keys  []K
	index map[K]int
	deps  []map[int]struct{}
	alive []bool
	live  int
}

// Snapshot captures the current structure of g.
func (g *Graph[K]) Snapshot() *Snapshot[K] {
	keys := g.Nodes()
	s := &Snapshot[K]{
		keys:  keys,
		index: make(map[K]int, len(keys)),
		deps:  make([]map[int]struct{}, len(keys)),
		alive: make([]bool, len(keys)),
		live:  len(keys),
	}
	for i, k := range keys {
		s.index[k] = i
		s.alive[i] = true
	}
	for i, k := range keys {
		set := make(map[int]struct{}, len(g.nodes[k].deps))
		for _, d := range g.nodes[k].deps {
			set[s.index[d]] = struct{}{}
		}
		s.deps[i] = set
	}
	return s
}

// Len returns the number of nodes captured, dead or alive.
func (s *Snapshot[K]) Len() int { return len(s.keys) }

// Remaining returns the number of nodes not yet removed.
func (s *Snapshot[K]) Remaining() int { return s.live }

// Node returns the key stored at index i.
func (s *Snapshot[K]) Node(i int) K { return s.keys[i] }

// Index returns the index of key k. The boolean is false if k was not in the
// graph when the snapshot was taken.
func (s *Snapshot[K]) Index(k K) (int, bool) {
	i, ok := s.index[k]
	return i, ok
}

// Alive reports whether index i has not been removed.
func (s *Snapshot[K]) Alive(i int) bool { return s.alive[i] }

// Sinks returns the indices of live nodes with no live dependencies, in
// ascending index order (which is the graph's insertion order).
func (s *Snapshot[K]) Sinks() []int {
	var out []int
	for i, ok := range s.alive {
		if ok && len(s.deps[i]) == 0 {
			out = append(out, i)
		}
	}
	return out
}

// DependantCount returns how many live nodes still depend directly on i.
//
// This scans every live node, so it costs O(N) per call.
func (s *Snapshot[K]) DependantCount(i int) int {
	n := 0
	for j, ok := range s.alive {
		if !ok {
			continue
		}
		if _, dep := s.deps[j][i]; dep {
			n++
		}
	}
	return n
}

// Remove marks i as dead and strips it from every dependency set.
// Removing an index twice is a no-op.
func (s *Snapshot[K]) Remove(i int) {
	if !s.alive[i] {
		return
	}
	s.alive[i] = false
	s.live--
	s.deps[i] = nil
	for _, set := range s.deps {
		delete(set, i)
	}
}
