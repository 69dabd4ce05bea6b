package dag

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func TestInsertNodeIdempotent(t *testing.T) {
	g := New[string]()
	g.InsertNode("a")
	g.InsertNode("b")
	g.InsertNode("a")

	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if got := g.Nodes(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Nodes() = %v, want [a b]", got)
	}
}

func TestInsertEdge(t *testing.T) {
	g := New[string]()

	e, err := g.InsertEdge("a", "b")
	if err != nil {
		t.Fatalf("InsertEdge(a, b) error = %v", err)
	}
	if e.From != "a" || e.To != "b" {
		t.Errorf("InsertEdge returned %+v, want {a b}", e)
	}
	if !g.HasNode("a") || !g.HasNode("b") {
		t.Error("InsertEdge should auto-insert both endpoints")
	}
	if got := g.Nodes(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Nodes() = %v, want [a b]", got)
	}
}

func TestInsertEdgeRejections(t *testing.T) {
	tests := []struct {
		name    string
		edges   [][2]string
		from    string
		to      string
		wantErr error
	}{
		{"self loop", nil, "a", "a", ErrCycle},
		{"direct cycle", [][2]string{{"x", "y"}}, "y", "x", ErrCycle},
		{"indirect cycle", [][2]string{{"a", "b"}, {"b", "c"}}, "c", "a", ErrCycle},
		{"duplicate", [][2]string{{"a", "b"}}, "a", "b", ErrDuplicateEdge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New[string]()
			for _, e := range tt.edges {
				if _, err := g.InsertEdge(e[0], e[1]); err != nil {
					t.Fatalf("setup InsertEdge(%s, %s) error = %v", e[0], e[1], err)
				}
			}
			before := g.Edges()
			nodesBefore := g.Nodes()

			_, err := g.InsertEdge(tt.from, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("InsertEdge(%s, %s) error = %v, want %v", tt.from, tt.to, err, tt.wantErr)
			}
			if got := g.Edges(); !slices.Equal(got, before) {
				t.Errorf("rejected insert changed edges: %v -> %v", before, got)
			}
			if got := g.Nodes(); !slices.Equal(got, nodesBefore) {
				t.Errorf("rejected insert changed nodes: %v -> %v", nodesBefore, got)
			}
		})
	}
}

func TestInsertEdgeNeverCreatesCycle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := New[int]()
	for i := 0; i < 500; i++ {
		from, to := rng.Intn(25), rng.Intn(25)
		_, err := g.InsertEdge(from, to)
		if err != nil && !errors.Is(err, ErrCycle) && !errors.Is(err, ErrDuplicateEdge) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v after random inserts", err)
	}
	for _, e := range g.Edges() {
		if g.Reachable(e.To, e.From) {
			t.Errorf("edge %v lies on a cycle", e)
		}
	}
}

func TestRemoveEdge(t *testing.T) {
	g := New[string]()
	g.InsertEdge("a", "b")
	g.InsertEdge("a", "c")

	g.RemoveEdge("a", "b")
	deps, _ := g.Dependencies("a")
	if !slices.Equal(deps, []string{"c"}) {
		t.Errorf("Dependencies(a) = %v, want [c]", deps)
	}

	// no-ops
	g.RemoveEdge("a", "b")
	g.RemoveEdge("missing", "a")
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if !g.HasNode("b") {
		t.Error("RemoveEdge should keep both endpoints")
	}
}

func TestRemoveNode(t *testing.T) {
	g := New[string]()
	g.InsertEdge("a", "b")
	g.InsertEdge("b", "c")
	g.InsertEdge("d", "b")

	g.RemoveNode("b")

	if g.HasNode("b") {
		t.Error("b should be removed")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0 (all edges touched b)", g.EdgeCount())
	}
	if got := g.Nodes(); !slices.Equal(got, []string{"a", "c", "d"}) {
		t.Errorf("Nodes() = %v, want [a c d]", got)
	}

	g.RemoveNode("missing")
	if g.NodeCount() != 3 {
		t.Errorf("RemoveNode(missing) changed NodeCount to %d", g.NodeCount())
	}
}

func TestDependencies(t *testing.T) {
	g := New[string]()
	g.InsertEdge("a", "b")

	if _, ok := g.Dependencies("missing"); ok {
		t.Error("Dependencies(missing) should report absence")
	}

	deps, ok := g.Dependencies("b")
	if !ok || len(deps) != 0 {
		t.Errorf("Dependencies(b) = %v, %v; want [], true", deps, ok)
	}

	deps, _ = g.Dependencies("a")
	deps[0] = "mutated"
	if again, _ := g.Dependencies("a"); again[0] != "b" {
		t.Error("Dependencies should return a copy")
	}
}

func TestDependants(t *testing.T) {
	g := New[string]()
	g.InsertEdge("a", "c")
	g.InsertEdge("b", "c")
	g.InsertEdge("c", "d")

	if got := g.Dependants("c"); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Dependants(c) = %v, want [a b]", got)
	}
	if got := g.Dependants("a"); got != nil {
		t.Errorf("Dependants(a) = %v, want nil", got)
	}
}

func TestEdgesOrder(t *testing.T) {
	g := New[string]()
	g.InsertNode("z")
	g.InsertEdge("a", "b")
	g.InsertEdge("z", "b")
	g.InsertEdge("a", "c")

	want := []Edge[string]{{"z", "b"}, {"a", "b"}, {"a", "c"}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

func TestCloneIndependence(t *testing.T) {
	g := New[string]()
	g.InsertEdge("a", "b")

	c := g.Clone()
	c.InsertEdge("b", "c")
	c.RemoveEdge("a", "b")

	if !g.HasEdge("a", "b") || g.HasNode("c") {
		t.Error("mutating the clone changed the original")
	}

	g.InsertEdge("a", "x")
	if c.HasNode("x") {
		t.Error("mutating the original changed the clone")
	}

	if got := c.Nodes(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("clone Nodes() = %v, want [a b c]", got)
	}
}

func TestReachable(t *testing.T) {
	g := New[string]()
	g.InsertEdge("a", "b")
	g.InsertEdge("b", "c")
	g.InsertNode("d")

	tests := []struct {
		from, to string
		want     bool
	}{
		{"a", "c", true},
		{"c", "a", false},
		{"a", "a", true},
		{"d", "a", false},
		{"missing", "a", false},
	}
	for _, tt := range tests {
		if got := g.Reachable(tt.from, tt.to); got != tt.want {
			t.Errorf("Reachable(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	g := New[string]()
	g.InsertEdge("a", "b")
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	// Corrupt the adjacency directly; the public API cannot do this.
	g.nodes["b"].deps = append(g.nodes["b"].deps, "a")
	if err := g.Validate(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("Validate() = %v, want ErrGraphHasCycle", err)
	}

	g.nodes["b"].deps = []string{"ghost"}
	if err := g.Validate(); !errors.Is(err, ErrInvalidEdgeEndpoint) {
		t.Errorf("Validate() = %v, want ErrInvalidEdgeEndpoint", err)
	}
}
