package task

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/taskchain/pkg/dag"
	"github.com/matzehuels/taskchain/pkg/observability"
)

type recordingHooks struct {
	added, removed     int
	inserted, rejected int
	lastErr            error
}

func (h *recordingHooks) OnTaskAdded(string)            { h.added++ }
func (h *recordingHooks) OnTaskRemoved(string)          { h.removed++ }
func (h *recordingHooks) OnEdgeInserted(string, string) { h.inserted++ }
func (h *recordingHooks) OnEdgeRejected(_, _ string, err error) {
	h.rejected++
	h.lastErr = err
}

func names(ts []*Task) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Name()
	}
	return out
}

func TestBoardNewTaskNaming(t *testing.T) {
	b := NewBoard()
	b.NewTask(Position{})
	b.NewTask(Position{})
	third := b.NewTask(Position{X: 5})

	if got := names(b.Tasks()); !slices.Equal(got, []string{"New Task 0", "New Task 1", "New Task 2"}) {
		t.Errorf("Tasks() = %v", got)
	}
	if b.Len() != 3 || b.Graph().NodeCount() != 3 {
		t.Errorf("Len() = %d, NodeCount() = %d; want 3, 3", b.Len(), b.Graph().NodeCount())
	}
	if b.Task(third.ID()) != third {
		t.Error("Task(id) should return the stored record")
	}
	if b.Task(NewID()) != nil {
		t.Error("Task(unknown) should be nil")
	}

	// Counter keeps counting after removals.
	b.Remove(third.ID())
	if got := b.NewTask(Position{}).Name(); got != "New Task 3" {
		t.Errorf("name after removal = %q, want New Task 3", got)
	}
}

func TestBoardConnect(t *testing.T) {
	b := NewBoard()
	a := b.NewTask(Position{})
	c := b.NewTask(Position{})

	e, err := b.Connect(a.ID(), c.ID())
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if e.From != a.ID() || e.To != c.ID() {
		t.Errorf("Connect() edge = %v", e)
	}

	tests := []struct {
		name     string
		from, to ID
		wantErr  error
	}{
		{"cycle", c.ID(), a.ID(), dag.ErrCycle},
		{"self", a.ID(), a.ID(), dag.ErrCycle},
		{"duplicate", a.ID(), c.ID(), dag.ErrDuplicateEdge},
		{"unknown source", NewID(), c.ID(), ErrUnknownTask},
		{"unknown target", a.ID(), NewID(), ErrUnknownTask},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Connect(tt.from, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Connect() error = %v, want %v", err, tt.wantErr)
			}
			if b.Graph().EdgeCount() != 1 || b.Graph().NodeCount() != 2 {
				t.Errorf("rejected Connect changed the graph: %d edges, %d nodes",
					b.Graph().EdgeCount(), b.Graph().NodeCount())
			}
		})
	}
}

func TestBoardNeighbours(t *testing.T) {
	b := NewBoard()
	a := b.NewTask(Position{})
	x := b.NewTask(Position{})
	c := b.NewTask(Position{})
	d := b.NewTask(Position{})
	b.Connect(a.ID(), c.ID())
	b.Connect(x.ID(), c.ID())
	b.Connect(c.ID(), d.ID())

	if got := b.Dependants(c.ID()); !slices.Equal(got, []*Task{a, x}) {
		t.Errorf("Dependants(c) = %v", names(got))
	}
	if got := b.Dependencies(c.ID()); !slices.Equal(got, []*Task{d}) {
		t.Errorf("Dependencies(c) = %v", names(got))
	}
	if got := b.Dependencies(d.ID()); got != nil {
		t.Errorf("Dependencies(d) = %v, want nil", names(got))
	}

	b.Disconnect(a.ID(), c.ID())
	if got := b.Dependants(c.ID()); !slices.Equal(got, []*Task{x}) {
		t.Errorf("Dependants(c) after Disconnect = %v", names(got))
	}
}

func TestBoardRemove(t *testing.T) {
	b := NewBoard()
	a := b.NewTask(Position{})
	c := b.NewTask(Position{})
	b.Connect(a.ID(), c.ID())

	b.Remove(c.ID())
	if b.Task(c.ID()) != nil || b.Graph().HasNode(c.ID()) {
		t.Error("Remove should drop both record and node")
	}
	if b.Graph().EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d after Remove, want 0", b.Graph().EdgeCount())
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}

	b.Remove(NewID())
	if b.Len() != 1 {
		t.Error("Remove(unknown) should be a no-op")
	}
}

func TestBoardEditingKeepsGraph(t *testing.T) {
	b := NewBoard()
	a := b.NewTask(Position{})
	c := b.NewTask(Position{})
	b.Connect(a.ID(), c.ID())

	a.SetName("renamed")
	a.SetPosition(Position{X: 40, Y: 40})
	a.Transition(Complete)
	a.Assign(7, 3)

	if !b.Graph().HasEdge(a.ID(), c.ID()) {
		t.Error("editing a record lost its edge")
	}
	if got := b.Dependencies(a.ID()); !slices.Equal(got, []*Task{c}) {
		t.Errorf("Dependencies(a) = %v", names(got))
	}
}

func TestBoardHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetGraphHooks(h)
	defer observability.Reset()

	b := NewBoard()
	a := b.NewTask(Position{})
	c := b.NewTask(Position{})
	b.Connect(a.ID(), c.ID())
	b.Connect(c.ID(), a.ID())
	b.Remove(a.ID())

	if h.added != 2 || h.removed != 1 || h.inserted != 1 || h.rejected != 1 {
		t.Errorf("hooks = %+v", *h)
	}
	if !errors.Is(h.lastErr, dag.ErrCycle) {
		t.Errorf("rejection error = %v, want ErrCycle", h.lastErr)
	}
}
