package task

import (
	"errors"
	"fmt"

	"github.com/matzehuels/taskchain/pkg/dag"
	"github.com/matzehuels/taskchain/pkg/observability"
)

// ErrUnknownTask is returned by [Board.Connect] when either endpoint has no
// record on the board.
var ErrUnknownTask = errors.New("unknown task")

// Board owns the task records and the dependency graph over their IDs.
//
// The graph only ever sees IDs, so editing a task never disturbs graph
// lookups. A Board is not safe for concurrent use.
type Board struct {
	graph   *dag.Graph[ID]
	tasks   map[ID]*Task
	created int
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{
		graph: dag.New[ID](),
		tasks: make(map[ID]*Task),
	}
}

// NewTask creates a task at pos, registers it as a graph node and names it
// "New Task N" where N counts the tasks created on this board so far.
func (b *Board) NewTask(pos Position) *Task {
	t := New(pos)
	t.SetName(fmt.Sprintf("%s %d", DefaultName, b.created))
	b.created++
	b.Add(t)
	return t
}

// Add registers an existing task. Adding a task whose ID is already on the
// board replaces the record and keeps its edges.
func (b *Board) Add(t *Task) {
	if _, ok := b.tasks[t.id]; !ok {
		observability.Graph().OnTaskAdded(t.id.String())
	}
	b.tasks[t.id] = t
	b.graph.InsertNode(t.id)
}

// Task returns the record for id, or nil.
func (b *Board) Task(id ID) *Task { return b.tasks[id] }

// Tasks returns every record in graph insertion order.
func (b *Board) Tasks() []*Task {
	return b.lookup(b.graph.Nodes())
}

// Len returns the number of tasks on the board.
func (b *Board) Len() int { return len(b.tasks) }

// Remove deletes the task and every edge touching it. Unknown IDs are ignored.
func (b *Board) Remove(id ID) {
	if _, ok := b.tasks[id]; !ok {
		return
	}
	delete(b.tasks, id)
	b.graph.RemoveNode(id)
	observability.Graph().OnTaskRemoved(id.String())
}

// Connect records that from depends on to.
//
// It fails with ErrUnknownTask when either task is not on the board, and
// otherwise returns the graph's verdict: dag.ErrCycle or
// dag.ErrDuplicateEdge leave the board unchanged.
func (b *Board) Connect(from, to ID) (dag.Edge[ID], error) {
	for _, id := range [...]ID{from, to} {
		if _, ok := b.tasks[id]; !ok {
			err := fmt.Errorf("%w: %s", ErrUnknownTask, id)
			observability.Graph().OnEdgeRejected(from.String(), to.String(), err)
			return dag.Edge[ID]{}, err
		}
	}
	e, err := b.graph.InsertEdge(from, to)
	if err != nil {
		observability.Graph().OnEdgeRejected(from.String(), to.String(), err)
		return e, err
	}
	observability.Graph().OnEdgeInserted(from.String(), to.String())
	return e, nil
}

// Disconnect removes the dependency from → to if present.
func (b *Board) Disconnect(from, to ID) {
	b.graph.RemoveEdge(from, to)
}

// Dependencies returns the tasks id depends on, in edge insertion order.
func (b *Board) Dependencies(id ID) []*Task {
	deps, _ := b.graph.Dependencies(id)
	return b.lookup(deps)
}

// Dependants returns the tasks that depend on id, in graph order.
func (b *Board) Dependants(id ID) []*Task {
	return b.lookup(b.graph.Dependants(id))
}

// Graph exposes the dependency graph. Callers must treat it as read-only;
// mutate through the board so records and nodes stay in step.
func (b *Board) Graph() *dag.Graph[ID] { return b.graph }

func (b *Board) lookup(ids []ID) []*Task {
	if len(ids) == 0 {
		return nil
	}
	out := make([]*Task, 0, len(ids))
	for _, id := range ids {
		if t, ok := b.tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out
}
