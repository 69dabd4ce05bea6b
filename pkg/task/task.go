package task

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	apperr "github.com/matzehuels/taskchain/pkg/errors"
)

// DefaultName is the name given to tasks created with [New].
const DefaultName = "New Task"

// ID is the immutable identity of a task. It is the key under which a task is
// stored in a [Board] and its dependency graph.
type ID uuid.UUID

// NewID returns a fresh random ID.
func NewID() ID { return ID(uuid.New()) }

// ParseID parses the canonical UUID form of an ID.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "invalid task id %q", s)
	}
	return ID(u), nil
}

func (id ID) String() string { return uuid.UUID(id).String() }

// Position is the 2D anchor of a task on an editing canvas. The scheduler
// never reads it.
type Position struct {
	X, Y float64
}

// Flags is a compact set of state bits. Several bits may be set at once;
// [Task.State] derives a single label from them.
type Flags uint8

const (
	FlagReady Flags = 1 << iota
	FlagAssigned
	FlagComplete
)

// Has reports whether every bit in f2 is set in f.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// State is the derived, read-only status of a task.
type State int

const (
	NotReady State = iota
	Ready
	Assigned
	Complete
)

var stateNames = [...]string{
	NotReady: "Not Ready",
	Ready:    "Ready",
	Assigned: "Assigned",
	Complete: "Complete",
}

func (s State) String() string {
	if s < NotReady || s > Complete {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}

// ParseState parses a state label case-insensitively. Besides the labels
// returned by [State.String] it accepts "not_ready", "notready" and the
// empty string for NotReady.
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "not ready", "not_ready", "notready":
		return NotReady, nil
	case "ready":
		return Ready, nil
	case "assigned":
		return Assigned, nil
	case "complete":
		return Complete, nil
	}
	return NotReady, apperr.New(apperr.ErrCodeInvalidState, "unknown task state %q", s)
}

// Task is the mutable record behind a task ID.
//
// Name, position and flags belong to the editing layer. Rank and priority
// are written only by the scheduler and are overwritten on every pass.
type Task struct {
	id       ID
	name     string
	pos      Position
	flags    Flags
	rank     int
	priority int
}

// New creates a task at pos with a fresh ID and [DefaultName].
func New(pos Position) *Task {
	return &Task{id: NewID(), name: DefaultName, pos: pos}
}

func (t *Task) ID() ID                 { return t.id }
func (t *Task) Name() string           { return t.name }
func (t *Task) SetName(name string)    { t.name = name }
func (t *Task) Position() Position     { return t.pos }
func (t *Task) SetPosition(p Position) { t.pos = p }
func (t *Task) Flags() Flags           { return t.flags }
func (t *Task) Rank() int              { return t.rank }
func (t *Task) Priority() int          { return t.priority }
func (t *Task) IsReady() bool          { return t.flags.Has(FlagReady) }
func (t *Task) IsAssigned() bool       { return t.flags.Has(FlagAssigned) }
func (t *Task) IsComplete() bool       { return t.flags.Has(FlagComplete) }
func (t *Task) SetReady()              { t.flags |= FlagReady }
func (t *Task) SetAssigned()           { t.flags |= FlagAssigned }
func (t *Task) SetComplete()           { t.flags |= FlagComplete }
func (t *Task) ClearReady()            { t.flags &^= FlagReady }
func (t *Task) ClearAssigned()         { t.flags &^= FlagAssigned }
func (t *Task) ClearComplete()         { t.flags &^= FlagComplete }
func (t *Task) ClearFlags()            { t.flags = 0 }
func (t *Task) Assign(rank, prio int)  { t.rank, t.priority = rank, prio }

// State derives a single label from the flags with precedence
// Complete > Assigned > Ready > NotReady.
func (t *Task) State() State {
	switch {
	case t.IsComplete():
		return Complete
	case t.IsAssigned():
		return Assigned
	case t.IsReady():
		return Ready
	}
	return NotReady
}

// AvailableStates lists the states an editor offers as the next step from
// the current one. A task that is not ready has no manual transitions; it
// becomes ready through scheduling or an explicit SetReady.
func (t *Task) AvailableStates() []State {
	switch t.State() {
	case Complete:
		return []State{Assigned, Ready}
	case Assigned:
		return []State{Complete, Ready}
	case Ready:
		return []State{Assigned}
	}
	return nil
}

// Transition clears every flag and sets the one matching s. NotReady leaves
// all flags clear. Any state is accepted; AvailableStates is advisory.
func (t *Task) Transition(s State) {
	t.ClearFlags()
	switch s {
	case Ready:
		t.SetReady()
	case Assigned:
		t.SetAssigned()
	case Complete:
		t.SetComplete()
	}
}

func (t *Task) String() string {
	return fmt.Sprintf("Task{name='%s', rank=%d, priority=%d, flags=%b}", t.name, t.rank, t.priority, t.flags)
}

// Compare orders tasks by priority ascending, then rank ascending.
func Compare(a, b *Task) int {
	if c := cmp.Compare(a.priority, b.priority); c != 0 {
		return c
	}
	return cmp.Compare(a.rank, b.rank)
}
