package task

import (
	"slices"
	"testing"

	apperr "github.com/matzehuels/taskchain/pkg/errors"
)

func TestNew(t *testing.T) {
	a := New(Position{X: 1, Y: 2})
	b := New(Position{})

	if a.Name() != DefaultName {
		t.Errorf("Name() = %q, want %q", a.Name(), DefaultName)
	}
	if a.Position() != (Position{X: 1, Y: 2}) {
		t.Errorf("Position() = %+v", a.Position())
	}
	if a.ID() == b.ID() {
		t.Error("New should assign distinct IDs")
	}
	if a.State() != NotReady || a.Flags() != 0 {
		t.Errorf("fresh task state = %v, flags = %b", a.State(), a.Flags())
	}
}

func TestParseID(t *testing.T) {
	id := NewID()
	got, err := ParseID(id.String())
	if err != nil || got != id {
		t.Fatalf("ParseID(%s) = %v, %v", id, got, err)
	}

	_, err = ParseID("not-a-uuid")
	if !apperr.Is(err, apperr.ErrCodeInvalidInput) {
		t.Errorf("ParseID(bad) error = %v, want INVALID_INPUT", err)
	}
}

func TestStatePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  State
	}{
		{"none", 0, NotReady},
		{"ready", FlagReady, Ready},
		{"assigned", FlagAssigned, Assigned},
		{"complete", FlagComplete, Complete},
		{"ready+assigned", FlagReady | FlagAssigned, Assigned},
		{"ready+complete", FlagReady | FlagComplete, Complete},
		{"all", FlagReady | FlagAssigned | FlagComplete, Complete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{flags: tt.flags}
			if got := task.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlagSetters(t *testing.T) {
	task := New(Position{})

	task.SetReady()
	task.SetComplete()
	if !task.IsReady() || !task.IsComplete() || task.IsAssigned() {
		t.Fatalf("flags = %b, want ready|complete", task.Flags())
	}

	task.ClearComplete()
	if task.State() != Ready {
		t.Errorf("State() = %v after ClearComplete, want Ready", task.State())
	}

	task.SetAssigned()
	task.ClearReady()
	if task.Flags() != FlagAssigned {
		t.Errorf("flags = %b, want %b", task.Flags(), FlagAssigned)
	}

	task.ClearAssigned()
	task.SetReady()
	task.ClearFlags()
	if task.Flags() != 0 {
		t.Errorf("ClearFlags left %b", task.Flags())
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{NotReady, "Not Ready"},
		{Ready, "Ready"},
		{Assigned, "Assigned"},
		{Complete, "Complete"},
		{State(9), "State(9)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		in      string
		want    State
		wantErr bool
	}{
		{"", NotReady, false},
		{"Not Ready", NotReady, false},
		{"not_ready", NotReady, false},
		{"NOTREADY", NotReady, false},
		{"ready", Ready, false},
		{" Assigned ", Assigned, false},
		{"complete", Complete, false},
		{"done", NotReady, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseState(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseState(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !apperr.Is(err, apperr.ErrCodeInvalidState) {
				t.Errorf("error code = %s, want INVALID_STATE", apperr.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseState(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAvailableStates(t *testing.T) {
	tests := []struct {
		from State
		want []State
	}{
		{NotReady, nil},
		{Ready, []State{Assigned}},
		{Assigned, []State{Complete, Ready}},
		{Complete, []State{Assigned, Ready}},
	}
	for _, tt := range tests {
		task := New(Position{})
		task.Transition(tt.from)
		if got := task.AvailableStates(); !slices.Equal(got, tt.want) {
			t.Errorf("AvailableStates() from %v = %v, want %v", tt.from, got, tt.want)
		}
	}
}

func TestTransition(t *testing.T) {
	task := New(Position{})
	task.SetReady()
	task.SetAssigned()

	task.Transition(Complete)
	if task.Flags() != FlagComplete {
		t.Errorf("flags = %b after Transition(Complete), want only complete", task.Flags())
	}

	task.Transition(NotReady)
	if task.Flags() != 0 {
		t.Errorf("flags = %b after Transition(NotReady), want 0", task.Flags())
	}
}

func TestTaskString(t *testing.T) {
	task := New(Position{})
	task.SetName("Build")
	task.Assign(3, 1)
	task.SetReady()
	task.SetComplete()

	want := "Task{name='Build', rank=3, priority=1, flags=101}"
	if got := task.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCompare(t *testing.T) {
	mk := func(rank, prio int) *Task {
		task := New(Position{})
		task.Assign(rank, prio)
		return task
	}

	tests := []struct {
		name string
		a, b *Task
		want int
	}{
		{"lower priority first", mk(5, -1), mk(0, 0), -1},
		{"higher priority last", mk(0, 2), mk(5, 1), 1},
		{"rank breaks ties", mk(1, 0), mk(2, 0), -1},
		{"equal", mk(2, 0), mk(2, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}
