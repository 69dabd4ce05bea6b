// Package task defines the task record, its state flags and the Board that
// ties records to a dependency graph.
//
// # Identity
//
// Every task has an immutable [ID]. The dependency graph is keyed by ID, so
// renaming, moving or changing the state of a task never affects graph
// lookups. Mutable fields live on [Task], which a [Board] stores by ID.
//
// # State
//
// A task carries three independent flags: ready, assigned and complete. The
// derived [State] picks one label with precedence
// Complete > Assigned > Ready > NotReady. [Task.Transition] is how an
// editor switches a task to a chosen state.
//
// Rank and priority are written by the scheduler (package schedule) through
// [Task.Assign]; [Compare] orders tasks by priority, then rank.
//
// # Board
//
//	b := task.NewBoard()
//	build := b.NewTask(task.Position{})
//	test := b.NewTask(task.Position{X: 100})
//	if _, err := b.Connect(build.ID(), test.ID()); err != nil {
//	    // dag.ErrCycle, dag.ErrDuplicateEdge or task.ErrUnknownTask
//	}
//
// Edge insertions and rejections are reported to the hooks registered with
// package observability.
package task
