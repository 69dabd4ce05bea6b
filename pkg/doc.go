// Package pkg provides the core libraries for taskchain task scheduling.
//
// # Overview
//
// Taskchain keeps tasks in a dependency graph that can never contain a cycle
// and derives a deterministic execution order from it. The pkg directory is
// organized into these areas:
//
//  1. [dag], [dag/transform] - Generic acyclic graph and graph analysis
//  2. [queue] - Stable ordered insertion queue
//  3. [task], [schedule] - Task records, boards and the tiered scheduler
//  4. [plan], [graph] - TOML plan input and JSON output
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through taskchain:
//
//	plan.toml
//	    ↓
//	[plan] package (decode, validate, replay onto a board)
//	    ↓
//	[task] package (Board: records keyed by ID + dag.Graph[ID])
//	    ↓
//	[schedule] package (tiered Kahn ranking)
//	    ↓
//	[queue] of tasks by (priority, rank) → table or JSON
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/taskchain/pkg/schedule"
//	    "github.com/matzehuels/taskchain/pkg/task"
//	)
//
//	b := task.NewBoard()
//	build := b.NewTask(task.Position{})
//	test := b.NewTask(task.Position{})
//	b.Connect(build.ID(), test.ID()) // build depends on test
//
//	q := schedule.Sort(b)
//	for !q.IsEmpty() {
//	    t, _ := q.Poll()
//	    fmt.Println(t)
//	}
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/schedule/...  # Specific package
//	go test -run Example        # Examples only
//
// [dag]: https://pkg.go.dev/github.com/matzehuels/taskchain/pkg/dag
// [dag/transform]: https://pkg.go.dev/github.com/matzehuels/taskchain/pkg/dag/transform
// [queue]: https://pkg.go.dev/github.com/matzehuels/taskchain/pkg/queue
// [task]: https://pkg.go.dev/github.com/matzehuels/taskchain/pkg/task
// [schedule]: https://pkg.go.dev/github.com/matzehuels/taskchain/pkg/schedule
// [plan]: https://pkg.go.dev/github.com/matzehuels/taskchain/pkg/plan
// [graph]: https://pkg.go.dev/github.com/matzehuels/taskchain/pkg/graph
// [errors]: https://pkg.go.dev/github.com/matzehuels/taskchain/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/taskchain/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/taskchain/pkg/buildinfo
package pkg
