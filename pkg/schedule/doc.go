// Package schedule orders the tasks of a board so that every task comes
// after the tasks it depends on.
//
// # Algorithm
//
// Scheduling is a tiered variant of Kahn's algorithm. Starting from a
// snapshot of the dependency graph, each round takes every task whose
// dependencies are all resolved. Within the round, tasks that more
// unresolved tasks are waiting on go first. Ranks are handed out from a
// single counter shared by all rounds, then the round is removed from the
// snapshot and the next one begins.
//
// A task's priority is the highest rank among its direct dependencies, or
// -1 when it has none. Because a dependency always receives a smaller rank
// than its dependants, ordering by (priority, rank) yields a valid
// execution order.
//
// # Usage
//
//	q := schedule.Sort(board)
//	for !q.IsEmpty() {
//	    t, _ := q.Poll()
//	    fmt.Println(t.Rank(), t.Priority(), t.Name())
//	}
//
// [Rank] exposes the same computation for any [dag.Graph] without touching
// task records, which is useful for reporting tiers.
//
// Results depend only on the graph's structure and insertion order, so
// sorting the same board twice yields identical ranks and priorities.
//
// [dag.Graph]: github.com/matzehuels/taskchain/pkg/dag.Graph
package schedule
