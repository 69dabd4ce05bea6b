// Package graph provides the JSON serialization format for scheduled task
// boards.
//
// # Format
//
// Boards use a node-link format. Nodes carry the scheduling result next to
// the editing fields; edges point from a task to a task it depends on:
//
//	{
//	  "title": "Release",
//	  "nodes": [
//	    {"id": "test", "label": "Run tests", "rank": 0, "priority": -1, "state": "Ready"},
//	    {"id": "build", "label": "Build", "rank": 1, "priority": 0, "state": "Not Ready"}
//	  ],
//	  "edges": [{"from": "build", "to": "test"}]
//	}
//
// Nodes are listed in execution order (priority, then rank). Node IDs are
// whatever the caller's key function returns, typically plan-file keys.
//
// # Usage
//
//	q := schedule.Sort(board)
//	g := graph.FromBoard(board, q.Values(), keyOf)
//	err := graph.Write(g, os.Stdout)
//
// [Read] decodes the same format, for tools that consume the output.
package graph
