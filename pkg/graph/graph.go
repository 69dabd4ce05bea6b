package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/matzehuels/taskchain/pkg/task"
)

// =============================================================================
// Types
// =============================================================================

// Graph is the serialization format for a scheduled board.
type Graph struct {
	Title string `json:"title,omitempty"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one task.
type Node struct {
	ID       string  `json:"id"`
	Label    string  `json:"label,omitempty"` // Display name (defaults to ID)
	Rank     int     `json:"rank"`
	Priority int     `json:"priority"`
	State    string  `json:"state"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a dependency: From depends on To.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// =============================================================================
// Board → Graph Conversion
// =============================================================================

// FromBoard converts the tasks of b to the serialization format.
//
// Nodes follow the order of tasks, which is usually the drained scheduling
// queue. Edges are emitted for every dependency between tasks in the list,
// grouped by the source's position. key maps a task ID to the node ID.
func FromBoard(b *task.Board, tasks []*task.Task, key func(task.ID) string) Graph {
	out := Graph{
		Nodes: make([]Node, 0, len(tasks)),
		Edges: []Edge{},
	}
	listed := make(map[task.ID]bool, len(tasks))
	for _, t := range tasks {
		listed[t.ID()] = true
	}

	for _, t := range tasks {
		id := key(t.ID())
		n := Node{
			ID:       id,
			Rank:     t.Rank(),
			Priority: t.Priority(),
			State:    t.State().String(),
			X:        t.Position().X,
			Y:        t.Position().Y,
		}
		if t.Name() != id {
			n.Label = t.Name()
		}
		out.Nodes = append(out.Nodes, n)

		for _, dep := range b.Dependencies(t.ID()) {
			if listed[dep.ID()] {
				out.Edges = append(out.Edges, Edge{From: id, To: key(dep.ID())})
			}
		}
	}
	return out
}

// =============================================================================
// Serialization API
// =============================================================================

// Write encodes g as indented JSON.
func Write(g Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a graph and checks that every edge references a listed node.
func Read(r io.Reader) (Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Graph{}, fmt.Errorf("decode: %w", err)
	}
	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return Graph{}, errors.New("node with empty id")
		}
		ids[n.ID] = true
	}
	for _, e := range g.Edges {
		if !ids[e.From] || !ids[e.To] {
			return Graph{}, fmt.Errorf("edge %s -> %s references unknown node", e.From, e.To)
		}
	}
	return g, nil
}
