package schedule

import (
	"cmp"
	"slices"

	"github.com/matzehuels/taskchain/pkg/dag"
)

// Assignment is the scheduling result for one node.
type Assignment[K comparable] struct {
	Node K

	// Rank is the position in which the node was resolved, 0-based and
	// unique across one pass.
	Rank int

	// Priority is -1 for nodes with no dependencies, otherwise the highest
	// rank among the node's direct dependencies.
	Priority int

	// Tier is the 0-based peeling round the node was resolved in. Tier 0
	// holds every node without dependencies.
	Tier int

	// Dependants is the number of unresolved nodes that depended on this
	// node at the moment its tier was peeled.
	Dependants int
}

// Rank runs a tiered topological sort over g and returns one assignment per
// node, in rank order.
//
// Each round collects the nodes whose dependencies are all resolved (in node
// insertion order), orders them by how many unresolved nodes still depend on
// them (most first, ties keep insertion order), then hands out consecutive
// ranks. A node's priority is the largest rank among its dependencies in g,
// or -1 if it has none.
//
// Rank reads g through a snapshot and never modifies it.
func Rank[K comparable](g *dag.Graph[K]) []Assignment[K] {
	snap := g.Snapshot()
	out := make([]Assignment[K], 0, snap.Len())
	ranks := make(map[K]int, snap.Len())

	for tier := 0; snap.Remaining() > 0; tier++ {
		sinks := snap.Sinks()
		if len(sinks) == 0 {
			// Unreachable for graphs built through InsertEdge.
			break
		}

		counts := make(map[int]int, len(sinks))
		for _, i := range sinks {
			counts[i] = snap.DependantCount(i)
		}
		slices.SortStableFunc(sinks, func(a, b int) int {
			return cmp.Compare(counts[b], counts[a])
		})

		for _, i := range sinks {
			node := snap.Node(i)
			rank := len(out)
			ranks[node] = rank
			out = append(out, Assignment[K]{
				Node:       node,
				Rank:       rank,
				Priority:   priority(g, node, ranks),
				Tier:       tier,
				Dependants: counts[i],
			})
			snap.Remove(i)
		}
	}
	return out
}

func priority[K comparable](g *dag.Graph[K], node K, ranks map[K]int) int {
	deps, _ := g.Dependencies(node)
	p := -1
	for _, d := range deps {
		if r, ok := ranks[d]; ok && r > p {
			p = r
		}
	}
	return p
}

// Tiers groups assignments by tier, preserving their order within each tier.
func Tiers[K comparable](as []Assignment[K]) [][]K {
	var tiers [][]K
	for _, a := range as {
		for len(tiers) <= a.Tier {
			tiers = append(tiers, nil)
		}
		tiers[a.Tier] = append(tiers[a.Tier], a.Node)
	}
	return tiers
}
