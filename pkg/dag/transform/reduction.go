package transform

import "github.com/matzehuels/taskchain/pkg/dag"

// RedundantEdges returns the edges (u, v) for which u reaches v through at
// least one intermediate node. For example, if edges A→B, B→C, and A→C all
// exist, then A→C is redundant because A reaches C via B.
//
// Edges are returned in [dag.Graph.Edges] order. The graph is not modified.
func RedundantEdges[K comparable](g *dag.Graph[K]) []dag.Edge[K] {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil
	}

	nodeIndex := make(map[K]int, len(nodes))
	for i, n := range nodes {
		nodeIndex[n] = i
	}
	adjacency := make([][]int, len(nodes))
	for i, n := range nodes {
		deps, _ := g.Dependencies(n)
		for _, d := range deps {
			adjacency[i] = append(adjacency[i], nodeIndex[d])
		}
	}

	reachability := computeReachability(adjacency)

	var redundant []dag.Edge[K]
	for _, e := range g.Edges() {
		src, dst := nodeIndex[e.From], nodeIndex[e.To]
		for _, intermediate := range adjacency[src] {
			if intermediate != dst && reachability[intermediate][dst] {
				redundant = append(redundant, e)
				break
			}
		}
	}
	return redundant
}

// TransitiveReduction removes every edge reported by [RedundantEdges] and
// returns how many were removed.
//
// Reachability between every pair of nodes is unchanged afterwards.
func TransitiveReduction[K comparable](g *dag.Graph[K]) int {
	redundant := RedundantEdges(g)
	for _, e := range redundant {
		g.RemoveEdge(e.From, e.To)
	}
	return len(redundant)
}

func computeReachability(adjacency [][]int) [][]bool {
	n := len(adjacency)
	reachable := make([][]bool, n)
	for i := range reachable {
		reachable[i] = make([]bool, n)
	}

	var dfs func(source, current int)
	dfs = func(source, current int) {
		if reachable[source][current] {
			return
		}
		reachable[source][current] = true
		for _, next := range adjacency[current] {
			dfs(source, next)
		}
	}

	for i := range reachable {
		dfs(i, i)
	}
	return reachable
}
