// Package dfs provides cycle detection over internal/graph, adapted from
// the teacher corpus's three-color DFS cycle detector down to a boolean
// check: the classifier only needs to know whether the input has a cycle
// at all, not to enumerate the cycles themselves.
package dfs

import "github.com/animiral/wudcrgen/internal/graph"

// HasCycle reports whether g contains any cycle, undirected sense
// (an edge back to any already-visited vertex other than the immediate
// parent). A nil or empty graph has no cycle.
// Complexity: O(V+E).
func HasCycle(g *graph.Graph) bool {
	if g == nil {
		return false
	}

	visited := make(map[string]bool, g.VertexCount())

	for _, start := range g.Vertices() {
		if visited[start] {
			continue
		}
		if hasCycleFrom(g, start, "", visited) {
			return true
		}
	}

	return false
}

func hasCycleFrom(g *graph.Graph, id, parent string, visited map[string]bool) bool {
	visited[id] = true

	for _, nbr := range g.Neighbors(id) {
		if nbr == parent {
			continue // skip the trivial back-edge to the immediate parent
		}
		if visited[nbr] {
			return true // back-edge to a non-parent ancestor: cycle
		}
		if hasCycleFrom(g, nbr, id, visited) {
			return true
		}
	}

	return false
}
