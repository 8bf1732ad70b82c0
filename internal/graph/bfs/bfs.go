// Package bfs provides breadth-first reachability over internal/graph,
// adapted from the teacher corpus's BFS package down to the single
// operation the classifier needs: is the whole vertex set reachable from
// one start vertex?
package bfs

import (
	"errors"

	"github.com/animiral/wudcrgen/internal/graph"
)

// ErrStartVertexNotFound is returned when start is absent from g.
var ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

// Reachable returns the set of vertex IDs reachable from start, inclusive.
// Complexity: O(V+E).
func Reachable(g *graph.Graph, start string) (map[string]struct{}, error) {
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	visited := map[string]struct{}{start: {}}
	queue := []string{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, nbr := range g.Neighbors(cur) {
			if _, seen := visited[nbr]; seen {
				continue
			}
			visited[nbr] = struct{}{}
			queue = append(queue, nbr)
		}
	}

	return visited, nil
}

// Connected reports whether every vertex of g is reachable from start.
func Connected(g *graph.Graph, start string) (bool, error) {
	visited, err := Reachable(g, start)
	if err != nil {
		return false, err
	}

	return len(visited) == g.VertexCount(), nil
}
