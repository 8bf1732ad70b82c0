// Package heuristic collects illustrative, non-default embedding
// strategies the dynamic programming search can be benchmarked against.
package heuristic

import "github.com/animiral/wudcrgen/lobster"

// Embedder places every disk of g, marking failures where it cannot.
type Embedder interface {
	Embed(g *lobster.DiskGraph) bool
}
