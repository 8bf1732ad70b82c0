// Package generator produces random lobster instances for property tests
// and benchmarks, in the shape classify.Classify expects to receive back:
// a spine of spineLen vertices, each carrying a random number of branch
// disks, each branch carrying a random number of leaf disks.
//
// It replaces the original project's exhaustive, lexicographically
// ordered enumerate.cpp/gencases.cpp with sampling: rather than walking
// every canonical lobster up to some size in order, it draws one
// uniformly-shaped instance per call, seeded through the caller's
// *rand.Rand for reproducibility.
package generator

import (
	"math/rand"

	"github.com/animiral/wudcrgen/classify"
)

// RandomLobster builds a random lobster edge list with spineLen spine
// vertices (spineLen <= 0 yields a single isolated vertex). Vertex IDs
// are assigned to the spine first, then, for each spine vertex in turn, to
// each of its branches directly followed by that branch's leaves, matching
// the original project's front-to-back vertex numbering.
func RandomLobster(rng *rand.Rand, spineLen int, opts ...Option) classify.EdgeList {
	cfg := defaultGenConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if spineLen < 1 {
		spineLen = 1
	}

	var edges classify.EdgeList

	spine := make([]int, spineLen)
	for i := range spine {
		spine[i] = i
		if i > 0 {
			edges = append(edges, classify.Edge{From: spine[i-1], To: spine[i]})
		}
	}
	next := spineLen

	for _, s := range spine {
		branches := 0
		if cfg.maxBranchesPerSpine > 0 {
			branches = rng.Intn(cfg.maxBranchesPerSpine + 1)
		}
		for b := 0; b < branches; b++ {
			branch := next
			next++
			edges = append(edges, classify.Edge{From: s, To: branch})

			leaves := 0
			if cfg.maxLeavesPerBranch > 0 {
				leaves = rng.Intn(cfg.maxLeavesPerBranch + 1)
			}
			for l := 0; l < leaves; l++ {
				leaf := next
				next++
				edges = append(edges, classify.Edge{From: branch, To: leaf})
			}
		}
	}

	return edges
}
