package dynamic

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/animiral/wudcrgen/lobster"
)

// ErrEmbeddingTooDeep is the dynamic program's EmbedError: the input graph
// fed to it carries a disk more than two tree-levels below the spine,
// meaning it is not actually a lobster. This is fatal and aborts the
// search, unlike the ordinary "no embedding exists" outcome.
var ErrEmbeddingTooDeep = errors.New("dynamic: disk at depth > 2, input is not a lobster")

// EmbedDynamic runs the dynamic-programming search to completion. When
// constructive is true and a solution is found, it writes placements back
// into graph's disks; when false, it only determines whether an embedding
// exists and leaves graph's disks unplaced. The search is the same in both
// modes: every Problem keeps its parent either way, so deciding uses as much
// memory as constructing. Returns whether an embedding was found, and a non-nil
// error only when the input was not actually a lobster (ErrEmbeddingTooDeep).
func EmbedDynamic(graph *lobster.DiskGraph, constructive bool) (bool, error) {
	for _, d := range graph.Disks() {
		if d.Depth > lobster.Leaf {
			return false, ErrEmbeddingTooDeep
		}
	}

	queue := NewProblemQueue()
	queue.Push(NewRoot(graph))

	pushed, popped := 1, 0

	for !queue.Empty() {
		next := queue.Top()

		if next.Done() {
			if constructive {
				next.Solution().Apply(graph)
			}
			log.Debug().Int("pushed", pushed).Int("popped", popped).Msg("dynamic program found embedding")
			return true, nil
		}

		subproblems := next.Subproblems()
		queue.Pop()
		popped++

		for _, sub := range subproblems {
			queue.Push(sub)
			pushed++
		}
	}

	for i := range graph.Disks() {
		graph.Disks()[i].Failure = true
	}
	log.Debug().Int("pushed", pushed).Int("popped", popped).Msg("dynamic program exhausted search")

	return false, nil
}
