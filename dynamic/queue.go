package dynamic

import (
	"container/heap"

	"github.com/google/btree"

	"github.com/animiral/wudcrgen/fundament"
	"github.com/animiral/wudcrgen/signature"
)

// ProblemQueue drives the ordered expansion of Problems. open holds the
// problems still to expand, served deepest-first (best-first toward a full
// solution); closed remembers the signature of every problem ever admitted,
// so that a newly generated problem whose signature is already dominated by
// a known one can be discarded instead of explored again.
type ProblemQueue struct {
	open   problemHeap
	closed *btree.BTreeG[closedEntry]
}

// NewProblemQueue returns an empty ProblemQueue.
func NewProblemQueue() *ProblemQueue {
	return &ProblemQueue{
		closed: btree.NewG(32, closedEntryLess),
	}
}

// Empty reports whether there are no more problems to expand.
func (q *ProblemQueue) Empty() bool { return len(q.open) == 0 }

// Top returns the next problem to expand without removing it.
func (q *ProblemQueue) Top() *Problem { return q.open[0].problem }

// Pop removes the next problem to expand.
func (q *ProblemQueue) Pop() { heap.Pop(&q.open) }

// Push admits problem into the queue, unless a previously admitted problem
// dominates its signature — meaning anything reachable from problem is
// already reachable from that known-better state, so exploring problem
// itself would be redundant.
func (q *ProblemQueue) Push(problem *Problem) {
	sig := problem.Signature()

	lower := closedEntry{sig: signature.Signature{Depth: sig.Depth, Head: sig.Head}}
	upper := closedEntry{sig: signature.Signature{Depth: sig.Depth, Head: sig.Head, Fundament: fundament.All()}}

	dominated := false
	q.closed.AscendRange(lower, upper, func(entry closedEntry) bool {
		if entry.sig.Dominates(sig) {
			dominated = true
			return false
		}
		return true
	})
	if dominated {
		return
	}

	heap.Push(&q.open, &heapItem{problem: problem})
	q.closed.ReplaceOrInsert(closedEntry{sig: sig})
}

// closedEntry wraps a Signature for ordering within the closed set.
type closedEntry struct {
	sig signature.Signature
}

// closedEntryLess orders entries by (depth, head.x, head.sly, popcount,
// mask), grouping same-shape signatures together so a dominance query only
// has to scan a short, contiguous range.
func closedEntryLess(a, b closedEntry) bool {
	if a.sig.Depth != b.sig.Depth {
		return a.sig.Depth < b.sig.Depth
	}
	if a.sig.Head.X != b.sig.Head.X {
		return a.sig.Head.X < b.sig.Head.X
	}
	if a.sig.Head.Sly != b.sig.Head.Sly {
		return a.sig.Head.Sly < b.sig.Head.Sly
	}
	if pa, pb := a.sig.Fundament.PopCount(), b.sig.Fundament.PopCount(); pa != pb {
		return pa < pb
	}
	return a.sig.Fundament < b.sig.Fundament
}

// heapItem adapts *Problem to container/heap, ordered by descending depth
// (deeper partial solutions expand first).
type heapItem struct {
	problem *Problem
}

type problemHeap []*heapItem

func (h problemHeap) Len() int            { return len(h) }
func (h problemHeap) Less(i, j int) bool  { return h[i].problem.depth > h[j].problem.depth }
func (h problemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *problemHeap) Push(x interface{}) { *h = append(*h, x.(*heapItem)) }
func (h *problemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
