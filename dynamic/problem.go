// Package dynamic implements the dynamic-programming embedder: it expands
// a tree of partial solutions (DynamicProblems), one disk placement at a
// time, pruning branches whose signature is already dominated by a
// previously seen one, until it finds a placement for every disk or
// exhausts the search.
package dynamic

import (
	"github.com/animiral/wudcrgen/fundament"
	"github.com/animiral/wudcrgen/geometry"
	"github.com/animiral/wudcrgen/grid"
	"github.com/animiral/wudcrgen/lobster"
	"github.com/animiral/wudcrgen/signature"
)

// enumerationOrder lists the six step directions in the (non-cyclic) order
// candidate placements are tried in, matching the disambiguation order the
// original search explored them in. Spine placements use only the last
// three (the x-monotone forward directions).
var enumerationOrder = [6]geometry.Dir{
	geometry.Left, geometry.LeftUp, geometry.LeftDown,
	geometry.Right, geometry.RightUp, geometry.RightDown,
}

var spineDirs = enumerationOrder[3:]

// Problem is one partial solution: every disk up to depth has been placed
// somewhere, and fundament/spineHead/branchHead describe the surroundings
// of the next disk to place. Problems form a tree through parent, so a
// completed Problem's placements can be walked back to reconstruct the
// whole embedding.
type Problem struct {
	disks     []lobster.Disk // shared, ordered depth-first; never mutated after root construction
	fundament fundament.Fundament
	spineHead geometry.Coord
	branchHead geometry.Coord
	position  int // index into disks of the next disk to place
	depth     int

	parent    *Problem
	placement geometry.Coord
	placed    lobster.DiskID // disk placed transitioning from parent into this problem
}

// NewRoot builds the root problem for graph: no disks placed yet, and the
// spine head parked one step behind the origin so that placing the first
// disk Right lands it at (0,0).
func NewRoot(graph *lobster.DiskGraph) *Problem {
	disks := append([]lobster.Disk(nil), graph.Disks()...)
	ordered := lobster.NewDiskGraph(disks, graph.Tip())
	ordered.Reorder(lobster.DepthFirst)

	return &Problem{
		disks:     ordered.Disks(),
		spineHead: geometry.Coord{X: -1, Sly: 0},
		position:  0,
		depth:     0,
		placed:    lobster.NoDisk,
	}
}

// Depth returns the number of disks placed so far.
func (p *Problem) Depth() int { return p.depth }

// Done reports whether every disk has been placed.
func (p *Problem) Done() bool { return p.depth == len(p.disks) }

// Fundament returns the current local occupancy around the spine head.
func (p *Problem) Fundament() fundament.Fundament { return p.fundament }

// child builds the successor of p obtained by placing the next disk in
// direction dir, mirroring the original's initPlacement switch on the
// placed disk's tree role.
func (p *Problem) child(dir geometry.Dir) *Problem {
	c := &Problem{
		disks:      p.disks,
		fundament:  p.fundament,
		spineHead:  p.spineHead,
		branchHead: p.branchHead,
		position:   p.position + 1,
		depth:      p.depth + 1,
		parent:     p,
		placed:     p.disks[p.position].ID,
	}

	switch p.disks[p.position].Depth {
	case lobster.Spine:
		c.placement = c.spineHead.Add(dir)
		c.fundament = c.fundament.Shift(dir)
		c.fundament = c.fundament.Block(geometry.Coord{})
		c.spineHead = c.placement
	case lobster.Branch:
		c.placement = c.spineHead.Add(dir)
		c.fundament = c.fundament.Block(c.placement.Sub(c.spineHead))
		c.branchHead = c.placement
	case lobster.Leaf:
		c.placement = c.branchHead.Add(dir)
		c.fundament = c.fundament.Block(c.placement.Sub(c.spineHead))
	}

	return c
}

// Subproblems returns every successor Problem reachable by placing the
// next disk at one of its still-free candidate spaces.
func (p *Problem) Subproblems() []*Problem {
	if p.Done() {
		return nil
	}

	if p.depth == 0 {
		// The board is empty: every direction is symmetric, so fix one
		// arbitrarily instead of searching three equivalent root children.
		return []*Problem{p.child(geometry.Right)}
	}

	diskDepth := p.disks[p.position].Depth

	var head geometry.Coord
	if diskDepth == lobster.Leaf {
		head = p.branchHead
	} else {
		head = p.spineHead
	}

	dirs := enumerationOrder[:]
	if diskDepth == lobster.Spine {
		dirs = spineDirs
	}

	subs := make([]*Problem, 0, len(dirs))
	for _, dir := range dirs {
		candidate := head.Add(dir)
		rel := candidate.Sub(p.spineHead)
		if p.fundament.Blocked(rel) {
			continue
		}
		subs = append(subs, p.child(dir))
	}

	return subs
}

// Signature computes the equivalence-class identity of p: how many disks
// are placed, the part of the surroundings still relevant to finishing the
// embedding, and the upcoming attachment point, canonicalised against
// mirroring.
func (p *Problem) Signature() signature.Signature {
	head := geometry.Coord{}
	if p.position < len(p.disks) && p.disks[p.position].Depth == lobster.Leaf {
		head = p.branchHead.Sub(p.spineHead)
	}

	f := reachableEventually(p.fundament, head, p.disks, p.position)

	return signature.Signature{Depth: p.depth, Fundament: f, Head: head}.Canonical()
}

// Solution reconstructs a Grid from p and its ancestors: spineHead,
// branchHead and placement are tracked in absolute lattice coordinates
// throughout (only the fundament bitmask is spine-head-relative), so
// Solution just walks the parent chain and copies each placement out.
func (p *Problem) Solution() *grid.Grid {
	g := grid.New(p.depth)
	for prob := p; prob.parent != nil; prob = prob.parent {
		g.Put(prob.placement, prob.placed)
	}
	return g
}
