package heuristic

import (
	"github.com/animiral/wudcrgen/geometry"
	"github.com/animiral/wudcrgen/grid"
	"github.com/animiral/wudcrgen/lobster"
)

// tryOrder is the direction preference a Greedy placement tries, starting
// forward along the spine and fanning out from there.
var tryOrder = [6]geometry.Dir{
	geometry.Right, geometry.RightUp, geometry.RightDown,
	geometry.LeftUp, geometry.LeftDown, geometry.Left,
}

// Greedy places each disk at the first free neighbour of its parent,
// trying tryOrder in sequence. It never backtracks, so it is intentionally
// not the default: it exists to give the dynamic programming search
// something weaker to compare against in benchmarks, the way the original
// project measured its constructive heuristics against the exact search.
type Greedy struct{}

// Embed places every disk of g, depth-first, parent before child.
func (Greedy) Embed(g *lobster.DiskGraph) bool {
	g.Reorder(lobster.DepthFirst)

	occupied := grid.New(g.Size())
	success := true

	disks := g.Disks()
	for i := range disks {
		d := &disks[i]

		var at geometry.Coord
		if d.Parent == lobster.NoDisk {
			at = geometry.Coord{}
		} else {
			parent := g.FindDisk(d.Parent)
			parentCoord := geometry.Coord{X: parent.GridX, Sly: parent.GridSly}

			placed := false
			for _, dir := range tryOrder {
				c := parentCoord.Add(dir)
				if !occupied.Occupied(c) {
					at = c
					placed = true
					break
				}
			}
			if !placed {
				d.Failure = true
				success = false
				continue
			}
		}

		occupied.Put(at, d.ID)
		d.GridX, d.GridSly = at.X, at.Sly
		x, y := at.Cartesian()
		d.X, d.Y = x, y
		d.Embedded = true
	}

	return success
}
