// Package grid holds the sparse triangular-lattice placement a dynamic
// programming solution produces: a mapping from absolute grid coordinates
// to the disk placed there, built incrementally as the embedder walks
// parent problems back to the root.
package grid

import (
	"github.com/animiral/wudcrgen/geometry"
	"github.com/animiral/wudcrgen/lobster"
)

// Grid is a sparse map of occupied lattice cells to the disk sitting there.
type Grid struct {
	cells map[geometry.Coord]lobster.DiskID
}

// New returns an empty Grid sized to hold roughly n placements.
func New(n int) *Grid {
	return &Grid{cells: make(map[geometry.Coord]lobster.DiskID, n)}
}

// Put records that disk is placed at c. Overwrites any previous occupant.
func (g *Grid) Put(c geometry.Coord, disk lobster.DiskID) {
	g.cells[c] = disk
}

// At returns the disk placed at c, or NoDisk if c is empty.
func (g *Grid) At(c geometry.Coord) lobster.DiskID {
	if id, ok := g.cells[c]; ok {
		return id
	}
	return lobster.NoDisk
}

// Occupied reports whether any disk has been placed at c.
func (g *Grid) Occupied(c geometry.Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Apply writes every recorded placement's coordinates into the matching
// disk of g, converting grid coordinates to canvas coordinates and marking
// each disk embedded.
func (g *Grid) Apply(graph *lobster.DiskGraph) {
	for c, id := range g.cells {
		disk := graph.FindDisk(id)
		if disk == nil {
			continue
		}
		disk.GridX = c.X
		disk.GridSly = c.Sly
		x, y := c.Cartesian()
		disk.X, disk.Y = x, y
		disk.Embedded = true
	}
}
