// Package fundament implements the 25-bit occupancy mask that the dynamic
// programming embedder uses to track which triangular-lattice cells near
// the current spine head are already taken. Every cell reachable from the
// spine head within two steps has a fixed bit position, so the whole
// surroundings fit in a single machine word and can be shifted, intersected
// and compared with plain bitwise operations.
package fundament

import (
	"github.com/animiral/wudcrgen/geometry"
	"github.com/animiral/wudcrgen/grid"
)

// Fundament is a bitmask over the 25 lattice cells (x, sly) with x in
// [-2,2] and sly+x in [-2,2], relative to some local origin (normally the
// spine head). Bit index(c) is set when cell c is blocked.
type Fundament uint32

// All returns a Fundament with every representable cell blocked, the
// "start from fully blocked" base for reachability computations.
func All() Fundament { return allBits }

// FromGrid builds a Fundament from the disks already placed in g: for each
// of the 25 cells local to spineHead, the bit is set iff that absolute
// cell is occupied. Used to reconstruct the occupancy around a spine head
// that was not itself built up incrementally through Shift/Block.
func FromGrid(g *grid.Grid, spineHead geometry.Coord) Fundament {
	var f Fundament
	for bit := 0; bit < 25; bit++ {
		local := At(bit)
		abs := geometry.Coord{X: spineHead.X + local.X, Sly: spineHead.Sly + local.Sly}
		if g.Occupied(abs) {
			f = f.set(bit)
		}
	}
	return f
}

// allBits has every representable cell set, used as the "start from fully
// blocked" base for reachability computations.
const allBits Fundament = 0x1FFFFFF // 25 ones

// rightColumnMask clears the x=2 column (bit 4 of every 5-bit row). After
// Shift(Right) or Shift(RightDown) those positions hold the bits of the x=-2
// column, which the shift drops off the window and wraps around from another
// row; the cells newly at x=2 are unknown and read as free.
const rightColumnMask Fundament = 0b01111_01111_01111_01111_01111

// near lists the six unit steps on the triangular lattice, in the same
// order the original classifier walks them, used by Reachable's BFS.
var near = [6]geometry.Coord{
	{X: -1, Sly: 0},
	{X: -1, Sly: 1},
	{X: 0, Sly: 1},
	{X: 1, Sly: 0},
	{X: 1, Sly: -1},
	{X: 0, Sly: -1},
}

// Index returns the bit position for local coordinate c, or -1 if c falls
// outside the 25-cell window the fundament represents.
func Index(c geometry.Coord) int {
	if c.X < -2 || c.X > 2 {
		return -1
	}
	s := c.Sly + c.X
	if s < -2 || s > 2 {
		return -1
	}
	return (s+2)*5 + (c.X + 2)
}

// At returns the local coordinate represented by bit, the inverse of Index.
// bit must be in [0, 25).
func At(bit int) geometry.Coord {
	x := bit%5 - 2
	sly := bit/5 - x - 2
	return geometry.Coord{X: x, Sly: sly}
}

// Blocked reports whether local coordinate c is occupied. Coordinates
// outside the 25-cell window are always reported blocked, since nothing is
// known about them.
func (f Fundament) Blocked(c geometry.Coord) bool {
	i := Index(c)
	if i < 0 {
		return true
	}
	return f&(1<<uint(i)) != 0
}

// Block marks local coordinate c as occupied. No-op if c is outside the window.
func (f Fundament) Block(c geometry.Coord) Fundament {
	i := Index(c)
	if i < 0 {
		return f
	}
	return f | (1 << uint(i))
}

// Unblock marks local coordinate c as free. No-op if c is outside the window.
func (f Fundament) Unblock(c geometry.Coord) Fundament {
	i := Index(c)
	if i < 0 {
		return f
	}
	return f.clear(i)
}

// Test reports whether bit is set, for callers that already work in bit
// indices (the reachability-normalisation pass walks all 25 directly).
func (f Fundament) Test(bit int) bool { return f.isSet(bit) }

// Shift re-centers the fundament one step in dir, the three directions the
// spine ever advances in (RightUp, Right, RightDown). Cells that shift out
// of the 25-cell window are dropped; newly-in-range cells read as free.
func (f Fundament) Shift(dir geometry.Dir) Fundament {
	switch dir {
	case geometry.RightUp:
		return f >> 5
	case geometry.Right:
		return (f >> 6) & rightColumnMask
	case geometry.RightDown:
		return (f >> 1) & rightColumnMask
	default:
		return f
	}
}

// Reachable returns a Fundament whose unblocked cells are exactly those
// reachable from local coordinate "from" within the given number of steps,
// moving only through cells unblocked in f. from itself always reads
// blocked in the result (it is occupied by the disk standing there).
func (f Fundament) Reachable(from geometry.Coord, steps int) Fundament {
	result := allBits
	if i := Index(from); i >= 0 {
		result = result.clear(i)
	}

	for step := 0; step < steps; step++ {
		mid := result
		for bit := 0; bit < 25; bit++ {
			if result.isSet(bit) {
				continue // still blocked in the current frontier
			}
			e := At(bit)
			for _, n := range near {
				nc := geometry.Coord{X: e.X + n.X, Sly: e.Sly + n.Sly}
				ni := Index(nc)
				if ni >= 0 && !f.Blocked(nc) {
					mid = mid.clear(ni)
				}
			}
		}
		result = mid
	}

	if i := Index(from); i >= 0 {
		result = result.set(i) // from is always blocked in the end result
	}
	return result
}

// ReachableBySpine returns the Fundament whose unblocked cells are exactly
// the spine-forward neighbours of "from" (RightUp, Right, RightDown) that
// are unblocked in f — the candidate next-spine locations.
func (f Fundament) ReachableBySpine(from geometry.Coord) Fundament {
	result := allBits
	tos := [3]geometry.Coord{
		{X: from.X, Sly: from.Sly + 1},
		{X: from.X + 1, Sly: from.Sly},
		{X: from.X + 1, Sly: from.Sly - 1},
	}
	for _, to := range tos {
		i := Index(to)
		if i >= 0 && !f.Blocked(to) {
			result = result.clear(i)
		}
	}
	return result
}

// PopCount returns the number of blocked cells.
func (f Fundament) PopCount() int {
	n := 0
	for b := uint32(f); b != 0; b &= b - 1 {
		n++
	}
	return n
}

func (f Fundament) set(bit int) Fundament   { return f | (1 << uint(bit)) }
func (f Fundament) clear(bit int) Fundament { return f &^ (1 << uint(bit)) }
func (f Fundament) isSet(bit int) bool      { return f&(1<<uint(bit)) != 0 }
