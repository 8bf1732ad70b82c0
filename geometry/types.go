// Package geometry defines the triangular-lattice coordinate system that
// every disk in a weak unit-disk contact representation is placed on:
// absolute and relative step directions, their composition, and the
// Cartesian projection used only for rendering.
package geometry

// Coord is a location on the infinite triangular lattice. Sly is a skewed
// y-axis: the six lattice neighbours of (x, sly) are
// (x-1,sly), (x-1,sly+1), (x,sly+1), (x,sly-1), (x+1,sly-1), (x+1,sly).
type Coord struct {
	X   int
	Sly int
}

// Cartesian projects c onto the Euclidean plane for rendering:
// (x + 0.5*sly, (sqrt(3)/2)*sly).
func (c Coord) Cartesian() (x, y float64) {
	const sqrt3over2 = 0.86602540378443864676372317075294
	return float64(c.X) + 0.5*float64(c.Sly), sqrt3over2 * float64(c.Sly)
}

// Add returns c stepped one cell in absolute direction dir.
func (c Coord) Add(dir Dir) Coord {
	switch dir {
	case Left:
		return Coord{c.X - 1, c.Sly}
	case LeftUp:
		return Coord{c.X - 1, c.Sly + 1}
	case LeftDown:
		return Coord{c.X, c.Sly - 1}
	case RightUp:
		return Coord{c.X, c.Sly + 1}
	case RightDown:
		return Coord{c.X + 1, c.Sly - 1}
	case Right:
		return Coord{c.X + 1, c.Sly}
	default:
		return c
	}
}

// Sub returns the relative offset from o to c, i.e. c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{c.X - o.X, c.Sly - o.Sly}
}

// Dir is an absolute step direction on the triangular grid, ordered
// cyclically so that Dir+1 (mod 6) is a 60-degree turn.
type Dir int

// The six absolute directions, in cyclic order.
const (
	LeftDown Dir = iota
	Left
	LeftUp
	RightUp
	Right
	RightDown
)

// dirNames is used only by String, for debug output and test failure messages.
var dirNames = [6]string{"LeftDown", "Left", "LeftUp", "RightUp", "Right", "RightDown"}

func (d Dir) String() string {
	if d < 0 || int(d) >= len(dirNames) {
		return "Dir(?)"
	}
	return dirNames[d]
}

// Rel is a direction relative to the current absolute orientation (the
// spine's direction of travel). Naming follows the spine's forward
// orientation: Up is counter-clockwise, Down is clockwise.
type Rel int

// The seven relative directions: six turns plus Here (no movement).
const (
	Forward Rel = iota
	FwdDown
	BackDown
	Back
	BackUp
	FwdUp
	Here
)

// Plus composes an absolute direction with a relative turn: the result is
// the absolute direction rel represents when facing dir. Panics if rel is
// Here — use Step with Rel=Here for the identity instead.
func (d Dir) Plus(rel Rel) Dir {
	if rel == Here {
		panic("geometry: Dir.Plus(Here) is undefined; use Step instead")
	}
	return Dir((int(d) + int(rel)) % 6)
}

// Step moves from along dir+rel, or returns from unchanged if rel is Here.
func Step(from Coord, dir Dir, rel Rel) Coord {
	if rel == Here {
		return from
	}
	return from.Add(dir.Plus(rel))
}

// Neighbors returns the six lattice neighbours of c in absolute direction
// order (LeftDown, Left, LeftUp, RightUp, Right, RightDown).
func Neighbors(c Coord) [6]Coord {
	return [6]Coord{
		c.Add(LeftDown),
		c.Add(Left),
		c.Add(LeftUp),
		c.Add(RightUp),
		c.Add(Right),
		c.Add(RightDown),
	}
}
