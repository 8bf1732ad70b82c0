// Package signature identifies the equivalence class of a partial dynamic
// programming solution: how far along the embedding is, what the relevant
// local surroundings look like, and where the next attachment point sits.
// Two DynamicProblems with the same signature are interchangeable for the
// purpose of finishing the embedding, so the search only needs to keep one.
package signature

import (
	"github.com/animiral/wudcrgen/fundament"
	"github.com/animiral/wudcrgen/geometry"
)

// Signature is the (depth, fundament, head) triple that determines whether
// two partial solutions are equivalent.
type Signature struct {
	Depth     int
	Fundament fundament.Fundament
	Head      geometry.Coord
}

// Canonical returns s with its fundament put into the lexically smaller of
// its two mirror-reflected forms (reflecting about the sly=0 axis, which
// maps (x, sly) to (x+sly, -sly)),
// and its head transformed to match. Since the two forms represent the
// same shape up to relabelling, picking a canonical one lets equal-shaped
// signatures compare equal regardless of which mirror image they started
// as.
func (s Signature) Canonical() Signature {
	mirrored := mirror(s.Fundament)

	if mirrored < s.Fundament {
		return Signature{
			Depth:     s.Depth,
			Fundament: mirrored,
			Head:      geometry.Coord{X: s.Head.X + s.Head.Sly, Sly: -s.Head.Sly},
		}
	}

	return s
}

// mirror reflects f's 25-cell window across its diagonal by swapping the
// bit pairs that correspond to mirrored coordinates.
func mirror(f fundament.Fundament) fundament.Fundament {
	for x := 0; x < 4; x++ {
		for y := 0; y < 4-x; y++ {
			upper := 5 + x*6 + y*5
			lower := 1 + x*6 + y
			f = swapBit(f, upper, lower)
		}
	}
	return f
}

func swapBit(f fundament.Fundament, a, b int) fundament.Fundament {
	bitA := (f >> uint(a)) & 1
	bitB := (f >> uint(b)) & 1
	if bitA == bitB {
		return f
	}
	f ^= 1 << uint(a)
	f ^= 1 << uint(b)
	return f
}

// Dominates reports whether s is at least as favourable as rhs for
// completing the embedding: identical depth and head, and every cell
// blocked in s is also blocked in rhs (so anything rhs can still do, s can
// still do too). Dominance is reflexive: a signature always dominates
// itself.
func (s Signature) Dominates(rhs Signature) bool {
	if s.Depth != rhs.Depth || s.Head != rhs.Head {
		return false
	}
	return s.Fundament&rhs.Fundament == s.Fundament
}
