package signature_test

import (
	"testing"

	"github.com/animiral/wudcrgen/fundament"
	"github.com/animiral/wudcrgen/geometry"
	"github.com/animiral/wudcrgen/signature"
	"github.com/stretchr/testify/assert"
)

func TestDominatesReflexive(t *testing.T) {
	s := signature.Signature{
		Depth:     3,
		Fundament: fundament.Fundament(0b101),
		Head:      geometry.Coord{X: 1, Sly: -1},
	}
	assert.True(t, s.Dominates(s))
}

func TestDominatesRequiresSameDepthAndHead(t *testing.T) {
	a := signature.Signature{Depth: 2, Head: geometry.Coord{X: 0, Sly: 0}}
	b := signature.Signature{Depth: 3, Head: geometry.Coord{X: 0, Sly: 0}}
	assert.False(t, a.Dominates(b))

	c := signature.Signature{Depth: 2, Head: geometry.Coord{X: 1, Sly: 0}}
	assert.False(t, a.Dominates(c))
}

func TestDominatesSubsetOfBlockedCells(t *testing.T) {
	less := signature.Signature{
		Depth:     1,
		Fundament: fundament.Fundament(0b0001),
		Head:      geometry.Coord{X: 0, Sly: 0},
	}
	more := signature.Signature{
		Depth:     1,
		Fundament: fundament.Fundament(0b1001),
		Head:      geometry.Coord{X: 0, Sly: 0},
	}
	assert.True(t, less.Dominates(more))
	assert.False(t, more.Dominates(less))
}

func TestCanonicalIsIdempotent(t *testing.T) {
	s := signature.Signature{
		Depth:     0,
		Fundament: fundament.Fundament(0x1A2B3),
		Head:      geometry.Coord{X: 2, Sly: -3},
	}
	once := s.Canonical()
	twice := once.Canonical()
	assert.Equal(t, once, twice)
}
