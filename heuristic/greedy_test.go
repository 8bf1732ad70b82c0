package heuristic_test

import (
	"testing"

	"github.com/animiral/wudcrgen/heuristic"
	"github.com/animiral/wudcrgen/lobster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreedyEmbedsSimpleCaterpillar(t *testing.T) {
	disks := []lobster.Disk{
		{ID: 0, Parent: lobster.NoDisk, Depth: lobster.Spine},
		{ID: 1, Parent: 0, Depth: lobster.Branch},
	}
	g := lobster.NewDiskGraph(disks, 0)

	ok := heuristic.Greedy{}.Embed(g)
	require.True(t, ok)

	for _, d := range g.Disks() {
		assert.True(t, d.Embedded)
	}
}

func TestGreedyPlacesDistinctCoordinates(t *testing.T) {
	disks := []lobster.Disk{
		{ID: 0, Parent: lobster.NoDisk, Depth: lobster.Spine},
		{ID: 1, Parent: 0, Depth: lobster.Branch},
		{ID: 2, Parent: 0, Depth: lobster.Branch},
	}
	g := lobster.NewDiskGraph(disks, 0)

	heuristic.Greedy{}.Embed(g)

	seen := map[[2]int]bool{}
	for _, d := range g.Disks() {
		key := [2]int{d.GridX, d.GridSly}
		assert.False(t, seen[key])
		seen[key] = true
	}
}
