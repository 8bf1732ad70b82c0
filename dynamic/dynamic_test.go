package dynamic_test

import (
	"testing"

	"github.com/animiral/wudcrgen/classify"
	"github.com/animiral/wudcrgen/dynamic"
	"github.com/animiral/wudcrgen/lobster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoSpineOneLeafEach builds: spine0 -- spine1, each with one leaf branch.
func twoSpineOneLeafEach() *lobster.DiskGraph {
	disks := []lobster.Disk{
		{ID: 0, Parent: lobster.NoDisk, Depth: lobster.Spine, Children: 2},
		{ID: 1, Parent: 0, Depth: lobster.Spine, Children: 1},
		{ID: 2, Parent: 0, Depth: lobster.Branch, Children: 0},
		{ID: 3, Parent: 1, Depth: lobster.Branch, Children: 0},
	}
	return lobster.NewDiskGraph(disks, 0)
}

func TestEmbedDynamicFindsSolutionForSmallCaterpillar(t *testing.T) {
	g := twoSpineOneLeafEach()
	found, err := dynamic.EmbedDynamic(g, true)
	require.NoError(t, err)
	require.True(t, found)

	for _, d := range g.Disks() {
		assert.True(t, d.Embedded, "disk %d should be embedded", d.ID)
		assert.False(t, d.Failure)
	}

	seen := make(map[[2]int]bool)
	for _, d := range g.Disks() {
		key := [2]int{d.GridX, d.GridSly}
		assert.False(t, seen[key], "two disks placed at the same cell")
		seen[key] = true
	}
}

func TestEmbedDynamicDecisionOnlyDoesNotPlace(t *testing.T) {
	g := twoSpineOneLeafEach()
	found, err := dynamic.EmbedDynamic(g, false)
	require.NoError(t, err)
	require.True(t, found)

	for _, d := range g.Disks() {
		assert.False(t, d.Embedded)
	}
}

func TestEmbedDynamicSingleSpineDisk(t *testing.T) {
	disks := []lobster.Disk{{ID: 0, Parent: lobster.NoDisk, Depth: lobster.Spine}}
	g := lobster.NewDiskGraph(disks, 0)

	found, err := dynamic.EmbedDynamic(g, true)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, g.Disks()[0].Embedded)
}

func TestEmbedDynamicRejectsDiskDeeperThanLeaf(t *testing.T) {
	disks := []lobster.Disk{
		{ID: 0, Parent: lobster.NoDisk, Depth: lobster.Spine, Children: 1},
		{ID: 1, Parent: 0, Depth: lobster.Branch, Children: 1},
		{ID: 2, Parent: 1, Depth: lobster.Leaf, Children: 1},
		{ID: 3, Parent: 2, Depth: lobster.Depth(3), Children: 0},
	}
	g := lobster.NewDiskGraph(disks, 0)

	found, err := dynamic.EmbedDynamic(g, true)
	assert.False(t, found)
	assert.ErrorIs(t, err, dynamic.ErrEmbeddingTooDeep)
}

func TestNewRootStartsAtDepthZero(t *testing.T) {
	g := twoSpineOneLeafEach()
	root := dynamic.NewRoot(g)
	assert.Equal(t, 0, root.Depth())
	assert.False(t, root.Done())
}

// neighborOffsets lists the six unit steps on the triangular lattice, used
// by assertLatticeNeighbors to confirm every tree edge connects adjacent
// cells after a successful embedding.
var neighborOffsets = [6][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {0, -1}, {1, -1}, {1, 0},
}

func assertLatticeNeighbors(t *testing.T, g *lobster.DiskGraph) {
	t.Helper()
	for _, d := range g.Disks() {
		if d.Parent == lobster.NoDisk {
			continue
		}
		p := g.FindDisk(d.Parent)
		require.NotNil(t, p)
		dx, dsly := d.GridX-p.GridX, d.GridSly-p.GridSly
		ok := false
		for _, off := range neighborOffsets {
			if off[0] == dx && off[1] == dsly {
				ok = true
				break
			}
		}
		assert.True(t, ok, "disk %d is not a lattice neighbour of its parent %d", d.ID, p.ID)
	}
}

func assertGridCoordsUnique(t *testing.T, g *lobster.DiskGraph) {
	t.Helper()
	seen := make(map[[2]int]bool)
	for _, d := range g.Disks() {
		key := [2]int{d.GridX, d.GridSly}
		assert.False(t, seen[key], "two disks placed at the same cell")
		seen[key] = true
	}
}

// TestEmbedDynamicSingleEdge covers spec scenario 1: one edge, two spine
// disks, always embeddable.
func TestEmbedDynamicSingleEdge(t *testing.T) {
	g, class, err := classify.Classify(classify.EdgeList{{From: 0, To: 1}})
	require.NoError(t, err)
	assert.Equal(t, classify.Caterpillar, class)
	assert.Equal(t, 2, g.SpineLength())

	found, err := dynamic.EmbedDynamic(g, true)
	require.NoError(t, err)
	require.True(t, found)
	assertLatticeNeighbors(t, g)
	assertGridCoordsUnique(t, g)
}

// TestEmbedDynamicStarK15 covers spec scenario 2: K_{1,5}, a single spine
// disk with five branches, fits within the six lattice neighbours.
func TestEmbedDynamicStarK15(t *testing.T) {
	edges := classify.EdgeList{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3},
		{From: 0, To: 4}, {From: 0, To: 5},
	}
	g, class, err := classify.Classify(edges)
	require.NoError(t, err)
	assert.Equal(t, classify.Caterpillar, class)
	assert.Equal(t, 1, g.SpineLength())

	found, err := dynamic.EmbedDynamic(g, true)
	require.NoError(t, err)
	require.True(t, found)
	assertLatticeNeighbors(t, g)
	assertGridCoordsUnique(t, g)
}

// TestEmbedDynamicStarK17 covers spec scenario 3: K_{1,7} has seven
// neighbours of a single hub, more than the six a lattice cell offers, so
// no embedding exists and every disk must be marked failed.
func TestEmbedDynamicStarK17(t *testing.T) {
	edges := classify.EdgeList{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3}, {From: 0, To: 4},
		{From: 0, To: 5}, {From: 0, To: 6}, {From: 0, To: 7},
	}
	g, class, err := classify.Classify(edges)
	require.NoError(t, err)
	assert.Equal(t, classify.Caterpillar, class)

	found, err := dynamic.EmbedDynamic(g, true)
	require.NoError(t, err)
	assert.False(t, found)
	for _, d := range g.Disks() {
		assert.True(t, d.Failure, "disk %d should be marked failed", d.ID)
	}
}

// TestEmbedDynamicSmallLobster covers spec scenario 4: spine vertex 0 has
// two branches (with 2 and 1 leaves), spine vertex 1 has one branch (with 1
// leaf); 9 vertices total, an embedding exists.
func TestEmbedDynamicSmallLobster(t *testing.T) {
	edges := classify.EdgeList{
		{From: 0, To: 1}, // spine
		{From: 0, To: 2}, // branch on 0, two leaves
		{From: 2, To: 3},
		{From: 2, To: 4},
		{From: 0, To: 5}, // branch on 0, one leaf
		{From: 5, To: 6},
		{From: 1, To: 7}, // branch on 1, one leaf
		{From: 7, To: 8},
	}
	g, class, err := classify.Classify(edges)
	require.NoError(t, err)
	assert.Equal(t, classify.Lobster, class)
	assert.Equal(t, 9, g.Size())

	found, err := dynamic.EmbedDynamic(g, true)
	require.NoError(t, err)
	require.True(t, found)
	assertLatticeNeighbors(t, g)
	assertGridCoordsUnique(t, g)
}

// TestEmbedDynamicMirrorEquivalence covers spec scenario 6: twoSpineOneLeafEach
// is itself a front-to-back mirror (one branch on each of its two spine
// disks), so building it twice and renumbering every id in the second copy
// must still produce an equal root signature after canonicalisation, since
// the signature is relabelling-invariant.
func TestEmbedDynamicMirrorEquivalence(t *testing.T) {
	g := twoSpineOneLeafEach()

	relabeled := []lobster.Disk{
		{ID: 10, Parent: lobster.NoDisk, Depth: lobster.Spine, Children: 2},
		{ID: 11, Parent: 10, Depth: lobster.Spine, Children: 1},
		{ID: 12, Parent: 10, Depth: lobster.Branch, Children: 0},
		{ID: 13, Parent: 11, Depth: lobster.Branch, Children: 0},
	}
	mirrored := lobster.NewDiskGraph(relabeled, 10)

	rootA := dynamic.NewRoot(g)
	rootB := dynamic.NewRoot(mirrored)
	assert.Equal(t, rootA.Signature(), rootB.Signature())
}
