// Package classify turns a raw edge list into a lobster.DiskGraph, first
// confirming the input describes a tree and then recognising whether that
// tree is a caterpillar or a lobster: a path of spine vertices, each
// optionally carrying branches, each branch optionally carrying leaves.
package classify

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/animiral/wudcrgen/internal/graph"
	"github.com/animiral/wudcrgen/internal/graph/bfs"
	"github.com/animiral/wudcrgen/internal/graph/dfs"
	"github.com/animiral/wudcrgen/lobster"
)

// Class is the recognised shape of a classified input graph.
type Class int

const (
	// Caterpillar is a path of spine vertices with only direct leaves attached.
	Caterpillar Class = iota
	// Lobster is a path of spine vertices whose branches may carry leaves.
	Lobster
)

func (c Class) String() string {
	switch c {
	case Caterpillar:
		return "caterpillar"
	case Lobster:
		return "lobster"
	default:
		return "unknown"
	}
}

// Sentinel errors returned by Classify.
var (
	// ErrEmptyInput is returned for a zero-edge input.
	ErrEmptyInput = errors.New("classify: input has no edges")
	// ErrNotATree is returned when the input edges contain a cycle or do not
	// connect every vertex together.
	ErrNotATree = errors.New("classify: input is not a tree")
	// ErrUnrecognized is returned when the tree is neither a caterpillar nor a lobster.
	ErrUnrecognized = errors.New("classify: input is not a caterpillar or lobster")
)

// Classify validates input as a tree and recognises its shape, returning
// the assembled DiskGraph and its Class.
func Classify(input EdgeList) (*lobster.DiskGraph, Class, error) {
	if len(input) == 0 {
		return nil, 0, ErrEmptyInput
	}

	if err := validateTree(input); err != nil {
		return nil, 0, err
	}

	work := append(EdgeList(nil), input...)

	if recognizePath(work) {
		g, err := fromEdgeList(work, len(work), len(work), len(work))
		return g, Caterpillar, err
	}

	leaves := separateLeaves(work)

	if recognizePath(work[:leaves]) {
		g, err := fromEdgeList(work, leaves, len(work), len(work))
		return g, Caterpillar, err
	}

	branches := separateLeaves(work[:leaves])

	if recognizePath(work[:branches]) {
		isSpine := func(id int) bool {
			if work[0].From == id {
				return true
			}
			for _, e := range work[:branches] {
				if e.To == id {
					return true
				}
			}
			return false
		}
		leaves = partitionBySpineFrom(work, branches, len(work), isSpine)

		g, err := fromEdgeList(work, branches, leaves, len(work))
		return g, Lobster, err
	}

	return nil, 0, ErrUnrecognized
}

// validateTree rejects input that is not connected or contains a cycle;
// the rest of Classify assumes a tree, since a cyclic or disconnected
// shape can never be a caterpillar or lobster.
func validateTree(input EdgeList) error {
	g := graph.New()
	for _, e := range input {
		if err := g.AddEdge(strconv.Itoa(e.From), strconv.Itoa(e.To)); err != nil {
			return err
		}
	}

	if dfs.HasCycle(g) {
		return ErrNotATree
	}

	connected, err := bfs.Connected(g, strconv.Itoa(input[0].From))
	if err != nil {
		return err
	}
	if !connected {
		return ErrNotATree
	}

	return nil
}

// fromEdgeList converts a properly ordered edge list — spine edges, then
// branch-attaching edges, then leaf-attaching edges, every edge pointing
// outward from the tree root — into a DiskGraph.
func fromEdgeList(edges EdgeList, branches, leaves, end int) (*lobster.DiskGraph, error) {
	disks := make([]lobster.Disk, end+1)
	index := make(map[int]int, end+1)

	disks[0] = lobster.Disk{ID: lobster.DiskID(edges[0].From), Parent: lobster.NoDisk, Depth: lobster.Spine}
	index[edges[0].From] = 0
	if err := disks[0].Validate(); err != nil {
		return nil, fmt.Errorf("classify: disk %d: %w", disks[0].ID, err)
	}

	for i := 1; i < len(disks); i++ {
		e := edges[i-1]
		fromIdx, ok := index[e.From]
		if !ok {
			return nil, errors.New("classify: edge list out of order")
		}

		disk := lobster.Disk{ID: lobster.DiskID(e.To)}
		index[e.To] = i

		switch {
		case i-1 < branches:
			disk.Parent = lobster.DiskID(e.From)
			disk.Depth = lobster.Spine
			disks[fromIdx].Children++
		case i-1 >= leaves:
			disk.Parent = lobster.DiskID(e.From)
			disk.Depth = lobster.Leaf
			disks[fromIdx].Children++
		default:
			disk.Parent = lobster.DiskID(e.From)
			disk.Depth = lobster.Branch
			disks[fromIdx].Children++
		}

		if err := disk.Validate(); err != nil {
			return nil, fmt.Errorf("classify: disk %d: %w", disk.ID, err)
		}

		disks[i] = disk
	}

	return lobster.NewDiskGraph(disks, disks[0].ID), nil
}
