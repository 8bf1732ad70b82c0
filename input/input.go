// Package input parses the two text formats wudcrgen accepts: a raw edge
// list, and a compact degree list that expands into a caterpillar's edges.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/animiral/wudcrgen/classify"
)

// Sentinel errors for malformed input.
var (
	// ErrEmptyInput is returned when the reader yields no tokens at all.
	ErrEmptyInput = errors.New("input: no data")
	// ErrOddTokenCount is returned when an edge list has an unpaired trailing integer.
	ErrOddTokenCount = errors.New("input: edge list has an unpaired trailing vertex id")
	// ErrDegreeTooSmall is returned when a degree list entry is less than 2.
	ErrDegreeTooSmall = errors.New("input: caterpillar spine vertex must have degree >= 2")
)

// ParseEdgeList reads whitespace-separated "from to" integer pairs, one
// edge per pair, from r.
func ParseEdgeList(r io.Reader) (classify.EdgeList, error) {
	tokens, err := scanInts(r)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}
	if len(tokens)%2 != 0 {
		return nil, ErrOddTokenCount
	}

	edges := make(classify.EdgeList, 0, len(tokens)/2)
	for i := 0; i+1 < len(tokens); i += 2 {
		edges = append(edges, classify.Edge{From: tokens[i], To: tokens[i+1]})
	}
	return edges, nil
}

// ParseDegreeList reads whitespace-separated vertex degrees from r.
func ParseDegreeList(r io.Reader) ([]int, error) {
	degrees, err := scanInts(r)
	if err != nil {
		return nil, err
	}
	if len(degrees) == 0 {
		return nil, ErrEmptyInput
	}
	return degrees, nil
}

// DegreesToCaterpillar expands a degree list into the edge list of the
// caterpillar it describes: one spine vertex per degree, consecutive
// spine vertices joined, and enough leaves attached to each spine vertex
// to make up the rest of its degree. The endpoints of the spine only
// have one spine neighbour, so they need one more leaf than interior
// vertices to reach the same degree.
func DegreesToCaterpillar(degrees []int) (classify.EdgeList, error) {
	if len(degrees) == 0 {
		return nil, ErrEmptyInput
	}

	leaves := make([]int, len(degrees))
	for i, d := range degrees {
		if d < 2 {
			return nil, ErrDegreeTooSmall
		}

		// adjust counts this vertex's spine-neighbours: none if it is the
		// sole spine vertex, one at either end of a longer spine, two for
		// every interior vertex.
		adjust := 2
		switch {
		case len(degrees) == 1:
			adjust = 0
		case i == 0 || i == len(degrees)-1:
			adjust = 1
		}
		leaves[i] = d - adjust
	}

	var edges classify.EdgeList
	nextID := 0
	prevSpine := -1
	for _, leafCount := range leaves {
		spine := nextID
		nextID++
		if prevSpine >= 0 {
			edges = append(edges, classify.Edge{From: prevSpine, To: spine})
		}
		for l := 0; l < leafCount; l++ {
			edges = append(edges, classify.Edge{From: spine, To: nextID})
			nextID++
		}
		prevSpine = spine
	}

	return edges, nil
}

func scanInts(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var out []int
	for sc.Scan() {
		n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			return nil, fmt.Errorf("input: invalid integer %q: %w", sc.Text(), err)
		}
		out = append(out, n)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
