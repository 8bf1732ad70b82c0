package input_test

import (
	"strings"
	"testing"

	"github.com/animiral/wudcrgen/classify"
	"github.com/animiral/wudcrgen/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEdgeList(t *testing.T) {
	edges, err := input.ParseEdgeList(strings.NewReader("0 1\n1 2\n0 3\n"))
	require.NoError(t, err)
	assert.Equal(t, classify.EdgeList{
		{From: 0, To: 1},
		{From: 1, To: 2},
		{From: 0, To: 3},
	}, edges)
}

func TestParseEdgeListRejectsEmpty(t *testing.T) {
	_, err := input.ParseEdgeList(strings.NewReader(""))
	assert.ErrorIs(t, err, input.ErrEmptyInput)
}

func TestParseEdgeListRejectsOddTokenCount(t *testing.T) {
	_, err := input.ParseEdgeList(strings.NewReader("0 1 2"))
	assert.ErrorIs(t, err, input.ErrOddTokenCount)
}

func TestParseDegreeList(t *testing.T) {
	degrees, err := input.ParseDegreeList(strings.NewReader("3 2 4"))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 4}, degrees)
}

func TestDegreesToCaterpillarSingleVertex(t *testing.T) {
	edges, err := input.DegreesToCaterpillar([]int{3})
	require.NoError(t, err)
	assert.Len(t, edges, 3) // all 3 leaves attach to the one spine vertex
}

func TestDegreesToCaterpillarMultiSpine(t *testing.T) {
	// spine of 3, middle vertex degree 2 -> 0 leaves; ends degree 2 -> 1 leaf each
	edges, err := input.DegreesToCaterpillar([]int{2, 2, 2})
	require.NoError(t, err)
	assert.Len(t, edges, 2+1+1) // 2 spine edges + 1 leaf at each end
}

func TestDegreesToCaterpillarRejectsSmallDegree(t *testing.T) {
	_, err := input.DegreesToCaterpillar([]int{1, 2})
	assert.ErrorIs(t, err, input.ErrDegreeTooSmall)
}
