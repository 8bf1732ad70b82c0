package render_test

import (
	"bytes"
	"testing"

	"github.com/animiral/wudcrgen/lobster"
	"github.com/animiral/wudcrgen/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVGRenderProducesOneCirclePerDisk(t *testing.T) {
	disks := []lobster.Disk{
		{ID: 0, Parent: lobster.NoDisk, Depth: lobster.Spine, X: 0, Y: 0, Embedded: true},
		{ID: 1, Parent: 0, Depth: lobster.Branch, X: 1, Y: 0, Embedded: true, Failure: true},
	}
	g := lobster.NewDiskGraph(disks, 0)

	var buf bytes.Buffer
	require.NoError(t, render.NewSVG().Render(&buf, g))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `data-disk-id="0"`)
	assert.Contains(t, out, `data-disk-id="1"`)
	assert.Contains(t, out, "#c0392b") // failed disk coloured distinctly
}

func TestErrUnsupportedIsDistinctSentinel(t *testing.T) {
	assert.ErrorContains(t, render.ErrUnsupported, "not implemented")
}
