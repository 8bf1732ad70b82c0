// Package render converts an embedded DiskGraph into a visual document.
package render

import (
	"errors"
	"io"

	"github.com/animiral/wudcrgen/lobster"
)

// Renderer draws a DiskGraph's embedded disks to w.
type Renderer interface {
	Render(w io.Writer, g *lobster.DiskGraph) error
}

// ErrUnsupported is returned by renderers that recognise a request but
// cannot fulfil it, such as the IPE output format: no pack example
// exercises IPE's XML dialect, and it is explicitly out of scope.
var ErrUnsupported = errors.New("render: output format not implemented")
