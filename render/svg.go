package render

import (
	"fmt"
	"io"
	"text/template"

	"github.com/animiral/wudcrgen/lobster"
)

// SVG renders each disk as a unit circle at its Cartesian coordinates,
// colouring disks the embedder failed to place distinctly from those it
// placed successfully.
type SVG struct {
	// Radius is the drawn circle radius in SVG user units; disks are
	// unit-distance apart, so a Radius near 0.5 keeps neighbours touching
	// without overlapping.
	Radius float64
	// OKColor and FailColor are the fill colours for placed and failed disks.
	OKColor, FailColor string
}

// NewSVG returns an SVG renderer with sensible defaults.
func NewSVG() SVG {
	return SVG{Radius: 0.48, OKColor: "#3a7ca5", FailColor: "#c0392b"}
}

type svgDisk struct {
	ID    int
	X, Y  float64
	R     float64
	Color string
}

var svgTemplate = template.Must(template.New("svg").Parse(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="{{.MinX}} {{.MinY}} {{.Width}} {{.Height}}">
{{- range .Disks}}
  <circle cx="{{.X}}" cy="{{.Y}}" r="{{.R}}" fill="{{.Color}}" data-disk-id="{{.ID}}" />
{{- end}}
</svg>
`))

type svgDocument struct {
	MinX, MinY, Width, Height float64
	Disks                     []svgDisk
}

// Render writes an SVG document with one circle per embedded disk.
func (s SVG) Render(w io.Writer, g *lobster.DiskGraph) error {
	radius := s.Radius
	if radius <= 0 {
		radius = 0.48
	}
	okColor, failColor := s.OKColor, s.FailColor
	if okColor == "" {
		okColor = "#3a7ca5"
	}
	if failColor == "" {
		failColor = "#c0392b"
	}

	disks := g.Disks()
	doc := svgDocument{Disks: make([]svgDisk, 0, len(disks))}

	minX, minY, maxX, maxY := 0.0, 0.0, 0.0, 0.0
	for i, d := range disks {
		color := okColor
		if d.Failure {
			color = failColor
		}
		doc.Disks = append(doc.Disks, svgDisk{ID: int(d.ID), X: d.X, Y: d.Y, R: radius, Color: color})

		if i == 0 || d.X < minX {
			minX = d.X
		}
		if i == 0 || d.Y < minY {
			minY = d.Y
		}
		if i == 0 || d.X > maxX {
			maxX = d.X
		}
		if i == 0 || d.Y > maxY {
			maxY = d.Y
		}
	}

	margin := radius + 1
	doc.MinX = minX - margin
	doc.MinY = minY - margin
	doc.Width = (maxX - minX) + 2*margin
	doc.Height = (maxY - minY) + 2*margin

	if err := svgTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("render: svg: %w", err)
	}
	return nil
}
