package main

import (
	"io"
	"math"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	svg "github.com/ajstarks/svgo"
)

const (
	backgroundStyle = "fill:rgb(31,31,31)"
	bisectorStyle   = "stroke:rgb(84,112,198);stroke-width:2"
	borderStyle     = "stroke:rgb(211,211,211);stroke-width:2"
	siteStyle       = "fill:rgb(144,238,144)"
)

// renderSVG writes the diagram with the y axis pointing up, one user unit per
// diagram unit.
func renderSVG(w io.Writer, d *voronoi.Diagram) {
	b := d.Bounds
	width := int(math.Ceil(b.MaxX - b.MinX))
	height := int(math.Ceil(b.MaxY - b.MinY))

	toScreen := func(v voronoi.Vertex) (int, int) {
		return int(math.Round(v.X - b.MinX)), int(math.Round(b.MaxY - v.Y))
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, backgroundStyle)

	for _, e := range d.Edges {
		x1, y1 := toScreen(e.Start)
		x2, y2 := toScreen(e.End)
		style := bisectorStyle
		if e.IsBorder() {
			style = borderStyle
		}
		canvas.Line(x1, y1, x2, y2, style)
	}

	for _, s := range d.Sites {
		if !b.Contains(s.Vertex()) {
			continue
		}
		x, y := toScreen(s.Vertex())
		canvas.Circle(x, y, 3, siteStyle)
	}
	canvas.End()
}
