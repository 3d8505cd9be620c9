package voronoi

import (
	"math"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Edge is a straight segment of the diagram: either the boundary between two
// cells or a piece of the rectangle's border.
type Edge struct {
	// ID is the index of the edge in Diagram.Edges.
	ID    int
	Start Vertex
	End   Vertex
	// Left and Right are the sites on either side. Border edges only carry
	// the site whose cell they bound in Left, and nil when there are no sites.
	Left  *Site
	Right *Site
	// Neighbours are the other edges sharing an endpoint, ordered by ID.
	Neighbours []*Edge

	border bool
}

// IsBorder reports whether the edge lies along the rectangle.
func (e *Edge) IsBorder() bool {
	return e.border
}

func (e *Edge) Length() float64 {
	return math.Hypot(e.End.X-e.Start.X, e.End.Y-e.Start.Y)
}

// Diagram is the result of one tessellation.
type Diagram struct {
	Bounds BoundingBox
	// Sites holds the distinct input sites in input order.
	Sites []*Site
	// Edges holds the interior edges followed by the border cycle.
	Edges []*Edge
}

func (d *Diagram) BorderEdges() []*Edge {
	var out []*Edge
	for _, e := range d.Edges {
		if e.border {
			out = append(out, e)
		}
	}
	return out
}

func (d *Diagram) InteriorEdges() []*Edge {
	var out []*Edge
	for _, e := range d.Edges {
		if !e.border {
			out = append(out, e)
		}
	}
	return out
}

// Tessellate computes the Voronoi diagram of points clipped to the rectangle
// [minX, maxX] x [minY, maxY] and returns it as a graph of edges. Points may
// lie anywhere, including outside the rectangle. Exact duplicates are merged
// into the first occurrence and non-finite points are ignored.
//
// The only failure is invalid input: an empty or inverted rectangle
// (ErrInvalidBounds) or a bad option (ErrInvalidTolerance). All problems are
// reported together.
func Tessellate(points []Vertex, minX, minY, maxX, maxY float64, opts ...Option) (*Diagram, error) {
	box := NewBoundingBox(minX, minY, maxX, maxY)

	o, optErr := newOptions(opts)
	if err := multierr.Append(box.Validate(), optErr); err != nil {
		return nil, err
	}

	log := o.Logger
	started := time.Now()
	log.Info("[tess] Tessellation started",
		zap.Int("points", len(points)),
		zap.Float64("min_x", minX), zap.Float64("min_y", minY),
		zap.Float64("max_x", maxX), zap.Float64("max_y", maxY),
	)

	reg := newSiteRegistry(points, log)
	bisectors := newSweeper(reg, log).run()

	c := &clipper{box: box, eps: o.Tolerance, log: log}
	edges, touches := c.clip(bisectors)
	interior := len(edges)
	edges = append(edges, c.synthesizeBorder(touches, reg)...)

	for i, e := range edges {
		e.ID = i
	}
	vertices := linkNeighbours(edges, o.Tolerance)

	log.Info("[tess] Tessellation finished",
		zap.Int("sites", reg.len()),
		zap.Int("interior_edges", interior),
		zap.Int("border_edges", len(edges)-interior),
		zap.Int("vertices", vertices),
		zap.Duration("took", time.Since(started)),
	)

	return &Diagram{
		Bounds: box,
		Sites:  reg.sites,
		Edges:  edges,
	}, nil
}
