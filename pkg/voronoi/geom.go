package voronoi

import (
	"fmt"
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"go.uber.org/multierr"
)

// DefaultTolerance is the absolute distance under which two coordinates are
// treated as the same point by the clipper and the adjacency linker.
const DefaultTolerance = 1e-9

// sweepEpsilon is used by the beachline when locating arcs and collapsing
// coincident circle events. It does not follow the configured tolerance.
const sweepEpsilon = 1e-9

// Vertex is a point on the plane.
type Vertex struct {
	X float64
	Y float64
}

// noVertex marks an endpoint that has not been fixed yet.
var noVertex = Vertex{math.Inf(1), math.Inf(1)}

func (v Vertex) point() r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

func vertexOf(p r2.Point) Vertex {
	return Vertex{X: p.X, Y: p.Y}
}

func (v Vertex) isFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Equal reports whether v and o are within eps of each other on both axes.
func (v Vertex) Equal(o Vertex, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Sides is a bitmask of rectangle sides.
type Sides uint8

const (
	SideNone Sides = 0
	SideLeft Sides = 1 << (iota - 1)
	SideBottom
	SideRight
	SideTop
)

// sideOrder is the order in which the border cycle visits the sides.
var sideOrder = [4]Sides{SideLeft, SideBottom, SideRight, SideTop}

func (s Sides) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideLeft:
		return "left"
	case SideBottom:
		return "bottom"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	}
	return fmt.Sprintf("sides(%#x)", uint8(s))
}

// BoundingBox is the axis-aligned rectangle the diagram is clipped to.
type BoundingBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func NewBoundingBox(minX, minY, maxX, maxY float64) BoundingBox {
	return BoundingBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Validate returns an error wrapping ErrInvalidBounds for every degenerate
// or inverted axis.
func (b BoundingBox) Validate() error {
	var err error
	if !(b.MinX < b.MaxX) {
		err = multierr.Append(err, fmt.Errorf("%w: minX %g must be less than maxX %g", ErrInvalidBounds, b.MinX, b.MaxX))
	}
	if !(b.MinY < b.MaxY) {
		err = multierr.Append(err, fmt.Errorf("%w: minY %g must be less than maxY %g", ErrInvalidBounds, b.MinY, b.MaxY))
	}
	return err
}

func (b BoundingBox) rect() r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: b.MinX, Hi: b.MaxX},
		Y: r1.Interval{Lo: b.MinY, Hi: b.MaxY},
	}
}

// Corners returns the corners in border-cycle order, starting at the top-left
// corner (minX, maxY) and walking down the left side.
func (b BoundingBox) Corners() [4]Vertex {
	return [4]Vertex{
		{b.MinX, b.MaxY},
		{b.MinX, b.MinY},
		{b.MaxX, b.MinY},
		{b.MaxX, b.MaxY},
	}
}

// Contains reports whether v lies inside or on the rectangle.
func (b BoundingBox) Contains(v Vertex) bool {
	return b.rect().ContainsPoint(v.point())
}

// Sides reports which sides v lies on, within eps. Corners lie on two sides.
func (b BoundingBox) Sides(v Vertex, eps float64) Sides {
	r := b.rect()
	if !r.X.Expanded(eps).Contains(v.X) || !r.Y.Expanded(eps).Contains(v.Y) {
		return SideNone
	}
	s := SideNone
	if math.Abs(v.X-b.MinX) <= eps {
		s |= SideLeft
	}
	if math.Abs(v.X-b.MaxX) <= eps {
		s |= SideRight
	}
	if math.Abs(v.Y-b.MinY) <= eps {
		s |= SideBottom
	}
	if math.Abs(v.Y-b.MaxY) <= eps {
		s |= SideTop
	}
	return s
}

// snap moves v exactly onto any side it lies within eps of and clamps it into
// the rectangle.
func (b BoundingBox) snap(v Vertex, eps float64) Vertex {
	switch {
	case math.Abs(v.X-b.MinX) <= eps:
		v.X = b.MinX
	case math.Abs(v.X-b.MaxX) <= eps:
		v.X = b.MaxX
	}
	switch {
	case math.Abs(v.Y-b.MinY) <= eps:
		v.Y = b.MinY
	case math.Abs(v.Y-b.MaxY) <= eps:
		v.Y = b.MaxY
	}
	return vertexOf(b.rect().ClampPoint(v.point()))
}

// side returns the endpoints of one side in border-cycle direction.
func (b BoundingBox) side(s Sides) (from, to Vertex) {
	c := b.Corners()
	switch s {
	case SideLeft:
		return c[0], c[1]
	case SideBottom:
		return c[1], c[2]
	case SideRight:
		return c[2], c[3]
	case SideTop:
		return c[3], c[0]
	}
	panic(fmt.Sprintf("side: not a single side: %v", s))
}

// along returns the distance of v from the start of side s, measured in
// border-cycle direction.
func (b BoundingBox) along(s Sides, v Vertex) float64 {
	switch s {
	case SideLeft:
		return b.MaxY - v.Y
	case SideBottom:
		return v.X - b.MinX
	case SideRight:
		return v.Y - b.MinY
	case SideTop:
		return b.MaxX - v.X
	}
	panic(fmt.Sprintf("along: not a single side: %v", s))
}

// circumcenter returns the center of the circle through a, b and c, and false
// when the three points are collinear.
func circumcenter(a, b, c Vertex) (Vertex, bool) {
	pb := b.point().Sub(a.point())
	pc := c.point().Sub(a.point())
	d := 2 * pb.Cross(pc)
	if d == 0 {
		return noVertex, false
	}
	hb := pb.Dot(pb)
	hc := pc.Dot(pc)
	return Vertex{
		X: (pc.Y*hb-pb.Y*hc)/d + a.X,
		Y: (pb.X*hc-pc.X*hb)/d + a.Y,
	}, true
}
