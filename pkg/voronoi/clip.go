package voronoi

import (
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// touch is a point where a clipped edge meets a side of the rectangle.
type touch struct {
	at   Vertex
	edge *Edge
}

type clipper struct {
	box BoundingBox
	eps float64
	log *logger.ZapLogger
}

// clip resolves every bisector into an edge inside the rectangle and records,
// per side, where the surviving edges touch it.
func (c *clipper) clip(bisectors []*bisector) ([]*Edge, map[Sides][]touch) {
	edges := make([]*Edge, 0, len(bisectors))
	touches := make(map[Sides][]touch, len(sideOrder))
	var outside, degenerate, alongSide int

	for _, b := range bisectors {
		if !b.extend(c.box) {
			outside++
			continue
		}
		start, end, ok := c.clipSegment(b.va, b.vb)
		if !ok {
			outside++
			continue
		}

		start = c.box.snap(start, c.eps)
		end = c.box.snap(end, c.eps)
		if start.Equal(end, c.eps) {
			degenerate++
			continue
		}

		startSides := c.box.Sides(start, c.eps)
		endSides := c.box.Sides(end, c.eps)
		if startSides&endSides != SideNone {
			// the border edge on that side already separates these cells
			alongSide++
			continue
		}

		e := &Edge{Start: start, End: end, Left: b.left, Right: b.right}
		edges = append(edges, e)
		for _, side := range sideOrder {
			if startSides&side != 0 {
				touches[side] = append(touches[side], touch{at: start, edge: e})
			}
			if endSides&side != 0 {
				touches[side] = append(touches[side], touch{at: end, edge: e})
			}
		}
	}

	c.log.Debug("[clip] Bisectors clipped",
		zap.Int("kept", len(edges)),
		zap.Int("outside", outside),
		zap.Int("degenerate", degenerate),
		zap.Int("along_side", alongSide),
	)
	return edges, touches
}

// clipSegment clips the segment a-b to the rectangle with the Liang-Barsky
// algorithm. Endpoints already inside, including ones exactly on a side, are
// returned unchanged.
func (c *clipper) clipSegment(a, b Vertex) (Vertex, Vertex, bool) {
	p0 := a.point()
	d := b.point().Sub(p0)
	t0, t1 := 0.0, 1.0

	// p is the signed projection of d on the outward normal, q the distance
	// from a to the side
	checks := [4][2]float64{
		{-d.X, a.X - c.box.MinX},
		{d.X, c.box.MaxX - a.X},
		{-d.Y, a.Y - c.box.MinY},
		{d.Y, c.box.MaxY - a.Y},
	}
	for _, pq := range checks {
		p, q := pq[0], pq[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return a, b, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	start, end := a, b
	if t0 > 0 {
		start = vertexOf(p0.Add(d.Mul(t0)))
	}
	if t1 < 1 {
		end = vertexOf(p0.Add(d.Mul(t1)))
	}
	return start, end, true
}
