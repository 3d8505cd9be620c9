package voronoi

import "github.com/golang/geo/r2"

// bisector is an edge between the cells of left and right as discovered by
// the sweep. va and vb stay noVertex until a breakpoint vertex fixes them;
// an edge with an open end extends to infinity in its direction.
type bisector struct {
	left  *Site
	right *Site
	va    Vertex
	vb    Vertex
}

func newBisector(left, right *Site) *bisector {
	return &bisector{
		left:  left,
		right: right,
		va:    noVertex,
		vb:    noVertex,
	}
}

// setStart fixes the endpoint that starts the edge when walking with left on
// the left-hand side. The first endpoint fixed on a fresh edge becomes va and
// decides its orientation.
func (e *bisector) setStart(left, right *Site, v Vertex) {
	switch {
	case e.va == noVertex && e.vb == noVertex:
		e.va = v
		e.left = left
		e.right = right
	case e.left == right:
		e.vb = v
	default:
		e.va = v
	}
}

func (e *bisector) setEnd(left, right *Site, v Vertex) {
	e.setStart(right, left, v)
}

func (e *bisector) open() bool {
	return e.va == noVertex || e.vb == noVertex
}

// direction is the direction in which the open end of the edge runs: the
// left-to-right site vector turned clockwise.
func (e *bisector) direction() r2.Point {
	d := e.right.Vertex().point().Sub(e.left.Vertex().point())
	return r2.Point{X: d.Y, Y: -d.X}
}

// extend replaces the open ends of the edge with the points where its line
// leaves the rectangle. It returns false when the ray cannot reach the
// rectangle. Closed edges are left untouched.
func (e *bisector) extend(box BoundingBox) bool {
	if e.vb != noVertex {
		return true
	}

	va := e.va
	var vb Vertex
	xl, xr := box.MinX, box.MaxX
	yl, yh := box.MinY, box.MaxY

	lx, ly := e.left.X, e.left.Y
	rx, ry := e.right.X, e.right.Y
	fx := (lx + rx) / 2
	fy := (ly + ry) / 2

	switch {
	case ry == ly:
		// vertical bisector
		if fx < xl || fx >= xr {
			return false
		}
		if lx > rx {
			// runs towards +y
			if va == noVertex || va.Y < yl {
				va = Vertex{fx, yl}
			} else if va.Y >= yh {
				return false
			}
			vb = Vertex{fx, yh}
		} else {
			// runs towards -y
			if va == noVertex || va.Y > yh {
				va = Vertex{fx, yh}
			} else if va.Y < yl {
				return false
			}
			vb = Vertex{fx, yl}
		}
	default:
		fm := (lx - rx) / (ry - ly)
		fb := fy - fm*fx
		if fm < -1 || fm > 1 {
			// steep: walk by y
			if lx > rx {
				if va == noVertex || va.Y < yl {
					va = Vertex{(yl - fb) / fm, yl}
				} else if va.Y >= yh {
					return false
				}
				vb = Vertex{(yh - fb) / fm, yh}
			} else {
				if va == noVertex || va.Y > yh {
					va = Vertex{(yh - fb) / fm, yh}
				} else if va.Y < yl {
					return false
				}
				vb = Vertex{(yl - fb) / fm, yl}
			}
		} else {
			// shallow: walk by x
			if ly < ry {
				if va == noVertex || va.X < xl {
					va = Vertex{xl, fm*xl + fb}
				} else if va.X >= xr {
					return false
				}
				vb = Vertex{xr, fm*xr + fb}
			} else {
				if va == noVertex || va.X > xr {
					va = Vertex{xr, fm*xr + fb}
				} else if va.X < xl {
					return false
				}
				vb = Vertex{xl, fm*xl + fb}
			}
		}
	}

	e.va = va
	e.vb = vb
	return true
}
