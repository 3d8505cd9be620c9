package voronoi

import "math"

// beachArc is one parabolic arc of the beachline. edge is the bisector traced
// by the breakpoint on the arc's left side.
type beachArc struct {
	node   *rbNode[*beachArc]
	site   *Site
	circle *circleEvent
	edge   *bisector
}

func (a *beachArc) prev() *beachArc {
	if a.node.previous == nil {
		return nil
	}
	return a.node.previous.value
}

func (a *beachArc) next() *beachArc {
	if a.node.next == nil {
		return nil
	}
	return a.node.next.value
}

// beachline keeps the arcs ordered by x at the current sweep position.
type beachline struct {
	arcs rbTree[*beachArc]
}

// insertAfter creates an arc for site right after prev, or as the first arc
// when prev is nil.
func (b *beachline) insertAfter(prev *beachArc, site *Site) *beachArc {
	arc := &beachArc{site: site}
	var node *rbNode[*beachArc]
	if prev != nil {
		node = prev.node
	}
	arc.node = b.arcs.insertSuccessor(node, arc)
	return arc
}

func (b *beachline) remove(arc *beachArc) {
	b.arcs.removeNode(arc.node)
}

func (b *beachline) len() int {
	return b.arcs.len()
}

// leftBreakPoint returns the x of the breakpoint between arc and its left
// neighbour when the sweep line is at directrix.
func leftBreakPoint(arc *beachArc, directrix float64) float64 {
	rfocx := arc.site.X
	rfocy := arc.site.Y
	pby2 := rfocy - directrix
	// focus on the directrix: the parabola degenerates to a vertical ray
	if pby2 == 0 {
		return rfocx
	}

	left := arc.prev()
	if left == nil {
		return math.Inf(-1)
	}
	lfocx := left.site.X
	lfocy := left.site.Y
	plby2 := lfocy - directrix
	if plby2 == 0 {
		return lfocx
	}

	hl := lfocx - rfocx
	aby2 := 1/pby2 - 1/plby2
	b := hl / plby2
	if aby2 != 0 {
		return (-b+math.Sqrt(b*b-2*aby2*(hl*hl/(-2*plby2)-lfocy+plby2/2+rfocy-pby2/2)))/aby2 + rfocx
	}
	// same distance to the directrix: the breakpoint is midway
	return (rfocx + lfocx) / 2
}

func rightBreakPoint(arc *beachArc, directrix float64) float64 {
	if right := arc.next(); right != nil {
		return leftBreakPoint(right, directrix)
	}
	if arc.site.Y == directrix {
		return arc.site.X
	}
	return math.Inf(1)
}

// locate finds the arcs surrounding x at directrix. Both are the same arc when
// x falls strictly inside it; they differ when x falls on a breakpoint; right
// is nil when x lies past the last arc, and both are nil on an empty beachline.
func (b *beachline) locate(x, directrix float64) (left, right *beachArc) {
	node := b.arcs.root
	for node != nil {
		arc := node.value
		dxl := leftBreakPoint(arc, directrix) - x
		if dxl > sweepEpsilon {
			node = node.left
			continue
		}
		dxr := x - rightBreakPoint(arc, directrix)
		if dxr > sweepEpsilon {
			if node.right == nil {
				return arc, nil
			}
			node = node.right
			continue
		}
		switch {
		case dxl > -sweepEpsilon && arc.prev() != nil:
			return arc.prev(), arc
		case dxr > -sweepEpsilon:
			return arc, arc.next()
		default:
			return arc, arc
		}
	}
	return nil, nil
}
