package voronoi

import (
	"math"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// sweeper runs Fortune's algorithm over the sites of one registry. The sweep
// line moves towards +y.
type sweeper struct {
	queue *eventQueue
	beach beachline
	edges []*bisector
	log   *logger.ZapLogger

	siteEvents   int
	circleEvents int
}

func newSweeper(reg *siteRegistry, log *logger.ZapLogger) *sweeper {
	return &sweeper{
		queue: newEventQueue(reg.sweepOrder),
		log:   log,
	}
}

// run processes events until the queue is empty and returns every bisector
// found. Edges still open at that point are rays.
func (s *sweeper) run() []*bisector {
	s.log.Debug("[sweep] Started", zap.Int("events", s.queue.len()))

	for {
		ev, ok := s.queue.popMin()
		if !ok {
			break
		}
		if ev.isSite() {
			s.siteEvents++
			s.log.Debug("[sweep] Site event", zap.Int("id", ev.site.ID), zap.Stringer("site", ev.site.Vertex()))
			s.addArc(ev.site)
			continue
		}
		if !ev.circle.valid {
			continue
		}
		s.circleEvents++
		s.log.Debug("[sweep] Circle event", zap.Stringer("vertex", ev.circle.vertex()), zap.Float64("y", ev.circle.y))
		s.removeArc(ev.circle)
	}

	s.log.Debug("[sweep] Finished",
		zap.Int("site_events", s.siteEvents),
		zap.Int("circle_events", s.circleEvents),
		zap.Int("bisectors", len(s.edges)),
	)
	return s.edges
}

func (s *sweeper) createEdge(left, right *Site, va, vb Vertex) *bisector {
	e := newBisector(left, right)
	s.edges = append(s.edges, e)
	if va != noVertex {
		e.setStart(left, right, va)
	}
	if vb != noVertex {
		e.setEnd(left, right, vb)
	}
	return e
}

// addArc handles a site event.
func (s *sweeper) addArc(site *Site) {
	left, right := s.beach.locate(site.X, site.Y)

	arc := s.beach.insertAfter(left, site)

	switch {
	case left == nil && right == nil:
		// first arc on the beachline
		return

	case left == right:
		// site splits an existing arc in two
		s.detachCircleEvent(left)

		right = s.beach.insertAfter(arc, left.site)
		arc.edge = s.createEdge(left.site, site, noVertex, noVertex)
		right.edge = arc.edge

		s.attachCircleEvent(left)
		s.attachCircleEvent(right)

	case right == nil:
		// every site so far shares this sweep position and lies to the left
		arc.edge = s.createEdge(left.site, site, noVertex, noVertex)

	default:
		// site falls exactly on the breakpoint between left and right: that
		// breakpoint becomes a vertex right away
		s.detachCircleEvent(left)
		s.detachCircleEvent(right)

		vertex, ok := circumcenter(left.site.Vertex(), site.Vertex(), right.site.Vertex())
		if !ok {
			s.log.Warn("[sweep] Breakpoint sites are collinear", zap.Int("id", site.ID))
			vertex = Vertex{X: site.X, Y: breakpointY(left.site, site)}
		}

		right.edge.setStart(left.site, right.site, vertex)
		arc.edge = s.createEdge(left.site, site, noVertex, vertex)
		right.edge = s.createEdge(site, right.site, noVertex, vertex)

		s.attachCircleEvent(left)
		s.attachCircleEvent(right)
	}
}

// breakpointY is the y at which the parabola of focus lies above x = site.X
// for a sweep line through site.
func breakpointY(focus, site *Site) float64 {
	dx := site.X - focus.X
	return (dx*dx + focus.Y*focus.Y - site.Y*site.Y) / (2 * (focus.Y - site.Y))
}

// removeArc handles a circle event: the arc is squeezed out, every edge
// converging on the circle center is closed there and one new edge starts.
func (s *sweeper) removeArc(ev *circleEvent) {
	arc := ev.arc
	vertex := ev.vertex()
	prev := arc.prev()
	next := arc.next()

	s.detachArc(arc)

	// several arcs may vanish at the same vertex when more than three sites
	// are cocircular; collect all of them
	vanishing := []*beachArc{arc}

	left := prev
	for left.circle != nil && s.sameVertex(left.circle, vertex) {
		prev = left.prev()
		vanishing = append([]*beachArc{left}, vanishing...)
		s.detachArc(left)
		left = prev
	}
	vanishing = append([]*beachArc{left}, vanishing...)
	s.detachCircleEvent(left)

	right := next
	for right.circle != nil && s.sameVertex(right.circle, vertex) {
		next = right.next()
		vanishing = append(vanishing, right)
		s.detachArc(right)
		right = next
	}
	vanishing = append(vanishing, right)
	s.detachCircleEvent(right)

	for i := 1; i < len(vanishing); i++ {
		vanishing[i].edge.setStart(vanishing[i-1].site, vanishing[i].site, vertex)
	}

	left = vanishing[0]
	right = vanishing[len(vanishing)-1]
	right.edge = s.createEdge(left.site, right.site, noVertex, vertex)

	s.attachCircleEvent(left)
	s.attachCircleEvent(right)
}

func (s *sweeper) sameVertex(ev *circleEvent, v Vertex) bool {
	return math.Abs(ev.x-v.X) < sweepEpsilon && math.Abs(ev.yCenter-v.Y) < sweepEpsilon
}

func (s *sweeper) detachArc(arc *beachArc) {
	s.detachCircleEvent(arc)
	s.beach.remove(arc)
}

// attachCircleEvent schedules the collapse of arc if its neighbours converge.
func (s *sweeper) attachCircleEvent(arc *beachArc) {
	left, right := arc.prev(), arc.next()
	if left == nil || right == nil {
		return
	}
	if left.site == right.site {
		return
	}

	b := arc.site.Vertex().point()
	a := left.site.Vertex().point().Sub(b)
	c := right.site.Vertex().point().Sub(b)

	// the breakpoints around arc converge only for this orientation
	d := 2 * a.Cross(c)
	if d >= -2e-12 {
		return
	}

	ha := a.Dot(a)
	hc := c.Dot(c)
	x := (c.Y*ha - a.Y*hc) / d
	y := (a.X*hc - c.X*ha) / d
	yCenter := y + b.Y

	ev := &circleEvent{
		arc:     arc,
		x:       x + b.X,
		y:       yCenter + math.Sqrt(x*x+y*y),
		yCenter: yCenter,
	}
	arc.circle = ev
	s.queue.schedule(ev)
}

func (s *sweeper) detachCircleEvent(arc *beachArc) {
	if arc.circle == nil {
		return
	}
	s.queue.invalidate(arc.circle)
	arc.circle = nil
}
