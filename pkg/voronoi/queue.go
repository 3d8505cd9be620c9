package voronoi

// circleEvent predicts the sweep position at which arc is squeezed out of the
// beachline by its two neighbours.
type circleEvent struct {
	node *rbNode[*circleEvent]
	arc  *beachArc
	// x and y give the lowest point of the circle, which is the sweep key.
	x float64
	y float64
	// yCenter is the y of the circle center; (x, yCenter) becomes a vertex.
	yCenter float64
	seq     uint64
	valid   bool
}

func (c *circleEvent) vertex() Vertex {
	return Vertex{X: c.x, Y: c.yCenter}
}

// before orders circle events by sweep coordinate, then x, then the order
// in which they were scheduled.
func (c *circleEvent) before(o *circleEvent) bool {
	if c.y != o.y {
		return c.y < o.y
	}
	if c.x != o.x {
		return c.x < o.x
	}
	return c.seq < o.seq
}

// event is either a site event or a circle event, never both.
type event struct {
	site   *Site
	circle *circleEvent
}

func (e event) isSite() bool {
	return e.site != nil
}

// eventQueue merges the presorted site events with a tree of pending circle
// events.
type eventQueue struct {
	sites   []*Site
	next    int
	circles rbTree[*circleEvent]
	first   *circleEvent
	seq     uint64
}

func newEventQueue(sites []*Site) *eventQueue {
	return &eventQueue{sites: sites}
}

func (q *eventQueue) len() int {
	return len(q.sites) - q.next + q.circles.len()
}

// schedule inserts a circle event in sweep order.
func (q *eventQueue) schedule(ev *circleEvent) {
	q.seq++
	ev.seq = q.seq
	ev.valid = true

	var predecessor *rbNode[*circleEvent]
	node := q.circles.root
	for node != nil {
		if ev.before(node.value) {
			if node.left == nil {
				predecessor = node.previous
				break
			}
			node = node.left
		} else {
			if node.right == nil {
				predecessor = node
				break
			}
			node = node.right
		}
	}

	ev.node = q.circles.insertSuccessor(predecessor, ev)
	if predecessor == nil {
		q.first = ev
	}
}

// invalidate withdraws a circle event that has not been processed yet.
func (q *eventQueue) invalidate(ev *circleEvent) {
	ev.valid = false
	if ev.node == nil {
		return
	}
	q.unlink(ev)
}

func (q *eventQueue) unlink(ev *circleEvent) {
	if ev.node.previous == nil {
		if ev.node.next != nil {
			q.first = ev.node.next.value
		} else {
			q.first = nil
		}
	}
	q.circles.removeNode(ev.node)
	ev.node = nil
}

// popMin removes and returns the earliest event. A site event wins over a
// circle event only when it is strictly earlier in (y, x).
func (q *eventQueue) popMin() (event, bool) {
	var site *Site
	if q.next < len(q.sites) {
		site = q.sites[q.next]
	}
	circle := q.first

	if site != nil && (circle == nil || site.Y < circle.y || (site.Y == circle.y && site.X < circle.x)) {
		q.next++
		return event{site: site}, true
	}
	if circle != nil {
		q.unlink(circle)
		return event{circle: circle}, true
	}
	return event{}, false
}
