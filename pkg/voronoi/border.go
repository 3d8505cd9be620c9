package voronoi

import (
	"sort"

	"go.uber.org/zap"
)

// stop is a point on a side where the border has to be split.
type stop struct {
	t     float64
	at    Vertex
	sites []*Site
}

// synthesizeBorder closes the diagram with edges along the four sides, split
// at every point where an interior edge touches a side. The edges come out as
// one cycle: down the left side, along the bottom, up the right side and back
// along the top.
func (c *clipper) synthesizeBorder(touches map[Sides][]touch, reg *siteRegistry) []*Edge {
	var edges []*Edge
	for _, side := range sideOrder {
		stops := c.stops(side, touches[side])
		for i := 1; i < len(stops); i++ {
			a, b := stops[i-1], stops[i]
			mid := Vertex{X: (a.at.X + b.at.X) / 2, Y: (a.at.Y + b.at.Y) / 2}

			candidates := append(append([]*Site(nil), a.sites...), b.sites...)
			owner := nearestSite(candidates, mid)
			if owner == nil {
				owner = reg.nearest(mid)
			}
			edges = append(edges, &Edge{Start: a.at, End: b.at, Left: owner, border: true})
		}
		c.log.Debug("[border] Side synthesized", zap.Stringer("side", side), zap.Int("edges", len(stops)-1))
	}
	return edges
}

// stops returns the corners of side plus every distinct touch point between
// them, ordered along the side.
func (c *clipper) stops(side Sides, touches []touch) []stop {
	from, to := c.box.side(side)
	length := c.box.along(side, to)

	first := stop{t: 0, at: from}
	last := stop{t: length, at: to}
	inner := make([]stop, 0, len(touches))

	for _, tc := range touches {
		t := c.box.along(side, tc.at)
		sites := []*Site{tc.edge.Left, tc.edge.Right}
		switch {
		case t <= c.eps:
			first.sites = append(first.sites, sites...)
		case t >= length-c.eps:
			last.sites = append(last.sites, sites...)
		default:
			inner = append(inner, stop{t: t, at: tc.at, sites: sites})
		}
	}

	sort.SliceStable(inner, func(i, j int) bool { return inner[i].t < inner[j].t })

	stops := make([]stop, 0, len(inner)+2)
	stops = append(stops, first)
	for _, s := range inner {
		prev := &stops[len(stops)-1]
		if s.t-prev.t <= c.eps {
			prev.sites = append(prev.sites, s.sites...)
			continue
		}
		stops = append(stops, s)
	}
	return append(stops, last)
}
