package voronoi

import (
	"math"
	"testing"

	reference "github.com/pzsz/voronoi"
	"github.com/stretchr/testify/require"
)

// oracleSegments runs github.com/pzsz/voronoi over the same sites and returns
// its clipped edges, leaving out anything it failed to close or clip.
func oracleSegments(points []Vertex, box BoundingBox) [][2]Vertex {
	sites := make([]reference.Vertex, len(points))
	for i, p := range points {
		sites[i] = reference.Vertex{X: p.X, Y: p.Y}
	}
	d := reference.ComputeDiagram(sites, reference.NewBBox(box.MinX, box.MaxX, box.MinY, box.MaxY), false)

	var out [][2]Vertex
	for _, e := range d.Edges {
		a := Vertex{X: e.Va.X, Y: e.Va.Y}
		b := Vertex{X: e.Vb.X, Y: e.Vb.Y}
		if !a.isFinite() || !b.isFinite() || a.Equal(b, testEps) {
			continue
		}
		inside := box.rect().ExpandedByMargin(testEps)
		if !inside.ContainsPoint(a.point()) || !inside.ContainsPoint(b.point()) {
			continue
		}
		out = append(out, [2]Vertex{a, b})
	}
	return out
}

func TestTessellate_MatchesReference(t *testing.T) {
	tests := []struct {
		name string
		n    int
		seed int64
	}{
		{"few", 5, 1},
		{"some", 50, 2},
		{"many", 500, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// keep sites away from the sides so no bisector runs along one
			points := randomPoints(tt.n, tt.seed, 900)
			for i := range points {
				points[i].X += 50
				points[i].Y += 50
			}

			d := mustTessellate(t, points, 0, 0, 1000, 1000)
			want := oracleSegments(points, d.Bounds)
			var got [][2]Vertex
			for _, e := range d.InteriorEdges() {
				if e.Length() > testEps {
					got = append(got, [2]Vertex{e.Start, e.End})
				}
			}
			requireSameSegments(t, want, got, testEps)

			for _, e := range d.InteriorEdges() {
				// every interior edge is equidistant from its two sites
				mid := Vertex{X: (e.Start.X + e.End.X) / 2, Y: (e.Start.Y + e.End.Y) / 2}
				dl := math.Hypot(mid.X-e.Left.X, mid.Y-e.Left.Y)
				dr := math.Hypot(mid.X-e.Right.X, mid.Y-e.Right.Y)
				require.InDelta(t, dl, dr, 1e-6)
				// and no other site is closer
				require.Contains(t, []*Site{e.Left, e.Right}, nearestSite(d.Sites, mid))
			}
		})
	}
}
