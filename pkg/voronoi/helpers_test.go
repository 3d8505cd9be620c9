package voronoi

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const testEps = 1e-6

func v(x, y float64) Vertex {
	return Vertex{X: x, Y: y}
}

func seg(x1, y1, x2, y2 float64) [2]Vertex {
	return [2]Vertex{v(x1, y1), v(x2, y2)}
}

func sameSegment(a, b [2]Vertex, eps float64) bool {
	return (a[0].Equal(b[0], eps) && a[1].Equal(b[1], eps)) ||
		(a[0].Equal(b[1], eps) && a[1].Equal(b[0], eps))
}

func mustTessellate(t *testing.T, points []Vertex, minX, minY, maxX, maxY float64) *Diagram {
	t.Helper()
	d, err := Tessellate(points, minX, minY, maxX, maxY)
	require.NoError(t, err)
	require.NotNil(t, d)
	requireGraphInvariants(t, d)
	return d
}

// findEdge returns the edge running between a and b in either direction.
func findEdge(t *testing.T, d *Diagram, s [2]Vertex) *Edge {
	t.Helper()
	for _, e := range d.Edges {
		if sameSegment([2]Vertex{e.Start, e.End}, s, testEps) {
			return e
		}
	}
	require.Failf(t, "edge not found", "no edge %v-%v in %s", s[0], s[1], dump(d))
	return nil
}

func dump(d *Diagram) string {
	out := ""
	for _, e := range d.Edges {
		out += fmt.Sprintf("\n  #%d %v-%v border=%v neighbours=%d", e.ID, e.Start, e.End, e.IsBorder(), len(e.Neighbours))
	}
	return out
}

func segments(edges []*Edge) [][2]Vertex {
	out := make([][2]Vertex, len(edges))
	for i, e := range edges {
		out[i] = [2]Vertex{e.Start, e.End}
	}
	return out
}

// requireSameSegments checks that got and want hold the same segments, in
// any order and orientation.
func requireSameSegments(t *testing.T, want, got [][2]Vertex, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	used := make([]bool, len(got))
	for _, w := range want {
		found := false
		for i, g := range got {
			if !used[i] && sameSegment(w, g, eps) {
				used[i] = true
				found = true
				break
			}
		}
		require.Truef(t, found, "segment %v-%v missing from %v", w[0], w[1], got)
	}
}

// requireGraphInvariants checks the properties every result must have.
func requireGraphInvariants(t *testing.T, d *Diagram) {
	t.Helper()

	for i, e := range d.Edges {
		require.Equal(t, i, e.ID)
		require.GreaterOrEqual(t, len(e.Neighbours), 2, "edge %d %v-%v", e.ID, e.Start, e.End)
		require.Greater(t, e.Length(), 0.0)
		require.True(t, d.Bounds.Contains(e.Start), "start %v outside", e.Start)
		require.True(t, d.Bounds.Contains(e.End), "end %v outside", e.End)
		if !e.IsBorder() {
			require.NotNil(t, e.Left)
			require.NotNil(t, e.Right)
		}

		for _, n := range e.Neighbours {
			require.NotSame(t, e, n)
			require.Contains(t, n.Neighbours, e, "neighbours of %d and %d are not symmetric", e.ID, n.ID)
		}

		// no dangling endpoints
		for _, end := range []Vertex{e.Start, e.End} {
			shared := false
			for _, n := range e.Neighbours {
				if n.Start.Equal(end, DefaultTolerance) || n.End.Equal(end, DefaultTolerance) {
					shared = true
					break
				}
			}
			require.True(t, shared, "endpoint %v of edge %d is dangling", end, e.ID)
		}
	}

	border := d.BorderEdges()
	require.GreaterOrEqual(t, len(border), 4)
	for i, e := range border {
		next := border[(i+1)%len(border)]
		require.Equal(t, e.End, next.Start, "border cycle broken after edge %d", e.ID)
		require.NotEqual(t, SideNone, d.Bounds.Sides(e.Start, 0)&d.Bounds.Sides(e.End, 0), "border edge %d leaves the border", e.ID)
	}
	for _, corner := range d.Bounds.Corners() {
		n := 0
		for _, e := range border {
			if e.Start == corner || e.End == corner {
				n++
			}
		}
		require.Equal(t, 2, n, "corner %v", corner)
	}
}

func randomPoints(n int, seed int64, size float64) []Vertex {
	rnd := rand.New(rand.NewSource(seed))
	out := make([]Vertex, n)
	for i := range out {
		out[i] = v(rnd.Float64()*size, rnd.Float64()*size)
	}
	return out
}

func neighbourCounts(edges []*Edge) map[int]int {
	out := make(map[int]int)
	for _, e := range edges {
		out[len(e.Neighbours)]++
	}
	return out
}
