package voronoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arcsOf(b *beachline) []*Site {
	var out []*Site
	for n := b.arcs.head(); n != nil; n = n.next {
		out = append(out, n.value.site)
	}
	return out
}

func TestBreakPoints(t *testing.T) {
	a := &Site{ID: 0, X: 0, Y: 0}
	s := &Site{ID: 1, X: 4, Y: 2}

	var b beachline
	left := b.insertAfter(nil, a)
	mid := b.insertAfter(left, s)
	b.insertAfter(mid, a)
	require.Equal(t, []*Site{a, s, a}, arcsOf(&b))

	// parabolas with foci (0, 0) and (4, 2) under directrix y = 4 cross at
	// x = 8 -+ sqrt(40)
	assert.InDelta(t, 8-math.Sqrt(40), leftBreakPoint(mid, 4), 1e-9)
	assert.InDelta(t, 8+math.Sqrt(40), rightBreakPoint(mid, 4), 1e-9)
	assert.True(t, math.IsInf(leftBreakPoint(left, 4), -1))
	assert.True(t, math.IsInf(rightBreakPoint(mid.next(), 4), 1))
}

func TestBreakPoints_Degenerate(t *testing.T) {
	a := &Site{ID: 0, X: 0, Y: 0}
	c := &Site{ID: 1, X: 10, Y: 0}

	var b beachline
	left := b.insertAfter(nil, a)
	right := b.insertAfter(left, c)

	// equal distance to the directrix
	assert.Equal(t, 5.0, leftBreakPoint(right, 3))
	// focus on the directrix
	assert.Equal(t, 10.0, leftBreakPoint(right, 0))
	assert.Equal(t, 10.0, rightBreakPoint(right, 0))
}

func TestBeachline_Locate(t *testing.T) {
	a := &Site{ID: 0, X: 0, Y: 0}
	c := &Site{ID: 1, X: 10, Y: 0}

	var b beachline
	l, r := b.locate(3, 1)
	assert.Nil(t, l)
	assert.Nil(t, r)

	left := b.insertAfter(nil, a)

	l, r = b.locate(3, 1)
	assert.Same(t, left, l)
	assert.Same(t, left, r)

	// same sweep position: the new site lies past the only arc
	l, r = b.locate(10, 0)
	assert.Same(t, left, l)
	assert.Nil(t, r)

	right := b.insertAfter(left, c)
	require.Equal(t, 2, b.len())

	tests := []struct {
		name        string
		x           float64
		left, right *beachArc
	}{
		{"inside left arc", 2, left, left},
		{"inside right arc", 8, right, right},
		{"on breakpoint", 5, left, right},
		{"within epsilon of breakpoint", 5 + sweepEpsilon/2, left, right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := b.locate(tt.x, 10)
			assert.Same(t, tt.left, l)
			assert.Same(t, tt.right, r)
		})
	}

	b.remove(left)
	assert.Equal(t, []*Site{c}, arcsOf(&b))
	assert.Nil(t, right.prev())
}
