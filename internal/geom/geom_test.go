package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectIntervals_Overlap(t *testing.T) {
	got, ok := IntersectIntervals(Interval{A: 0, B: 10}, Interval{A: 5, B: 20})
	require.True(t, ok)
	assert.Equal(t, Interval{A: 5, B: 10}, got)
}

func TestIntersectIntervals_Symmetric(t *testing.T) {
	cases := [][2]Interval{
		{{A: 0, B: 10}, {A: 5, B: 20}},
		{{A: 0, B: 10}, {A: 2, B: 3}},
		{{A: 0, B: 10}, {A: 10, B: 12}},
		{{A: 0, B: 10}, {A: 11, B: 12}},
		{{A: -5, B: -1}, {A: -3, B: 4}},
	}
	for _, c := range cases {
		ij, okIJ := IntersectIntervals(c[0], c[1])
		ji, okJI := IntersectIntervals(c[1], c[0])
		assert.Equal(t, okIJ, okJI, "presence differs for %v", c)
		assert.Equal(t, ij, ji, "result differs for %v", c)
	}
}

func TestIntersectIntervals_TouchingIsPresent(t *testing.T) {
	got, ok := IntersectIntervals(Interval{A: 0, B: 10}, Interval{A: 10, B: 30})
	require.True(t, ok, "touching intervals must overlap")
	assert.Equal(t, 0.0, got.Len())
	assert.Equal(t, 10.0, got.A)
}

func TestIntersectIntervals_Disjoint(t *testing.T) {
	_, ok := IntersectIntervals(Interval{A: 0, B: 10}, Interval{A: 20, B: 30})
	assert.False(t, ok)
}

func TestIntersectIntervals_Contained(t *testing.T) {
	got, ok := IntersectIntervals(Interval{A: 0, B: 100}, Interval{A: 20, B: 30})
	require.True(t, ok)
	assert.Equal(t, Interval{A: 20, B: 30}, got)
}

func TestFootprintArea(t *testing.T) {
	assert.Equal(t, 200.0, Footprint{X1: 0, Z1: 0, X2: 10, Z2: 20}.Area())
	assert.Equal(t, 200.0, Footprint{X1: 10, Z1: 20, X2: 0, Z2: 0}.Area())
}

func TestPointCoord(t *testing.T) {
	p := Point{X: 1, Y: 2, Z: 3}
	assert.Equal(t, 1.0, p.Coord(AxisX))
	assert.Equal(t, 2.0, p.Coord(AxisY))
	assert.Equal(t, 3.0, p.Coord(AxisZ))
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "x", AxisX.String())
	assert.Equal(t, "y", AxisY.String())
	assert.Equal(t, "z", AxisZ.String())
}
