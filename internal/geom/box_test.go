package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDims_VolumeAndMaxFaceArea(t *testing.T) {
	d := Dims{Width: 10, Height: 15, Depth: 22}
	assert.Equal(t, 3300.0, d.Volume())
	assert.Equal(t, 330.0, d.MaxFaceArea())
}

func TestOrientations_EnumeratesSixPermutations(t *testing.T) {
	d := Dims{Width: 1, Height: 2, Depth: 3}
	seen := map[[3]float64]bool{}
	for _, o := range Orientations() {
		require.True(t, o.Valid())
		seen[d.Extents(o)] = true
	}
	assert.Len(t, seen, NumOrientations, "each orientation must produce a distinct permutation")
	assert.False(t, Orientation(6).Valid())
	assert.False(t, Orientation(-1).Valid())
}

func TestPlaced_IntervalFollowsOrientation(t *testing.T) {
	d := Dims{Width: 10, Height: 15, Depth: 22}
	p := d.Place(Point{X: 1, Y: 2, Z: 3}, 4) // x<-depth, y<-width, z<-height

	assert.Equal(t, Interval{A: 1, B: 23}, p.Interval(AxisX))
	assert.Equal(t, Interval{A: 2, B: 12}, p.Interval(AxisY))
	assert.Equal(t, Interval{A: 3, B: 18}, p.Interval(AxisZ))
	assert.Equal(t, [3]float64{22, 10, 15}, p.Extents())
}

func TestPlaced_BaseTopBottom(t *testing.T) {
	p := Dims{Width: 10, Height: 15, Depth: 22}.Place(Point{X: 5, Y: 7, Z: 0}, 0)

	assert.Equal(t, Footprint{X1: 5, Z1: 0, X2: 15, Z2: 22}, p.Base())
	assert.Equal(t, 220.0, p.Base().Area())
	assert.Equal(t, 7.0, p.Bottom())
	assert.Equal(t, 22.0, p.Top())
	assert.Equal(t, Point{X: 15, Y: 22, Z: 22}, p.Max())
}

func TestPlaced_VolumeIndependentOfOrientation(t *testing.T) {
	d := Dims{Width: 4, Height: 5, Depth: 6}
	for _, o := range Orientations() {
		assert.Equal(t, 120.0, d.Place(Point{}, o).Volume(), "orientation %d", o)
	}
}

func TestFromIntervals(t *testing.T) {
	p := FromIntervals(Interval{A: 1, B: 4}, Interval{A: 2, B: 7}, Interval{A: 0, B: 10})
	assert.Equal(t, Point{X: 1, Y: 2, Z: 0}, p.Pos)
	assert.Equal(t, Dims{Width: 3, Height: 5, Depth: 10}, p.Dims)
	assert.Equal(t, Orientation(0), p.Orient)
}

func TestPlaced_Shrink(t *testing.T) {
	env := Dims{Width: 100, Height: 50, Depth: 100}.Place(Point{}, 0)
	s := env.Shrink(5)
	assert.Equal(t, Point{X: 5, Y: 5, Z: 5}, s.Min())
	assert.Equal(t, Point{X: 95, Y: 45, Z: 95}, s.Max())

	collapsed := Dims{Width: 4, Height: 4, Depth: 4}.Place(Point{}, 0).Shrink(10)
	assert.Equal(t, 0.0, collapsed.Volume())
}

func TestPlaced_GrowXZ(t *testing.T) {
	p := Dims{Width: 10, Height: 10, Depth: 10}.Place(Point{X: 10, Y: 0, Z: 10}, 0)
	g := p.GrowXZ(2)
	assert.Equal(t, Interval{A: 8, B: 22}, g.Interval(AxisX))
	assert.Equal(t, Interval{A: 0, B: 10}, g.Interval(AxisY))
	assert.Equal(t, Interval{A: 8, B: 22}, g.Interval(AxisZ))
}
