package geom

import "math"

// Orientation selects one of the six axis permutations in the rotation
// table. Only axis-aligned rotations exist.
type Orientation int

// NumOrientations is the number of axis-aligned orientations of a cuboid.
const NumOrientations = 6

// rotations maps each orientation to the physical dimension
// (0=width, 1=height, 2=depth) that lies along logical axes x, y and z.
var rotations = [NumOrientations][3]int{
	{0, 1, 2},
	{0, 2, 1},
	{1, 0, 2},
	{1, 2, 0},
	{2, 0, 1},
	{2, 1, 0},
}

// Orientations returns all orientations in enumeration order.
func Orientations() []Orientation {
	out := make([]Orientation, NumOrientations)
	for i := range out {
		out[i] = Orientation(i)
	}
	return out
}

// Valid reports whether o indexes the rotation table.
func (o Orientation) Valid() bool {
	return o >= 0 && o < NumOrientations
}

// Physical returns the physical dimension index lying along logical axis a.
func (o Orientation) Physical(a Axis) int {
	return rotations[o][a]
}

// Dims holds the fixed dimensions of an unplaced box.
type Dims struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Along returns the physical extent with index 0 (width), 1 (height) or 2 (depth).
func (d Dims) Along(physical int) float64 {
	switch physical {
	case 1:
		return d.Height
	case 2:
		return d.Depth
	default:
		return d.Width
	}
}

// Volume returns width * height * depth.
func (d Dims) Volume() float64 {
	return d.Width * d.Height * d.Depth
}

// MaxFaceArea returns the largest of the three face areas.
func (d Dims) MaxFaceArea() float64 {
	return math.Max(d.Height*d.Width, math.Max(d.Height*d.Depth, d.Depth*d.Width))
}

// Extents returns the (x, y, z) extents of the box when turned to o.
func (d Dims) Extents(o Orientation) [3]float64 {
	return [3]float64{
		d.Along(o.Physical(AxisX)),
		d.Along(o.Physical(AxisY)),
		d.Along(o.Physical(AxisZ)),
	}
}

// Place anchors the box with its minimum corner at pos, turned to o.
func (d Dims) Place(pos Point, o Orientation) Placed {
	return Placed{Dims: d, Pos: pos, Orient: o}
}

// Placed is a box anchored in space. Pos is its minimum corner.
type Placed struct {
	Dims   Dims        `json:"dims"`
	Pos    Point       `json:"pos"`
	Orient Orientation `json:"orientation"`
}

// FromIntervals builds a box in orientation 0 spanning the three intervals.
func FromIntervals(x, y, z Interval) Placed {
	return Placed{
		Dims: Dims{Width: x.Len(), Height: y.Len(), Depth: z.Len()},
		Pos:  Point{X: x.A, Y: y.A, Z: z.A},
	}
}

// Interval returns the span of p along logical axis a. The orientation picks
// which physical dimension lies along a; the span starts at p's coordinate on a.
func (p Placed) Interval(a Axis) Interval {
	start := p.Pos.Coord(a)
	return Interval{A: start, B: start + p.Dims.Along(p.Orient.Physical(a))}
}

// Extents returns the lengths of the three axis intervals.
func (p Placed) Extents() [3]float64 {
	return [3]float64{
		p.Interval(AxisX).Len(),
		p.Interval(AxisY).Len(),
		p.Interval(AxisZ).Len(),
	}
}

// Volume is the product of the three interval lengths.
func (p Placed) Volume() float64 {
	e := p.Extents()
	return e[0] * e[1] * e[2]
}

// Base returns the floor-contact footprint spanned by the x and z intervals.
func (p Placed) Base() Footprint {
	x := p.Interval(AxisX)
	z := p.Interval(AxisZ)
	return Footprint{X1: x.A, Z1: z.A, X2: x.B, Z2: z.B}
}

// Bottom returns the height of the lower face.
func (p Placed) Bottom() float64 {
	return p.Interval(AxisY).A
}

// Top returns the height of the upper face.
func (p Placed) Top() float64 {
	return p.Interval(AxisY).B
}

// Min returns the minimum corner.
func (p Placed) Min() Point {
	return p.Pos
}

// Max returns the maximum corner.
func (p Placed) Max() Point {
	return Point{
		X: p.Interval(AxisX).B,
		Y: p.Interval(AxisY).B,
		Z: p.Interval(AxisZ).B,
	}
}

// Shrink returns the box reduced by m on all six faces. The result is
// clamped to zero extent when m exceeds half a side.
func (p Placed) Shrink(m float64) Placed {
	var iv [3]Interval
	for _, a := range Axes {
		in := p.Interval(a)
		in.A += m
		in.B -= m
		if in.B < in.A {
			mid := (in.A + in.B) / 2
			in.A, in.B = mid, mid
		}
		iv[a] = in
	}
	return FromIntervals(iv[0], iv[1], iv[2])
}

// GrowXZ returns the box enlarged by m on its four vertical faces.
func (p Placed) GrowXZ(m float64) Placed {
	x := p.Interval(AxisX)
	z := p.Interval(AxisZ)
	return FromIntervals(
		Interval{A: x.A - m, B: x.B + m},
		p.Interval(AxisY),
		Interval{A: z.A - m, B: z.B + m},
	)
}
