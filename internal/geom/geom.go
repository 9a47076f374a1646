// Package geom provides the axis-aligned geometry used by the load planner:
// points, 1D intervals, floor footprints and oriented boxes, together with
// the intersection and containment tests built on them.
//
// The frame is right-handed with Y pointing up. The floor of a container is
// its minimum Y, and a box's footprint lies in the (x,z) plane.
package geom

import "math"

// Axis identifies one of the three logical (spatial) axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY      // vertical
	AxisZ
)

// Axes lists the logical axes in enumeration order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Point is a 3D coordinate in mm.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Coord returns the coordinate of p along the logical axis a.
func (p Point) Coord(a Axis) float64 {
	switch a {
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	default:
		return p.X
	}
}

// Interval is a closed 1D span [A, B].
type Interval struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Len returns B - A.
func (i Interval) Len() float64 {
	return i.B - i.A
}

// Footprint is a rectangle in the (x,z) plane.
type Footprint struct {
	X1 float64 `json:"x1"`
	Z1 float64 `json:"z1"`
	X2 float64 `json:"x2"`
	Z2 float64 `json:"z2"`
}

// Area returns the absolute area of the footprint.
func (f Footprint) Area() float64 {
	return math.Abs((f.X2 - f.X1) * (f.Z2 - f.Z1))
}
