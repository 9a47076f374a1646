package geom

import "math"

// IntersectIntervals returns the overlap of i and j. Intervals that only touch
// overlap with zero length; disjoint intervals report false.
func IntersectIntervals(i, j Interval) (Interval, bool) {
	lo, hi := i, j
	if lo.A > hi.A {
		lo, hi = hi, lo
	}
	if hi.A <= lo.B {
		return Interval{A: hi.A, B: math.Min(lo.B, hi.B)}, true
	}
	return Interval{}, false
}

// Intersect returns the box shared by a and b. Each box's intervals are read
// through its own orientation. Boxes sharing only a face, edge or corner
// intersect in a box of zero volume.
func Intersect(a, b Placed) (Placed, bool) {
	var iv [3]Interval
	for _, ax := range Axes {
		in, ok := IntersectIntervals(a.Interval(ax), b.Interval(ax))
		if !ok {
			return Placed{}, false
		}
		iv[ax] = in
	}
	return FromIntervals(iv[0], iv[1], iv[2]), true
}

// Overlaps reports whether a and b share a positive volume.
func Overlaps(a, b Placed) bool {
	x, ok := Intersect(a, b)
	return ok && x.Volume() > 0
}

// Contains reports whether a lies entirely inside envelope.
func Contains(envelope, a Placed) bool {
	x, ok := Intersect(a, envelope)
	if !ok {
		return false
	}
	return x.Volume() == a.Volume()
}

// Like reports whether two extent triples differ by no more than tol along
// every axis, measured as the ratio of the two extents.
func Like(a, b [3]float64, tol float64) bool {
	for i := range a {
		if b[i] == 0 {
			if a[i] != 0 {
				return false
			}
			continue
		}
		if math.Abs(a[i]/b[i]-1) > tol {
			return false
		}
	}
	return true
}

// LikeBox applies Like to the extents of two placed boxes.
func LikeBox(a, b Placed, tol float64) bool {
	return Like(a.Extents(), b.Extents(), tol)
}

// Bounds returns the smallest axis-aligned box enclosing every box given.
// It reports false when called with no boxes.
func Bounds(boxes ...Placed) (Placed, bool) {
	if len(boxes) == 0 {
		return Placed{}, false
	}
	lo := boxes[0].Min()
	hi := boxes[0].Max()
	for _, b := range boxes[1:] {
		lo, hi = extend(lo, hi, b)
	}
	return spanning(lo, hi), true
}

// Enclose grows bounds to also cover b.
func Enclose(bounds, b Placed) Placed {
	lo, hi := extend(bounds.Min(), bounds.Max(), b)
	return spanning(lo, hi)
}

func extend(lo, hi Point, b Placed) (Point, Point) {
	bmin, bmax := b.Min(), b.Max()
	lo.X = math.Min(lo.X, bmin.X)
	lo.Y = math.Min(lo.Y, bmin.Y)
	lo.Z = math.Min(lo.Z, bmin.Z)
	hi.X = math.Max(hi.X, bmax.X)
	hi.Y = math.Max(hi.Y, bmax.Y)
	hi.Z = math.Max(hi.Z, bmax.Z)
	return lo, hi
}

func spanning(lo, hi Point) Placed {
	return FromIntervals(
		Interval{A: lo.X, B: hi.X},
		Interval{A: lo.Y, B: hi.Y},
		Interval{A: lo.Z, B: hi.Z},
	)
}
