package engine

import (
	"github.com/piwi3910/LoadCut/internal/geom"
	"github.com/piwi3910/LoadCut/internal/model"
)

// Cell fills one container with the parcels of an Ordering.
//
// Placement is greedy: parcels are taken in order, every orientation is tried
// at every anchor point, and the valid placement that keeps the bounding box
// of the load smallest wins. A parcel with no valid placement goes to
// overflow and is not retried.
type Cell struct {
	Envelope geom.Placed
	Settings model.PackSettings

	usable geom.Placed // envelope shrunk by the spacing on every face
	floor  float64     // lowest legal bottom height
}

// NewCell creates a cell for the given envelope. The envelope may sit
// anywhere in space; its minimum corner is the back-left-bottom of the cell.
func NewCell(envelope geom.Placed, settings model.PackSettings) *Cell {
	return &Cell{
		Envelope: envelope,
		Settings: settings,
		usable:   envelope.Shrink(settings.Spacing),
		floor:    envelope.Bottom() + settings.Spacing,
	}
}

// Usable returns the region boxes must stay inside.
func (c *Cell) Usable() geom.Placed {
	return c.usable
}

// Floor returns the height at which boxes stand on the container floor.
func (c *Cell) Floor() float64 {
	return c.floor
}

// corner is the back-left anchor on the floor.
func (c *Cell) corner() geom.Point {
	return geom.Point{
		X: c.Envelope.Interval(geom.AxisX).A + c.Settings.Spacing,
		Y: c.floor,
		Z: c.Envelope.Interval(geom.AxisZ).A + c.Settings.Spacing,
	}
}

// Fits reports whether b lies inside the usable region.
func (c *Cell) Fits(b geom.Placed) bool {
	return geom.Contains(c.usable, b)
}

// PutFirst places the head of the active list in the corner, turned so that
// its footprint is as large as possible. Heads that fit no orientation are
// moved to overflow until one fits or the list is empty.
func (c *Cell) PutFirst(o *Ordering) bool {
	anchor := c.corner()
	for o.Len() > 0 {
		head := o.active[0]
		var best geom.Placed
		bestArea := 0.0
		found := false
		for _, orient := range geom.Orientations() {
			trial := head.Dims.Place(anchor, orient)
			if !c.Fits(trial) {
				continue
			}
			if area := trial.Base().Area(); !found || area > bestArea {
				best, bestArea, found = trial, area, true
			}
		}
		if found {
			o.FillIndex = 0
			o.accept(best)
			return true
		}
		o.reject(0)
	}
	return false
}

// Ambit returns the anchor points for the next parcel: the floor corner,
// then for every accepted box the two corners beside it at its support
// level and the corner on its top face.
func (c *Cell) Ambit(accepted []*Parcel) []geom.Point {
	s := c.Settings.Spacing
	points := make([]geom.Point, 0, 1+3*len(accepted))
	points = append(points, c.corner())
	for _, p := range accepted {
		b := *p.Place
		x := b.Interval(geom.AxisX)
		y := b.Interval(geom.AxisY)
		z := b.Interval(geom.AxisZ)
		points = append(points,
			geom.Point{X: x.B + s, Y: y.A, Z: z.A},
			geom.Point{X: x.A, Y: y.A, Z: z.B + s},
			geom.Point{X: x.A, Y: y.B, Z: z.A},
		)
	}
	return points
}

// IsBoxSet reports whether candidate may stand where it is: inside the
// usable region, clear of every accepted box by the spacing, and either on
// the floor or resting on boxes that cover more than the support threshold
// of its footprint.
func (c *Cell) IsBoxSet(candidate geom.Placed, accepted []*Parcel) bool {
	if !c.Fits(candidate) {
		return false
	}
	clearance := candidate.GrowXZ(c.Settings.Spacing)
	for _, p := range accepted {
		if geom.Overlaps(clearance, *p.Place) {
			return false
		}
	}

	bottom := candidate.Bottom()
	if bottom == c.floor {
		return true
	}

	var contact float64
	for _, p := range accepted {
		if p.Place.Top() != bottom {
			continue
		}
		if face, ok := geom.Intersect(*p.Place, candidate); ok {
			contact += face.Base().Area()
		}
	}
	base := candidate.Base().Area()
	if base == 0 {
		return false
	}
	return contact/base > c.Settings.SupportThreshold
}

// Distribute runs the packing to completion. On return every parcel is
// either in Accepted with a placement or in Overflow.
func (c *Cell) Distribute(o *Ordering) {
	if o.FillIndex == 0 && !c.PutFirst(o) {
		return
	}
	for !o.Done() {
		if placement, ok := c.bestPlacement(o); ok {
			o.accept(placement)
		} else {
			o.reject(o.FillIndex)
		}
	}
}

// bestPlacement searches every orientation and anchor for the parcel at
// FillIndex. Trials work on value copies; the parcel itself is untouched.
func (c *Cell) bestPlacement(o *Ordering) (geom.Placed, bool) {
	accepted := o.Accepted()
	candidate := o.active[o.FillIndex]
	anchors := c.Ambit(accepted)

	var load geom.Placed
	hasLoad := false
	for i, p := range accepted {
		if i == 0 {
			load, hasLoad = *p.Place, true
			continue
		}
		load = geom.Enclose(load, *p.Place)
	}

	var best geom.Placed
	bestScore := 0.0
	found := false
	var tried [][3]float64

	for _, orient := range geom.Orientations() {
		ext := candidate.Dims.Extents(orient)
		if c.likeTried(ext, tried) {
			continue
		}
		tried = append(tried, ext)

		for _, anchor := range anchors {
			trial := candidate.Dims.Place(anchor, orient)
			if !c.IsBoxSet(trial, accepted) {
				continue
			}
			bounds := trial
			if hasLoad {
				bounds = geom.Enclose(load, trial)
			}
			if score := bounds.Volume(); !found || score < bestScore {
				best, bestScore, found = trial, score, true
			}
		}
	}
	return best, found
}

// likeTried reports whether ext is within the similarity tolerance of an
// orientation already tried. A zero tolerance tries every orientation.
func (c *Cell) likeTried(ext [3]float64, tried [][3]float64) bool {
	if c.Settings.SimilarityTolerance == 0 {
		return false
	}
	for _, t := range tried {
		if geom.Like(ext, t, c.Settings.SimilarityTolerance) {
			return true
		}
	}
	return false
}
