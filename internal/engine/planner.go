package engine

import (
	"github.com/charmbracelet/log"

	"github.com/piwi3910/LoadCut/internal/geom"
	"github.com/piwi3910/LoadCut/internal/model"
)

// Planner runs the 3D load planning algorithm.
type Planner struct {
	Settings model.PackSettings
	Logger   *log.Logger
}

func New(settings model.PackSettings) *Planner {
	return &Planner{Settings: settings, Logger: log.Default()}
}

// Plan takes items and a container, returns the load plan. Items are
// expanded by quantity; boxes that cannot be placed are listed in Overflow
// in the order they were given up on.
func (p *Planner) Plan(items []model.Item, container model.Container) model.LoadResult {
	logger := p.Logger
	if logger == nil {
		logger = log.Default()
	}

	// Expand items by quantity into individual parcels
	var parcels []*Parcel
	for _, it := range items {
		for i := 0; i < it.Quantity; i++ {
			cp := it
			cp.Quantity = 1
			parcels = append(parcels, NewParcel(cp))
		}
	}

	order := NewOrdering(parcels, p.Settings.SortKey)
	cell := NewCell(Envelope(container), p.Settings)
	logger.Debug("planning load",
		"container", container.Label,
		"boxes", len(parcels),
		"spacing", p.Settings.Spacing,
		"sort", p.Settings.SortKey)

	cell.Distribute(order)

	result := model.LoadResult{Container: container}
	for _, parcel := range order.Accepted() {
		result.Placements = append(result.Placements, toPlacement(parcel))
	}
	for _, parcel := range order.Overflow() {
		logger.Debug("box does not fit",
			"label", parcel.Item.Label,
			"id", parcel.Item.ID,
			"dims", []float64{parcel.Dims.Width, parcel.Dims.Height, parcel.Dims.Depth})
		result.Overflow = append(result.Overflow, parcel.Item)
	}

	logger.Debug("load planned",
		"placed", result.PlacedCount(),
		"overflow", len(result.Overflow),
		"utilization", result.Utilization())
	return result
}

// Envelope returns the container interior as a box anchored at the origin.
func Envelope(c model.Container) geom.Placed {
	return geom.Dims{Width: c.Width, Height: c.Height, Depth: c.Depth}.Place(geom.Point{}, 0)
}

// toPlacement converts an accepted parcel into its model form.
func toPlacement(p *Parcel) model.Placement {
	b := *p.Place
	ext := b.Extents()
	return model.Placement{
		Item:        p.Item,
		X:           b.Pos.X,
		Y:           b.Pos.Y,
		Z:           b.Pos.Z,
		Orientation: int(b.Orient),
		Width:       ext[0],
		Height:      ext[1],
		Depth:       ext[2],
	}
}

// placedBox rebuilds the oriented box of a placement.
func placedBox(pl model.Placement) geom.Placed {
	d := geom.Dims{Width: pl.Item.Width, Height: pl.Item.Height, Depth: pl.Item.Depth}
	return d.Place(geom.Point{X: pl.X, Y: pl.Y, Z: pl.Z}, geom.Orientation(pl.Orientation))
}
