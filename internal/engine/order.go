package engine

import (
	"sort"

	"github.com/piwi3910/LoadCut/internal/geom"
	"github.com/piwi3910/LoadCut/internal/model"
)

// Parcel is one physical box moving through a packing run. Place is nil
// until the box has been accepted into the container.
type Parcel struct {
	Item  model.Item
	Dims  geom.Dims
	Place *geom.Placed
}

// NewParcel wraps a single item (quantity is ignored) as an unplaced parcel.
func NewParcel(it model.Item) *Parcel {
	return &Parcel{
		Item: it,
		Dims: geom.Dims{Width: it.Width, Height: it.Height, Depth: it.Depth},
	}
}

// Ordering is the worklist of a packing run. Parcels in [0, FillIndex) have
// been accepted; the rest are still pending. Rejected parcels are moved to
// the overflow list and never retried.
type Ordering struct {
	FillIndex int

	active   []*Parcel
	overflow []*Parcel
}

// NewOrdering sorts the parcels once by key, largest first. The sort is
// stable so equal keys keep input order.
func NewOrdering(parcels []*Parcel, key model.SortKey) *Ordering {
	active := make([]*Parcel, len(parcels))
	copy(active, parcels)

	weight := func(p *Parcel) float64 { return p.Dims.MaxFaceArea() }
	if key == model.SortVolume {
		weight = func(p *Parcel) float64 { return p.Dims.Volume() }
	}
	sort.SliceStable(active, func(i, j int) bool {
		return weight(active[i]) > weight(active[j])
	})

	return &Ordering{active: active}
}

// Len returns the length of the active list.
func (o *Ordering) Len() int {
	return len(o.active)
}

// Active returns the active list, accepted parcels first.
func (o *Ordering) Active() []*Parcel {
	return o.active
}

// Accepted returns the parcels placed so far.
func (o *Ordering) Accepted() []*Parcel {
	return o.active[:o.FillIndex]
}

// Pending returns the parcels not yet considered.
func (o *Ordering) Pending() []*Parcel {
	return o.active[o.FillIndex:]
}

// Overflow returns the rejected parcels in rejection order.
func (o *Ordering) Overflow() []*Parcel {
	return o.overflow
}

// Done reports whether every parcel has been accepted or rejected.
func (o *Ordering) Done() bool {
	return o.FillIndex >= len(o.active)
}

// reject moves the parcel at index i from the active list to overflow.
func (o *Ordering) reject(i int) *Parcel {
	p := o.active[i]
	o.active = append(o.active[:i], o.active[i+1:]...)
	o.overflow = append(o.overflow, p)
	return p
}

// accept commits placement to the parcel at FillIndex and advances it.
func (o *Ordering) accept(placement geom.Placed) *Parcel {
	p := o.active[o.FillIndex]
	committed := placement
	p.Place = &committed
	o.FillIndex++
	return p
}
