package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/LoadCut/internal/geom"
	"github.com/piwi3910/LoadCut/internal/model"
)

func parcels(items ...model.Item) []*Parcel {
	out := make([]*Parcel, len(items))
	for i, it := range items {
		out[i] = NewParcel(it)
	}
	return out
}

func labels(ps []*Parcel) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Item.Label
	}
	return out
}

func TestNewOrdering_SortsByMaxFaceArea(t *testing.T) {
	in := parcels(
		model.NewItem("small", 10, 10, 10, 1),  // 100
		model.NewItem("flat", 50, 2, 50, 1),    // 2500
		model.NewItem("tall", 10, 100, 10, 1),  // 1000
		model.NewItem("small2", 10, 10, 10, 1), // 100
	)
	o := NewOrdering(in, model.SortMaxArea)

	assert.Equal(t, []string{"flat", "tall", "small", "small2"}, labels(o.Active()))
	assert.Equal(t, 0, o.FillIndex)
	assert.Empty(t, o.Accepted())
	assert.Empty(t, o.Overflow())
	assert.Equal(t, 4, o.Len())
	assert.Equal(t, []string{"small", "flat", "tall", "small2"}, labels(in), "input slice is not reordered")
}

func TestNewOrdering_SortsByVolume(t *testing.T) {
	in := parcels(
		model.NewItem("flat", 50, 2, 50, 1),   // 5000
		model.NewItem("tall", 10, 100, 10, 1), // 10000
		model.NewItem("cube", 20, 20, 20, 1),  // 8000
	)
	o := NewOrdering(in, model.SortVolume)
	assert.Equal(t, []string{"tall", "cube", "flat"}, labels(o.Active()))
}

func TestOrdering_RejectAndAccept(t *testing.T) {
	o := NewOrdering(parcels(
		model.NewItem("a", 30, 30, 30, 1),
		model.NewItem("b", 20, 20, 20, 1),
		model.NewItem("c", 10, 10, 10, 1),
	), model.SortMaxArea)

	first := o.accept(geom.Dims{Width: 30, Height: 30, Depth: 30}.Place(geom.Point{}, 0))
	require.NotNil(t, first.Place)
	assert.Equal(t, 1, o.FillIndex)

	rejected := o.reject(1)
	assert.Equal(t, "b", rejected.Item.Label)
	assert.Nil(t, rejected.Place)
	assert.Equal(t, 1, o.FillIndex, "rejecting never moves FillIndex")
	assert.Equal(t, []string{"a", "c"}, labels(o.Active()))
	assert.Equal(t, []string{"b"}, labels(o.Overflow()))
	assert.Equal(t, []string{"c"}, labels(o.Pending()))
	assert.False(t, o.Done())

	o.reject(1)
	assert.True(t, o.Done())
	assert.Equal(t, []string{"b", "c"}, labels(o.Overflow()))
}

func TestOrdering_Empty(t *testing.T) {
	o := NewOrdering(nil, model.SortMaxArea)
	assert.Equal(t, 0, o.Len())
	assert.True(t, o.Done())
}
