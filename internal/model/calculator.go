package model

import "math"

// LoadEstimate holds the results of a container count calculation.
type LoadEstimate struct {
	TotalItemVolume       float64 `json:"total_item_volume"`       // Volume of all boxes incl. spacing allowance (cubic mm)
	TotalCubicMeters      float64 `json:"total_cubic_meters"`      // Same volume in cubic metres
	ContainerVolume       float64 `json:"container_volume"`        // Volume of one container (cubic mm)
	ContainersNeededExact float64 `json:"containers_needed_exact"` // Exact fractional number of containers
	ContainersNeededMin   int     `json:"containers_needed_min"`   // Minimum containers (ceiling of exact)
	ContainersWithWaste   int     `json:"containers_with_waste"`   // Recommended containers including void factor
	WastePercent          float64 `json:"waste_percent"`           // Void factor applied (e.g., 15 for 15%)
	Spacing               float64 `json:"spacing"`                 // Spacing used in calculation
	OversizedItems        int     `json:"oversized_items"`         // Boxes that fit no orientation of the container
}

// cubicMMPerCubicMeter is the number of cubic millimetres in one cubic metre.
const cubicMMPerCubicMeter = 1e9

// CalculateLoadEstimate computes how many containers a manifest needs by volume.
// Each box is grown by the spacing on every axis, and an extra void percentage
// accounts for the gaps a real stacking leaves.
func CalculateLoadEstimate(items []Item, container Container, spacing, wastePercent float64) LoadEstimate {
	var totalVolume float64
	oversized := 0
	for _, it := range items {
		w := it.Width + spacing
		h := it.Height + spacing
		d := it.Depth + spacing
		totalVolume += w * h * d * float64(it.Quantity)
		if !fitsSomeOrientation(it, container) {
			oversized += it.Quantity
		}
	}

	containerVolume := container.Volume()
	if containerVolume <= 0 {
		return LoadEstimate{
			TotalItemVolume:  totalVolume,
			TotalCubicMeters: totalVolume / cubicMMPerCubicMeter,
			WastePercent:     wastePercent,
			Spacing:          spacing,
			OversizedItems:   oversized,
		}
	}

	exact := totalVolume / containerVolume
	minContainers := int(math.Ceil(exact))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	withWaste := int(math.Ceil(exact * wasteFactor))
	if withWaste < minContainers {
		withWaste = minContainers
	}

	return LoadEstimate{
		TotalItemVolume:       totalVolume,
		TotalCubicMeters:      totalVolume / cubicMMPerCubicMeter,
		ContainerVolume:       containerVolume,
		ContainersNeededExact: exact,
		ContainersNeededMin:   minContainers,
		ContainersWithWaste:   withWaste,
		WastePercent:          wastePercent,
		Spacing:               spacing,
		OversizedItems:        oversized,
	}
}

// fitsSomeOrientation reports whether the box fits the container when its
// dimensions and the container's are both sorted.
func fitsSomeOrientation(it Item, c Container) bool {
	a := sorted3(it.Width, it.Height, it.Depth)
	b := sorted3(c.Width, c.Height, c.Depth)
	return a[0] <= b[0] && a[1] <= b[1] && a[2] <= b[2]
}

func sorted3(x, y, z float64) [3]float64 {
	if x > y {
		x, y = y, x
	}
	if y > z {
		y, z = z, y
	}
	if x > y {
		x, y = y, x
	}
	return [3]float64{x, y, z}
}
