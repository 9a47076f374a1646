package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Item represents a box to be loaded. Dimensions are fixed in mm; the planner
// decides which way up the box goes.
type Item struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Width    float64 `json:"width"`  // mm
	Height   float64 `json:"height"` // mm
	Depth    float64 `json:"depth"`  // mm
	Quantity int     `json:"quantity"`
}

func NewItem(label string, w, h, d float64, qty int) Item {
	return Item{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Width:    w,
		Height:   h,
		Depth:    d,
		Quantity: qty,
	}
}

// Volume returns the volume of a single box in cubic mm.
func (it Item) Volume() float64 {
	return it.Width * it.Height * it.Depth
}

// MaxFaceArea returns the area of the largest face of a single box.
func (it Item) MaxFaceArea() float64 {
	return math.Max(it.Height*it.Width, math.Max(it.Height*it.Depth, it.Depth*it.Width))
}

// Container represents the usable interior of the cargo space.
type Container struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Width  float64 `json:"width"`  // mm, along x
	Height float64 `json:"height"` // mm, along y (vertical)
	Depth  float64 `json:"depth"`  // mm, along z
}

func NewContainer(label string, w, h, d float64) Container {
	return Container{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Width:  w,
		Height: h,
		Depth:  d,
	}
}

// Volume returns the interior volume in cubic mm.
func (c Container) Volume() float64 {
	return c.Width * c.Height * c.Depth
}

// SortKey selects the order in which the planner considers boxes.
type SortKey string

const (
	SortMaxArea SortKey = "max_area" // Largest face first (stable base first)
	SortVolume  SortKey = "volume"   // Largest volume first
)

// PackSettings holds the heuristic parameters of the planner.
type PackSettings struct {
	Spacing             float64 `json:"spacing"`              // Gap kept between boxes and to the walls, mm
	SupportThreshold    float64 `json:"support_threshold"`    // Fraction of the base that must rest on boxes below
	SimilarityTolerance float64 `json:"similarity_tolerance"` // Orientations within this ratio of a tried one are skipped
	SortKey             SortKey `json:"sort_key"`
}

func DefaultSettings() PackSettings {
	return PackSettings{
		Spacing:             0,
		SupportThreshold:    0.70,
		SimilarityTolerance: 0.05,
		SortKey:             SortMaxArea,
	}
}

// Validate checks that the settings describe a usable configuration.
func (s PackSettings) Validate() error {
	if s.Spacing < 0 {
		return fmt.Errorf("spacing must be >= 0, got %g", s.Spacing)
	}
	if s.SupportThreshold < 0 || s.SupportThreshold >= 1 {
		return fmt.Errorf("support threshold must be in [0, 1), got %g", s.SupportThreshold)
	}
	if s.SimilarityTolerance < 0 {
		return fmt.Errorf("similarity tolerance must be >= 0, got %g", s.SimilarityTolerance)
	}
	switch s.SortKey {
	case SortMaxArea, SortVolume, "":
	default:
		return fmt.Errorf("unknown sort key %q", s.SortKey)
	}
	return nil
}

// Placement represents a single box placed in the container.
type Placement struct {
	Item        Item    `json:"item"`
	X           float64 `json:"x"` // Minimum corner, mm
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	Orientation int     `json:"orientation"` // Index into the six axis permutations
	Width       float64 `json:"width"`       // Extent along x after orientation
	Height      float64 `json:"height"`      // Extent along y after orientation
	Depth       float64 `json:"depth"`       // Extent along z after orientation
}

// Volume returns the volume occupied by the placed box.
func (p Placement) Volume() float64 {
	return p.Width * p.Height * p.Depth
}

// Top returns the height of the upper face.
func (p Placement) Top() float64 {
	return p.Y + p.Height
}

// LoadResult holds the full solution for one container.
type LoadResult struct {
	Container  Container   `json:"container"`
	Placements []Placement `json:"placements"`
	Overflow   []Item      `json:"overflow"` // Boxes that could not be placed, in rejection order
}

// PlacedCount returns the number of boxes loaded.
func (lr LoadResult) PlacedCount() int {
	return len(lr.Placements)
}

// UsedVolume returns the total volume of the placed boxes.
func (lr LoadResult) UsedVolume() float64 {
	var total float64
	for _, p := range lr.Placements {
		total += p.Volume()
	}
	return total
}

// TotalVolume returns the container volume.
func (lr LoadResult) TotalVolume() float64 {
	return lr.Container.Volume()
}

// Utilization returns the volume usage percentage.
func (lr LoadResult) Utilization() float64 {
	tv := lr.TotalVolume()
	if tv == 0 {
		return 0
	}
	return (lr.UsedVolume() / tv) * 100.0
}

// Extent returns the size of the bounding box around all placed boxes,
// measured from the container origin.
func (lr LoadResult) Extent() (w, h, d float64) {
	for _, p := range lr.Placements {
		w = math.Max(w, p.X+p.Width)
		h = math.Max(h, p.Y+p.Height)
		d = math.Max(d, p.Z+p.Depth)
	}
	return w, h, d
}

// ViolationKind classifies a problem found when auditing a load plan.
type ViolationKind string

const (
	ViolationInvalid     ViolationKind = "invalid"     // Orientation index outside 0..5
	ViolationOutside     ViolationKind = "outside"     // Box leaves the usable region
	ViolationOverlap     ViolationKind = "overlap"     // Two boxes share volume
	ViolationUnsupported ViolationKind = "unsupported" // Box floats without enough support
)

// PlanViolation describes one problem in a load plan.
type PlanViolation struct {
	Kind   ViolationKind `json:"kind"`
	Index  int           `json:"index"`           // Placement index
	Other  int           `json:"other,omitempty"` // Second placement for overlaps, -1 otherwise
	Label  string        `json:"label"`
	Detail string        `json:"detail"`
}

// Project ties everything together for save/load.
type Project struct {
	Name      string       `json:"name"`
	Items     []Item       `json:"items"`
	Container Container    `json:"container"`
	Settings  PackSettings `json:"settings"`
	Result    *LoadResult  `json:"result,omitempty"`
}

func NewProject() Project {
	preset := ContainerPresets[0]
	return Project{
		Name:      "Untitled",
		Items:     []Item{},
		Container: preset.ToContainer(),
		Settings:  DefaultSettings(),
	}
}
