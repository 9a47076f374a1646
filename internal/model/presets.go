package model

import (
	"strings"

	"github.com/google/uuid"
)

// ContainerPreset represents a reusable container definition.
// Dimensions are the usable interior in mm.
type ContainerPreset struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// NewContainerPreset creates a new ContainerPreset with a generated ID.
func NewContainerPreset(name string, width, height, depth float64) ContainerPreset {
	return ContainerPreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  width,
		Height: height,
		Depth:  depth,
	}
}

// ToContainer converts a preset into a Container.
func (cp ContainerPreset) ToContainer() Container {
	return NewContainer(cp.Name, cp.Width, cp.Height, cp.Depth)
}

// Built-in container presets (ISO interior dimensions).
var ContainerPresets = []ContainerPreset{
	NewContainerPreset("ISO 20ft", 2352, 2393, 5898),
	NewContainerPreset("ISO 40ft", 2352, 2393, 12032),
	NewContainerPreset("ISO 40ft HC", 2352, 2698, 12032),
	NewContainerPreset("EUR pallet load", 800, 1800, 1200),
	NewContainerPreset("Van (Sprinter L2H2)", 1780, 1940, 3265),
}

// GetContainerPreset returns a preset by name, ignoring case, and whether it was found.
func GetContainerPreset(name string) (ContainerPreset, bool) {
	for _, p := range ContainerPresets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return ContainerPreset{}, false
}

// ContainerPresetNames returns the names of all built-in presets.
func ContainerPresetNames() []string {
	names := make([]string, len(ContainerPresets))
	for i, p := range ContainerPresets {
		names[i] = p.Name
	}
	return names
}
