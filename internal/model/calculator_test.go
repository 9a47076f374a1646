package model

import (
	"math"
	"testing"
)

func TestCalculateLoadEstimateBasic(t *testing.T) {
	items := []Item{
		{Label: "Crate", Width: 500, Height: 300, Depth: 400, Quantity: 4},
	}
	c := Container{Label: "Box", Width: 1000, Height: 1000, Depth: 1000}
	est := CalculateLoadEstimate(items, c, 10.0, 15.0)

	expected := 510.0 * 310.0 * 410.0 * 4
	if math.Abs(est.TotalItemVolume-expected) > 0.1 {
		t.Errorf("expected total volume %.1f, got %.1f", expected, est.TotalItemVolume)
	}
	if math.Abs(est.TotalCubicMeters-expected/1e9) > 1e-9 {
		t.Errorf("expected %.6f m3, got %.6f", expected/1e9, est.TotalCubicMeters)
	}
	if est.ContainersNeededMin != 1 {
		t.Errorf("expected 1 container, got %d", est.ContainersNeededMin)
	}
	if est.ContainersWithWaste < est.ContainersNeededMin {
		t.Error("containers with waste should be >= minimum containers")
	}
	if est.OversizedItems != 0 {
		t.Errorf("expected no oversized items, got %d", est.OversizedItems)
	}
}

func TestCalculateLoadEstimateZeroContainer(t *testing.T) {
	items := []Item{{Label: "P1", Width: 100, Height: 100, Depth: 100, Quantity: 1}}
	est := CalculateLoadEstimate(items, Container{}, 0, 10)
	if est.ContainersNeededMin != 0 {
		t.Errorf("expected 0 containers for zero container volume, got %d", est.ContainersNeededMin)
	}
	if est.TotalItemVolume <= 0 {
		t.Error("expected positive total item volume even with zero container")
	}
}

func TestCalculateLoadEstimateWasteRoundsUp(t *testing.T) {
	items := []Item{{Label: "Half", Width: 10, Height: 10, Depth: 50, Quantity: 19}}
	c := Container{Width: 10, Height: 10, Depth: 100}
	est := CalculateLoadEstimate(items, c, 0, 10)

	if est.ContainersNeededMin != 10 {
		t.Errorf("expected 10 containers, got %d", est.ContainersNeededMin)
	}
	// 9.5 * 1.1 = 10.45 -> 11
	if est.ContainersWithWaste != 11 {
		t.Errorf("expected 11 containers with waste, got %d", est.ContainersWithWaste)
	}
}

func TestCalculateLoadEstimateCountsOversized(t *testing.T) {
	items := []Item{
		{Label: "Pole", Width: 10, Height: 10, Depth: 3000, Quantity: 2},
		{Label: "Rotated fits", Width: 900, Height: 100, Depth: 100, Quantity: 1},
	}
	c := Container{Width: 100, Height: 100, Depth: 1000}
	est := CalculateLoadEstimate(items, c, 0, 0)
	if est.OversizedItems != 2 {
		t.Errorf("expected 2 oversized items, got %d", est.OversizedItems)
	}
}
