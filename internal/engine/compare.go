package engine

import (
	"fmt"

	"github.com/piwi3910/LoadCut/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.PackSettings
}

// ComparisonResult holds the load plan and computed statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.LoadResult
	PlacedCount   int
	OverflowCount int
	Utilization   float64
	ExtentVolume  float64 // Volume of the bounding box around the load
}

// CompareScenarios plans the same load once per scenario and returns the
// results in scenario order.
func CompareScenarios(scenarios []ComparisonScenario, items []model.Item, container model.Container) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		planner := New(scenario.Settings)
		result := planner.Plan(items, container)

		w, h, d := result.Extent()
		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Result:        result,
			PlacedCount:   result.PlacedCount(),
			OverflowCount: len(result.Overflow),
			Utilization:   result.Utilization(),
			ExtentVolume:  w * h * d,
		})
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based on
// the current settings, varying key parameters to show what-if alternatives.
func BuildDefaultScenarios(base model.PackSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: base,
		},
	}

	// Scenario: the other sort order
	alt := base
	if base.SortKey == model.SortVolume {
		alt.SortKey = model.SortMaxArea
		scenarios = append(scenarios, ComparisonScenario{Name: "Largest Face First", Settings: alt})
	} else {
		alt.SortKey = model.SortVolume
		scenarios = append(scenarios, ComparisonScenario{Name: "Largest Volume First", Settings: alt})
	}

	// Scenario: no spacing
	if base.Spacing > 0 {
		noGap := base
		noGap.Spacing = 0
		scenarios = append(scenarios, ComparisonScenario{Name: "No Spacing", Settings: noGap})
	}

	// Scenario: relaxed support
	if base.SupportThreshold > 0.5 {
		relaxed := base
		relaxed.SupportThreshold = 0.5
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Support %.0f%%", relaxed.SupportThreshold*100),
			Settings: relaxed,
		})
	}

	// Scenario: exhaustive orientations
	if base.SimilarityTolerance > 0 {
		exact := base
		exact.SimilarityTolerance = 0
		scenarios = append(scenarios, ComparisonScenario{Name: "All Orientations", Settings: exact})
	}

	return scenarios
}
