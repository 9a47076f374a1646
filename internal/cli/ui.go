package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/piwi3910/LoadCut/internal/engine"
	"github.com/piwi3910/LoadCut/internal/model"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim).Width(16)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleHeader  = lipgloss.NewStyle().Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

func printKV(w io.Writer, key, value string) {
	fmt.Fprintf(w, "  %s %s\n", styleLabel.Render(key), value)
}

// printSummary writes the human-readable outcome of a planning run.
func printSummary(w io.Writer, name string, result model.LoadResult, violations []model.PlanViolation, est model.LoadEstimate) {
	c := result.Container
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("Load plan: %s", name)))
	printKV(w, "Container", fmt.Sprintf("%s (%.0f x %.0f x %.0f mm)", c.Label, c.Width, c.Height, c.Depth))
	printKV(w, "Placed", styleNumber.Render(fmt.Sprintf("%d", result.PlacedCount())))
	printKV(w, "Overflow", overflowText(len(result.Overflow)))
	printKV(w, "Utilization", styleNumber.Render(fmt.Sprintf("%.1f%%", result.Utilization())))
	ew, eh, ed := result.Extent()
	printKV(w, "Load extent", fmt.Sprintf("%.0f x %.0f x %.0f mm", ew, eh, ed))
	if est.ContainerVolume > 0 {
		printKV(w, "Estimate", fmt.Sprintf("%.2f m³ of boxes, about %d container(s)", est.TotalCubicMeters, est.ContainersWithWaste))
	}
	if est.OversizedItems > 0 {
		printKV(w, "Oversized", styleError.Render(fmt.Sprintf("%d box(es) fit no orientation", est.OversizedItems)))
	}

	if len(violations) == 0 {
		fmt.Fprintf(w, "%s %s\n", styleSuccess.Render(iconSuccess), "plan passes the stability audit")
		return
	}
	fmt.Fprintf(w, "%s %s\n", styleError.Render(iconError), fmt.Sprintf("%d audit problem(s):", len(violations)))
	for _, msg := range engine.FormatViolations(violations) {
		fmt.Fprintf(w, "  %s %s\n", styleWarning.Render(iconWarning), msg)
	}
}

func overflowText(n int) string {
	if n == 0 {
		return styleSuccess.Render("0")
	}
	return styleWarning.Render(fmt.Sprintf("%d", n))
}

// printScenarioTable writes one row per comparison scenario.
func printScenarioTable(w io.Writer, results []engine.ComparisonResult) {
	nameWidth := len("Scenario")
	for _, r := range results {
		nameWidth = max(nameWidth, lipgloss.Width(r.Scenario.Name))
	}
	col := lipgloss.NewStyle().Width(nameWidth + 2)
	num := lipgloss.NewStyle().Width(12).Align(lipgloss.Right)

	header := col.Render("Scenario") + num.Render("Placed") + num.Render("Overflow") + num.Render("Util.") + num.Render("Extent m³")
	fmt.Fprintln(w, styleHeader.Render(header))
	fmt.Fprintln(w, styleDim.Render(strings.Repeat("─", lipgloss.Width(header))))

	best := bestScenario(results)
	for i, r := range results {
		name := r.Scenario.Name
		if i == best {
			name += " *"
		}
		fmt.Fprintln(w, col.Render(name)+
			num.Render(fmt.Sprintf("%d", r.PlacedCount))+
			num.Render(fmt.Sprintf("%d", r.OverflowCount))+
			num.Render(fmt.Sprintf("%.1f%%", r.Utilization))+
			num.Render(fmt.Sprintf("%.2f", r.ExtentVolume/1e9)))
	}
}

// bestScenario returns the index with the highest utilization; ties go to
// the smaller load extent, then the earlier scenario.
func bestScenario(results []engine.ComparisonResult) int {
	best := -1
	for i, r := range results {
		if best < 0 {
			best = i
			continue
		}
		b := results[best]
		if r.Utilization > b.Utilization || (r.Utilization == b.Utilization && r.ExtentVolume < b.ExtentVolume) {
			best = i
		}
	}
	return best
}
