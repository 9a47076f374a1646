package export

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/LoadCut/internal/model"
)

// Sheet names written by ExportExcel.
const (
	SheetPlan     = "Plan"
	SheetOverflow = "Overflow"
	SheetManifest = "Manifest"
)

// ManifestLine summarises one item across the plan.
type ManifestLine struct {
	ID       string
	Label    string
	Width    float64
	Height   float64
	Depth    float64
	Placed   int
	Overflow int
}

// Total returns the number of boxes of this item in the load.
func (m ManifestLine) Total() int {
	return m.Placed + m.Overflow
}

// BuildManifest groups placements and overflow by item, ordered by label in
// natural order ("Box 2" before "Box 10").
func BuildManifest(result model.LoadResult) []ManifestLine {
	byID := map[string]*ManifestLine{}
	var lines []*ManifestLine
	line := func(it model.Item) *ManifestLine {
		if l, ok := byID[it.ID]; ok {
			return l
		}
		l := &ManifestLine{ID: it.ID, Label: it.Label, Width: it.Width, Height: it.Height, Depth: it.Depth}
		byID[it.ID] = l
		lines = append(lines, l)
		return l
	}
	for _, p := range result.Placements {
		line(p.Item).Placed++
	}
	for _, it := range result.Overflow {
		line(it).Overflow++
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Label != lines[j].Label {
			return natural.Less(lines[i].Label, lines[j].Label)
		}
		return lines[i].ID < lines[j].ID
	})

	out := make([]ManifestLine, len(lines))
	for i, l := range lines {
		out[i] = *l
	}
	return out
}

// ExportExcel writes the load plan to an xlsx workbook with Plan, Overflow
// and Manifest sheets.
func ExportExcel(path string, result model.LoadResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetPlan); err != nil {
		return err
	}
	for _, name := range []string{SheetOverflow, SheetManifest} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	plan := [][]interface{}{{"#", "Item", "Label", "X", "Y", "Z", "Orientation", "Width", "Height", "Depth", "Volume (m3)"}}
	for i, p := range result.Placements {
		plan = append(plan, []interface{}{
			i + 1, p.Item.ID, p.Item.Label, p.X, p.Y, p.Z, p.Orientation,
			p.Width, p.Height, p.Depth, p.Volume() / 1e9,
		})
	}

	overflow := [][]interface{}{{"Item", "Label", "Width", "Height", "Depth"}}
	for _, it := range result.Overflow {
		overflow = append(overflow, []interface{}{it.ID, it.Label, it.Width, it.Height, it.Depth})
	}

	manifest := [][]interface{}{{"Label", "Item", "Width", "Height", "Depth", "Total", "Placed", "Overflow"}}
	for _, m := range BuildManifest(result) {
		manifest = append(manifest, []interface{}{m.Label, m.ID, m.Width, m.Height, m.Depth, m.Total(), m.Placed, m.Overflow})
	}
	manifest = append(manifest,
		[]interface{}{},
		[]interface{}{"Container", result.Container.Label},
		[]interface{}{"Utilization (%)", result.Utilization()},
	)

	for _, sheet := range []struct {
		name string
		rows [][]interface{}
	}{
		{SheetPlan, plan},
		{SheetOverflow, overflow},
		{SheetManifest, manifest},
	} {
		if err := writeRows(f, sheet.name, sheet.rows, bold); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

// writeRows fills a sheet from A1 and styles the header row.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(rows[0]))
	return f.SetColWidth(sheet, "A", lastCol, 14)
}
