// Package export writes load plans to PDF, label sheets, spreadsheets,
// DXF wireframes and PNG previews.
package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/LoadCut/internal/model"
)

// boxColor represents an RGB color for a placed box.
type boxColor struct {
	R, G, B int
}

var boxColors = []boxColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

func colorFor(i int) boxColor {
	return boxColors[i%len(boxColors)]
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	panelGap     = 10.0
	drawAreaTop  = marginTop + headerHeight + 10.0
	rowHeight    = 5.5
)

// view selects the projection drawn in a panel.
type view int

const (
	viewTop   view = iota // looking down: x across, z down the page
	viewFront             // looking along z: x across, y up the page
)

// ExportPDF generates a PDF with the top and front projections of the load
// on the first page, followed by the placement table, the overflow list and
// the settings used.
func ExportPDF(path string, result model.LoadResult, settings model.PackSettings) error {
	if len(result.Placements) == 0 && len(result.Overflow) == 0 {
		return fmt.Errorf("nothing to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderOverviewPage(pdf, result)

	pdf.AddPage()
	renderTablePages(pdf, result, settings)

	return pdf.OutputFileAndClose(path)
}

func renderOverviewPage(pdf *fpdf.Fpdf, result model.LoadResult) {
	c := result.Container

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Load plan: %s (%.0f x %.0f x %.0f mm)", c.Label, c.Width, c.Height, c.Depth)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	w, h, d := result.Extent()
	stats := fmt.Sprintf("Boxes: %d | Overflow: %d | Utilization: %.1f%% | Load extent: %.0f x %.0f x %.0f mm",
		result.PlacedCount(), len(result.Overflow), result.Utilization(), w, h, d)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	panelW := (pageWidth - marginLeft - marginRight - panelGap) / 2
	panelH := pageHeight - drawAreaTop - marginBottom - 10

	drawPanel(pdf, result, viewTop, "Top view", marginLeft, drawAreaTop, panelW, panelH)
	drawPanel(pdf, result, viewFront, "Front view", marginLeft+panelW+panelGap, drawAreaTop, panelW, panelH)
}

// drawPanel renders one projection of the container and its boxes, scaled
// to fit the panel.
func drawPanel(pdf *fpdf.Fpdf, result model.LoadResult, v view, caption string, x, y, w, h float64) {
	c := result.Container
	across, down := c.Width, c.Depth
	if v == viewFront {
		down = c.Height
	}
	if across <= 0 || down <= 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(x, y-6)
	pdf.CellFormat(w, 5, caption, "", 0, "L", false, 0, "")

	scale := math.Min(w/across, h/down)
	canvasW := across * scale
	canvasH := down * scale

	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(x, y, canvasW, canvasH, "FD")

	// Painter's order: hidden faces first.
	order := make([]int, len(result.Placements))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := result.Placements[order[a]], result.Placements[order[b]]
		if v == viewTop {
			return pa.Top() < pb.Top()
		}
		return pa.Z+pa.Depth > pb.Z+pb.Depth
	})

	pdf.SetLineWidth(0.2)
	for _, i := range order {
		p := result.Placements[i]
		var bx, by, bw, bh float64
		switch v {
		case viewTop:
			bx, by, bw, bh = p.X, p.Z, p.Width, p.Depth
		case viewFront:
			// Page y grows downward; the container floor is at the bottom edge.
			bx, by, bw, bh = p.X, c.Height-p.Top(), p.Width, p.Height
		}
		col := colorFor(i)
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.Rect(x+bx*scale, y+by*scale, bw*scale, bh*scale, "FD")

		if bw*scale > 6 && bh*scale > 4 {
			pdf.SetFont("Helvetica", "", 6)
			pdf.SetTextColor(0, 0, 0)
			num := fmt.Sprintf("%d", i+1)
			nw := pdf.GetStringWidth(num)
			pdf.SetXY(x+bx*scale+(bw*scale-nw)/2, y+by*scale+bh*scale/2-2)
			pdf.CellFormat(nw, 4, num, "", 0, "C", false, 0, "")
		}
	}

	drawDimensionAnnotations(pdf, across, down, x, y, canvasW, canvasH)
}

// drawDimensionAnnotations labels the two visible container edges.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, across, down, x, y, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	acrossLabel := fmt.Sprintf("%.0f mm", across)
	aw := pdf.GetStringWidth(acrossLabel)
	pdf.SetXY(x+(canvasW-aw)/2, y+canvasH+1)
	pdf.CellFormat(aw, 4, acrossLabel, "", 0, "C", false, 0, "")

	downLabel := fmt.Sprintf("%.0f mm", down)
	pdf.TransformBegin()
	pdf.TransformRotate(90, x-3, y+canvasH/2)
	dw := pdf.GetStringWidth(downLabel)
	pdf.SetXY(x-3-dw/2, y+canvasH/2-2)
	pdf.CellFormat(dw, 4, downLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

var tableCols = []struct {
	header string
	width  float64
}{
	{"#", 12},
	{"Label", 60},
	{"Item", 22},
	{"Size (W x H x D)", 45},
	{"Position (x, y, z)", 50},
	{"Orient.", 18},
	{"Placed (x, y, z)", 60},
}

// renderTablePages writes the placement table, adding pages as needed,
// then the overflow list and the settings.
func renderTablePages(pdf *fpdf.Fpdf, result model.LoadResult, settings model.PackSettings) {
	y := tableHeader(pdf, "Placements")

	pdf.SetFont("Helvetica", "", 8)
	for i, p := range result.Placements {
		if y+rowHeight > pageHeight-marginBottom {
			pdf.AddPage()
			y = tableHeader(pdf, "Placements (continued)")
			pdf.SetFont("Helvetica", "", 8)
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			p.Item.Label,
			p.Item.ID,
			fmt.Sprintf("%.0f x %.0f x %.0f", p.Item.Width, p.Item.Height, p.Item.Depth),
			fmt.Sprintf("%.1f, %.1f, %.1f", p.X, p.Y, p.Z),
			fmt.Sprintf("%d", p.Orientation),
			fmt.Sprintf("%.0f x %.0f x %.0f", p.Width, p.Height, p.Depth),
		}
		col := colorFor(i)
		xPos := marginLeft
		for j, cell := range row {
			fill := false
			if j == 0 {
				pdf.SetFillColor(col.R, col.G, col.B)
				fill = true
			}
			pdf.SetXY(xPos, y)
			pdf.CellFormat(tableCols[j].width, rowHeight, cell, "1", 0, "C", fill, 0, "")
			xPos += tableCols[j].width
		}
		y += rowHeight
	}

	if len(result.Overflow) > 0 {
		y = ensureSpace(pdf, y+6, 8+rowHeight)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, fmt.Sprintf("WARNING: %d box(es) did not fit", len(result.Overflow)), "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, it := range result.Overflow {
			y = ensureSpace(pdf, y, 5)
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s (%s): %.0f x %.0f x %.0f mm", it.Label, it.ID, it.Width, it.Height, it.Depth)
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	y = ensureSpace(pdf, y+8, 9+4*5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Planner Settings", "", 0, "L", false, 0, "")
	y += 9

	settingsItems := []struct {
		label string
		value string
	}{
		{"Spacing", fmt.Sprintf("%.1f mm", settings.Spacing)},
		{"Support threshold", fmt.Sprintf("%.0f%%", settings.SupportThreshold*100)},
		{"Similarity tolerance", fmt.Sprintf("%.1f%%", settings.SimilarityTolerance*100)},
		{"Order", string(settings.SortKey)},
	}
	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by LoadCut - container load planner", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// tableHeader draws a section title and the table header row on the
// current page and returns the y of the first data row.
func tableHeader(pdf *fpdf.Fpdf, title string) float64 {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, title, "", 0, "L", false, 0, "")

	y := marginTop + 12
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for _, col := range tableCols {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(col.width, 6, col.header, "1", 0, "C", true, 0, "")
		xPos += col.width
	}
	return y + 6
}

// ensureSpace starts a new page when need mm do not fit below y.
func ensureSpace(pdf *fpdf.Fpdf, y, need float64) float64 {
	if y+need <= pageHeight-marginBottom {
		return y
	}
	pdf.AddPage()
	return marginTop
}
