package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "Label,Width,Height,Depth,Qty\nCrate,600,400,800,2\n", ','},
		{"semicolon", "Label;Width;Height;Depth;Qty\nCrate;600;400;800;2\n", ';'},
		{"tab", "Label\tWidth\tHeight\tDepth\tQty\nCrate\t600\t400\t800\t2\n", '\t'},
		{"pipe", "Label|Width|Height|Depth|Qty\nCrate|600|400|800|2\n", '|'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCSVDelimiter([]byte(tt.data)); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Label", "Width", "Height", "Depth", "Quantity"})

	if !isHeader {
		t.Error("expected header to be detected")
	}
	want := ColumnMapping{Label: 0, Width: 1, Height: 2, Depth: 3, Quantity: 4}
	if mapping != want {
		t.Errorf("expected %+v, got %+v", want, mapping)
	}
}

func TestDetectColumns_AliasesAndOrder(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"QTY", "L", "SKU", "H", "W"})

	if !isHeader {
		t.Error("expected header to be detected")
	}
	want := ColumnMapping{Label: 2, Width: 4, Height: 3, Depth: 1, Quantity: 0}
	if mapping != want {
		t.Errorf("expected %+v, got %+v", want, mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Crate", "600", "400", "800", "2"})

	if isHeader {
		t.Error("expected no header")
	}
	if mapping != positional {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	csv := "Label,Width,Height,Depth,Quantity\nCrate,600,400,800,2\nDrum,300,500,300,4\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	it := result.Items[0]
	if it.Label != "Crate" || it.Width != 600 || it.Height != 400 || it.Depth != 800 || it.Quantity != 2 {
		t.Errorf("unexpected first item: %+v", it)
	}
	if it.ID == "" {
		t.Error("expected items to get an ID")
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Crate,600,400,800,2\n"), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 1 || result.Items[0].Depth != 800 {
		t.Fatalf("unexpected items: %+v", result.Items)
	}
}

func TestImportCSVFromReader_UnknownHeaderSkipped(t *testing.T) {
	csv := "Article,Breite,Hoehe,Tiefe,Menge\nKiste,600,400,800,2\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d (errors %v)", len(result.Items), result.Errors)
	}
	if result.Items[0].Label != "Kiste" {
		t.Errorf("expected Kiste, got %s", result.Items[0].Label)
	}
}

func TestImportCSVFromReader_SemicolonDecimalComma(t *testing.T) {
	csv := "Label;Width;Height;Depth;Qty\nCrate;600,5;400;800;1\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ';')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Items[0].Width != 600.5 {
		t.Errorf("expected width 600.5, got %f", result.Items[0].Width)
	}
}

func TestImportCSVFromReader_RowErrors(t *testing.T) {
	csv := strings.Join([]string{
		"Label,Width,Height,Depth,Qty",
		"Good,100,100,100,1",
		"BadWidth,abc,100,100,1",
		"NoDepth,100,100,,1",
		"Negative,-5,100,100,1",
		"ZeroQty,100,100,100,0",
		"BadQty,100,100,100,two",
		"",
		"Also good,50,50,50,3",
	}, "\n")
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Items) != 2 {
		t.Errorf("expected 2 valid items, got %d", len(result.Items))
	}
	if len(result.Errors) != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Line 3") || !strings.Contains(result.Errors[0], "width") {
		t.Errorf("unexpected first error: %s", result.Errors[0])
	}
	if !strings.Contains(result.Errors[1], "Missing depth") {
		t.Errorf("unexpected second error: %s", result.Errors[1])
	}
}

func TestImportCSVFromReader_WholeNumberFloatQuantity(t *testing.T) {
	csv := "Label,Width,Height,Depth,Qty\nCrate,100,100,100,3.0\nOdd,100,100,100,2.5\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Items) != 1 || result.Items[0].Quantity != 3 {
		t.Fatalf("expected one item with quantity 3, got %+v", result.Items)
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 error for fractional quantity, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_EmptyLabel(t *testing.T) {
	csv := "Label,Width,Height,Depth,Qty\n,100,100,100,1\n,50,50,50,1\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[1].Label != "Box 2" {
		t.Errorf("expected generated label 'Box 2', got %q", result.Items[1].Label)
	}
}

func TestImportCSVFromReader_MissingRequiredColumn(t *testing.T) {
	csv := "Label,Width,Height,Qty\nCrate,100,100,1\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Depth") {
		t.Errorf("expected missing Depth, got %s", result.Errors[0])
	}
	if len(result.Items) != 0 {
		t.Errorf("expected no items, got %d", len(result.Items))
	}
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')
	if len(result.Errors) == 0 {
		t.Error("expected error for empty input")
	}
}

func TestImportCSV_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.csv")
	data := "# shipment 7\nName;W;H;D;Pcs\nCrate;600;400;800;2\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(result.Items))
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a semicolon warning, got %v", result.Warnings)
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	result := ImportCSV(path)
	if len(result.Errors) != 1 || result.Errors[0] != "File is empty" {
		t.Errorf("expected 'File is empty', got %v", result.Errors)
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Item", "Depth", "Width", "Height", "Qty"},
		{"Crate", 800, 600, 400, 2},
		{"Drum", 300, 300, 500, 4},
	})

	result := ImportExcel(path)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	it := result.Items[0]
	if it.Width != 600 || it.Height != 400 || it.Depth != 800 {
		t.Errorf("unexpected dimensions: %+v", it)
	}
	if result.Items[1].Quantity != 4 {
		t.Errorf("expected quantity 4, got %d", result.Items[1].Quantity)
	}
}

func TestImportExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Crate", 600, 400, 800, 2},
	})

	result := ImportExcel(path)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(result.Items))
	}
	if !strings.Contains(result.Items[0].Label, "Crate") {
		t.Errorf("expected Crate, got %s", result.Items[0].Label)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "missing.xlsx"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

func TestImportExcel_InvalidData(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Label", "Width", "Height", "Depth", "Qty"},
		{"Crate", "wide", 400, 800, 1},
	})

	result := ImportExcel(path)

	if len(result.Items) != 0 {
		t.Errorf("expected no items, got %d", len(result.Items))
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Row 2") {
		t.Errorf("expected one Row 2 error, got %v", result.Errors)
	}
}
