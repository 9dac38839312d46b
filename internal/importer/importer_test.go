package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Name,X,Sill,Width,Height\nDoor,200,0,100,210\nWindow,380,150,90,80\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Name;X;Sill;Width;Height\nDoor;200;0;100;210\nWindow;380;150;90;80\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Name\tX\tSill\tWidth\tHeight\nDoor\t200\t0\t100\t210\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Name|X|Sill|Width|Height\nDoor|200|0|100|210\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Name", "X", "Sill", "Width", "Height"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.X != 1 {
		t.Errorf("expected X at 1, got %d", mapping.X)
	}
	if mapping.Y != 2 {
		t.Errorf("expected Y at 2, got %d", mapping.Y)
	}
	if mapping.Width != 3 {
		t.Errorf("expected Width at 3, got %d", mapping.Width)
	}
	if mapping.Height != 4 {
		t.Errorf("expected Height at 4, got %d", mapping.Height)
	}
}

func TestDetectColumns_CaseInsensitive(t *testing.T) {
	row := []string{"NAME", "LEFT", "SILL", "WIDTH", "HEIGHT"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.X != 1 {
		t.Errorf("expected X at 1, got %d", mapping.X)
	}
}

func TestDetectColumns_AlternativeNames(t *testing.T) {
	row := []string{"Opening", "From Left", "Sill Height", "W", "H"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.X != 1 {
		t.Errorf("expected X at 1, got %d", mapping.X)
	}
	if mapping.Y != 2 {
		t.Errorf("expected Y at 2, got %d", mapping.Y)
	}
	if mapping.Width != 3 {
		t.Errorf("expected Width at 3, got %d", mapping.Width)
	}
	if mapping.Height != 4 {
		t.Errorf("expected Height at 4, got %d", mapping.Height)
	}
}

func TestDetectColumns_ReorderedColumns(t *testing.T) {
	row := []string{"Height", "Width", "Sill", "X", "Name"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Height != 0 {
		t.Errorf("expected Height at 0, got %d", mapping.Height)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Y != 2 {
		t.Errorf("expected Y at 2, got %d", mapping.Y)
	}
	if mapping.X != 3 {
		t.Errorf("expected X at 3, got %d", mapping.X)
	}
	if mapping.Label != 4 {
		t.Errorf("expected Label at 4, got %d", mapping.Label)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	row := []string{"Door", "200", "0", "100", "210"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("expected no header detection for numeric data")
	}
	// Should fall back to positional
	if mapping.Label != 0 || mapping.X != 1 || mapping.Y != 2 || mapping.Width != 3 || mapping.Height != 4 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	data := "Name,X,Sill,Width,Height\nDoor,200,0,100,210\nWindow,380,150,90,80\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Openings) != 2 {
		t.Fatalf("expected 2 openings, got %d", len(result.Openings))
	}

	door := result.Openings[0]
	if door.Label != "Door" {
		t.Errorf("expected label 'Door', got '%s'", door.Label)
	}
	if door.X != 200 {
		t.Errorf("expected x 200, got %f", door.X)
	}
	if door.Y != 0 {
		t.Errorf("expected sill 0, got %f", door.Y)
	}
	if door.Width != 100 {
		t.Errorf("expected width 100, got %f", door.Width)
	}
	if door.Height != 210 {
		t.Errorf("expected height 210, got %f", door.Height)
	}
	if len(door.ID) != 8 {
		t.Errorf("expected generated 8-char ID, got '%s'", door.ID)
	}

	window := result.Openings[1]
	if window.Y != 150 {
		t.Errorf("expected window sill 150, got %f", window.Y)
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "Door,200,0,100,210\nWindow,380,150,90,80\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Openings) != 2 {
		t.Fatalf("expected 2 openings, got %d (errors: %v)", len(result.Openings), result.Errors)
	}
	if result.Openings[0].Label != "Door" {
		t.Errorf("expected label 'Door', got '%s'", result.Openings[0].Label)
	}
	if result.Openings[0].X != 200 {
		t.Errorf("expected x 200, got %f", result.Openings[0].X)
	}
}

func TestImportCSVFromReader_SemicolonDelimiter(t *testing.T) {
	data := "Name;X;Sill;Width;Height\nDoor;200;0;100;210\n"
	result := ImportCSVFromReader(strings.NewReader(data), ';')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Openings) != 1 {
		t.Fatalf("expected 1 opening, got %d", len(result.Openings))
	}
}

func TestImportCSVFromReader_MissingSillColumn(t *testing.T) {
	// Openings without a sill column sit on the floor.
	data := "Name,X,Width,Height\nDoor,200,100,210\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Openings) != 1 {
		t.Fatalf("expected 1 opening, got %d", len(result.Openings))
	}
	if result.Openings[0].Y != 0 {
		t.Errorf("expected sill to default to 0, got %f", result.Openings[0].Y)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "sill") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a warning about the missing sill column, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_MissingRequiredColumns(t *testing.T) {
	data := "Name,Sill\nDoor,0\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Fatal("expected error for missing required columns")
	}
	if !strings.Contains(result.Errors[0], "X") || !strings.Contains(result.Errors[0], "Width") {
		t.Errorf("expected missing column names in error, got '%s'", result.Errors[0])
	}
}

func TestImportCSVFromReader_InvalidRowsReported(t *testing.T) {
	data := "Name,X,Sill,Width,Height\n" +
		"Door,200,0,100,210\n" +
		"Bad,abc,0,100,210\n" +
		"Gone,100,0,-50,210\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Openings) != 1 {
		t.Errorf("expected 1 valid opening, got %d", len(result.Openings))
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 row errors, got %d: %v", len(result.Errors), result.Errors)
	}
}

func TestImportCSVFromReader_EmptyRowsSkipped(t *testing.T) {
	data := "Name,X,Sill,Width,Height\nDoor,200,0,100,210\n,,,,\n\nWindow,380,150,90,80\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Openings) != 2 {
		t.Errorf("expected 2 openings, got %d (errors: %v)", len(result.Openings), result.Errors)
	}
}

func TestImportCSVFromReader_NegativePositionWarns(t *testing.T) {
	data := "Name,X,Sill,Width,Height\nVent,-10,0,50,50\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Openings) != 1 {
		t.Fatalf("expected opening to be kept, got %d", len(result.Openings))
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "outside the wall") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected out-of-wall warning, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_DefaultLabels(t *testing.T) {
	data := "Name,X,Sill,Width,Height\n,200,0,100,210\n,380,150,90,80\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Openings) != 2 {
		t.Fatalf("expected 2 openings, got %d", len(result.Openings))
	}
	if result.Openings[0].Label != "Opening 1" {
		t.Errorf("expected default label 'Opening 1', got '%s'", result.Openings[0].Label)
	}
	if result.Openings[1].Label != "Opening 2" {
		t.Errorf("expected default label 'Opening 2', got '%s'", result.Openings[1].Label)
	}
}

func TestImportCSV_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "openings.csv")
	data := "Name,X,Sill,Width,Height\nDoor,200,0,100,210\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Openings) != 1 {
		t.Fatalf("expected 1 opening, got %d", len(result.Openings))
	}
}

func TestImportCSV_DetectsSemicolon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "openings.csv")
	data := "Name;X;Sill;Width;Height\nDoor;200;0;100;210\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Openings) != 1 {
		t.Fatalf("expected 1 opening, got %d (errors: %v)", len(result.Openings), result.Errors)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected delimiter warning, got %v", result.Warnings)
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV("/nonexistent/path/file.csv")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "openings.xlsx")

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
		{"Name", "X", "Sill", "Width", "Height"},
		{"Door", 200, 0, 100, 210},
		{"Window", 380, 150, 90, 80},
	})

	result := ImportExcel(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Openings) != 2 {
		t.Fatalf("expected 2 openings, got %d", len(result.Openings))
	}

	if result.Openings[0].Label != "Door" {
		t.Errorf("expected 'Door', got '%s'", result.Openings[0].Label)
	}
	if result.Openings[0].Width != 100 {
		t.Errorf("expected width 100, got %f", result.Openings[0].Width)
	}
	if result.Openings[1].Y != 150 {
		t.Errorf("expected window sill 150, got %f", result.Openings[1].Y)
	}
}

func TestImportExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Door", 200, 0, 100, 210},
		{"Window", 380, 150, 90, 80},
	})

	result := ImportExcel(path)

	if len(result.Openings) != 2 {
		t.Fatalf("expected 2 openings, got %d (errors: %v)", len(result.Openings), result.Errors)
	}
}

func TestImportExcel_ReorderedColumns(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Width", "Height", "Name", "X", "Sill"},
		{100, 210, "Door", 200, 0},
	})

	result := ImportExcel(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Openings) != 1 {
		t.Fatalf("expected 1 opening, got %d", len(result.Openings))
	}
	if result.Openings[0].Label != "Door" {
		t.Errorf("expected 'Door', got '%s'", result.Openings[0].Label)
	}
	if result.Openings[0].X != 200 {
		t.Errorf("expected x 200, got %f", result.Openings[0].X)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/file.xlsx")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}
