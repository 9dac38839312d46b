package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cladplan/cladplan/internal/model"
)

// buildTestProject creates a small wall project for export testing.
func buildTestProject() model.Project {
	return model.Project{
		ID:    "proj-1",
		Name:  "North Elevation",
		Wall:  model.WallSurface{Width: 300, Height: 100},
		Panel: model.PanelSpec{Width: 100, Height: 50},
		Exclusions: []model.ExclusionZone{
			{ID: "door", Label: "Door", X: 100, Y: 0, Width: 80, Height: 90},
		},
	}
}

// buildTestLayout creates a realistic layout result matching buildTestProject.
func buildTestLayout() *model.LayoutResult {
	return &model.LayoutResult{
		GrossArea:         30000,
		NetArea:           22800,
		TheoreticalPanels: 5,
		PracticalPanels:   5,
		WasteArea:         2200,
		PlacedPanels: []model.PlacedPanel{
			{ID: "panel-001", X: 0, Y: 0, Width: 100, Height: 50},
			{ID: "panel-002", X: 200, Y: 0, Width: 100, Height: 50},
			{ID: "panel-003", X: 0, Y: 50, Width: 50, Height: 50, IsCut: true},
			{ID: "panel-004", X: 50, Y: 50, Width: 100, Height: 50},
			{ID: "panel-005", X: 150, Y: 50, Width: 100, Height: 50},
			{ID: "panel-006", X: 250, Y: 50, Width: 50, Height: 50, IsCut: true, IsOffcutReuse: true},
		},
		LeftoverOffcuts: []model.Offcut{{Width: 20, Height: 50}},
	}
}

func TestWritePDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.pdf")

	err := WritePDF(path, buildTestProject(), buildTestLayout())
	if err != nil {
		t.Fatalf("WritePDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A valid PDF with 2 pages (wall + summary) should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestWritePDF_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := WritePDF(path, buildTestProject(), &model.LayoutResult{})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestWritePDF_NilResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nil.pdf")

	err := WritePDF(path, buildTestProject(), nil)
	if err == nil {
		t.Fatal("expected error for nil result, got nil")
	}
}

func TestWritePDF_NoExclusions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain_wall.pdf")

	project := buildTestProject()
	project.Exclusions = nil
	result := buildTestLayout()
	result.LeftoverOffcuts = nil

	err := WritePDF(path, project, result)
	if err != nil {
		t.Fatalf("WritePDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestWritePDF_ManyPanels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_panels.pdf")

	project := model.Project{
		Name:  "Warehouse Wall",
		Wall:  model.WallSurface{Width: 1000, Height: 400},
		Panel: model.PanelSpec{Width: 100, Height: 50},
	}

	var panels []model.PlacedPanel
	for row := 0; row < 8; row++ {
		for col := 0; col < 10; col++ {
			panels = append(panels, model.PlacedPanel{
				ID:    fmt.Sprintf("panel-%03d", len(panels)+1),
				X:     float64(col) * 100,
				Y:     float64(row) * 50,
				Width: 100, Height: 50,
				IsCut: col == 9,
			})
		}
	}
	result := &model.LayoutResult{
		GrossArea:       400000,
		NetArea:         400000,
		PracticalPanels: 80,
		PlacedPanels:    panels,
	}

	err := WritePDF(path, project, result)
	if err != nil {
		t.Fatalf("WritePDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestColorForPanel(t *testing.T) {
	tests := []struct {
		name  string
		panel model.PlacedPanel
		want  panelColor
	}{
		{"full panel", model.PlacedPanel{}, colorFull},
		{"cut panel", model.PlacedPanel{IsCut: true}, colorCut},
		{"offcut reuse", model.PlacedPanel{IsCut: true, IsOffcutReuse: true}, colorReuse},
	}
	for _, tt := range tests {
		got := colorForPanel(tt.panel)
		if got != tt.want {
			t.Errorf("%s: colorForPanel() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{50, 50, 8},
		{30, 25, 7},
		{10, 15, 6},
	}
	for _, tt := range tests {
		got := labelFontSize(tt.w, tt.h)
		if got != tt.want {
			t.Errorf("labelFontSize(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
