package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cladplan/cladplan/internal/model"
)

// WriteXLSX exports a layout as an Excel workbook with three sheets: the
// placed panel list, leftover offcuts, and a material summary. Spreadsheets
// travel better than PDFs when the quantity surveyor wants to re-total costs.
func WriteXLSX(path string, project model.Project, result *model.LayoutResult) error {
	if result == nil || len(result.PlacedPanels) == 0 {
		return fmt.Errorf("no placed panels to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), "Panels"); err != nil {
		return fmt.Errorf("failed to set up workbook: %w", err)
	}

	if err := writePanelsSheet(f, project, result); err != nil {
		return err
	}
	if err := writeOffcutsSheet(f, result); err != nil {
		return err
	}
	if err := writeSummarySheet(f, project, result); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writePanelsSheet(f *excelize.File, project model.Project, result *model.LayoutResult) error {
	rows := [][]interface{}{
		{"Panel", "Course", "X (cm)", "Y (cm)", "Width (cm)", "Height (cm)", "Source", "Cut"},
	}
	for _, p := range result.PlacedPanels {
		source := "New stock"
		if p.IsOffcutReuse {
			source = "Offcut"
		}
		rows = append(rows, []interface{}{
			p.ID, courseIndex(p.Y, project.Panel.Height) + 1,
			p.X, p.Y, p.Width, p.Height, source, p.IsCut,
		})
	}
	return writeRows(f, "Panels", rows)
}

func writeOffcutsSheet(f *excelize.File, result *model.LayoutResult) error {
	if _, err := f.NewSheet("Offcuts"); err != nil {
		return fmt.Errorf("failed to add offcuts sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Offcut", "Width (cm)", "Height (cm)", "Area (cm2)"},
	}
	for i, o := range result.LeftoverOffcuts {
		rows = append(rows, []interface{}{i + 1, o.Width, o.Height, o.Area()})
	}
	return writeRows(f, "Offcuts", rows)
}

func writeSummarySheet(f *excelize.File, project model.Project, result *model.LayoutResult) error {
	if _, err := f.NewSheet("Summary"); err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Project", project.Name},
		{"Wall", fmt.Sprintf("%.0f x %.0f cm", project.Wall.Width, project.Wall.Height)},
		{"Panel", fmt.Sprintf("%.0f x %.0f cm", project.Panel.Width, project.Panel.Height)},
		{"Exclusion zones", len(project.Exclusions)},
		{"Gross area (cm2)", result.GrossArea},
		{"Net area (cm2)", result.NetArea},
		{"Theoretical panels", result.TheoreticalPanels},
		{"Panels to purchase", result.PracticalPanels},
		{"Panels placed", len(result.PlacedPanels)},
		{"Offcuts reused", result.ReusedPanels()},
		{"Waste area (cm2)", result.WasteArea},
		{"Efficiency (%)", result.Efficiency()},
	}
	return writeRows(f, "Summary", rows)
}

// writeRows fills a sheet from the top-left corner, one slice per row.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("failed to create cell reference: %w", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				return fmt.Errorf("failed to set cell %s on %s: %w", cellRef, sheet, err)
			}
		}
	}
	return nil
}
