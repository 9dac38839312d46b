// Package importer reads opening schedules from CSV, Excel, and DXF files
// and turns them into exclusion zones. It supports automatic delimiter
// detection, flexible column mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cladplan/cladplan/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Openings []model.ExclusionZone
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
// An index of -1 means the column is absent.
type ColumnMapping struct {
	Label  int
	X      int
	Y      int
	Width  int
	Height int
}

// aliasToRole resolves a lowercase header cell to its column role. X runs
// from the left wall edge, Y from the floor up, so sill height is just
// another name for Y.
var aliasToRole = map[string]string{
	"label": "label", "name": "label", "opening": "label",
	"description": "label", "desc": "label", "item": "label", "type": "label",

	"x": "x", "left": "x", "from left": "x", "offset": "x",
	"x position": "x", "pos x": "x",

	"y": "y", "sill": "y", "sill height": "y", "bottom": "y",
	"from bottom": "y", "y position": "y", "pos y": "y",

	"width": "width", "w": "width",
	"height": "height", "h": "height",
}

// positionalMapping is the fallback column order when no header is present:
// Label, X, Y, Width, Height.
var positionalMapping = ColumnMapping{Label: 0, X: 1, Y: 2, Width: 3, Height: 4}

// ImportCSV imports openings from a CSV file. The delimiter is detected
// automatically (comma, semicolon, tab, or pipe) and columns are mapped by
// header names when a header row is present.
func ImportCSV(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open file: %v", err)}}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ImportResult{Errors: []string{"File is empty"}}
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		names := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", names[delimiter]))
	}

	records, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		return ImportResult{Warnings: warnings, Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	if len(records) == 0 {
		return ImportResult{Warnings: warnings, Errors: []string{"File is empty"}}
	}

	return importFromRows(records, "Line", warnings)
}

// ImportCSVFromReader imports openings from a CSV reader with a known
// delimiter. Useful for testing and for piped input.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	records, err := readCSV(reader, delimiter)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	if len(records) == 0 {
		return ImportResult{Errors: []string{"File is empty"}}
	}
	return importFromRows(records, "Line", nil)
}

// ImportExcel imports openings from the first sheet of an .xlsx workbook.
func ImportExcel(path string) ImportResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open Excel file: %v", err)}}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{Errors: []string{"Excel file has no sheets"}}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read Excel data: %v", err)}}
	}
	if len(rows) == 0 {
		return ImportResult{Errors: []string{"Sheet is empty"}}
	}

	return importFromRows(rows, "Row", nil)
}

// readCSV parses the full input with lenient settings: quotes may be sloppy
// and rows may have ragged field counts.
func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// DetectCSVDelimiter determines the most likely delimiter for the given CSV
// content. Candidates are comma, semicolon, tab, and pipe; the one that
// splits the most rows into a consistent multi-column shape wins.
func DetectCSVDelimiter(data []byte) rune {
	best, bestScore := ',', 0

	for _, delim := range []rune{',', ';', '\t', '|'} {
		records, err := readCSV(bytes.NewReader(data), delim)
		if err != nil || len(records) == 0 {
			continue
		}

		cols := len(records[0])
		if cols < 2 {
			continue
		}
		consistent := 0
		for _, row := range records {
			if len(row) == cols {
				consistent++
			}
		}

		// Consistency dominates; column count breaks ties.
		if score := consistent*10 + cols; score > bestScore {
			bestScore = score
			best = delim
		}
	}

	return best
}

// DetectColumns examines a candidate header row. If any cell matches a known
// alias the row is treated as a header and the alias mapping is returned;
// otherwise the positional fallback mapping is returned with false.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, X: -1, Y: -1, Width: -1, Height: -1}
	isHeader := false

	for i, cell := range row {
		role, ok := aliasToRole[strings.ToLower(strings.TrimSpace(cell))]
		if !ok {
			continue
		}
		isHeader = true
		// First match wins when a role appears twice.
		switch role {
		case "label":
			if mapping.Label == -1 {
				mapping.Label = i
			}
		case "x":
			if mapping.X == -1 {
				mapping.X = i
			}
		case "y":
			if mapping.Y == -1 {
				mapping.Y = i
			}
		case "width":
			if mapping.Width == -1 {
				mapping.Width = i
			}
		case "height":
			if mapping.Height == -1 {
				mapping.Height = i
			}
		}
	}

	if !isHeader {
		return positionalMapping, false
	}
	return mapping, true
}

// importFromRows is the shared tail of every tabular import: header
// detection, column mapping, and per-row parsing with error and warning
// accumulation.
func importFromRows(rows [][]string, rowPrefix string, warnings []string) ImportResult {
	result := ImportResult{Warnings: warnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	switch {
	case hasHeader:
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		for _, c := range []struct {
			name string
			idx  int
		}{{"X", mapping.X}, {"Width", mapping.Width}, {"Height", mapping.Height}} {
			if c.idx == -1 {
				missing = append(missing, c.name)
			}
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
		if mapping.Y == -1 {
			result.Warnings = append(result.Warnings, "No sill column found, assuming openings start at the floor")
		}

	case len(rows[0]) >= 3:
		// No alias matched. If the cell in the X position is not numeric the
		// row is an unrecognized header: skip it but keep positional mapping.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		if isEmptyRow(rows[i]) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		zone, errMsg, warning := parseRow(rows[i], mapping, rowLabel, len(result.Openings))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		result.Openings = append(result.Openings, zone)
	}

	return result
}

// parseRow extracts one exclusion zone from a data row. It returns the zone
// plus an error message or warning message, at most one of which is set.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, openingCount int) (model.ExclusionZone, string, string) {
	label := cellAt(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Opening %d", openingCount+1)
	}

	x, errMsg := numericCell(row, mapping.X, rowLabel, "x position", true)
	if errMsg != "" {
		return model.ExclusionZone{}, errMsg, ""
	}
	// Sill height is optional: doors sit on the floor.
	y, errMsg := numericCell(row, mapping.Y, rowLabel, "sill height", false)
	if errMsg != "" {
		return model.ExclusionZone{}, errMsg, ""
	}
	width, errMsg := numericCell(row, mapping.Width, rowLabel, "width", true)
	if errMsg != "" {
		return model.ExclusionZone{}, errMsg, ""
	}
	height, errMsg := numericCell(row, mapping.Height, rowLabel, "height", true)
	if errMsg != "" {
		return model.ExclusionZone{}, errMsg, ""
	}

	if width <= 0 || height <= 0 {
		return model.ExclusionZone{}, fmt.Sprintf("%s: Width and height must be positive", rowLabel), ""
	}

	var warning string
	if x < 0 || y < 0 {
		warning = fmt.Sprintf("%s: Opening at (%.1f, %.1f) lies partly outside the wall", rowLabel, x, y)
	}

	return model.NewExclusionZone(label, x, y, width, height), "", warning
}

// numericCell parses one float cell. Missing optional cells default to zero;
// missing required cells and unparseable values produce an error message.
func numericCell(row []string, idx int, rowLabel, what string, required bool) (float64, string) {
	raw := cellAt(row, idx)
	if raw == "" {
		if required {
			return 0, fmt.Sprintf("%s: Missing %s", rowLabel, what)
		}
		return 0, ""
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, what, raw)
	}
	return v, ""
}

// cellAt returns the trimmed cell at idx, or "" when idx is out of range.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow reports whether the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
