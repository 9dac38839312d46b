// Package export renders panel layout results to shareable file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/cladplan/cladplan/internal/model"
)

// panelColor represents an RGB color for a placed panel.
type panelColor struct {
	R, G, B int
}

// Placed panels are colored by material source rather than identity.
var (
	colorFull  = panelColor{R: 76, G: 175, B: 80}  // green: uncut new stock
	colorCut   = panelColor{R: 255, G: 152, B: 0}  // orange: cut new stock
	colorReuse = panelColor{R: 33, G: 150, B: 243} // blue: offcut reuse
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// WritePDF generates a PDF document for a panel layout. The wall elevation is
// rendered on the first page with exclusion zones hatched out, followed by a
// summary page with material statistics.
func WritePDF(path string, project model.Project, result *model.LayoutResult) error {
	if result == nil || len(result.PlacedPanels) == 0 {
		return fmt.Errorf("no placed panels to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderWallPage(pdf, project, result)

	pdf.AddPage()
	renderSummaryPage(pdf, project, result)

	return pdf.OutputFileAndClose(path)
}

// renderWallPage draws the wall elevation with all placed panels.
func renderWallPage(pdf *fpdf.Fpdf, project model.Project, result *model.LayoutResult) {
	wall := project.Wall

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s (%.0f x %.0f cm)", project.Name, wall.Width, wall.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Panels: %d | New stock: %d | Offcuts reused: %d | Net area: %.0f cm² | Efficiency: %.1f%%",
		len(result.PlacedPanels), result.PracticalPanels, result.ReusedPanels(), result.NetArea, result.Efficiency())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	// Scale the wall to fit the drawing area
	scaleX := drawWidth / wall.Width
	scaleY := drawHeight / wall.Height
	scale := math.Min(scaleX, scaleY)

	canvasW := wall.Width * scale
	canvasH := wall.Height * scale

	// Center the drawing horizontally
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Wall background
	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	drawExclusionZones(pdf, project.Exclusions, wall, scale, offsetX, offsetY)

	// Draw placed panels. Course 0 sits at the bottom of the wall, so the
	// vertical axis is flipped into page coordinates.
	for _, p := range result.PlacedPanels {
		col := colorForPanel(p)
		pw := p.Width * scale
		ph := p.Height * scale
		px := offsetX + p.X*scale
		py := offsetY + (wall.Height-p.Y-p.Height)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Panel label (only if rectangle is large enough)
		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := p.ID
			dims := fmt.Sprintf("%.0fx%.0f", p.Width, p.Height)

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			// First line: panel ID
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}

			// Second line: visible dimensions
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, wall, scale, offsetX, offsetY, canvasW, canvasH)
	drawLegend(pdf, result, offsetY+canvasH+5)
}

// colorForPanel picks the source color: reuse beats cut, cut beats full.
func colorForPanel(p model.PlacedPanel) panelColor {
	switch {
	case p.IsOffcutReuse:
		return colorReuse
	case p.IsCut:
		return colorCut
	default:
		return colorFull
	}
}

// drawExclusionZones renders hatched no-panel areas, clipped to the wall.
func drawExclusionZones(pdf *fpdf.Fpdf, zones []model.ExclusionZone, wall model.WallSurface, scale, offsetX, offsetY float64) {
	for _, zone := range zones {
		x0 := math.Max(zone.X, 0)
		y0 := math.Max(zone.Y, 0)
		x1 := math.Min(zone.X+zone.Width, wall.Width)
		y1 := math.Min(zone.Y+zone.Height, wall.Height)
		if x1-x0 <= 0 || y1-y0 <= 0 {
			continue
		}

		zx := offsetX + x0*scale
		zy := offsetY + (wall.Height-y1)*scale
		zw := (x1 - x0) * scale
		zh := (y1 - y0) * scale

		// Semi-transparent red zone (simulate with light fill + hatching)
		pdf.SetFillColor(255, 200, 200)
		pdf.SetDrawColor(200, 0, 0)
		pdf.SetLineWidth(0.3)
		pdf.Rect(zx, zy, zw, zh, "FD")

		drawHatchPattern(pdf, zx, zy, zw, zh)

		// Label for larger zones
		if zw > 20 && zh > 8 {
			pdf.SetFont("Helvetica", "B", 6)
			pdf.SetTextColor(180, 0, 0)
			label := "NO PANEL"
			if zone.Label != "" {
				label = zone.Label
			}
			labelW := pdf.GetStringWidth(label)
			pdf.SetXY(zx+(zw-labelW)/2, zy+zh/2-2)
			pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
		}
	}

	// Reset text color
	pdf.SetTextColor(0, 0, 0)
}

// drawHatchPattern draws diagonal lines inside a rectangle to indicate exclusion zones.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.15)

	spacing := 4.0
	maxDist := w + h

	for d := spacing; d < maxDist; d += spacing {
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)

		pdf.Line(x1, y1, x2, y2)
	}
}

// drawDimensionAnnotations adds width and height labels outside the wall rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, wall model.WallSurface, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width annotation (below the wall)
	widthLabel := fmt.Sprintf("%.0f cm", wall.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left of the wall, rotated)
	heightLabel := fmt.Sprintf("%.0f cm", wall.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	// Reset text color
	pdf.SetTextColor(0, 0, 0)
}

// drawLegend renders the material source legend below the wall drawing.
func drawLegend(pdf *fpdf.Fpdf, result *model.LayoutResult, startY float64) {
	reused := result.ReusedPanels()
	cut := 0
	for _, p := range result.PlacedPanels {
		if p.IsCut && !p.IsOffcutReuse {
			cut++
		}
	}
	full := len(result.PlacedPanels) - reused - cut

	entries := []struct {
		color panelColor
		label string
	}{
		{colorFull, fmt.Sprintf("Full panel (%d)", full)},
		{colorCut, fmt.Sprintf("Cut from new stock (%d)", cut)},
		{colorReuse, fmt.Sprintf("Cut from offcut (%d)", reused)},
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	xPos := marginLeft

	for _, e := range entries {
		pdf.SetFillColor(e.color.R, e.color.G, e.color.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		labelW := pdf.GetStringWidth(e.label) + 4
		pdf.CellFormat(labelW, 4, e.label, "", 0, "L", false, 0, "")

		xPos += labelW + 10
	}
}

// renderSummaryPage draws the final page with overall material statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, project model.Project, result *model.LayoutResult) {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Panel Layout Summary", "", 0, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Material Statistics", "", 0, "L", false, 0, "")
	y += 9

	courses := int(math.Ceil(project.Wall.Height / project.Panel.Height))
	summaryItems := []struct {
		label string
		value string
	}{
		{"Wall", fmt.Sprintf("%.0f x %.0f cm", project.Wall.Width, project.Wall.Height)},
		{"Panel", fmt.Sprintf("%.0f x %.0f cm", project.Panel.Width, project.Panel.Height)},
		{"Courses", fmt.Sprintf("%d", courses)},
		{"Gross Wall Area", fmt.Sprintf("%.0f cm²", result.GrossArea)},
		{"Net Area To Clad", fmt.Sprintf("%.0f cm²", result.NetArea)},
		{"Theoretical Panels", fmt.Sprintf("%d", result.TheoreticalPanels)},
		{"Panels To Purchase", fmt.Sprintf("%d", result.PracticalPanels)},
		{"Offcuts Reused", fmt.Sprintf("%d", result.ReusedPanels())},
		{"Waste Area", fmt.Sprintf("%.0f cm²", result.WasteArea)},
		{"Efficiency", fmt.Sprintf("%.1f%%", result.Efficiency())},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	// Exclusion zone breakdown
	if len(project.Exclusions) > 0 {
		y += 5
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 7, "Exclusion Zones", "", 0, "L", false, 0, "")
		y += 9

		colWidths := []float64{60, 45, 45, 40}
		headers := []string{"Label", "Position", "Size", "Area"}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		xPos := marginLeft
		for i, header := range headers {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
			xPos += colWidths[i]
		}
		y += 6

		pdf.SetFont("Helvetica", "", 9)
		for i, zone := range project.Exclusions {
			label := zone.Label
			if label == "" {
				label = zone.ID
			}
			rowData := []string{
				label,
				fmt.Sprintf("(%.0f, %.0f)", zone.X, zone.Y),
				fmt.Sprintf("%.0f x %.0f cm", zone.Width, zone.Height),
				fmt.Sprintf("%.0f cm²", zone.Area()),
			}

			if i%2 == 0 {
				pdf.SetFillColor(245, 245, 245)
			} else {
				pdf.SetFillColor(255, 255, 255)
			}

			xPos = marginLeft
			for j, cell := range rowData {
				pdf.SetXY(xPos, y)
				pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
				xPos += colWidths[j]
			}
			y += 6
		}
	}

	// Leftover offcuts
	if len(result.LeftoverOffcuts) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 7, "Leftover Offcuts", "", 0, "L", false, 0, "")
		y += 9

		pdf.SetFont("Helvetica", "", 9)
		for i, o := range result.LeftoverOffcuts {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- Offcut %d: %.1f x %.1f cm", i+1, o.Width, o.Height)
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by CladPlan - Wall Panel Layout Planner", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
