package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/cladplan/cladplan/internal/model"
)

// LabelInfo holds the data encoded into each panel label's QR code.
type LabelInfo struct {
	Project   string  `json:"project"`
	PanelID   string  `json:"panel"`
	Course    int     `json:"course"`
	X         float64 `json:"x_cm"`
	Y         float64 `json:"y_cm"`
	Width     float64 `json:"width_cm"`
	Height    float64 `json:"height_cm"`
	IsCut     bool    `json:"cut"`
	FromScrap bool    `json:"reuse"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// WriteLabels generates a PDF of QR-coded labels, one per placed panel.
// Each label carries the panel ID, its visible dimensions, and a QR code
// encoding placement metadata as JSON. Labels are laid out on a standard
// label sheet format (Avery 5160 / 3 columns x 10 rows on US Letter), so an
// installer can stick one on each cut piece and scan it at the wall.
func WriteLabels(path string, project model.Project, result *model.LayoutResult) error {
	labels := CollectLabelInfos(project, result)
	if len(labels) == 0 {
		return fmt.Errorf("no placed panels to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.PanelID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Generate QR code PNG bytes
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	// Panel IDs are unique within a layout, so they make stable image names.
	imgName := fmt.Sprintf("qr_%s", info.PanelID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Panel ID (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	panelID := info.PanelID
	if pdf.GetStringWidth(panelID) > textW {
		for len(panelID) > 0 && pdf.GetStringWidth(panelID+"...") > textW {
			panelID = panelID[:len(panelID)-1]
		}
		panelID += "..."
	}
	pdf.CellFormat(textW, 4.5, panelID, "", 1, "L", false, 0, "")

	// Visible dimensions
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.1f x %.1f cm", info.Width, info.Height)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	// Course and position info
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	posInfo := fmt.Sprintf("Course %d @ (%.0f, %.0f)", info.Course, info.X, info.Y)
	pdf.CellFormat(textW, 3, posInfo, "", 1, "L", false, 0, "")

	// Material source indicator
	if info.IsCut || info.FromScrap {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		source := "Cut to size"
		if info.FromScrap {
			source = "Cut from offcut"
			pdf.SetTextColor(0, 100, 180)
		} else {
			pdf.SetTextColor(150, 100, 0)
		}
		pdf.CellFormat(textW, 3, source, "", 0, "L", false, 0, "")
	}

	// Reset text color
	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information from a layout result for use
// in testing or alternative export formats.
func CollectLabelInfos(project model.Project, result *model.LayoutResult) []LabelInfo {
	if result == nil {
		return nil
	}
	var labels []LabelInfo
	for _, p := range result.PlacedPanels {
		labels = append(labels, LabelInfo{
			Project:   project.Name,
			PanelID:   p.ID,
			Course:    courseIndex(p.Y, project.Panel.Height) + 1,
			X:         p.X,
			Y:         p.Y,
			Width:     p.Width,
			Height:    p.Height,
			IsCut:     p.IsCut,
			FromScrap: p.IsOffcutReuse,
		})
	}
	return labels
}

// courseIndex maps a panel's bottom edge back to its zero-based course.
func courseIndex(y, panelHeight float64) int {
	if panelHeight <= 0 {
		return 0
	}
	return int((y + 0.001) / panelHeight)
}
