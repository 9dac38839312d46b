package export

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/cladplan/cladplan/internal/model"
)

// BuildSchedule renders a plain-text cutting schedule for a layout: one
// section per course listing every panel with its cut instruction, followed
// by leftover offcuts and material totals. The format is meant to be printed
// and taken to the saw.
func BuildSchedule(project model.Project, result *model.LayoutResult) string {
	var b strings.Builder

	writeScheduleHeader(&b, project, result)

	courses := groupByCourse(result.PlacedPanels, project.Panel.Height)
	for _, course := range courses {
		writeCourse(&b, course, project.Panel)
	}

	writeScheduleFooter(&b, result)
	return b.String()
}

// WriteSchedule writes the cutting schedule to a text file.
func WriteSchedule(path string, project model.Project, result *model.LayoutResult) error {
	if result == nil || len(result.PlacedPanels) == 0 {
		return fmt.Errorf("no placed panels to export")
	}
	if err := os.WriteFile(path, []byte(BuildSchedule(project, result)), 0644); err != nil {
		return fmt.Errorf("failed to write schedule: %w", err)
	}
	return nil
}

// courseGroup collects the panels of one course in placement order.
type courseGroup struct {
	index  int
	bottom float64
	panels []model.PlacedPanel
}

// groupByCourse splits placed panels into per-course groups. Placement order
// is already bottom-up, so course groups come out sorted.
func groupByCourse(panels []model.PlacedPanel, panelHeight float64) []courseGroup {
	var groups []courseGroup
	for _, p := range panels {
		idx := courseIndex(p.Y, panelHeight)
		if len(groups) == 0 || groups[len(groups)-1].index != idx {
			groups = append(groups, courseGroup{index: idx, bottom: p.Y})
		}
		last := &groups[len(groups)-1]
		last.panels = append(last.panels, p)
	}
	return groups
}

func writeScheduleHeader(b *strings.Builder, project model.Project, result *model.LayoutResult) {
	title := fmt.Sprintf("CUTTING SCHEDULE - %s", project.Name)
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	courses := int(math.Ceil(project.Wall.Height / project.Panel.Height))
	b.WriteString(fmt.Sprintf("Wall:   %.0f x %.0f cm\n", project.Wall.Width, project.Wall.Height))
	b.WriteString(fmt.Sprintf("Panel:  %.0f x %.0f cm (%d courses)\n", project.Panel.Width, project.Panel.Height, courses))
	if len(project.Exclusions) > 0 {
		b.WriteString(fmt.Sprintf("Openings: %d\n", len(project.Exclusions)))
	}
	b.WriteString("\n")
}

func writeCourse(b *strings.Builder, course courseGroup, panel model.PanelSpec) {
	top := course.bottom + course.panels[0].Height
	b.WriteString(fmt.Sprintf("Course %d (y %.0f-%.0f):\n", course.index+1, course.bottom, top))

	for _, p := range course.panels {
		b.WriteString(fmt.Sprintf("  %-10s  x=%-7.1f %6.1f x %-6.1f  %s\n",
			p.ID, p.X, p.Width, p.Height, cutInstruction(p, panel)))
	}
	b.WriteString("\n")
}

// cutInstruction describes what the installer does with one panel.
func cutInstruction(p model.PlacedPanel, panel model.PanelSpec) string {
	switch {
	case p.IsOffcutReuse:
		return fmt.Sprintf("cut offcut to %.1f x %.1f", p.Width, p.Height)
	case p.IsCut:
		return fmt.Sprintf("cut new panel to %.1f x %.1f", p.Width, p.Height)
	default:
		return "full panel"
	}
}

func writeScheduleFooter(b *strings.Builder, result *model.LayoutResult) {
	if len(result.LeftoverOffcuts) > 0 {
		b.WriteString("Offcuts left over:\n")
		for i, o := range result.LeftoverOffcuts {
			b.WriteString(fmt.Sprintf("  %d: %.1f x %.1f cm\n", i+1, o.Width, o.Height))
		}
		b.WriteString("\n")
	}

	b.WriteString("Totals:\n")
	b.WriteString(fmt.Sprintf("  Panels placed:    %d\n", len(result.PlacedPanels)))
	b.WriteString(fmt.Sprintf("  New stock used:   %d\n", result.PracticalPanels))
	b.WriteString(fmt.Sprintf("  Offcuts reused:   %d\n", result.ReusedPanels()))
	b.WriteString(fmt.Sprintf("  Net area:         %.0f cm2\n", result.NetArea))
	b.WriteString(fmt.Sprintf("  Waste area:       %.0f cm2 (%.1f%% of purchased)\n",
		result.WasteArea, 100.0-result.Efficiency()))
}
