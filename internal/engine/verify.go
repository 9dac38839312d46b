package engine

import (
	"fmt"

	"github.com/cladplan/cladplan/internal/model"
)

// Issue severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue describes a problem found while checking a computed layout.
type Issue struct {
	Severity string `json:"severity"`
	PanelID  string `json:"panel_id,omitempty"`
	OtherID  string `json:"other_id,omitempty"`
	Message  string `json:"message"`
}

// Verify re-checks a computed layout against the wall it was laid out for.
// Every footprint must stay inside the wall bounds, no two placed panels may
// overlap, and no panel should sit entirely inside an exclusion zone. A clean
// layout returns no issues.
//
// Verify examines:
// 1. Per-panel geometry (degenerate or out-of-bounds footprints)
// 2. Pairwise overlap between placed panels
// 3. Placements that an exclusion zone should have suppressed
func Verify(result *model.LayoutResult, wall model.WallSurface, exclusions []model.ExclusionZone) []Issue {
	var issues []Issue

	for _, p := range result.PlacedPanels {
		if p.Width <= 0 || p.Height <= 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				PanelID:  p.ID,
				Message:  fmt.Sprintf("panel %s has a degenerate footprint %.1fx%.1f", p.ID, p.Width, p.Height),
			})
			continue
		}

		if p.X < -epsilon || p.Y < -epsilon ||
			p.X+p.Width > wall.Width+epsilon || p.Y+p.Height > wall.Height+epsilon {
			issues = append(issues, Issue{
				Severity: SeverityError,
				PanelID:  p.ID,
				Message: fmt.Sprintf("panel %s at (%.1f, %.1f) size %.1fx%.1f extends outside the %.0fx%.0f wall",
					p.ID, p.X, p.Y, p.Width, p.Height, wall.Width, wall.Height),
			})
		}

		for _, z := range exclusions {
			if zoneContains(z, p) {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					PanelID:  p.ID,
					OtherID:  z.ID,
					Message:  fmt.Sprintf("panel %s lies entirely inside exclusion %s and wastes material", p.ID, z.ID),
				})
			}
		}
	}

	for i := 0; i < len(result.PlacedPanels); i++ {
		for j := i + 1; j < len(result.PlacedPanels); j++ {
			a, b := result.PlacedPanels[i], result.PlacedPanels[j]
			if panelsOverlap(a, b) {
				issues = append(issues, Issue{
					Severity: SeverityError,
					PanelID:  a.ID,
					OtherID:  b.ID,
					Message:  fmt.Sprintf("panels %s and %s overlap", a.ID, b.ID),
				})
			}
		}
	}

	return issues
}

// zoneContains returns true if the zone fully contains the panel footprint.
func zoneContains(z model.ExclusionZone, p model.PlacedPanel) bool {
	return z.X <= p.X+epsilon && z.Y <= p.Y+epsilon &&
		z.X+z.Width >= p.X+p.Width-epsilon &&
		z.Y+z.Height >= p.Y+p.Height-epsilon
}

// panelsOverlap returns true if two footprints overlap, not just touch.
func panelsOverlap(a, b model.PlacedPanel) bool {
	return a.X < b.X+b.Width-epsilon && a.X+a.Width > b.X+epsilon &&
		a.Y < b.Y+b.Height-epsilon && a.Y+a.Height > b.Y+epsilon
}

// CountErrors returns how many issues carry error severity.
func CountErrors(issues []Issue) int {
	var n int
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

// FormatIssues produces human-readable lines from verification issues.
func FormatIssues(issues []Issue) []string {
	var lines []string
	for _, issue := range issues {
		lines = append(lines, fmt.Sprintf("[%s] %s", issue.Severity, issue.Message))
	}
	return lines
}
