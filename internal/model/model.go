package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidInput is returned for non-positive wall, panel, or exclusion
// dimensions. Match with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// WallSurface represents the full rectangular area to be covered.
type WallSurface struct {
	Width  float64 `json:"width"`  // cm
	Height float64 `json:"height"` // cm
}

// Area returns the gross wall area in cm².
func (w WallSurface) Area() float64 {
	return w.Width * w.Height
}

// Validate checks that both dimensions are positive.
func (w WallSurface) Validate() error {
	if w.Width <= 0 {
		return fmt.Errorf("%w: wall width %.2f must be positive", ErrInvalidInput, w.Width)
	}
	if w.Height <= 0 {
		return fmt.Errorf("%w: wall height %.2f must be positive", ErrInvalidInput, w.Height)
	}
	return nil
}

// PanelSpec holds the fixed dimensions of one stock panel.
// All stock panels in a layout are identical.
type PanelSpec struct {
	Width  float64 `json:"width"`  // cm
	Height float64 `json:"height"` // cm
}

// Area returns the area of one stock panel in cm².
func (p PanelSpec) Area() float64 {
	return p.Width * p.Height
}

// Validate checks that both dimensions are positive.
func (p PanelSpec) Validate() error {
	if p.Width <= 0 {
		return fmt.Errorf("%w: panel width %.2f must be positive", ErrInvalidInput, p.Width)
	}
	if p.Height <= 0 {
		return fmt.Errorf("%w: panel height %.2f must be positive", ErrInvalidInput, p.Height)
	}
	return nil
}

// ExclusionZone represents a rectangular area (window, door) that does not
// require coverage. Position is the bottom-left corner relative to the wall
// origin.
type ExclusionZone struct {
	ID     string  `json:"id"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x"`      // cm from wall left edge
	Y      float64 `json:"y"`      // cm from wall bottom edge
	Width  float64 `json:"width"`  // cm
	Height float64 `json:"height"` // cm
}

func NewExclusionZone(label string, x, y, w, h float64) ExclusionZone {
	return ExclusionZone{
		ID:     uuid.New().String()[:8],
		Label:  label,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
	}
}

// Area returns the zone area in cm².
func (z ExclusionZone) Area() float64 {
	return z.Width * z.Height
}

// Validate checks that both dimensions are positive. Out-of-bounds or
// overlapping zones are accepted; only positivity is enforced.
func (z ExclusionZone) Validate() error {
	if z.Width <= 0 {
		return fmt.Errorf("%w: exclusion %s width %.2f must be positive", ErrInvalidInput, z.ID, z.Width)
	}
	if z.Height <= 0 {
		return fmt.Errorf("%w: exclusion %s height %.2f must be positive", ErrInvalidInput, z.ID, z.Height)
	}
	return nil
}

// Offcut is a scrap piece produced by cutting a stock panel down to fit a
// clipped cell. Offcuts are consumed whole and never subdivided.
type Offcut struct {
	Width  float64 `json:"width"`  // cm
	Height float64 `json:"height"` // cm
}

// Area returns the offcut area in cm².
func (o Offcut) Area() float64 {
	return o.Width * o.Height
}

// Fits reports whether the offcut covers a footprint of w by h.
func (o Offcut) Fits(w, h float64) bool {
	return o.Width >= w && o.Height >= h
}

// PlacedPanel represents one piece of material (full or cut) occupying a
// rectangular footprint on the wall. Width and Height are the visible
// footprint, which may be smaller than the stock panel due to clipping.
type PlacedPanel struct {
	ID            string  `json:"id"`
	X             float64 `json:"x"` // cm from wall left edge
	Y             float64 `json:"y"` // cm from wall bottom edge
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	IsCut         bool    `json:"is_cut"`
	IsOffcutReuse bool    `json:"is_offcut_reuse"`
}

// Area returns the visible footprint area in cm².
func (p PlacedPanel) Area() float64 {
	return p.Width * p.Height
}

// LayoutResult holds the full placement plan and its summary statistics.
// It is fully derived from the inputs and recomputed on every call.
type LayoutResult struct {
	GrossArea         float64       `json:"gross_area"`         // cm²
	NetArea           float64       `json:"net_area"`           // cm²
	TheoreticalPanels int           `json:"theoretical_panels"` // ceil(net / panel area)
	PracticalPanels   int           `json:"practical_panels"`   // new stock panels consumed
	WasteArea         float64       `json:"waste_area"`         // cm², not clamped
	PlacedPanels      []PlacedPanel `json:"placed_panels"`
	LeftoverOffcuts   []Offcut      `json:"leftover_offcuts"` // pool remnant after the final course
}

// CoveredArea returns the total visible area of all placed panels.
func (r LayoutResult) CoveredArea() float64 {
	var total float64
	for _, p := range r.PlacedPanels {
		total += p.Area()
	}
	return total
}

// ReusedPanels returns how many placements were satisfied from the offcut pool.
func (r LayoutResult) ReusedPanels() int {
	var n int
	for _, p := range r.PlacedPanels {
		if p.IsOffcutReuse {
			n++
		}
	}
	return n
}

// CutPanels returns how many placements required cutting.
func (r LayoutResult) CutPanels() int {
	var n int
	for _, p := range r.PlacedPanels {
		if p.IsCut {
			n++
		}
	}
	return n
}

// Efficiency returns net coverage as a percentage of purchased material.
func (r LayoutResult) Efficiency() float64 {
	purchased := r.NetArea + r.WasteArea
	if purchased <= 0 {
		return 0
	}
	return (r.NetArea / purchased) * 100.0
}

// Project ties a wall, panel choice, and openings together for save/load.
type Project struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Wall       WallSurface     `json:"wall"`
	Panel      PanelSpec       `json:"panel"`
	Exclusions []ExclusionZone `json:"exclusions"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

func NewProject(name string, wall WallSurface, panel PanelSpec) Project {
	now := time.Now().Format(time.RFC3339)
	return Project{
		ID:         uuid.New().String()[:8],
		Name:       name,
		Wall:       wall,
		Panel:      panel,
		Exclusions: []ExclusionZone{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Touch refreshes the modification timestamp.
func (p *Project) Touch() {
	p.UpdatedAt = time.Now().Format(time.RFC3339)
}
