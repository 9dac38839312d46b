package engine

import (
	"fmt"
	"math"

	"github.com/cladplan/cladplan/internal/model"
)

// epsilon absorbs float drift in footprint and containment comparisons.
const epsilon = 0.001

// Layout computes a running-bond panel plan for a rectangular wall.
//
// The wall is tiled in horizontal courses of panel height from the bottom up;
// odd courses start half a panel to the left so vertical joints alternate.
// Cells clipped by the wall edges keep only their visible footprint, and
// cells falling entirely inside a single exclusion zone are skipped.
// Horizontal remainders of cut stock panels feed an offcut pool that later
// cells may consume whole, first fit in creation order.
//
// The result is fully derived from the inputs. Two calls with identical
// inputs return identical results, including placement order: courses bottom
// to top, cells left to right within a course.
func Layout(wall model.WallSurface, panel model.PanelSpec, exclusions []model.ExclusionZone) (*model.LayoutResult, error) {
	if err := validateInputs(wall, panel, exclusions); err != nil {
		return nil, err
	}

	// The pool is local to this invocation; nothing leaks across calls.
	pool := newOffcutPool()
	placed := []model.PlacedPanel{}
	newPanels := 0

	courses := int(math.Ceil(wall.Height / panel.Height))
	for row := 0; row < courses; row++ {
		rowY := float64(row) * panel.Height

		// Odd courses shift left by half a panel for the running bond.
		startX := 0.0
		if row%2 == 1 {
			startX = -panel.Width / 2
		}

		for col := 0; ; col++ {
			cellX := startX + float64(col)*panel.Width
			if cellX >= wall.Width-epsilon {
				break
			}

			visX, visY, visW, visH := visibleFootprint(cellX, rowY, panel, wall)
			if visW <= epsilon || visH <= epsilon {
				continue
			}
			if coveredByExclusion(visX, visY, visW, visH, exclusions) {
				continue
			}

			p := model.PlacedPanel{
				ID:     fmt.Sprintf("panel-%03d", len(placed)+1),
				X:      visX,
				Y:      visY,
				Width:  visW,
				Height: visH,
				IsCut:  visW < panel.Width-epsilon || visH < panel.Height-epsilon,
			}

			if pool.take(visW, visH) {
				p.IsOffcutReuse = true
			} else {
				newPanels++
				// Only horizontal remainders are worth keeping: courses are
				// cut lengthwise, so a vertically clipped panel leaves no
				// reusable strip.
				if visW < panel.Width-epsilon {
					pool.add(model.Offcut{Width: panel.Width - visW, Height: panel.Height})
				}
			}

			placed = append(placed, p)
		}
	}

	grossArea := wall.Area()
	netArea := grossArea
	for _, z := range exclusions {
		netArea -= z.Area()
	}
	panelArea := panel.Area()

	return &model.LayoutResult{
		GrossArea:         grossArea,
		NetArea:           netArea,
		TheoreticalPanels: int(math.Ceil(netArea / panelArea)),
		PracticalPanels:   newPanels,
		WasteArea:         float64(newPanels)*panelArea - netArea,
		PlacedPanels:      placed,
		LeftoverOffcuts:   pool.offcuts,
	}, nil
}

// validateInputs rejects non-positive wall, panel, or exclusion dimensions.
// Out-of-bounds or overlapping exclusions pass; only positivity is enforced.
func validateInputs(wall model.WallSurface, panel model.PanelSpec, exclusions []model.ExclusionZone) error {
	if err := wall.Validate(); err != nil {
		return err
	}
	if err := panel.Validate(); err != nil {
		return err
	}
	for _, z := range exclusions {
		if err := z.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// visibleFootprint clips a nominal grid cell to the wall bounds.
func visibleFootprint(cellX, cellY float64, panel model.PanelSpec, wall model.WallSurface) (x, y, w, h float64) {
	x = math.Max(cellX, 0)
	y = cellY
	w = math.Min(cellX+panel.Width, wall.Width) - x
	h = math.Min(cellY+panel.Height, wall.Height) - y
	return x, y, w, h
}

// coveredByExclusion reports whether the footprint lies entirely inside a
// single exclusion zone. Partial overlap does not count: a partially
// obstructed cell still needs a full panel.
func coveredByExclusion(x, y, w, h float64, exclusions []model.ExclusionZone) bool {
	for _, z := range exclusions {
		if z.X <= x+epsilon && z.Y <= y+epsilon &&
			z.X+z.Width >= x+w-epsilon && z.Y+z.Height >= y+h-epsilon {
			return true
		}
	}
	return false
}

// offcutPool holds the reusable scraps generated while laying one wall.
type offcutPool struct {
	offcuts []model.Offcut
}

func newOffcutPool() *offcutPool {
	return &offcutPool{offcuts: []model.Offcut{}}
}

// add appends an offcut. Insertion order is the reuse order.
func (op *offcutPool) add(o model.Offcut) {
	op.offcuts = append(op.offcuts, o)
}

// take removes and consumes the first offcut covering w by h. First fit, not
// best fit, and the whole offcut goes: an oversized match returns no
// remainder to the pool.
func (op *offcutPool) take(w, h float64) bool {
	for i, o := range op.offcuts {
		if o.Width >= w-epsilon && o.Height >= h-epsilon {
			op.offcuts = append(op.offcuts[:i], op.offcuts[i+1:]...)
			return true
		}
	}
	return false
}
