package engine

import (
	"fmt"

	"github.com/cladplan/cladplan/internal/model"
)

// ComparisonScenario defines a named candidate panel spec to compare.
type ComparisonScenario struct {
	Name          string          `json:"name"`
	Panel         model.PanelSpec `json:"panel"`
	PricePerPanel float64         `json:"price_per_panel,omitempty"`
}

// ComparisonResult holds the layout result and computed statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario       ComparisonScenario  `json:"scenario"`
	Result         *model.LayoutResult `json:"result,omitempty"`
	PanelsRequired int                 `json:"panels_required"`
	PanelsPlaced   int                 `json:"panels_placed"`
	OffcutsReused  int                 `json:"offcuts_reused"`
	WasteArea      float64             `json:"waste_area"`
	WastePercent   float64             `json:"waste_percent"`
	EstimatedCost  float64             `json:"estimated_cost,omitempty"`
	Error          string              `json:"error,omitempty"`
}

// CompareScenarios runs the layout engine once per candidate panel and
// returns side-by-side statistics in scenario order. This is reporting only:
// each scenario uses the same greedy first-fit heuristic, nothing is tuned
// per scenario.
func CompareScenarios(wall model.WallSurface, exclusions []model.ExclusionZone, scenarios []ComparisonScenario) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result, err := Layout(wall, scenario.Panel, exclusions)
		if err != nil {
			results = append(results, ComparisonResult{
				Scenario: scenario,
				Error:    err.Error(),
			})
			continue
		}

		results = append(results, ComparisonResult{
			Scenario:       scenario,
			Result:         result,
			PanelsRequired: result.PracticalPanels,
			PanelsPlaced:   len(result.PlacedPanels),
			OffcutsReused:  result.ReusedPanels(),
			WasteArea:      result.WasteArea,
			WastePercent:   100.0 - result.Efficiency(),
			EstimatedCost:  float64(result.PracticalPanels) * scenario.PricePerPanel,
		})
	}

	return results
}

// BuildScenariosFromPresets turns a panel preset catalog into comparison
// scenarios, carrying each preset's price for cost estimates.
func BuildScenariosFromPresets(catalog model.PresetCatalog) []ComparisonScenario {
	scenarios := make([]ComparisonScenario, 0, len(catalog.Panels))
	for _, p := range catalog.Panels {
		scenarios = append(scenarios, ComparisonScenario{
			Name:          p.Name,
			Panel:         p.ToSpec(),
			PricePerPanel: p.PricePerPanel,
		})
	}
	return scenarios
}

// BuildDefaultScenarios generates what-if alternatives around a base panel:
// the base itself, a wider format, a taller format, and a half-width panel
// for a tighter bond.
func BuildDefaultScenarios(base model.PanelSpec) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Panel", Panel: base},
	}

	wide := model.PanelSpec{Width: base.Width * 1.5, Height: base.Height}
	scenarios = append(scenarios, ComparisonScenario{
		Name:  fmt.Sprintf("Wide %.0fx%.0f", wide.Width, wide.Height),
		Panel: wide,
	})

	tall := model.PanelSpec{Width: base.Width, Height: base.Height * 1.5}
	scenarios = append(scenarios, ComparisonScenario{
		Name:  fmt.Sprintf("Tall %.0fx%.0f", tall.Width, tall.Height),
		Panel: tall,
	})

	if base.Width >= 2 {
		half := model.PanelSpec{Width: base.Width / 2, Height: base.Height}
		scenarios = append(scenarios, ComparisonScenario{
			Name:  fmt.Sprintf("Half Width %.0fx%.0f", half.Width, half.Height),
			Panel: half,
		})
	}

	return scenarios
}
