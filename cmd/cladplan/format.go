package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cladplan/cladplan/internal/engine"
	"github.com/cladplan/cladplan/internal/model"
)

// parseDimensions parses a "WxH" dimension string such as "500x300".
func parseDimensions(s string) (float64, float64, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid dimensions %q (expected WxH, e.g. 500x300)", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	return w, h, nil
}

// parseZones parses repeated "x,y,w,h" exclusion flags into zones.
func parseZones(flags []string) ([]model.ExclusionZone, error) {
	zones := []model.ExclusionZone{}
	for i, f := range flags {
		parts := strings.Split(f, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("invalid zone %q (expected x,y,w,h, e.g. 200,0,100,210)", f)
		}
		vals := make([]float64, 4)
		for j, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid zone %q: %w", f, err)
			}
			vals[j] = v
		}
		zones = append(zones, model.NewExclusionZone(fmt.Sprintf("Zone %d", i+1), vals[0], vals[1], vals[2], vals[3]))
	}
	return zones, nil
}

func printComparisonTable(results []engine.ComparisonResult) {
	fmt.Printf("%-24s %8s %8s %12s %9s %10s\n",
		"Scenario", "Panels", "Reused", "Waste (cm2)", "Waste %", "Cost")
	fmt.Printf("%-24s %8s %8s %12s %9s %10s\n",
		strings.Repeat("-", 24), "--------", "--------", "------------", "---------", "----------")

	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("%-24s error: %s\n", r.Scenario.Name, r.Error)
			continue
		}
		cost := "-"
		if r.EstimatedCost > 0 {
			cost = fmt.Sprintf("%.2f", r.EstimatedCost)
		}
		fmt.Printf("%-24s %8d %8d %12.0f %8.1f%% %10s\n",
			r.Scenario.Name, r.PanelsRequired, r.OffcutsReused, r.WasteArea, r.WastePercent, cost)
	}
}

func printPurchaseEstimate(est model.PurchaseEstimate) {
	fmt.Println()
	fmt.Println("Purchase estimate:")
	fmt.Printf("  New panels needed:  %d\n", est.PanelsRequired)
	fmt.Printf("  Breakage allowance: %.0f%% -> %d panels\n", est.WastePercent, est.PanelsWithAllowance)
	if est.PanelsPerPack > 1 {
		fmt.Printf("  Packs of %d:        %d\n", est.PanelsPerPack, est.Packs)
	}
	fmt.Printf("  Panels to order:    %d\n", est.PanelsToOrder)
	if est.PricePerPanel > 0 {
		fmt.Printf("  Estimated cost:     %.2f\n", est.EstimatedCost)
	}
}

func printTrimEstimate(est model.TrimEstimate) {
	fmt.Println()
	fmt.Println("Trim estimate:")
	fmt.Printf("  Wall perimeter:     %.0f cm\n", est.WallPerimeter)
	if est.OpeningCount > 0 {
		fmt.Printf("  Opening perimeter:  %.0f cm (%d openings)\n", est.OpeningPerimeter, est.OpeningCount)
	}
	fmt.Printf("  Total with waste:   %.0f cm\n", est.TotalWithWaste)
	fmt.Printf("  Sticks of %.0f cm:  %d\n", est.StickLength, est.SticksNeeded)
	if est.PricePerStick > 0 {
		fmt.Printf("  Estimated cost:     %.2f\n", est.EstimatedCost)
	}
}

func printImportNotes(errors, warnings []string) {
	if len(errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(errors))
		for _, e := range errors {
			fmt.Printf("  %s\n", e)
		}
	}
	if len(warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("  %s\n", w)
		}
	}
}
