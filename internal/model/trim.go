package model

import "math"

// TrimEstimate holds the linear trim and sealant takeoff for a wall.
// Trim runs along the wall perimeter and around every opening.
type TrimEstimate struct {
	TotalLinearCM    float64 `json:"total_linear_cm"`     // Total trim length in cm (no waste)
	TotalLinearM     float64 `json:"total_linear_m"`      // Total trim length in meters (no waste)
	WastePercent     float64 `json:"waste_percent"`       // Waste percentage applied
	TotalWithWaste   float64 `json:"total_with_waste_cm"` // Total with waste in cm
	StickLength      float64 `json:"stick_length"`        // Length of one trim stick in cm
	SticksNeeded     int     `json:"sticks_needed"`       // Whole sticks to order
	PricePerStick    float64 `json:"price_per_stick"`     // Price used for estimation
	EstimatedCost    float64 `json:"estimated_cost"`      // Total cost of the trim order
	OpeningCount     int     `json:"opening_count"`       // Openings contributing perimeter
	WallPerimeter    float64 `json:"wall_perimeter"`      // cm
	OpeningPerimeter float64 `json:"opening_perimeter"`   // cm, all openings combined
}

// CalculateTrim computes the trim needed around the wall and its openings.
// wastePercent is the additional percentage to add for miter cuts and waste.
func CalculateTrim(wall WallSurface, exclusions []ExclusionZone, wastePercent, stickLength, pricePerStick float64) TrimEstimate {
	wallPerimeter := 2 * (wall.Width + wall.Height)

	var openingPerimeter float64
	for _, z := range exclusions {
		openingPerimeter += 2 * (z.Width + z.Height)
	}

	total := wallPerimeter + openingPerimeter
	wasteFactor := 1.0 + (wastePercent / 100.0)
	withWaste := math.Ceil(total * wasteFactor)

	sticks := 0
	if stickLength > 0 {
		sticks = int(math.Ceil(withWaste / stickLength))
	}

	return TrimEstimate{
		TotalLinearCM:    total,
		TotalLinearM:     total / 100.0,
		WastePercent:     wastePercent,
		TotalWithWaste:   withWaste,
		StickLength:      stickLength,
		SticksNeeded:     sticks,
		PricePerStick:    pricePerStick,
		EstimatedCost:    float64(sticks) * pricePerStick,
		OpeningCount:     len(exclusions),
		WallPerimeter:    wallPerimeter,
		OpeningPerimeter: openingPerimeter,
	}
}
