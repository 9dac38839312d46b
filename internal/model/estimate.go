package model

import "math"

// PurchaseEstimate holds the results of a panel purchasing calculation.
type PurchaseEstimate struct {
	PanelsRequired      int     `json:"panels_required"`       // New stock panels consumed by the layout
	WastePercent        float64 `json:"waste_percent"`         // Breakage allowance applied (e.g., 10 for 10%)
	PanelsWithAllowance int     `json:"panels_with_allowance"` // Required plus allowance, rounded up
	PanelsPerPack       int     `json:"panels_per_pack"`       // Pack size (1 = sold singly)
	Packs               int     `json:"packs"`                 // Full packs to order
	PanelsToOrder       int     `json:"panels_to_order"`       // Final order quantity
	PricePerPanel       float64 `json:"price_per_panel"`       // Price used for estimation
	EstimatedCost       float64 `json:"estimated_cost"`        // Total cost of the order
	SurplusArea         float64 `json:"surplus_area"`          // Ordered area beyond net coverage (cm²)
}

// CalculatePurchaseEstimate computes how many panels to order for a layout.
// It applies a breakage allowance on top of the layout's practical panel
// count and rounds the order up to whole packs.
func CalculatePurchaseEstimate(result LayoutResult, panel PanelSpec, wastePercent, pricePerPanel float64, panelsPerPack int) PurchaseEstimate {
	required := result.PracticalPanels
	if panelsPerPack < 1 {
		panelsPerPack = 1
	}

	wasteFactor := 1.0 + (wastePercent / 100.0)
	withAllowance := int(math.Ceil(float64(required) * wasteFactor))
	if withAllowance < required {
		withAllowance = required
	}

	packs := 0
	toOrder := withAllowance
	if panelsPerPack > 1 {
		packs = int(math.Ceil(float64(withAllowance) / float64(panelsPerPack)))
		toOrder = packs * panelsPerPack
	}

	return PurchaseEstimate{
		PanelsRequired:      required,
		WastePercent:        wastePercent,
		PanelsWithAllowance: withAllowance,
		PanelsPerPack:       panelsPerPack,
		Packs:               packs,
		PanelsToOrder:       toOrder,
		PricePerPanel:       pricePerPanel,
		EstimatedCost:       float64(toOrder) * pricePerPanel,
		SurplusArea:         float64(toOrder)*panel.Area() - result.NetArea,
	}
}
