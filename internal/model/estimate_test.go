package model

import "testing"

func TestCalculatePurchaseEstimateSoldSingly(t *testing.T) {
	result := LayoutResult{PracticalPanels: 28, NetArea: 129000}
	panel := PanelSpec{Width: 100, Height: 50}

	est := CalculatePurchaseEstimate(result, panel, 10.0, 18.50, 1)

	if est.PanelsRequired != 28 {
		t.Errorf("PanelsRequired = %d, want 28", est.PanelsRequired)
	}
	// 28 * 1.10 = 30.8, rounded up
	if est.PanelsWithAllowance != 31 {
		t.Errorf("PanelsWithAllowance = %d, want 31", est.PanelsWithAllowance)
	}
	if est.Packs != 0 {
		t.Errorf("Packs = %d, want 0 when sold singly", est.Packs)
	}
	if est.PanelsToOrder != 31 {
		t.Errorf("PanelsToOrder = %d, want 31", est.PanelsToOrder)
	}
	wantCost := 31 * 18.50
	if est.EstimatedCost != wantCost {
		t.Errorf("EstimatedCost = %v, want %v", est.EstimatedCost, wantCost)
	}
	// 31 * 5000 - 129000
	if est.SurplusArea != 26000 {
		t.Errorf("SurplusArea = %v, want 26000", est.SurplusArea)
	}
}

func TestCalculatePurchaseEstimatePackRounding(t *testing.T) {
	result := LayoutResult{PracticalPanels: 28, NetArea: 129000}
	panel := PanelSpec{Width: 100, Height: 50}

	est := CalculatePurchaseEstimate(result, panel, 10.0, 18.50, 10)

	if est.PanelsWithAllowance != 31 {
		t.Errorf("PanelsWithAllowance = %d, want 31", est.PanelsWithAllowance)
	}
	if est.Packs != 4 {
		t.Errorf("Packs = %d, want 4", est.Packs)
	}
	if est.PanelsToOrder != 40 {
		t.Errorf("PanelsToOrder = %d, want 40", est.PanelsToOrder)
	}
}

func TestCalculatePurchaseEstimateZeroWaste(t *testing.T) {
	result := LayoutResult{PracticalPanels: 12, NetArea: 60000}
	panel := PanelSpec{Width: 100, Height: 50}

	est := CalculatePurchaseEstimate(result, panel, 0, 20.0, 1)

	if est.PanelsWithAllowance != 12 {
		t.Errorf("PanelsWithAllowance = %d, want 12 with no allowance", est.PanelsWithAllowance)
	}
	if est.PanelsToOrder != 12 {
		t.Errorf("PanelsToOrder = %d, want 12", est.PanelsToOrder)
	}
	if est.EstimatedCost != 240.0 {
		t.Errorf("EstimatedCost = %v, want 240", est.EstimatedCost)
	}
}

func TestCalculatePurchaseEstimateEmptyLayout(t *testing.T) {
	est := CalculatePurchaseEstimate(LayoutResult{}, PanelSpec{Width: 100, Height: 50}, 15.0, 18.50, 5)

	if est.PanelsRequired != 0 || est.PanelsToOrder != 0 || est.Packs != 0 {
		t.Errorf("empty layout should order nothing, got %+v", est)
	}
	if est.EstimatedCost != 0 {
		t.Errorf("EstimatedCost = %v, want 0", est.EstimatedCost)
	}
}

func TestCalculatePurchaseEstimateNormalizesPackSize(t *testing.T) {
	result := LayoutResult{PracticalPanels: 5, NetArea: 25000}
	est := CalculatePurchaseEstimate(result, PanelSpec{Width: 100, Height: 50}, 0, 10.0, 0)

	if est.PanelsPerPack != 1 {
		t.Errorf("PanelsPerPack = %d, want normalized 1", est.PanelsPerPack)
	}
	if est.PanelsToOrder != 5 {
		t.Errorf("PanelsToOrder = %d, want 5", est.PanelsToOrder)
	}
}
