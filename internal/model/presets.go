package model

import "github.com/google/uuid"

// PanelPreset represents a reusable cladding panel definition.
type PanelPreset struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Material      string  `json:"material"`
	Width         float64 `json:"width"`  // cm
	Height        float64 `json:"height"` // cm
	PricePerPanel float64 `json:"price_per_panel"`
	PanelsPerPack int     `json:"panels_per_pack"`
}

// NewPanelPreset creates a new PanelPreset with a generated ID.
func NewPanelPreset(name, material string, width, height, price float64, perPack int) PanelPreset {
	return PanelPreset{
		ID:            uuid.New().String()[:8],
		Name:          name,
		Material:      material,
		Width:         width,
		Height:        height,
		PricePerPanel: price,
		PanelsPerPack: perPack,
	}
}

// ToSpec converts a preset into a panel spec for the layout engine.
func (pp PanelPreset) ToSpec() PanelSpec {
	return PanelSpec{Width: pp.Width, Height: pp.Height}
}

// PresetCatalog holds the user's panel presets.
type PresetCatalog struct {
	Panels []PanelPreset `json:"panels"`
}

// DefaultPresets returns a catalog populated with common cladding boards.
func DefaultPresets() PresetCatalog {
	return PresetCatalog{
		Panels: []PanelPreset{
			NewPanelPreset("Fibre Cement 100x50", "Fibre cement", 100, 50, 18.50, 10),
			NewPanelPreset("Fibre Cement 120x60", "Fibre cement", 120, 60, 27.90, 8),
			NewPanelPreset("HPL Compact 80x40", "HPL", 80, 40, 12.40, 12),
			NewPanelPreset("Ceramic Slip 60x30", "Ceramic", 60, 30, 8.75, 20),
			NewPanelPreset("Composite XL 150x75", "Aluminium composite", 150, 75, 52.00, 4),
		},
	}
}

// FindPanelByID returns a pointer to the preset with the given ID, or nil.
func (pc *PresetCatalog) FindPanelByID(id string) *PanelPreset {
	for i := range pc.Panels {
		if pc.Panels[i].ID == id {
			return &pc.Panels[i]
		}
	}
	return nil
}

// FindPanelByName returns a pointer to the first preset with the given name, or nil.
func (pc *PresetCatalog) FindPanelByName(name string) *PanelPreset {
	for i := range pc.Panels {
		if pc.Panels[i].Name == name {
			return &pc.Panels[i]
		}
	}
	return nil
}

// PanelNames returns a list of preset names for pickers.
func (pc *PresetCatalog) PanelNames() []string {
	names := make([]string, len(pc.Panels))
	for i, p := range pc.Panels {
		names[i] = p.Name
	}
	return names
}
