package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cladplan/cladplan/internal/model"
)

// DefaultPresetPath returns the default file path for the panel preset catalog.
// This is located at ~/.cladplan/presets.json.
func DefaultPresetPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SavePresets writes the preset catalog to the specified JSON file.
func SavePresets(path string, catalog model.PresetCatalog) error {
	return saveJSON(path, catalog)
}

// LoadPresets reads the preset catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it,
// so users have a starter file to edit.
func LoadPresets(path string) (model.PresetCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			catalog := model.DefaultPresets()
			if saveErr := SavePresets(path, catalog); saveErr != nil {
				return catalog, saveErr
			}
			return catalog, nil
		}
		return model.PresetCatalog{}, err
	}
	var catalog model.PresetCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return model.PresetCatalog{}, err
	}
	if catalog.Panels == nil {
		catalog.Panels = []model.PanelPreset{}
	}
	return catalog, nil
}

// ExportPresets exports the preset catalog to a user-specified JSON file.
func ExportPresets(path string, catalog model.PresetCatalog) error {
	return SavePresets(path, catalog)
}

// ImportPresets imports a preset catalog from a user-specified JSON file,
// merging it with the existing catalog. Duplicate IDs are skipped.
func ImportPresets(path string, existing model.PresetCatalog) (model.PresetCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.PresetCatalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	seen := make(map[string]bool, len(existing.Panels))
	for _, p := range existing.Panels {
		seen[p.ID] = true
	}
	for _, p := range imported.Panels {
		if !seen[p.ID] {
			existing.Panels = append(existing.Panels, p)
			seen[p.ID] = true
		}
	}
	return existing, nil
}
