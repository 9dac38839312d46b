package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cladplan/cladplan/internal/model"
)

// DefaultTemplatePath returns the default file path for the opening templates
// store. This is located at ~/.cladplan/templates.json.
func DefaultTemplatePath() string {
	return filepath.Join(DefaultConfigDir(), "templates.json")
}

// SaveTemplates writes the template store to a JSON file.
func SaveTemplates(path string, store model.TemplateStore) error {
	return saveJSON(path, store)
}

// LoadTemplates reads a template store from a JSON file.
// If the file does not exist, returns the built-in opening templates.
func LoadTemplates(path string) (model.TemplateStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultOpeningTemplates(), nil
		}
		return model.TemplateStore{}, err
	}
	var store model.TemplateStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.TemplateStore{}, err
	}
	if store.Templates == nil {
		store.Templates = []model.OpeningTemplate{}
	}
	return store, nil
}
