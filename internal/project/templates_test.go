package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cladplan/cladplan/internal/model"
)

func TestSaveAndLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	store := model.NewTemplateStore()
	store.Add(model.NewOpeningTemplate("Garage Door 240x200", "door", 240, 200, 0))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates failed: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates failed: %v", err)
	}

	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	if loaded.Templates[0].Name != "Garage Door 240x200" {
		t.Errorf("expected template name 'Garage Door 240x200', got %q", loaded.Templates[0].Name)
	}
	if loaded.Templates[0].Kind != "door" {
		t.Errorf("expected kind 'door', got %q", loaded.Templates[0].Kind)
	}
}

func TestLoadTemplatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "templates.json")

	store, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	// Missing file falls back to the built-in opening sizes
	defaults := model.DefaultOpeningTemplates()
	if len(store.Templates) != len(defaults.Templates) {
		t.Errorf("expected %d built-in templates, got %d", len(defaults.Templates), len(store.Templates))
	}
	if store.FindByName("Single Door 90x210") == nil {
		t.Error("expected built-in template 'Single Door 90x210'")
	}

	// The fallback is not written to disk
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("missing template file should not be created on load")
	}
}

func TestLoadTemplatesNilTemplates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	if err := os.WriteFile(path, []byte(`{"templates":null}`), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates failed: %v", err)
	}
	if store.Templates == nil {
		t.Error("Templates should not be nil after loading")
	}
}

func TestLoadTemplatesInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	if err := os.WriteFile(path, []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadTemplates(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}
