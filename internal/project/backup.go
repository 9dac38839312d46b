package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cladplan/cladplan/internal/model"
)

// backupVersion identifies the backup file format.
const backupVersion = "1.0.0"

// BackupData is the top-level structure for a full application snapshot:
// config, presets, opening templates, and every saved project.
type BackupData struct {
	Version   string              `json:"version"`
	CreatedAt string              `json:"created_at"`
	Config    model.AppConfig     `json:"config"`
	Presets   model.PresetCatalog `json:"presets"`
	Templates model.TemplateStore `json:"templates"`
	Projects  []model.Project     `json:"projects"`
}

// CreateBackup writes a snapshot of all application data to a single JSON
// file at the specified path.
func CreateBackup(path string, config model.AppConfig, presets model.PresetCatalog, templates model.TemplateStore, projects []model.Project) error {
	if projects == nil {
		projects = []model.Project{}
	}
	backup := BackupData{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Presets:   presets,
		Templates: templates,
		Projects:  projects,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// RestoreBackup reads a backup JSON file and returns the contained data.
// The caller is responsible for writing the restored stores back to disk.
func RestoreBackup(path string) (BackupData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	// Ensure collections are never nil
	if backup.Config.RecentProjects == nil {
		backup.Config.RecentProjects = []string{}
	}
	if backup.Presets.Panels == nil {
		backup.Presets.Panels = []model.PanelPreset{}
	}
	if backup.Templates.Templates == nil {
		backup.Templates.Templates = []model.OpeningTemplate{}
	}
	if backup.Projects == nil {
		backup.Projects = []model.Project{}
	}
	return backup, nil
}
