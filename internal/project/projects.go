package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cladplan/cladplan/internal/model"
)

// DefaultProjectsDir returns the default directory for saved projects.
// This is located at ~/.cladplan/projects.
func DefaultProjectsDir() string {
	return filepath.Join(DefaultConfigDir(), "projects")
}

// ProjectPath returns the file path for a project ID within a store directory.
func ProjectPath(dir, id string) string {
	return filepath.Join(dir, id+".json")
}

// SaveProject writes a project to <dir>/<id>.json.
// It creates the directory if it does not exist.
func SaveProject(dir string, p model.Project) error {
	if p.ID == "" {
		return fmt.Errorf("project has no ID")
	}
	return saveJSON(ProjectPath(dir, p.ID), p)
}

// LoadProject reads a project by ID from a store directory.
func LoadProject(dir, id string) (model.Project, error) {
	data, err := os.ReadFile(ProjectPath(dir, id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Project{}, fmt.Errorf("project %q not found", id)
		}
		return model.Project{}, err
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, err
	}
	// Ensure Exclusions is never nil
	if p.Exclusions == nil {
		p.Exclusions = []model.ExclusionZone{}
	}
	return p, nil
}

// ListProjects reads all projects from a store directory, most recently
// updated first. A missing directory yields an empty list. Files that are
// not valid project JSON are skipped.
func ListProjects(dir string) ([]model.Project, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Project{}, nil
		}
		return nil, err
	}

	projects := []model.Project{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		var p model.Project
		if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
			continue
		}
		if p.Exclusions == nil {
			p.Exclusions = []model.ExclusionZone{}
		}
		projects = append(projects, p)
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].UpdatedAt > projects[j].UpdatedAt
	})
	return projects, nil
}

// DeleteProject removes a project file from a store directory.
func DeleteProject(dir, id string) error {
	err := os.Remove(ProjectPath(dir, id))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("project %q not found", id)
	}
	return err
}
