package model

import "github.com/google/uuid"

// OpeningTemplate represents a standard door or window size that can be
// dropped onto a wall as an exclusion zone.
type OpeningTemplate struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`   // "door" or "window"
	Width  float64 `json:"width"`  // cm
	Height float64 `json:"height"` // cm
	Sill   float64 `json:"sill"`   // default distance from wall bottom in cm
}

// NewOpeningTemplate creates a new OpeningTemplate with a generated ID.
func NewOpeningTemplate(name, kind string, width, height, sill float64) OpeningTemplate {
	return OpeningTemplate{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Kind:   kind,
		Width:  width,
		Height: height,
		Sill:   sill,
	}
}

// ToExclusion places the template on a wall at the given x offset, using the
// template's sill height as the y position.
func (t OpeningTemplate) ToExclusion(x float64) ExclusionZone {
	return NewExclusionZone(t.Name, x, t.Sill, t.Width, t.Height)
}

// TemplateStore holds a collection of opening templates.
type TemplateStore struct {
	Templates []OpeningTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []OpeningTemplate{},
	}
}

// DefaultOpeningTemplates returns a store populated with common opening sizes.
func DefaultOpeningTemplates() TemplateStore {
	return TemplateStore{
		Templates: []OpeningTemplate{
			NewOpeningTemplate("Single Door 90x210", "door", 90, 210, 0),
			NewOpeningTemplate("Double Door 160x210", "door", 160, 210, 0),
			NewOpeningTemplate("Patio Door 240x215", "door", 240, 215, 0),
			NewOpeningTemplate("Window 120x100", "window", 120, 100, 90),
			NewOpeningTemplate("Window 60x60", "window", 60, 60, 120),
			NewOpeningTemplate("Picture Window 180x130", "window", 180, 130, 80),
		},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t OpeningTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *OpeningTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *OpeningTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for pickers.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}
