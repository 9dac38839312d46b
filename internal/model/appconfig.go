package model

// maxRecentProjects caps the recent-projects list in AppConfig.
const maxRecentProjects = 10

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied when a project or command does not specify them
	DefaultPanelWidth    float64 `json:"default_panel_width"`  // cm
	DefaultPanelHeight   float64 `json:"default_panel_height"` // cm
	DefaultWastePercent  float64 `json:"default_waste_percent"`
	DefaultPricePerPanel float64 `json:"default_price_per_panel"`
	DefaultPanelsPerPack int     `json:"default_panels_per_pack"`
	DefaultStickLength   float64 `json:"default_stick_length"` // trim stick length, cm
	DefaultPricePerStick float64 `json:"default_price_per_stick"`

	// Application preferences
	ServePort      int      `json:"serve_port"`
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultPanelWidth:    100,
		DefaultPanelHeight:   50,
		DefaultWastePercent:  10.0,
		DefaultPricePerPanel: 18.50,
		DefaultPanelsPerPack: 1,
		DefaultStickLength:   250,
		DefaultPricePerStick: 6.90,
		ServePort:            8080,
		RecentProjects:       []string{},
	}
}

// DefaultPanel returns the configured default panel spec.
func (c AppConfig) DefaultPanel() PanelSpec {
	return PanelSpec{Width: c.DefaultPanelWidth, Height: c.DefaultPanelHeight}
}

// AddRecentProject records a project ID at the front of the recent list,
// removing duplicates and capping the list length.
func (c *AppConfig) AddRecentProject(id string) {
	recent := []string{id}
	for _, r := range c.RecentProjects {
		if r != id {
			recent = append(recent, r)
		}
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}
