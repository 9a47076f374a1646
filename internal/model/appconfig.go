package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default planner settings applied to new projects
	DefaultSpacing             float64 `json:"default_spacing"`
	DefaultSupportThreshold    float64 `json:"default_support_threshold"`
	DefaultSimilarityTolerance float64 `json:"default_similarity_tolerance"`
	DefaultSortKey             SortKey `json:"default_sort_key"`
	DefaultContainerPreset     string  `json:"default_container_preset"`

	// Application preferences
	DefaultExportFormats []string `json:"default_export_formats"` // "pdf", "labels", "xlsx", "dxf", "png", "json"
	RecentProjects       []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultSpacing:             defaults.Spacing,
		DefaultSupportThreshold:    defaults.SupportThreshold,
		DefaultSimilarityTolerance: defaults.SimilarityTolerance,
		DefaultSortKey:             defaults.SortKey,
		DefaultContainerPreset:     ContainerPresets[0].Name,
		DefaultExportFormats:       []string{"pdf"},
		RecentProjects:             []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a PackSettings struct.
// This is used when creating a new project so it inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *PackSettings) {
	s.Spacing = c.DefaultSpacing
	s.SupportThreshold = c.DefaultSupportThreshold
	s.SimilarityTolerance = c.DefaultSimilarityTolerance
	if c.DefaultSortKey != "" {
		s.SortKey = c.DefaultSortKey
	}
}

// AddRecentProject moves path to the front of the recent list, keeping at most max entries.
func (c *AppConfig) AddRecentProject(path string, max int) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if max > 0 && len(recent) > max {
		recent = recent[:max]
	}
	c.RecentProjects = recent
}
