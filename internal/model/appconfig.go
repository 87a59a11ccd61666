package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Face defaults applied to new sessions
	Rows    int          `json:"rows" mapstructure:"rows"`
	Cols    int          `json:"cols" mapstructure:"cols"`
	Layout  string       `json:"layout" mapstructure:"layout"` // "clock", "tabular"
	Options Options      `json:"options" mapstructure:"options"`
	Face    FaceSettings `json:"face" mapstructure:"face"`

	// Divider defaults in mm
	DividerLength    float64 `json:"divider_length" mapstructure:"divider_length"`
	DividerHeight    float64 `json:"divider_height" mapstructure:"divider_height"` // half height as entered by the user
	DividerSlotWidth float64 `json:"divider_slot_width" mapstructure:"divider_slot_width"`

	// Application preferences
	LogLevel        string   `json:"log_level" mapstructure:"log_level"` // zerolog level name
	TemplateDir     string   `json:"template_dir" mapstructure:"template_dir"`
	IconCopies      int      `json:"icon_copies" mapstructure:"icon_copies"`
	RecentTemplates []string `json:"recent_templates" mapstructure:"recent_templates"`
	Theme           string   `json:"theme" mapstructure:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig for the 11x10 clock face.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Rows:             DefaultRows,
		Cols:             DefaultCols,
		Layout:           LayoutClock,
		Face:             DefaultFaceSettings(),
		DividerLength:    239.5,
		DividerHeight:    44.8,
		DividerSlotWidth: 0.3,
		LogLevel:         "info",
		IconCopies:       7,
		RecentTemplates:  []string{},
		Theme:            "system",
	}
}

// maxRecent bounds the recent template list.
const maxRecent = 10

// AddRecent moves path to the front of the recent template list.
func (c *AppConfig) AddRecent(path string) {
	out := []string{path}
	for _, p := range c.RecentTemplates {
		if p != path {
			out = append(out, p)
		}
	}
	if len(out) > maxRecent {
		out = out[:maxRecent]
	}
	c.RecentTemplates = out
}

// NewGrid creates a blank grid with the configured dimensions.
func (c AppConfig) NewGrid() (*Grid, error) {
	return NewGrid(c.Rows, c.Cols)
}

// ResolveLayout returns the configured layout for the configured grid size.
func (c AppConfig) ResolveLayout() (Layout, error) {
	return LayoutByName(c.Layout, c.Rows, c.Cols)
}
