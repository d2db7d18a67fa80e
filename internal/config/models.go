package config

import "regexp"

// Preferences represents the entire user configuration file.
// It holds presentation options only; form field values are never written
// to disk.
type Preferences struct {
	Version   int    `yaml:"version"`
	Theme     *Theme `yaml:"theme,omitempty"`
	ShowReset bool   `yaml:"show_reset"`
}

// Theme holds the color palette for the TUI. Values are hex color strings
// as accepted by lipgloss (e.g. "#7D56F4").
type Theme struct {
	Accent  string `yaml:"accent,omitempty"`  // Focus highlights, borders, title
	Success string `yaml:"success,omitempty"` // Valid-field feedback
	Error   string `yaml:"error,omitempty"`   // Invalid-field feedback
	Subtle  string `yaml:"subtle,omitempty"`  // Help text, placeholders
}

// Default theme colors
const (
	DefaultAccentColor  = "#7D56F4"
	DefaultSuccessColor = "#43BF6D"
	DefaultErrorColor   = "#FF5F56"
	DefaultSubtleColor  = "#626262"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// NewPreferences creates Preferences with default values.
func NewPreferences() *Preferences {
	return &Preferences{
		Version: 1,
		Theme: &Theme{
			Accent:  DefaultAccentColor,
			Success: DefaultSuccessColor,
			Error:   DefaultErrorColor,
			Subtle:  DefaultSubtleColor,
		},
		ShowReset: true,
	}
}

// Normalize fills in any missing or invalid theme entries with their
// defaults. Each color falls back independently, so one bad entry does
// not discard the rest of a custom theme. Returns the keys that were
// replaced, for warning logs.
func (p *Preferences) Normalize() []string {
	if p.Theme == nil {
		p.Theme = &Theme{}
	}

	var replaced []string
	fix := func(name string, value *string, fallback string) {
		if *value == "" {
			*value = fallback
			return
		}
		if !hexColorPattern.MatchString(*value) {
			*value = fallback
			replaced = append(replaced, name)
		}
	}

	fix("accent", &p.Theme.Accent, DefaultAccentColor)
	fix("success", &p.Theme.Success, DefaultSuccessColor)
	fix("error", &p.Theme.Error, DefaultErrorColor)
	fix("subtle", &p.Theme.Subtle, DefaultSubtleColor)
	return replaced
}
