package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/regform/internal/config"
)

// Run launches the registration form TUI and blocks until the user quits.
// Theme colors from prefs are applied before the first render.
func Run(prefs *config.Preferences) error {
	if prefs != nil {
		ApplyTheme(prefs.Theme)
	}

	model := NewAppModel(prefs)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	return nil
}
