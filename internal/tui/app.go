package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/regform/internal/config"
	"github.com/muurk/regform/internal/validate"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenForm    Screen = "form"
	ScreenSuccess Screen = "success"
)

// successKeyMap defines key bindings for the success screen
type successKeyMap struct {
	New  key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k successKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k successKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.Quit},
	}
}

// AppModel is the top-level coordinator model that manages the form and
// success screens
type AppModel struct {
	CurrentScreen Screen

	FormModel FormModel

	Width  int
	Height int

	Help        help.Model
	SuccessKeys successKeyMap
}

// NewAppModel creates a new application model starting at the form screen
func NewAppModel(prefs *config.Preferences) AppModel {
	successKeys := successKeyMap{
		New: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "new registration"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}

	return AppModel{
		CurrentScreen: ScreenForm,
		FormModel:     NewFormModel(prefs),
		Help:          help.New(),
		SuccessKeys:   successKeys,
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.FormModel.Init()
}

// Update handles all messages and routes them to the active screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.FormModel.Width = msg.Width
		m.FormModel.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.CurrentScreen {
	case ScreenForm:
		updated, cmd := m.FormModel.Update(msg)
		m.FormModel = updated.(FormModel)

		// Quit from the form via esc only; every other key belongs to
		// the inputs
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			return m, tea.Quit
		}

		if m.FormModel.Submitted {
			m.CurrentScreen = ScreenSuccess
		}
		return m, cmd

	case ScreenSuccess:
		return m.handleSuccessScreen(msg)
	}

	return m, nil
}

// handleSuccessScreen handles user input on the success screen
func (m AppModel) handleSuccessScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.SuccessKeys.New):
		// Back to a fresh form
		updated, cmd := m.FormModel.reset()
		m.FormModel = updated.(FormModel)
		m.CurrentScreen = ScreenForm
		return m, cmd

	case key.Matches(keyMsg, m.SuccessKeys.Quit):
		return m, tea.Quit
	}

	return m, nil
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenForm:
		return m.FormModel.View()
	case ScreenSuccess:
		return m.renderSuccessScreen()
	default:
		return "Unknown screen"
	}
}

// renderSuccessScreen renders the registration-accepted screen
func (m AppModel) renderSuccessScreen() string {
	content := m.buildSuccessContent()
	helpText := m.Help.View(m.SuccessKeys)
	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// buildSuccessContent builds the success screen content
func (m AppModel) buildSuccessContent() string {
	var b strings.Builder

	b.WriteString(RenderTitle("✓ Registration Successful!"))
	b.WriteString("\n\n")

	submission := m.FormModel.Submission()
	if submission != nil {
		b.WriteString(SuccessBoxStyle.Render("Account details:"))
		b.WriteString("\n\n")

		for _, f := range validate.Fields() {
			value := submission[f]
			if f == validate.FieldPassword {
				value = maskValue(value)
			}
			row := fmt.Sprintf("  %s %s",
				ValueLabelStyle.Render(f.Label()+":"),
				ValueStyle.Render(value),
			)
			b.WriteString(row)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("What would you like to do next?\n\n")
	b.WriteString("  n/enter - Start a new registration\n")
	b.WriteString("  q       - Exit application\n")

	return b.String()
}

// maskValue obscures a sensitive value for display, preserving its length
func maskValue(value string) string {
	return strings.Repeat("•", utf8.RuneCountInString(value))
}
