package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/regform/internal/config"
	"github.com/muurk/regform/internal/version"
)

// Application branding constants
const (
	AppName       = "REGFORM REGISTRATION"
	GitHubURL     = "github.com/muurk/regform"
	GitHubFullURL = "https://github.com/muurk/regform"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth  = 60 // Minimum supported terminal width
	FieldInputWidth   = 40 // Width of the text inputs
	DefaultBoxPadding = 2  // Default padding inside boxes
)

// Color palette. Defaults match config defaults; ApplyTheme swaps in the
// user's colors before the first render.
var (
	AccentColor  = lipgloss.Color(config.DefaultAccentColor)
	SuccessColor = lipgloss.Color(config.DefaultSuccessColor)
	ErrorColor   = lipgloss.Color(config.DefaultErrorColor)
	SubtleColor  = lipgloss.Color(config.DefaultSubtleColor)
	TextColor    = lipgloss.Color("#FFFFFF")
)

// Common styles
var (
	// Title style - bold, accent colored
	TitleStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true).
			Padding(1, 0).
			MarginBottom(1)

	// Field label when its input has focus
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)

	// Field label when its input is blurred
	BlurredLabelStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// Per-field feedback line for a passing field
	FieldSuccessStyle = lipgloss.NewStyle().
				Foreground(SuccessColor)

	// Per-field feedback line for a failing field
	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// Submit control when the gate is open
	SubmitEnabledStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(AccentColor).
				Bold(true).
				Padding(0, 3)

	// Submit control while the gate is closed: carries the instruction
	// naming the incomplete field instead of a generic grey button
	SubmitDisabledStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Padding(0, 3)

	// Reset control
	ResetStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(0, 3)

	// Focused control marker
	FocusedControlStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0)

	// Success box on the result screen
	SuccessBoxStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SuccessColor)

	// Value rows on the result screen
	ValueLabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(10)
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)
)

// ApplyTheme rebuilds every themed color and style from user preferences.
// Must be called before the first View.
func ApplyTheme(theme *config.Theme) {
	if theme == nil {
		return
	}

	AccentColor = lipgloss.Color(theme.Accent)
	SuccessColor = lipgloss.Color(theme.Success)
	ErrorColor = lipgloss.Color(theme.Error)
	SubtleColor = lipgloss.Color(theme.Subtle)

	TitleStyle = TitleStyle.Foreground(AccentColor)
	FocusedLabelStyle = FocusedLabelStyle.Foreground(AccentColor)
	BlurredLabelStyle = BlurredLabelStyle.Foreground(SubtleColor)
	FieldSuccessStyle = FieldSuccessStyle.Foreground(SuccessColor)
	FieldErrorStyle = FieldErrorStyle.Foreground(ErrorColor)
	SubmitEnabledStyle = SubmitEnabledStyle.Background(AccentColor)
	SubmitDisabledStyle = SubmitDisabledStyle.Foreground(SubtleColor)
	ResetStyle = ResetStyle.Foreground(SubtleColor)
	FocusedControlStyle = FocusedControlStyle.Foreground(AccentColor)
	HelpStyle = HelpStyle.Foreground(SubtleColor)
	SuccessBoxStyle = SuccessBoxStyle.Foreground(SuccessColor).BorderForeground(SuccessColor)
	ValueLabelStyle = ValueLabelStyle.Foreground(SubtleColor)
}

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// RenderApplicationContainer wraps screen content in the shared full-screen
// chrome: bordered panel, header with app name and version, footer with
// context help. Every screen renders through this.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}

	header := BuildHeaderContent()
	footer := lipgloss.NewStyle().Foreground(SubtleColor).Render(footerText)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(AccentColor).
		Width(terminalWidth - 4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(AccentColor).
		Width(terminalWidth - 4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4).
		Padding(0, 1)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(footer),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(AccentColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}
