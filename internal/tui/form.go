package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/regform/internal/config"
	"github.com/muurk/regform/internal/form"
	"github.com/muurk/regform/internal/validate"
)

// formKeyMap defines key bindings for the form screen
type formKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Confirm key.Binding
	Toggle  key.Binding
	Reset   key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Confirm, k.Toggle, k.Reset, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Confirm},
		{k.Toggle, k.Reset, k.Quit},
	}
}

// FormModel is the registration form screen: four text inputs, a submit
// control and an optional reset control. All validation state lives in the
// form.Controller; this model only owns cursor position and the inputs'
// raw widgets.
type FormModel struct {
	inputs []textinput.Model // indexed by validate.Field

	// Focus cursor: 0-3 are the fields, then submit, then reset (when shown)
	focus     int
	showReset bool

	controller *form.Controller
	fb         *feedback

	passwordShown bool

	// Set when a submission was accepted; the app model transitions to
	// the success screen
	Submitted bool

	Width  int
	Height int

	Help help.Model
	Keys formKeyMap
}

// NewFormModel creates the form screen with every field empty and focus on
// the name input.
func NewFormModel(prefs *config.Preferences) FormModel {
	fields := validate.Fields()
	inputs := make([]textinput.Model, len(fields))

	for i, f := range fields {
		in := textinput.New()
		in.Width = FieldInputWidth
		in.Prompt = "> "
		switch f {
		case validate.FieldName:
			in.Placeholder = "Jane Doe"
			in.CharLimit = 100
		case validate.FieldEmail:
			in.Placeholder = "you@example.com"
			in.CharLimit = 254
		case validate.FieldPassword:
			in.Placeholder = "at least 8 characters"
			in.CharLimit = 128
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		case validate.FieldPhone:
			in.Placeholder = "(555) 123-4567"
			in.CharLimit = 25
		}
		inputs[i] = in
	}
	inputs[0].Focus()

	keys := formKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "show/hide password"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear form"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}

	fb := newFeedback()
	m := FormModel{
		inputs:     inputs,
		showReset:  prefs == nil || prefs.ShowReset,
		fb:         fb,
		controller: form.NewController(fb),
		Help:       help.New(),
		Keys:       keys,
	}
	return m
}

// controlCount is the number of focusable positions: the fields plus the
// submit control, plus reset when shown
func (m FormModel) controlCount() int {
	n := len(m.inputs) + 1
	if m.showReset {
		n++
	}
	return n
}

func (m FormModel) submitIndex() int { return len(m.inputs) }
func (m FormModel) resetIndex() int  { return len(m.inputs) + 1 }

// Submission returns the accepted snapshot after a successful submit
func (m FormModel) Submission() form.Submission {
	return m.fb.submission
}

// Init implements tea.Model
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Next):
			return m.moveFocus(1)

		case key.Matches(msg, m.Keys.Prev):
			return m.moveFocus(-1)

		case key.Matches(msg, m.Keys.Toggle):
			return m.togglePassword(), nil

		case key.Matches(msg, m.Keys.Reset):
			return m.reset()

		case key.Matches(msg, m.Keys.Confirm):
			if m.focus == m.submitIndex() {
				if _, ok := m.controller.Submit(); ok {
					m.Submitted = true
				}
				return m, nil
			}
			if m.showReset && m.focus == m.resetIndex() {
				return m.reset()
			}
			// Enter on a field advances to the next control
			return m.moveFocus(1)
		}
	}

	// Everything else feeds the focused input; a changed value counts as
	// an input event, cursor movement does not
	if m.focus < len(m.inputs) {
		before := m.inputs[m.focus].Value()
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

		if value := m.inputs[m.focus].Value(); value != before {
			m.controller.Input(validate.Fields()[m.focus], value)
		}
		return m, cmd
	}

	return m, nil
}

// moveFocus shifts the cursor by delta, wrapping around, blurring the
// field being left (which surfaces its validation) and focusing the new
// one.
func (m FormModel) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
		m.controller.Blur(validate.Fields()[m.focus])
	}

	n := m.controlCount()
	m.focus = (m.focus + delta + n) % n

	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// togglePassword flips the password input between obscured and plain
// rendering. Pure presentation: validation state is untouched.
func (m FormModel) togglePassword() FormModel {
	m.passwordShown = !m.passwordShown
	idx := int(validate.FieldPassword)
	if m.passwordShown {
		m.inputs[idx].EchoMode = textinput.EchoNormal
	} else {
		m.inputs[idx].EchoMode = textinput.EchoPassword
	}
	return m
}

// reset clears the controller state and every input widget, then honors
// the controller's focus request (the first field).
func (m FormModel) reset() (tea.Model, tea.Cmd) {
	m.controller.Reset()

	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.passwordShown = false
	m.inputs[int(validate.FieldPassword)].EchoMode = textinput.EchoPassword
	m.Submitted = false

	m.focus = 0
	if field, ok := m.fb.takeFocusRequest(); ok {
		for i, f := range validate.Fields() {
			if f == field {
				m.focus = i
			}
		}
	}
	m.inputs[m.focus].Focus()

	return m, textinput.Blink
}

// View implements tea.Model
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Create your account"))
	b.WriteString("\n")

	for i, f := range validate.Fields() {
		b.WriteString(m.renderField(i, f))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n")

	helpText := m.Help.View(m.Keys)
	return RenderApplicationContainer(b.String(), helpText, m.Width, m.Height)
}

// renderField renders one field block: label, input, and the feedback
// line (only once the field is touched).
func (m FormModel) renderField(idx int, f validate.Field) string {
	var b strings.Builder

	label := f.Label()
	if f == validate.FieldPassword && m.passwordShown {
		label += " (visible)"
	}
	if m.focus == idx {
		b.WriteString(FocusedLabelStyle.Render(label))
	} else {
		b.WriteString(BlurredLabelStyle.Render(label))
	}
	b.WriteString("\n")
	b.WriteString(m.inputs[idx].View())
	b.WriteString("\n")

	if res, ok := m.fb.result(f); ok {
		if res.Valid {
			b.WriteString(FieldSuccessStyle.Render("✓ " + res.Message))
		} else {
			b.WriteString(FieldErrorStyle.Render("✗ " + res.Message))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderControls renders the submit control (with the gate-aware label)
// and the reset control when enabled.
func (m FormModel) renderControls() string {
	var submit string
	if m.fb.submitOn {
		submit = SubmitEnabledStyle.Render(m.fb.submitLabel)
	} else {
		submit = SubmitDisabledStyle.Render("○ " + m.fb.submitLabel)
	}
	if m.focus == m.submitIndex() {
		submit = FocusedControlStyle.Render("→ ") + submit
	} else {
		submit = "  " + submit
	}

	if !m.showReset {
		return submit
	}

	reset := ResetStyle.Render("Clear form")
	if m.focus == m.resetIndex() {
		reset = FocusedControlStyle.Render("→ ") + reset
	} else {
		reset = "  " + reset
	}

	return lipgloss.JoinVertical(lipgloss.Left, submit, reset)
}
