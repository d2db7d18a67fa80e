// Package tui implements the terminal user interface for the registration form.
//
// This package is the presentation adapter over the form controller: it
// implements form.Presenter, renders the four fields with live feedback, and
// owns nothing but cursor position and widget state. Built on the Bubble Tea
// framework with the Model-Update-View pattern.
//
// # Architecture
//
// Two screens coordinated by AppModel:
//   - Form: four text inputs with per-field feedback lines, a submit control
//     carrying the gate-aware label, and an optional reset control
//   - Success: the accepted registration (password masked) with options to
//     start over or quit
//
// Both screens render through RenderApplicationContainer for consistent
// chrome (header with version, bordered panel, context-help footer).
//
// # Framework Components
//
//   - bubbles/textinput: the field widgets, including password echo mode
//   - bubbles/help, bubbles/key: context-aware key binding help
//   - lipgloss: styling, with the palette themable from user preferences
//
// # Event Wiring
//
// Every keystroke into a focused input triggers Input on the controller
// with the input's current value; moving focus away triggers Blur. The
// controller pushes derived effects (feedback lines, submit gate and label,
// success) into a shared feedback sink that View reads on the next render.
// Feedback for a field appears only after the user has touched it.
//
// # Key Bindings
//
//   - tab / shift+tab, down / up: move between fields and controls
//   - enter: advance; on the submit control, attempt submission
//   - ctrl+p: toggle password visibility (presentation only)
//   - ctrl+r: clear the form
//   - esc, ctrl+c: quit
//
// # Thread Safety
//
// Bubble Tea delivers messages one at a time on a single goroutine; each
// controller operation runs to completion inside one Update call, so form
// state needs no synchronization.
package tui
