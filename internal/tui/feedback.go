package tui

import (
	"github.com/muurk/regform/internal/form"
	"github.com/muurk/regform/internal/validate"
)

// feedback is the concrete form.Presenter for the TUI. The controller
// pushes effects into it synchronously; the view reads them back out on
// the next render. It is held by pointer so controller calls survive
// bubbletea's value-copied models.
type feedback struct {
	results      map[validate.Field]validate.Result
	visible      map[validate.Field]bool
	submitOn     bool
	submitLabel  string
	success      bool
	submission   form.Submission
	focusPending *validate.Field
}

func newFeedback() *feedback {
	return &feedback{
		results: make(map[validate.Field]validate.Result),
		visible: make(map[validate.Field]bool),
	}
}

func (f *feedback) ShowFieldResult(field validate.Field, result validate.Result) {
	f.results[field] = result
	f.visible[field] = true
}

func (f *feedback) ClearFieldResult(field validate.Field) {
	delete(f.results, field)
	f.visible[field] = false
}

func (f *feedback) SetSubmitState(enabled bool, label string) {
	f.submitOn = enabled
	f.submitLabel = label
}

func (f *feedback) ShowSuccess(s form.Submission) {
	f.success = true
	f.submission = s
}

func (f *feedback) HideSuccess() {
	f.success = false
	f.submission = nil
}

func (f *feedback) FocusField(field validate.Field) {
	f.focusPending = &field
}

// takeFocusRequest returns and clears any pending focus change
func (f *feedback) takeFocusRequest() (validate.Field, bool) {
	if f.focusPending == nil {
		return 0, false
	}
	field := *f.focusPending
	f.focusPending = nil
	return field, true
}

// result returns the visible verdict for a field, if any. Untouched
// fields have no visible verdict even when internally invalid.
func (f *feedback) result(field validate.Field) (validate.Result, bool) {
	if !f.visible[field] {
		return validate.Result{}, false
	}
	res, ok := f.results[field]
	return res, ok
}
