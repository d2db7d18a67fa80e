package form

import (
	"fmt"

	"github.com/muurk/regform/internal/logging"
	"github.com/muurk/regform/internal/validate"
)

// FieldState is the controller's record for one input: the raw value, the
// latest validation verdict, and whether the user has interacted with the
// field since creation or the last reset.
type FieldState struct {
	Value   string
	Valid   bool
	Touched bool
}

// Submission is a snapshot of the field values captured at the moment a
// submit passed the gate.
type Submission map[validate.Field]string

// Presenter is the capability surface the controller drives. A concrete
// adapter (the TUI, or a recording fake in tests) implements it; the
// controller never touches presentation state directly.
//
// ShowFieldResult surfaces a verdict for a touched field; ClearFieldResult
// removes any feedback for a field (used for untouched fields and reset).
type Presenter interface {
	ShowFieldResult(field validate.Field, result validate.Result)
	ClearFieldResult(field validate.Field)
	SetSubmitState(enabled bool, label string)
	ShowSuccess(s Submission)
	HideSuccess()
	FocusField(field validate.Field)
}

// Controller owns the form state and mediates between raw input events and
// the validator. All operations run synchronously to completion; the
// controller is single-owner state with no internal locking, matching the
// one-event-at-a-time update loop it is driven from.
type Controller struct {
	states    map[validate.Field]*FieldState
	presenter Presenter
}

// NewController creates a controller with every field empty, invalid and
// untouched, and pushes the initial (gated) submit state to the presenter.
func NewController(p Presenter) *Controller {
	c := &Controller{
		states:    make(map[validate.Field]*FieldState, len(validate.Fields())),
		presenter: p,
	}
	for _, f := range validate.Fields() {
		c.states[f] = &FieldState{}
	}
	c.pushSubmitState()
	return c
}

// Input records a new value for field, marks it touched, re-validates and
// surfaces the verdict.
func (c *Controller) Input(field validate.Field, value string) {
	st, ok := c.states[field]
	if !ok {
		return
	}
	st.Value = value
	st.Touched = true

	res := validate.Check(field, value)
	st.Valid = res.Valid

	logging.LogFieldEvent(field.String(), "input", res.Valid)

	c.presenter.ShowFieldResult(field, res)
	c.pushSubmitState()
}

// Blur marks field touched and re-validates its stored value without
// changing it. Touching is idempotent.
func (c *Controller) Blur(field validate.Field) {
	st, ok := c.states[field]
	if !ok {
		return
	}
	st.Touched = true

	res := validate.Check(field, st.Value)
	st.Valid = res.Valid

	logging.LogFieldEvent(field.String(), "blur", res.Valid)

	c.presenter.ShowFieldResult(field, res)
	c.pushSubmitState()
}

// Submit forces every field touched, re-validates everything, and, if the
// gate is open, captures a value snapshot and signals success. Returns the
// snapshot and true exactly when the submission was accepted; otherwise
// the per-field feedback for all (now touched) fields stays visible and no
// submission is emitted.
func (c *Controller) Submit() (Submission, bool) {
	allValid := true
	for _, f := range validate.Fields() {
		st := c.states[f]
		st.Touched = true

		res := validate.Check(f, st.Value)
		st.Valid = res.Valid
		if !res.Valid {
			allValid = false
		}
		c.presenter.ShowFieldResult(f, res)
	}
	c.pushSubmitState()

	if !allValid {
		logging.LogSubmission(false)
		return nil, false
	}

	snapshot := make(Submission, len(c.states))
	for _, f := range validate.Fields() {
		snapshot[f] = c.states[f].Value
	}

	logging.LogSubmission(true)

	c.presenter.ShowSuccess(snapshot)
	return snapshot, true
}

// Reset returns every field to empty/invalid/untouched, clears all visible
// feedback and the success indicator, closes the gate, and moves focus
// back to the first field.
func (c *Controller) Reset() {
	for _, f := range validate.Fields() {
		c.states[f] = &FieldState{}
		c.presenter.ClearFieldResult(f)
	}
	c.presenter.HideSuccess()
	c.pushSubmitState()
	c.presenter.FocusField(validate.Fields()[0])

	logging.Debug("form reset")
}

// CanSubmit reports the submit gate: true iff every field is currently
// valid.
func (c *Controller) CanSubmit() bool {
	for _, st := range c.states {
		if !st.Valid {
			return false
		}
	}
	return true
}

// SubmitLabel returns the submit control's text: "Register" when the gate
// is open, otherwise an instruction naming the first incomplete field in
// canonical order.
func (c *Controller) SubmitLabel() string {
	for _, f := range validate.Fields() {
		if !c.states[f].Valid {
			return fmt.Sprintf("Complete %s to register", f.Label())
		}
	}
	return "Register"
}

// State returns a copy of the current state for field. The second return
// is false for a field the controller does not track.
func (c *Controller) State(field validate.Field) (FieldState, bool) {
	st, ok := c.states[field]
	if !ok {
		return FieldState{}, false
	}
	return *st, true
}

// pushSubmitState recomputes the gate and hands the enabled flag plus the
// current label to the presenter. Called after every mutating operation.
func (c *Controller) pushSubmitState() {
	c.presenter.SetSubmitState(c.CanSubmit(), c.SubmitLabel())
}
