package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/regform/internal/validate"
)

// fakePresenter records every effect the controller pushes so tests can
// assert on the UI-visible behavior without a terminal
type fakePresenter struct {
	shown        map[validate.Field]validate.Result
	cleared      map[validate.Field]int
	submitOn     bool
	submitLabel  string
	successShown int
	successLast  Submission
	successHid   int
	focused      []validate.Field
}

func newFakePresenter() *fakePresenter {
	return &fakePresenter{
		shown:   make(map[validate.Field]validate.Result),
		cleared: make(map[validate.Field]int),
	}
}

func (p *fakePresenter) ShowFieldResult(f validate.Field, r validate.Result) { p.shown[f] = r }
func (p *fakePresenter) ClearFieldResult(f validate.Field) {
	delete(p.shown, f)
	p.cleared[f]++
}
func (p *fakePresenter) SetSubmitState(enabled bool, label string) {
	p.submitOn = enabled
	p.submitLabel = label
}
func (p *fakePresenter) ShowSuccess(s Submission) {
	p.successShown++
	p.successLast = s
}
func (p *fakePresenter) HideSuccess()                { p.successHid++ }
func (p *fakePresenter) FocusField(f validate.Field) { p.focused = append(p.focused, f) }

// fillValid drives the controller to an all-valid state
func fillValid(c *Controller) {
	c.Input(validate.FieldName, "Moise Chirusha")
	c.Input(validate.FieldEmail, "user@example.com")
	c.Input(validate.FieldPassword, "Pass123!")
	c.Input(validate.FieldPhone, "(555) 123-4567")
}

// TestNewControllerStartsGated tests the initial state: nothing touched,
// nothing shown, gate closed with an instructive label
func TestNewControllerStartsGated(t *testing.T) {
	p := newFakePresenter()
	c := NewController(p)

	if c.CanSubmit() {
		t.Error("fresh form should not be submittable")
	}
	if p.submitOn {
		t.Error("presenter should have been told the gate is closed")
	}
	if p.submitLabel != "Complete Name to register" {
		t.Errorf("submit label = %q, want instruction naming the first field", p.submitLabel)
	}
	if len(p.shown) != 0 {
		t.Errorf("no field feedback should be visible before interaction, got %v", p.shown)
	}

	for _, f := range validate.Fields() {
		st, ok := c.State(f)
		if !ok {
			t.Fatalf("missing state for %v", f)
		}
		if st.Value != "" || st.Valid || st.Touched {
			t.Errorf("State(%v) = %+v, want empty/invalid/untouched", f, st)
		}
	}
}

// TestInput tests that input updates value, marks touched, and surfaces
// the verdict
func TestInput(t *testing.T) {
	p := newFakePresenter()
	c := NewController(p)

	c.Input(validate.FieldName, "A")

	st, _ := c.State(validate.FieldName)
	if st.Value != "A" || !st.Touched || st.Valid {
		t.Errorf("State = %+v, want value A, touched, invalid", st)
	}

	res, ok := p.shown[validate.FieldName]
	if !ok {
		t.Fatal("presenter never saw the name verdict")
	}
	if res.Valid || res.Message != "Name must be at least 2 characters" {
		t.Errorf("shown result = %+v", res)
	}

	c.Input(validate.FieldName, "Anna")
	res = p.shown[validate.FieldName]
	if !res.Valid {
		t.Errorf("field should move freely back to valid, got %+v", res)
	}
}

// TestBlurValidatesStoredValue tests that blur touches the field and
// re-validates without changing the value
func TestBlurValidatesStoredValue(t *testing.T) {
	p := newFakePresenter()
	c := NewController(p)

	c.Blur(validate.FieldEmail)

	st, _ := c.State(validate.FieldEmail)
	if !st.Touched {
		t.Error("blur must mark the field touched")
	}
	if st.Value != "" {
		t.Errorf("blur must not alter the value, got %q", st.Value)
	}

	res, ok := p.shown[validate.FieldEmail]
	if !ok {
		t.Fatal("blur on a touched field must surface feedback")
	}
	if res.Valid || res.Message != "Email is required" {
		t.Errorf("shown result = %+v", res)
	}

	// Idempotent second blur
	c.Blur(validate.FieldEmail)
	st, _ = c.State(validate.FieldEmail)
	if !st.Touched {
		t.Error("touched must stay set")
	}
}

// TestSubmitGate tests the gate invariant across operations
func TestSubmitGate(t *testing.T) {
	p := newFakePresenter()
	c := NewController(p)

	fillValid(c)
	if !c.CanSubmit() || !p.submitOn {
		t.Fatal("gate should open once every field is valid")
	}
	if p.submitLabel != "Register" {
		t.Errorf("submit label = %q, want Register", p.submitLabel)
	}

	// Break one field and the gate closes again
	c.Input(validate.FieldPhone, "123")
	if c.CanSubmit() || p.submitOn {
		t.Error("gate should close when any field turns invalid")
	}
	if p.submitLabel != "Complete Phone to register" {
		t.Errorf("submit label = %q, want instruction naming Phone", p.submitLabel)
	}
}

// TestSubmitLabelNamesFirstInvalid tests label selection follows the
// canonical field order
func TestSubmitLabelNamesFirstInvalid(t *testing.T) {
	p := newFakePresenter()
	c := NewController(p)

	c.Input(validate.FieldName, "Anna")
	if got := c.SubmitLabel(); got != "Complete Email to register" {
		t.Errorf("SubmitLabel() = %q, want Email named next", got)
	}
}

// TestSubmitAccepted tests that an all-valid submit emits exactly one
// snapshot of the current values
func TestSubmitAccepted(t *testing.T) {
	p := newFakePresenter()
	c := NewController(p)
	fillValid(c)

	snapshot, ok := c.Submit()
	if !ok {
		t.Fatal("submit should be accepted with all fields valid")
	}

	want := Submission{
		validate.FieldName:     "Moise Chirusha",
		validate.FieldEmail:    "user@example.com",
		validate.FieldPassword: "Pass123!",
		validate.FieldPhone:    "(555) 123-4567",
	}
	if diff := cmp.Diff(want, snapshot); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}

	if p.successShown != 1 {
		t.Errorf("ShowSuccess called %d times, want 1", p.successShown)
	}
	if diff := cmp.Diff(want, p.successLast); diff != "" {
		t.Errorf("presenter snapshot mismatch (-want +got):\n%s", diff)
	}
}

// TestSubmitRejected tests that a submit with an invalid field emits no
// snapshot and touches everything
func TestSubmitRejected(t *testing.T) {
	p := newFakePresenter()
	c := NewController(p)

	c.Input(validate.FieldName, "Anna")

	snapshot, ok := c.Submit()
	if ok || snapshot != nil {
		t.Fatalf("submit must be rejected, got %v, %v", snapshot, ok)
	}
	if p.successShown != 0 {
		t.Error("no success may be shown for a rejected submit")
	}

	// Every field is now touched with visible feedback
	for _, f := range validate.Fields() {
		st, _ := c.State(f)
		if !st.Touched {
			t.Errorf("%v should be touched after submit", f)
		}
		if _, shown := p.shown[f]; !shown {
			t.Errorf("%v should have visible feedback after submit", f)
		}
	}
}

// TestReset tests that reset clears state, feedback, success, the gate,
// and returns focus to the first field
func TestReset(t *testing.T) {
	p := newFakePresenter()
	c := NewController(p)
	fillValid(c)
	if _, ok := c.Submit(); !ok {
		t.Fatal("precondition: submit accepted")
	}

	c.Reset()

	if c.CanSubmit() || p.submitOn {
		t.Error("gate must be closed after reset")
	}
	if p.successHid != 1 {
		t.Errorf("HideSuccess called %d times, want 1", p.successHid)
	}
	if len(p.shown) != 0 {
		t.Errorf("all field feedback must be cleared, still shown: %v", p.shown)
	}
	for _, f := range validate.Fields() {
		st, _ := c.State(f)
		if st.Value != "" || st.Valid || st.Touched {
			t.Errorf("State(%v) = %+v after reset, want zero", f, st)
		}
		if p.cleared[f] == 0 {
			t.Errorf("ClearFieldResult never called for %v", f)
		}
	}
	if len(p.focused) != 1 || p.focused[0] != validate.FieldName {
		t.Errorf("focus after reset = %v, want [name]", p.focused)
	}

	// A field stays quiet until re-touched
	if _, shown := p.shown[validate.FieldEmail]; shown {
		t.Error("untouched field must show nothing")
	}
	c.Blur(validate.FieldEmail)
	if _, shown := p.shown[validate.FieldEmail]; !shown {
		t.Error("re-touched field must show feedback again")
	}
}

// TestUnknownFieldIgnored tests that operations on an untracked field are
// dropped rather than panicking
func TestUnknownFieldIgnored(t *testing.T) {
	p := newFakePresenter()
	c := NewController(p)

	c.Input(validate.Field(99), "x")
	c.Blur(validate.Field(99))

	if _, ok := c.State(validate.Field(99)); ok {
		t.Error("controller should not grow state for unknown fields")
	}
}
