// Package form implements the registration form controller.
//
// The Controller owns all mutable form state: one FieldState (value,
// validity, touched flag) per field. Every external event (input, blur,
// submit, reset) runs the validator and pushes the derived effects through
// the Presenter interface; the controller itself renders nothing and knows
// nothing about terminals.
//
// # State Rules
//
//   - Feedback for a field is only surfaced once the field is touched, so
//     a freshly opened form shows no errors.
//   - Touched is monotonic: once set it stays set until an explicit Reset.
//   - The submit gate is the AND over all fields' validity and is
//     recomputed after every operation.
//   - Submit marks every field touched, so a failed submit makes all
//     outstanding problems visible at once. A successful submit emits
//     exactly one Submission snapshot.
//
// # Usage Example
//
//	ctrl := form.NewController(presenter)
//	ctrl.Input(validate.FieldEmail, "user@example.com")
//	ctrl.Blur(validate.FieldEmail)
//	if snapshot, ok := ctrl.Submit(); ok {
//	    // registration accepted, snapshot holds the values
//	}
//
// The controller is not safe for concurrent use; it is designed to be
// driven from a single event loop where each handler runs to completion.
package form
