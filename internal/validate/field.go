package validate

import "fmt"

// Field identifies one of the four registration form inputs.
// The set is closed: every switch over Field in this module is exhaustive,
// and out-of-range values fall through to a fixed invalid result rather
// than a runtime lookup failure.
type Field int

const (
	// FieldName is the registrant's display name
	FieldName Field = iota
	// FieldEmail is the registrant's email address
	FieldEmail
	// FieldPassword is the account password
	FieldPassword
	// FieldPhone is the contact phone number
	FieldPhone
)

// Fields returns all form fields in canonical order. The order matters:
// it drives focus placement and which incomplete field the submit control
// names first.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldPassword, FieldPhone}
}

// String returns the machine-readable field identifier
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldPassword:
		return "password"
	case FieldPhone:
		return "phone"
	default:
		return fmt.Sprintf("Field(%d)", f)
	}
}

// Label returns the human-readable field label for display
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldPassword:
		return "Password"
	case FieldPhone:
		return "Phone"
	default:
		return "Unknown"
	}
}

// FieldFromString maps a field identifier back to its Field value.
// Used by the CLI when fields arrive as flag names.
func FieldFromString(s string) (Field, bool) {
	switch s {
	case "name":
		return FieldName, true
	case "email":
		return FieldEmail, true
	case "password":
		return FieldPassword, true
	case "phone":
		return FieldPhone, true
	default:
		return 0, false
	}
}
