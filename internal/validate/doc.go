// Package validate implements the registration form's field validation rules.
//
// Validation is pure: Check maps a (Field, raw string) pair to a Result and
// touches no external state. Each field's rules run in a fixed order and the
// first failing rule determines the message, so callers always get exactly
// one actionable string to show.
//
// # Fields and Rules
//
//   - Name: required, ASCII letters and whitespace only, at least 2
//     characters after trimming.
//   - Email: required, then a single permissive shape check
//     (local@domain.tld, no whitespace, no second '@'). Deliberately not
//     RFC 5322; do not tighten it.
//   - Password: required (untrimmed), then ordered strength checks:
//     length >= 8, uppercase, lowercase, digit, special character.
//   - Phone: required, digits plus formatting characters only
//     (spaces, hyphens, parentheses), 10-15 digits after stripping.
//
// # Usage Example
//
//	res := validate.Check(validate.FieldEmail, "user@example.com")
//	if !res.Valid {
//	    fmt.Println(res.Message)
//	}
//
// Validation failure is a normal outcome carried in Result, never an error
// value: there is nothing exceptional about a half-typed email address.
package validate
