package validate

import (
	"regexp"
	"strings"
	"unicode"
)

// Result is the outcome of evaluating one field's value against its rules.
// Message carries exactly one human-readable string: the first failing
// rule's error, or the field's fixed success message when valid.
type Result struct {
	Valid   bool
	Message string
}

// Success messages shown per field once its rules pass
const (
	nameValidMsg     = "Looks good!"
	emailValidMsg    = "Valid email address"
	passwordValidMsg = "Strong password"
	phoneValidMsg    = "Valid phone number"
)

var (
	// Letters and spaces only, over the whole (untrimmed) value
	namePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

	// Intentionally permissive: local@domain.tld with no whitespace or
	// extra '@' anywhere. No dot-position checks, no length caps.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// passwordSpecials is the accepted special-character set for passwords
const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

// Check evaluates value against the rules for field. Rules run in order
// and the first failure wins; a valid result carries the field's fixed
// success message. Pure and deterministic: same inputs, same Result.
func Check(field Field, value string) Result {
	switch field {
	case FieldName:
		return Name(value)
	case FieldEmail:
		return Email(value)
	case FieldPassword:
		return Password(value)
	case FieldPhone:
		return Phone(value)
	default:
		// Unreachable with the closed Field set, but Field is an integer
		// underneath so out-of-range values get a fixed answer.
		return Result{Valid: false, Message: "Unknown field"}
	}
}

// Name validates the name field: required, letters/spaces only, and at
// least 2 characters after trimming.
func Name(value string) Result {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Result{Valid: false, Message: "Name is required"}
	}
	if !namePattern.MatchString(value) {
		return Result{Valid: false, Message: "Name can contain only letters and spaces"}
	}
	if len(trimmed) < 2 {
		return Result{Valid: false, Message: "Name must be at least 2 characters"}
	}
	return Result{Valid: true, Message: nameValidMsg}
}

// Email validates the email field against a deliberately permissive
// shape: something@something.something with no whitespace or second '@'.
// This is not an RFC 5322 check and must not become one; the documented
// behavior is the permissive pattern.
func Email(value string) Result {
	if strings.TrimSpace(value) == "" {
		return Result{Valid: false, Message: "Email is required"}
	}
	if !emailPattern.MatchString(value) {
		return Result{Valid: false, Message: "Please enter a valid email address"}
	}
	return Result{Valid: true, Message: emailValidMsg}
}

// Password validates the password field. The value is never trimmed: a
// whitespace-only password is non-empty and proceeds to the length check.
// Checks run in order (length, upper, lower, digit, special) and the
// first failure picks the message.
func Password(value string) Result {
	if value == "" {
		return Result{Valid: false, Message: "Password is required"}
	}
	if len(value) < 8 {
		return Result{Valid: false, Message: "Password must be at least 8 characters"}
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return Result{Valid: false, Message: "Password must contain an uppercase letter"}
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		return Result{Valid: false, Message: "Password must contain a lowercase letter"}
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return Result{Valid: false, Message: "Password must contain a number"}
	}
	if !strings.ContainsAny(value, passwordSpecials) {
		return Result{Valid: false, Message: "Password must contain a special character"}
	}
	return Result{Valid: true, Message: passwordValidMsg}
}

// Phone validates the phone field. Formatting characters (spaces,
// hyphens, parentheses) are allowed in the raw value; the digit count
// after stripping them must be 10-15.
func Phone(value string) Result {
	if strings.TrimSpace(value) == "" {
		return Result{Valid: false, Message: "Phone number is required"}
	}
	for _, r := range value {
		if !isPhoneRune(r) {
			return Result{Valid: false, Message: "Phone number contains invalid characters"}
		}
	}
	digits := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 10 {
		return Result{Valid: false, Message: "Phone number is too short"}
	}
	if digits > 15 {
		return Result{Valid: false, Message: "Phone number is too long"}
	}
	return Result{Valid: true, Message: phoneValidMsg}
}

func isPhoneRune(r rune) bool {
	return (r >= '0' && r <= '9') || unicode.IsSpace(r) || r == '-' || r == '(' || r == ')'
}
