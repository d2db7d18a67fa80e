package validate

import (
	"testing"
)

// TestName tests name field validation rules and their ordering
func TestName(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		wantValid   bool
		wantMessage string
	}{
		{"Valid: simple name", "Anna", true, "Looks good!"},
		{"Valid: full name with space", "Moise Chirusha", true, "Looks good!"},
		{"Valid: two letters", "Al", true, "Looks good!"},
		{"Valid: surrounding whitespace", "  Anna  ", true, "Looks good!"},
		{"Invalid: empty", "", false, "Name is required"},
		{"Invalid: whitespace only", "   ", false, "Name is required"},
		{"Invalid: digits", "123", false, "Name can contain only letters and spaces"},
		{"Invalid: mixed letters and digits", "Anna2", false, "Name can contain only letters and spaces"},
		{"Invalid: punctuation", "O'Brien", false, "Name can contain only letters and spaces"},
		{"Invalid: single letter", "A", false, "Name must be at least 2 characters"},
		{"Invalid: single letter padded", " A ", false, "Name must be at least 2 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Name(tt.value)
			if got.Valid != tt.wantValid {
				t.Errorf("Name(%q).Valid = %v, want %v", tt.value, got.Valid, tt.wantValid)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Name(%q).Message = %q, want %q", tt.value, got.Message, tt.wantMessage)
			}
		})
	}
}

// TestEmail tests the permissive email shape check
func TestEmail(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantValid bool
	}{
		{"Valid: plain address", "user@example.com", true},
		{"Valid: subdomain", "a@b.co", true},
		{"Valid: plus tag", "user+tag@example.com", true},
		{"Valid: permissive trailing dot", "user@example.com.", true},
		{"Valid: permissive double dot", "user@example..com", true},
		{"Invalid: empty", "", false},
		{"Invalid: whitespace only", "  ", false},
		{"Invalid: missing domain", "user@", false},
		{"Invalid: missing local part", "@example.com", false},
		{"Invalid: no at sign", "example.com", false},
		{"Invalid: no dot in domain", "user@example", false},
		{"Invalid: embedded space", "us er@example.com", false},
		{"Invalid: two at signs", "user@@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Email(tt.value)
			if got.Valid != tt.wantValid {
				t.Errorf("Email(%q).Valid = %v, want %v", tt.value, got.Valid, tt.wantValid)
			}
		})
	}
}

// TestPassword tests password strength checks and their ordering
func TestPassword(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		wantValid   bool
		wantMessage string
	}{
		{"Valid: all requirements", "Pass123!", true, "Strong password"},
		{"Valid: longer password", `Tr0ub4dor&Three`, true, "Strong password"},
		{"Invalid: empty", "", false, "Password is required"},
		{"Invalid: whitespace counts as content", "        ", false, "Password must contain an uppercase letter"},
		{"Invalid: too short", "Pa1!", false, "Password must be at least 8 characters"},
		{"Invalid: missing uppercase first", "password", false, "Password must contain an uppercase letter"},
		{"Invalid: missing lowercase", "PASSWORD1!", false, "Password must contain a lowercase letter"},
		{"Invalid: missing digit", "Password!", false, "Password must contain a number"},
		{"Invalid: missing special", "Pass1234", false, "Password must contain a special character"},
		{"Invalid: seven chars hits length before special", "Pass123", false, "Password must be at least 8 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Password(tt.value)
			if got.Valid != tt.wantValid {
				t.Errorf("Password(%q).Valid = %v, want %v", tt.value, got.Valid, tt.wantValid)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Password(%q).Message = %q, want %q", tt.value, got.Message, tt.wantMessage)
			}
		})
	}
}

// TestPhone tests phone character and digit-count rules
func TestPhone(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		wantValid   bool
		wantMessage string
	}{
		{"Valid: bare digits", "0997720056", true, "Valid phone number"},
		{"Valid: formatted", "(555) 123-4567", true, "Valid phone number"},
		{"Valid: fifteen digits", "123456789012345", true, "Valid phone number"},
		{"Invalid: empty", "", false, "Phone number is required"},
		{"Invalid: whitespace only", "   ", false, "Phone number is required"},
		{"Invalid: letters", "abcd", false, "Phone number contains invalid characters"},
		{"Invalid: plus prefix", "+15551234567", false, "Phone number contains invalid characters"},
		{"Invalid: too short", "123", false, "Phone number is too short"},
		{"Invalid: nine digits formatted", "(555) 123-456", false, "Phone number is too short"},
		{"Invalid: sixteen digits", "1234567890123456", false, "Phone number is too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Phone(tt.value)
			if got.Valid != tt.wantValid {
				t.Errorf("Phone(%q).Valid = %v, want %v", tt.value, got.Valid, tt.wantValid)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Phone(%q).Message = %q, want %q", tt.value, got.Message, tt.wantMessage)
			}
		})
	}
}

// TestCheckDispatch tests that Check routes each field to its rules and
// answers unknown fields with the fixed defensive result
func TestCheckDispatch(t *testing.T) {
	tests := []struct {
		name        string
		field       Field
		value       string
		wantValid   bool
		wantMessage string
	}{
		{"Name routes", FieldName, "Anna", true, "Looks good!"},
		{"Email routes", FieldEmail, "user@", false, "Please enter a valid email address"},
		{"Password routes", FieldPassword, "Pass123!", true, "Strong password"},
		{"Phone routes", FieldPhone, "123", false, "Phone number is too short"},
		{"Unknown field", Field(99), "anything", false, "Unknown field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.field, tt.value)
			if got.Valid != tt.wantValid || got.Message != tt.wantMessage {
				t.Errorf("Check(%v, %q) = %+v, want Valid=%v Message=%q",
					tt.field, tt.value, got, tt.wantValid, tt.wantMessage)
			}
		})
	}
}

// TestCheckDeterministic tests that repeated calls with identical input
// return identical results
func TestCheckDeterministic(t *testing.T) {
	inputs := []struct {
		field Field
		value string
	}{
		{FieldName, "Moise Chirusha"},
		{FieldEmail, "user@example.com"},
		{FieldPassword, "password"},
		{FieldPhone, "(555) 123-4567"},
	}

	for _, in := range inputs {
		first := Check(in.field, in.value)
		second := Check(in.field, in.value)
		if first != second {
			t.Errorf("Check(%v, %q) not deterministic: %+v then %+v",
				in.field, in.value, first, second)
		}
	}
}

// TestFieldStrings tests the identifier round-trip used by the CLI
func TestFieldStrings(t *testing.T) {
	for _, f := range Fields() {
		got, ok := FieldFromString(f.String())
		if !ok || got != f {
			t.Errorf("FieldFromString(%q) = %v, %v; want %v, true", f.String(), got, ok, f)
		}
	}

	if _, ok := FieldFromString("username"); ok {
		t.Error("FieldFromString(\"username\") should not resolve")
	}
}
