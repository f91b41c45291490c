package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  error
	}{
		{"", ErrEmailRequired},
		{"alice@example.com", nil},
		{"bob.smith+tag@sub.example.org", nil},
		{"not-an-email", ErrEmailInvalid},
		{"missing@domain", ErrEmailInvalid},
		{"@example.com", ErrEmailInvalid},
		{"spaces in@example.com", ErrEmailInvalid},
	}

	for _, tt := range tests {
		if got := ValidateEmail(tt.email); !errors.Is(got, tt.want) {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword(""); !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
	if err := ValidatePassword("short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
	if err := ValidatePassword("secret1"); err != nil {
		t.Errorf("expected valid password, got %v", err)
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName(""); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	if err := ValidateName("   "); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired for whitespace, got %v", err)
	}
	if err := ValidateName(strings.Repeat("a", MaxNameLength+1)); !errors.Is(err, ErrNameTooLong) {
		t.Errorf("expected ErrNameTooLong, got %v", err)
	}
	if err := ValidateName("Alice"); err != nil {
		t.Errorf("expected valid name, got %v", err)
	}
}

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle(""); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
	if err := ValidateTitle("  \t "); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("expected ErrTitleRequired for whitespace, got %v", err)
	}
	if err := ValidateTitle(strings.Repeat("x", MaxTitleLength+1)); !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("expected ErrTitleTooLong, got %v", err)
	}
	if err := ValidateTitle("Buy milk"); err != nil {
		t.Errorf("expected valid title, got %v", err)
	}
}

func TestValidateStatus(t *testing.T) {
	for _, status := range []string{"todo", "completed"} {
		if err := ValidateStatus(status); err != nil {
			t.Errorf("expected status %q to be valid, got %v", status, err)
		}
	}
	for _, status := range []string{"", "done", "TODO", "in-progress"} {
		if err := ValidateStatus(status); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus for %q, got %v", status, err)
		}
	}
}

func TestValidatePriority(t *testing.T) {
	for _, priority := range []string{"low", "medium", "high"} {
		if err := ValidatePriority(priority); err != nil {
			t.Errorf("expected priority %q to be valid, got %v", priority, err)
		}
	}
	for _, priority := range []string{"", "urgent", "HIGH"} {
		if err := ValidatePriority(priority); !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority for %q, got %v", priority, err)
		}
	}
}
