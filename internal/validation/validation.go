package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/taskmasterhq/taskmaster/internal/models"
)

const (
	MinPasswordLength = 6
	MaxTitleLength    = 200
	MaxNameLength     = 100
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("email is not a valid address")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrNameRequired     = errors.New("name is required")
	ErrNameTooLong      = errors.New("name must be at most 100 characters")
	ErrTitleRequired    = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title must be at most 200 characters")
	ErrInvalidStatus    = errors.New("status must be one of: todo, completed")
	ErrInvalidPriority  = errors.New("priority must be one of: low, medium, high")
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailRegex.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func ValidateStatus(status string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}
	return nil
}

func ValidatePriority(priority string) error {
	if !models.ValidPriority(priority) {
		return ErrInvalidPriority
	}
	return nil
}
