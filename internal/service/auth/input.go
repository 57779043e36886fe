package auth

import (
	"strings"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

// LoginPasswordInput holds email + password credentials.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginPasswordInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
