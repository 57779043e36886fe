package identity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

// ResolveInput describes an authenticated principal. Any non-empty subset of
// the fields may be set; resolution tries id, then email, then name.
type ResolveInput struct {
	ID    *uuid.UUID
	Email *string
	Name  *string
}

// Validate checks that at least one descriptor field is usable.
func (i ResolveInput) Validate() error {
	if i.ID != nil && *i.ID != uuid.Nil {
		return nil
	}
	if i.Email != nil && strings.TrimSpace(*i.Email) != "" {
		return nil
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) != "" {
		return nil
	}
	return domain.NewValidationError("principal", "at least one of id, email, name is required")
}

// CreateUserInput holds the parameters for creating a user.
type CreateUserInput struct {
	Name        string
	Email       *string
	Role        domain.UserRole
	TeamOwnerID *uuid.UUID
	Password    *string
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}
	if i.TeamOwnerID != nil && i.Role != domain.UserRoleCollaborator {
		errs = append(errs, domain.FieldError{Field: "team_owner_id", Message: "only collaborators belong to a team"})
	}

	if i.Email != nil {
		email := strings.TrimSpace(*i.Email)
		if email != "" && !strings.Contains(email, "@") {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
		}
	}

	if i.Password != nil && len(*i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUserInput holds the parameters for updating a user. Nil fields keep
// their current values.
type UpdateUserInput struct {
	UserID      uuid.UUID
	Name        *string
	Email       *string
	Role        *domain.UserRole
	TeamOwnerID *uuid.UUID
	ClearTeam   bool
	Status      *domain.UserStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be empty"})
	}
	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.TeamOwnerID != nil && i.ClearTeam {
		errs = append(errs, domain.FieldError{Field: "team_owner_id", Message: "cannot both set and clear"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TeamInput holds the parameters for listing a responsible's team.
type TeamInput struct {
	ResponsibleID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i TeamInput) Validate() error {
	if i.ResponsibleID == uuid.Nil {
		return domain.NewValidationError("responsible_id", "required")
	}
	return nil
}

// ListUsersInput holds the optional filters for listing users.
type ListUsersInput struct {
	Role        *domain.UserRole
	TeamOwnerID *uuid.UUID
	Status      *domain.UserStatus
}

// Validate checks all fields and collects all errors.
func (i ListUsersInput) Validate() error {
	var errs []domain.FieldError
	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
