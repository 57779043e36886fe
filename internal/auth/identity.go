package auth

import (
	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

// Principal describes an authenticated caller as asserted by the identity
// source (SSO token or local login). Any non-empty subset of {ID, Email,
// Name} identifies the stored user; Role is trusted as-is.
type Principal struct {
	ID    *uuid.UUID
	Email *string
	Name  *string
	Role  domain.UserRole
}

// IsEmpty reports whether the principal carries no identifying field.
func (p Principal) IsEmpty() bool {
	return p.ID == nil && p.Email == nil && p.Name == nil
}
