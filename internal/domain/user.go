package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an application user.
//
// Roles: collaborators fill pointage entries; responsibles own a team of
// collaborators and review their entries; admins see everything.
// A collaborator's TeamOwnerID, when set, must reference a responsible.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        *string
	Role         UserRole
	TeamOwnerID  *uuid.UUID
	Status       UserStatus
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CreatedBy    string
	UpdatedBy    string
	IsDeleted    bool
	IsArchived   bool
}

// UserFilter narrows user listings. Nil fields are ignored.
type UserFilter struct {
	Role        *UserRole
	TeamOwnerID *uuid.UUID
	Status      *UserStatus
}

// IsActive reports whether the account can be used: active status and not
// soft-deleted.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive && !u.IsDeleted
}

// CanManage reports whether u may administer the target user: admins manage
// everyone, responsibles manage their own collaborators.
func (u *User) CanManage(target *User) bool {
	if u.Role.IsAdmin() {
		return true
	}
	if u.Role != UserRoleResponsible {
		return false
	}
	return target.TeamOwnerID != nil && *target.TeamOwnerID == u.ID
}
