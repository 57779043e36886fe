package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleCollaborator UserRole = "collaborator"
	UserRoleResponsible  UserRole = "responsible"
	UserRoleAdmin        UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCollaborator, UserRoleResponsible, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// IsReviewer reports whether the role may review entries and
// modification requests (responsible or admin).
func (r UserRole) IsReviewer() bool {
	return r == UserRoleResponsible || r == UserRoleAdmin
}

// UserStatus represents whether a user account is active.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

func (s UserStatus) String() string { return string(s) }

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive:
		return true
	}
	return false
}

// EntryStatus represents the lifecycle state of a pointage entry.
// "modified" marks a draft that has been edited after creation; it behaves
// like draft for every guard.
type EntryStatus string

const (
	EntryStatusDraft     EntryStatus = "draft"
	EntryStatusModified  EntryStatus = "modified"
	EntryStatusSubmitted EntryStatus = "submitted"
	EntryStatusValidated EntryStatus = "validated"
	EntryStatusRejected  EntryStatus = "rejected"
)

func (s EntryStatus) String() string { return string(s) }

func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusDraft, EntryStatusModified, EntryStatusSubmitted,
		EntryStatusValidated, EntryStatusRejected:
		return true
	}
	return false
}

// IsLocked reports whether direct field edits are rejected.
func (s EntryStatus) IsLocked() bool { return s == EntryStatusSubmitted }

// IsReviewerSettable reports whether a reviewer status override may target
// this status. Validated/rejected are not reachable through the override path.
func (s EntryStatus) IsReviewerSettable() bool {
	return s == EntryStatusDraft || s == EntryStatusSubmitted
}

// RequestStatus represents the lifecycle state of a modification request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

// IsDecision reports whether the status is a valid review outcome.
func (s RequestStatus) IsDecision() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// EntityType identifies the kind of domain entity (used in audit records).
type EntityType string

const (
	EntityTypeUser    EntityType = "USER"
	EntityTypeCatalog EntityType = "CATALOG"
	EntityTypeEntry   EntityType = "ENTRY"
	EntityTypeRequest EntityType = "MODIFICATION_REQUEST"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeUser, EntityTypeCatalog, EntityTypeEntry, EntityTypeRequest:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionSubmit  AuditAction = "SUBMIT"
	AuditActionStatus  AuditAction = "STATUS_CHANGE"
	AuditActionApprove AuditAction = "APPROVE"
	AuditActionReject  AuditAction = "REJECT"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionSubmit, AuditActionStatus, AuditActionApprove, AuditActionReject:
		return true
	}
	return false
}
