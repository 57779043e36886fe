package domain

import (
	"time"

	"github.com/google/uuid"
)

// ModificationRequest is a proposed edit to a locked (submitted) entry.
//
// Only the entry's owner may open one, only while the entry is submitted,
// and at most one pending request exists per entry. A reviewed request is
// terminal and is never reopened.
type ModificationRequest struct {
	ID            uuid.UUID
	EntryID       uuid.UUID
	RequesterID   uuid.UUID
	Proposed      EntryData
	Comment       *string
	Status        RequestStatus
	ReviewedBy    *uuid.UUID
	ReviewComment *string
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	IsDeleted     bool
}

// RequestFilter narrows request listings. Nil or empty fields are ignored.
// EntryOwnerIDs scopes the listing to requests whose target entry belongs to
// one of the given owners.
type RequestFilter struct {
	RequesterID   *uuid.UUID
	EntryID       *uuid.UUID
	EntryOwnerIDs []uuid.UUID
	Status        *RequestStatus
}

// IsPending reports whether the request still awaits review.
func (r *ModificationRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}
