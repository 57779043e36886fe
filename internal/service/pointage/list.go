package pointage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// ListForOwner returns the caller's own entries.
func (s *Service) ListForOwner(ctx context.Context, input ListInput) ([]domain.Entry, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx, domain.EntryFilter{
		OwnerID:  &callerID,
		WeekKey:  input.WeekKey,
		Status:   input.Status,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// ListForTeam returns the entries of a responsible's collaborators.
// A responsible may only query their own team; admins may query anyone's.
func (s *Service) ListForTeam(ctx context.Context, responsibleID uuid.UUID, input ListInput) ([]domain.Entry, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	role, ok := ctxutil.RoleFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !role.IsReviewer() {
		return nil, domain.ErrForbidden
	}
	if role == domain.UserRoleResponsible && responsibleID != callerID {
		return nil, domain.ErrForbidden
	}
	if responsibleID == uuid.Nil {
		return nil, domain.NewValidationError("responsible_id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	memberIDs, err := s.teamMemberIDs(ctx, responsibleID)
	if err != nil {
		return nil, fmt.Errorf("resolve team: %w", err)
	}
	if len(memberIDs) == 0 {
		return nil, nil
	}

	entries, err := s.entries.List(ctx, domain.EntryFilter{
		OwnerIDs: memberIDs,
		WeekKey:  input.WeekKey,
		Status:   input.Status,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
	})
	if err != nil {
		return nil, fmt.Errorf("list team entries: %w", err)
	}
	return entries, nil
}

// ListAll returns every entry. Admin only.
func (s *Service) ListAll(ctx context.Context, input ListInput) ([]domain.Entry, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx, domain.EntryFilter{
		WeekKey:  input.WeekKey,
		Status:   input.Status,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
	})
	if err != nil {
		return nil, fmt.Errorf("list all entries: %w", err)
	}
	return entries, nil
}

// Get returns one entry, applying the same visibility rules as the listings:
// the owner, their responsible, and admins may read it.
func (s *Service) Get(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	role, ok := ctxutil.RoleFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if entryID == uuid.Nil {
		return nil, domain.NewValidationError("entry_id", "required")
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	switch {
	case entry.OwnerID == callerID:
	case role.IsAdmin():
	case role == domain.UserRoleResponsible:
		owner, err := s.users.GetByID(ctx, entry.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("get entry owner: %w", err)
		}
		if owner.TeamOwnerID == nil || *owner.TeamOwnerID != callerID {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}

	return entry, nil
}
