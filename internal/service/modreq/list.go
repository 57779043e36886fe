package modreq

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// RequestView pairs a request with the target entry's current values, for
// "current vs proposed" display. When the referenced entry is gone, Current
// is empty rather than failing the listing.
type RequestView struct {
	Request domain.ModificationRequest
	Current domain.EntryData
}

// ListForRequester returns the caller's own requests, newest first.
func (s *Service) ListForRequester(ctx context.Context, input ListInput) ([]RequestView, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.requests.List(ctx, domain.RequestFilter{
		RequesterID: &callerID,
		Status:      input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return s.buildViews(ctx, requests)
}

// ListForTeam returns requests against the entries of a responsible's
// collaborators. A responsible may only query their own team; admins may
// query any team.
func (s *Service) ListForTeam(ctx context.Context, responsibleID uuid.UUID, input ListInput) ([]RequestView, error) {
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

	memberRole := domain.UserRoleCollaborator
	members, err := s.users.List(ctx, domain.UserFilter{
		Role:        &memberRole,
		TeamOwnerID: &responsibleID,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve team: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}

	ownerIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ownerIDs = append(ownerIDs, m.ID)
	}

	requests, err := s.requests.List(ctx, domain.RequestFilter{
		EntryOwnerIDs: ownerIDs,
		Status:        input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("list team requests: %w", err)
	}

	return s.buildViews(ctx, requests)
}

func (s *Service) buildViews(ctx context.Context, requests []domain.ModificationRequest) ([]RequestView, error) {
	views := make([]RequestView, 0, len(requests))
	for _, req := range requests {
		view := RequestView{Request: req}

		entry, err := s.entries.GetByID(ctx, req.EntryID)
		switch {
		case err == nil:
			view.Current = entry.Data
		case errors.Is(err, domain.ErrNotFound):
			// entry soft-deleted since the request was opened
		default:
			return nil, fmt.Errorf("resolve entry %s: %w", req.EntryID, err)
		}

		views = append(views, view)
	}
	return views, nil
}
