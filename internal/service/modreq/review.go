package modreq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// Review decides a pending request. Reviewer only; a responsible may only
// review requests against their own collaborators' entries.
//
// On approval the proposed fields are merged into the entry, fields absent
// from the proposal keep their current values, and the entry is forced back
// to draft. This is the only path that unlocks a submitted entry's data.
// On rejection the entry is untouched. Either way the decision is terminal.
// Request decision and entry update commit in one transaction.
func (s *Service) Review(ctx context.Context, input ReviewInput) (*domain.ModificationRequest, error) {
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

	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.requests.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if !req.IsPending() {
		return nil, fmt.Errorf("request %s already reviewed: %w", req.ID, domain.ErrConflict)
	}

	entry, err := s.entries.GetByID(ctx, req.EntryID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	if role == domain.UserRoleResponsible {
		if entry == nil {
			return nil, domain.ErrForbidden
		}
		owner, err := s.users.GetByID(ctx, entry.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("get entry owner: %w", err)
		}
		if owner.TeamOwnerID == nil || *owner.TeamOwnerID != callerID {
			return nil, domain.ErrForbidden
		}
	}

	var reviewed *domain.ModificationRequest
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		reviewed, err = s.requests.Review(txCtx, req.ID, input.Decision, callerID, input.ReviewComment, time.Now().UTC())
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("request %s already reviewed: %w", req.ID, domain.ErrConflict)
			}
			return fmt.Errorf("review request: %w", err)
		}

		if input.Decision != domain.RequestStatusApproved || entry == nil {
			return nil
		}

		entry.Data = entry.Data.Merge(req.Proposed)
		entry.Status = domain.EntryStatusDraft
		entry.SubmittedAt = nil

		if _, err := s.entries.Update(txCtx, entry); err != nil {
			return fmt.Errorf("apply proposal: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := domain.AuditActionReject
	if input.Decision == domain.RequestStatusApproved {
		action = domain.AuditActionApprove
	}
	s.audit.Record(ctx, domain.EntityTypeRequest, &reviewed.ID, action, map[string]any{
		"entry_id": req.EntryID.String(),
	})

	s.log.InfoContext(ctx, "modification request reviewed",
		slog.String("request_id", reviewed.ID.String()),
		slog.String("decision", input.Decision.String()),
		slog.String("reviewer_id", callerID.String()),
	)

	return reviewed, nil
}
