package pointage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// SetStatus is the reviewer status override.
//
// Only responsibles and admins may call it, a responsible only for entries
// of their own collaborators. Both the current and the target status are
// restricted to draft and submitted; validated and rejected entries cannot
// be moved, and neither state is reachable through this path. Moving back
// to draft clears the submission timestamp.
func (s *Service) SetStatus(ctx context.Context, input SetStatusInput) (*domain.Entry, error) {
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
	if !input.Status.IsReviewerSettable() {
		return nil, domain.NewValidationError("status", "only draft and submitted can be set")
	}

	entry, err := s.entries.GetByID(ctx, input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if !entry.Status.IsReviewerSettable() {
		return nil, fmt.Errorf("entry is %s: %w", entry.Status, domain.ErrConflict)
	}

	if role == domain.UserRoleResponsible {
		owner, err := s.users.GetByID(ctx, entry.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("get entry owner: %w", err)
		}
		if owner.TeamOwnerID == nil || *owner.TeamOwnerID != callerID {
			return nil, domain.ErrForbidden
		}
	}

	prev := entry.Status
	entry.Status = input.Status
	switch input.Status {
	case domain.EntryStatusDraft:
		entry.SubmittedAt = nil
	case domain.EntryStatusSubmitted:
		if entry.SubmittedAt == nil {
			now := time.Now().UTC()
			entry.SubmittedAt = &now
		}
	}

	updated, err := s.entries.Update(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("set entry status: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeEntry, &updated.ID, domain.AuditActionStatus, map[string]any{
		"from": prev.String(),
		"to":   updated.Status.String(),
	})

	s.log.InfoContext(ctx, "entry status overridden",
		slog.String("entry_id", updated.ID.String()),
		slog.String("from", prev.String()),
		slog.String("to", updated.Status.String()),
		slog.String("reviewer_id", callerID.String()),
	)

	return updated, nil
}
