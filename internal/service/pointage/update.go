package pointage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// Update applies a partial edit to an entry the caller owns.
//
// Omitted fields keep their previous values. A submitted entry is locked:
// the edit fails with ErrLocked regardless of the caller's role. Editing a
// plain draft marks it as modified; other statuses are left unchanged.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Entry, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	if entry.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}
	if entry.Status.IsLocked() {
		return nil, fmt.Errorf("entry %s: %w", entry.ID, domain.ErrLocked)
	}

	patch, err := input.Fields.toData()
	if err != nil {
		return nil, err
	}

	entry.Data = entry.Data.Merge(patch)
	if entry.Status == domain.EntryStatusDraft {
		entry.Status = domain.EntryStatusModified
	}

	updated, err := s.entries.Update(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeEntry, &updated.ID, domain.AuditActionUpdate, map[string]any{
		"status": updated.Status.String(),
	})

	s.log.InfoContext(ctx, "entry updated",
		slog.String("entry_id", updated.ID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}
