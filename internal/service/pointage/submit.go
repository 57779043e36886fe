package pointage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// Submit locks an entry for review. Owner only; fails with Conflict when the
// entry is already submitted.
func (s *Service) Submit(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
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

	if entry.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}
	if entry.Status == domain.EntryStatusSubmitted {
		return nil, fmt.Errorf("entry %s already submitted: %w", entry.ID, domain.ErrConflict)
	}

	now := time.Now().UTC()
	entry.Status = domain.EntryStatusSubmitted
	entry.SubmittedAt = &now

	updated, err := s.entries.Update(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("submit entry: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeEntry, &updated.ID, domain.AuditActionSubmit, nil)

	s.log.InfoContext(ctx, "entry submitted",
		slog.String("entry_id", updated.ID.String()),
		slog.String("owner_id", callerID.String()),
	)

	return updated, nil
}
