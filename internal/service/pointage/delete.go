package pointage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// SoftDelete hides an entry without destroying it. Owner only; blocked while
// the entry is submitted.
func (s *Service) SoftDelete(ctx context.Context, entryID uuid.UUID) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if entryID == uuid.Nil {
		return domain.NewValidationError("entry_id", "required")
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}

	if entry.OwnerID != callerID {
		return domain.ErrForbidden
	}
	if entry.Status.IsLocked() {
		return fmt.Errorf("entry %s: %w", entry.ID, domain.ErrLocked)
	}

	if err := s.entries.SoftDelete(ctx, entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeEntry, &entryID, domain.AuditActionDelete, nil)

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("entry_id", entryID.String()),
		slog.String("owner_id", callerID.String()),
	)

	return nil
}
