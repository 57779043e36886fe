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

// Create opens a new draft entry owned by the caller.
//
// The week key is derived from entry_date exactly once, here, and never
// recomputed on later edits.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Entry, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	role, ok := ctxutil.RoleFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if role != domain.UserRoleCollaborator && !role.IsAdmin() {
		return nil, fmt.Errorf("only collaborators create entries: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entryDate, err := domain.ParseDate("entry_date", input.EntryDate)
	if err != nil {
		return nil, err
	}
	data, err := input.Fields.toData()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry, err := s.entries.Create(ctx, &domain.Entry{
		ID:        uuid.New(),
		OwnerID:   callerID,
		EntryDate: entryDate,
		WeekKey:   domain.WeekKey(entryDate),
		Data:      data,
		Status:    domain.EntryStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeEntry, &entry.ID, domain.AuditActionCreate, map[string]any{
		"entry_date": input.EntryDate,
		"week_key":   entry.WeekKey,
	})

	s.log.InfoContext(ctx, "entry created",
		slog.String("entry_id", entry.ID.String()),
		slog.String("owner_id", callerID.String()),
		slog.String("week_key", entry.WeekKey),
	)

	return entry, nil
}
