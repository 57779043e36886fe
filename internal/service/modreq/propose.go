package modreq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// Propose opens a modification request against a locked entry.
//
// Only the entry's owner may propose, only while the entry is submitted, and
// only one pending request may exist per entry. The partial unique index in
// the store backs the same invariant, so a race between two propose calls
// still ends with exactly one pending request.
func (s *Service) Propose(ctx context.Context, input ProposeInput) (*domain.ModificationRequest, error) {
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
	if entry.Status != domain.EntryStatusSubmitted {
		return nil, fmt.Errorf("entry %s is not submitted: %w", entry.ID, domain.ErrConflict)
	}

	if _, err := s.requests.GetPendingByEntry(ctx, input.EntryID); err == nil {
		return nil, fmt.Errorf("entry %s already has a pending request: %w", entry.ID, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check pending request: %w", err)
	}

	proposed, err := input.Proposed.toData()
	if err != nil {
		return nil, err
	}

	req, err := s.requests.Create(ctx, &domain.ModificationRequest{
		ID:          uuid.New(),
		EntryID:     input.EntryID,
		RequesterID: callerID,
		Proposed:    proposed,
		Comment:     input.Comment,
		Status:      domain.RequestStatusPending,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("entry %s already has a pending request: %w", entry.ID, domain.ErrConflict)
		}
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeRequest, &req.ID, domain.AuditActionCreate, map[string]any{
		"entry_id": entry.ID.String(),
	})

	s.log.InfoContext(ctx, "modification request opened",
		slog.String("request_id", req.ID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.String("requester_id", callerID.String()),
	)

	return req, nil
}
