// Package auditlog records and queries the append-only audit trail.
package auditlog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

const DefaultLimit = 100

type auditRepo interface {
	Create(ctx context.Context, rec *domain.AuditRecord) error
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// Service provides audit trail operations.
type Service struct {
	records auditRepo
	log     *slog.Logger
}

// NewService creates a new AuditLog service.
func NewService(
	log *slog.Logger,
	records auditRepo,
) *Service {
	return &Service{
		records: records,
		log:     log.With("service", "auditlog"),
	}
}

// Record appends one audit record attributed to the context's caller.
// Recording is best effort: a failed write is logged, never propagated, so
// an audit outage cannot block the mutation it describes.
func (s *Service) Record(ctx context.Context, entityType domain.EntityType, entityID *uuid.UUID, action domain.AuditAction, changes map[string]any) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		s.log.WarnContext(ctx, "audit record without caller dropped",
			slog.String("entity_type", entityType.String()),
			slog.String("action", action.String()),
		)
		return
	}

	if changes == nil {
		changes = map[string]any{}
	}

	err := s.records.Create(ctx, &domain.AuditRecord{
		ID:         uuid.New(),
		UserID:     userID,
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Changes:    changes,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "audit record write failed",
			slog.String("entity_type", entityType.String()),
			slog.String("action", action.String()),
			slog.Any("error", err),
		)
	}
}

// ListForEntity returns the recent audit trail of one entity. Admin only.
func (s *Service) ListForEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if !entityType.IsValid() {
		return nil, domain.NewValidationError("entity_type", "unknown entity type")
	}
	if limit <= 0 || limit > 1000 {
		limit = DefaultLimit
	}

	return s.records.ListByEntity(ctx, entityType, entityID, limit)
}
