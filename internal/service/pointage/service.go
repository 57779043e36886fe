// Package pointage owns the timesheet entry lifecycle: creation, edits,
// submission, reviewer overrides and listing.
package pointage

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

type entryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	List(ctx context.Context, f domain.EntryFilter) ([]domain.Entry, error)
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]domain.User, error)
}

type auditRecorder interface {
	Record(ctx context.Context, entityType domain.EntityType, entityID *uuid.UUID, action domain.AuditAction, changes map[string]any)
}

// Service provides pointage entry operations.
type Service struct {
	entries entryRepo
	users   userRepo
	audit   auditRecorder
	log     *slog.Logger
}

// NewService creates a new Pointage service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	users userRepo,
	audit auditRecorder,
) *Service {
	return &Service{
		entries: entries,
		users:   users,
		audit:   audit,
		log:     log.With("service", "pointage"),
	}
}

// teamMemberIDs resolves the collaborator IDs attached to a responsible.
func (s *Service) teamMemberIDs(ctx context.Context, responsibleID uuid.UUID) ([]uuid.UUID, error) {
	role := domain.UserRoleCollaborator
	members, err := s.users.List(ctx, domain.UserFilter{
		Role:        &role,
		TeamOwnerID: &responsibleID,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	return ids, nil
}
