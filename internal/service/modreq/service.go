// Package modreq runs the modification request workflow: collaborators
// propose edits to locked entries, reviewers approve or reject them.
package modreq

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

type requestRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ModificationRequest, error)
	GetPendingByEntry(ctx context.Context, entryID uuid.UUID) (*domain.ModificationRequest, error)
	List(ctx context.Context, f domain.RequestFilter) ([]domain.ModificationRequest, error)
	Create(ctx context.Context, req *domain.ModificationRequest) (*domain.ModificationRequest, error)
	Review(ctx context.Context, id uuid.UUID, status domain.RequestStatus, reviewedBy uuid.UUID, reviewComment *string, reviewedAt time.Time) (*domain.ModificationRequest, error)
}

type entryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]domain.User, error)
}

type auditRecorder interface {
	Record(ctx context.Context, entityType domain.EntityType, entityID *uuid.UUID, action domain.AuditAction, changes map[string]any)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides modification request operations.
type Service struct {
	requests requestRepo
	entries  entryRepo
	users    userRepo
	audit    auditRecorder
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new ModReq service.
func NewService(
	log *slog.Logger,
	requests requestRepo,
	entries entryRepo,
	users userRepo,
	audit auditRecorder,
	tx txManager,
) *Service {
	return &Service{
		requests: requests,
		entries:  entries,
		users:    users,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "modreq"),
	}
}
