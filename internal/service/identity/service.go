// Package identity resolves authenticated principals to user records and
// provides user administration.
package identity

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error
	Restore(ctx context.Context, id uuid.UUID, restoredBy string) error
}

type auditRecorder interface {
	Record(ctx context.Context, entityType domain.EntityType, entityID *uuid.UUID, action domain.AuditAction, changes map[string]any)
}

// Service provides identity resolution and user management operations.
type Service struct {
	users userRepo
	audit auditRecorder
	log   *slog.Logger
}

// NewService creates a new Identity service.
func NewService(
	log *slog.Logger,
	users userRepo,
	audit auditRecorder,
) *Service {
	return &Service{
		users: users,
		audit: audit,
		log:   log.With("service", "identity"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
