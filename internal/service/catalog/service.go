// Package catalog manages the named reference catalogs (LC) and the
// system-wide active-catalog pointer.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

type catalogRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Catalog, error)
	GetByName(ctx context.Context, name string) (*domain.Catalog, error)
	List(ctx context.Context) ([]domain.Catalog, error)
	Create(ctx context.Context, c *domain.Catalog) (*domain.Catalog, error)
	AddItems(ctx context.Context, catalogID uuid.UUID, items []domain.CatalogItem) ([]domain.CatalogItem, error)
	SetItemActive(ctx context.Context, itemID uuid.UUID, active bool) error
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

type auditRecorder interface {
	Record(ctx context.Context, entityType domain.EntityType, entityID *uuid.UUID, action domain.AuditAction, changes map[string]any)
}

// Service provides catalog management operations.
type Service struct {
	catalogs     catalogRepo
	audit        auditRecorder
	fallbackName string
	log          *slog.Logger
}

// NewService creates a new Catalog service. fallbackName is returned by
// ActiveName when the pointer is unset or dangling.
func NewService(
	log *slog.Logger,
	catalogs catalogRepo,
	audit auditRecorder,
	fallbackName string,
) *Service {
	if fallbackName == "" {
		fallbackName = domain.FallbackCatalogName
	}
	return &Service{
		catalogs:     catalogs,
		audit:        audit,
		fallbackName: fallbackName,
		log:          log.With("service", "catalog"),
	}
}
