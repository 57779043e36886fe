package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

// ListCatalogs returns all catalogs without their items.
func (s *Service) ListCatalogs(ctx context.Context) ([]domain.Catalog, error) {
	catalogs, err := s.catalogs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	return catalogs, nil
}

// GetCatalog returns one catalog with its items.
func (s *Service) GetCatalog(ctx context.Context, catalogID uuid.UUID) (*domain.Catalog, error) {
	if catalogID == uuid.Nil {
		return nil, domain.NewValidationError("catalog_id", "required")
	}

	c, err := s.catalogs.GetByID(ctx, catalogID)
	if err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	return c, nil
}

// GetCatalogByName returns one catalog with its items, matched by exact name.
func (s *Service) GetCatalogByName(ctx context.Context, name string) (*domain.Catalog, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	c, err := s.catalogs.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	return c, nil
}
