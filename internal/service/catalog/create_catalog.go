package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// CreateCatalog creates a new named catalog with its initial items.
// Admin only. Fails with Conflict when the name is already taken.
func (s *Service) CreateCatalog(ctx context.Context, input CreateCatalogInput) (*domain.Catalog, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var items []domain.CatalogItem
	for _, raw := range input.Items {
		item := raw.toDomain()
		if item.IsEmpty() {
			continue
		}
		items = append(items, item)
	}

	now := time.Now().UTC()
	created, err := s.catalogs.Create(ctx, &domain.Catalog{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   callerID.String(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("catalog name %q: %w", input.Name, domain.ErrConflict)
		}
		return nil, fmt.Errorf("create catalog: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeCatalog, &created.ID, domain.AuditActionCreate, map[string]any{
		"name":  created.Name,
		"items": len(created.Items),
	})

	s.log.InfoContext(ctx, "catalog created",
		slog.String("catalog_id", created.ID.String()),
		slog.String("name", created.Name),
		slog.Int("items", len(created.Items)),
	)

	return created, nil
}
