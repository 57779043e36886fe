package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// AddItem appends a single item to a catalog. Admins and responsibles only.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*domain.CatalogItem, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsReviewerCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	added, err := s.catalogs.AddItems(ctx, input.CatalogID, []domain.CatalogItem{input.Item.toDomain()})
	if err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeCatalog, &input.CatalogID, domain.AuditActionUpdate, map[string]any{
		"added_item": added[0].ID.String(),
	})

	s.log.InfoContext(ctx, "catalog item added",
		slog.String("catalog_id", input.CatalogID.String()),
		slog.String("item_id", added[0].ID.String()),
	)

	return &added[0], nil
}

// SetItemActive flips the activation flag of one item. Admins and
// responsibles only. Activation is per row: the flag covers all three
// reference fields at once.
func (s *Service) SetItemActive(ctx context.Context, input SetItemActiveInput) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsReviewerCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.catalogs.SetItemActive(ctx, input.ItemID, input.Active); err != nil {
		return fmt.Errorf("set item active: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeCatalog, nil, domain.AuditActionStatus, map[string]any{
		"item_id": input.ItemID.String(),
		"active":  input.Active,
	})

	return nil
}
