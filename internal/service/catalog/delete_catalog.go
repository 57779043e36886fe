package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// DeleteCatalog soft-deletes a catalog. Admin only. A catalog cannot be
// deleted while the active-catalog pointer references it.
func (s *Service) DeleteCatalog(ctx context.Context, catalogID uuid.UUID) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if catalogID == uuid.Nil {
		return domain.NewValidationError("catalog_id", "required")
	}

	target, err := s.catalogs.GetByID(ctx, catalogID)
	if err != nil {
		return fmt.Errorf("get catalog: %w", err)
	}

	activeName, err := s.catalogs.GetSetting(ctx, domain.ActiveCatalogKey)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("read active catalog pointer: %w", err)
	}
	if err == nil && activeName == target.Name {
		return fmt.Errorf("catalog %q is active: %w", target.Name, domain.ErrConflict)
	}

	if err := s.catalogs.SoftDelete(ctx, catalogID, callerID.String()); err != nil {
		return fmt.Errorf("delete catalog: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeCatalog, &catalogID, domain.AuditActionDelete, map[string]any{
		"name": target.Name,
	})

	s.log.InfoContext(ctx, "catalog deleted",
		slog.String("catalog_id", catalogID.String()),
		slog.String("name", target.Name),
	)

	return nil
}
