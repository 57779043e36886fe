package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// ActiveName returns the name of the currently active catalog.
//
// The pointer lives in system settings; when it is unset, or names a catalog
// that no longer exists, the configured fallback name is returned instead.
// A missing pointer is not an error.
func (s *Service) ActiveName(ctx context.Context) (string, error) {
	name, err := s.catalogs.GetSetting(ctx, domain.ActiveCatalogKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return s.fallbackName, nil
		}
		return "", fmt.Errorf("read active catalog pointer: %w", err)
	}

	if _, err := s.catalogs.GetByName(ctx, name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "active catalog pointer is dangling",
				slog.String("name", name),
			)
			return s.fallbackName, nil
		}
		return "", fmt.Errorf("check active catalog: %w", err)
	}

	return name, nil
}

// SetActiveName points the system at another catalog. Admin only.
// Returns false, without error, when no catalog with that name exists.
func (s *Service) SetActiveName(ctx context.Context, name string) (bool, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return false, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return false, domain.ErrForbidden
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return false, domain.NewValidationError("name", "required")
	}

	target, err := s.catalogs.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check catalog: %w", err)
	}

	if err := s.catalogs.SetSetting(ctx, domain.ActiveCatalogKey, name); err != nil {
		return false, fmt.Errorf("write active catalog pointer: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeCatalog, &target.ID, domain.AuditActionStatus, map[string]any{
		"active_catalog": name,
	})

	s.log.InfoContext(ctx, "active catalog changed",
		slog.String("name", name),
	)

	return true, nil
}
