package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

// MergeResult reports the outcome of a bulk merge.
type MergeResult struct {
	Added   int
	Skipped int
}

// MergeItems appends incoming rows to a catalog. Admins and responsibles only.
//
// Rows with all three fields blank are discarded. With dedupe on, a row is
// skipped when any of its non-empty field values already exists, case
// sensitively, in the matching field-value set of the target catalog. The
// sets accumulate as the merge proceeds, so duplicates within the incoming
// batch are also skipped. A retried merge with dedupe on is therefore safe:
// already-added rows are skipped by value.
func (s *Service) MergeItems(ctx context.Context, input MergeItemsInput) (*MergeResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsReviewerCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	target, err := s.catalogs.GetByName(ctx, strings.TrimSpace(input.CatalogName))
	if err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}

	clefs := map[string]bool{}
	libelles := map[string]bool{}
	fonctions := map[string]bool{}
	for _, item := range target.Items {
		if item.ClefImputation != "" {
			clefs[item.ClefImputation] = true
		}
		if item.Libelle != "" {
			libelles[item.Libelle] = true
		}
		if item.Fonction != "" {
			fonctions[item.Fonction] = true
		}
	}

	result := &MergeResult{}
	var toAdd []domain.CatalogItem

	for _, raw := range input.Items {
		item := raw.toDomain()
		if item.IsEmpty() {
			continue
		}

		if input.Dedupe {
			dup := (item.ClefImputation != "" && clefs[item.ClefImputation]) ||
				(item.Libelle != "" && libelles[item.Libelle]) ||
				(item.Fonction != "" && fonctions[item.Fonction])
			if dup {
				result.Skipped++
				continue
			}
		}

		if item.ClefImputation != "" {
			clefs[item.ClefImputation] = true
		}
		if item.Libelle != "" {
			libelles[item.Libelle] = true
		}
		if item.Fonction != "" {
			fonctions[item.Fonction] = true
		}

		toAdd = append(toAdd, item)
		result.Added++
	}

	if _, err := s.catalogs.AddItems(ctx, target.ID, toAdd); err != nil {
		return nil, fmt.Errorf("append items: %w", err)
	}

	s.audit.Record(ctx, domain.EntityTypeCatalog, &target.ID, domain.AuditActionUpdate, map[string]any{
		"merged_added":   result.Added,
		"merged_skipped": result.Skipped,
	})

	s.log.InfoContext(ctx, "catalog merge completed",
		slog.String("catalog", target.Name),
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}
