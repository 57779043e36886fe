package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

// ListActiveItems returns the distinct per-field value sets of a catalog's
// active items, each set sorted for autocomplete.
//
// The three fields are independent dimensions: an active item contributes
// each of its non-empty values to the matching set. Activation is per row;
// an inactive item contributes nothing.
func (s *Service) ListActiveItems(ctx context.Context, catalogID uuid.UUID) (*domain.CatalogOptions, error) {
	if catalogID == uuid.Nil {
		return nil, domain.NewValidationError("catalog_id", "required")
	}

	c, err := s.catalogs.GetByID(ctx, catalogID)
	if err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}

	return buildOptions(c.Items), nil
}

// ActiveOptions is ListActiveItems for the currently active catalog.
// A dangling or unset pointer degrades to empty option sets.
func (s *Service) ActiveOptions(ctx context.Context) (*domain.CatalogOptions, error) {
	name, err := s.ActiveName(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.catalogs.GetByName(ctx, name)
	if err != nil {
		// fallback name may not exist as a catalog yet
		return &domain.CatalogOptions{}, nil
	}

	return buildOptions(c.Items), nil
}

func buildOptions(items []domain.CatalogItem) *domain.CatalogOptions {
	opts := &domain.CatalogOptions{}
	seenClef := map[string]bool{}
	seenLibelle := map[string]bool{}
	seenFonction := map[string]bool{}

	for _, item := range items {
		if !item.IsActive {
			continue
		}
		if item.ClefImputation != "" && !seenClef[item.ClefImputation] {
			seenClef[item.ClefImputation] = true
			opts.ClefImputation = append(opts.ClefImputation, item.ClefImputation)
		}
		if item.Libelle != "" && !seenLibelle[item.Libelle] {
			seenLibelle[item.Libelle] = true
			opts.Libelle = append(opts.Libelle, item.Libelle)
		}
		if item.Fonction != "" && !seenFonction[item.Fonction] {
			seenFonction[item.Fonction] = true
			opts.Fonction = append(opts.Fonction, item.Fonction)
		}
	}

	sort.Strings(opts.ClefImputation)
	sort.Strings(opts.Libelle)
	sort.Strings(opts.Fonction)

	return opts
}
