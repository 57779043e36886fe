package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

// CreateCatalogInput holds the parameters for creating a catalog.
type CreateCatalogInput struct {
	Name        string
	Description *string
	Items       []ItemInput
}

// Validate checks all fields and collects all errors.
func (i CreateCatalogInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ItemInput is one raw {clef, libelle, fonction} tuple.
type ItemInput struct {
	ClefImputation string
	Libelle        string
	Fonction       string
}

func (i ItemInput) toDomain() domain.CatalogItem {
	return domain.CatalogItem{
		ClefImputation: strings.TrimSpace(i.ClefImputation),
		Libelle:        strings.TrimSpace(i.Libelle),
		Fonction:       strings.TrimSpace(i.Fonction),
		IsActive:       true,
	}
}

// MergeItemsInput holds the parameters for a bulk merge into a catalog.
type MergeItemsInput struct {
	CatalogName string
	Items       []ItemInput
	Dedupe      bool
}

// Validate checks all fields and collects all errors.
func (i MergeItemsInput) Validate() error {
	if strings.TrimSpace(i.CatalogName) == "" {
		return domain.NewValidationError("catalog_name", "required")
	}
	return nil
}

// AddItemInput holds the parameters for appending a single item.
type AddItemInput struct {
	CatalogID uuid.UUID
	Item      ItemInput
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError
	if i.CatalogID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "catalog_id", Message: "required"})
	}
	if i.Item.toDomain().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "item", Message: "at least one field is required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetItemActiveInput holds the parameters for flipping an item's active flag.
type SetItemActiveInput struct {
	ItemID uuid.UUID
	Active bool
}

// Validate checks all fields and collects all errors.
func (i SetItemActiveInput) Validate() error {
	if i.ItemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}
	return nil
}
