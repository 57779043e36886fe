package domain

import (
	"time"

	"github.com/google/uuid"
)

// FallbackCatalogName is used when the active-catalog pointer is unset or
// names a catalog that no longer exists.
const FallbackCatalogName = "Default LC"

// ActiveCatalogKey is the system_settings key holding the name of the
// currently active catalog.
const ActiveCatalogKey = "_SYSTEM_ACTIVE_LC"

// Catalog is a named reference list (LC, "liste conditionnelle") whose items
// supply the selectable values for pointage entry fields.
type Catalog struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Items       []CatalogItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string
	UpdatedBy   string
	IsDeleted   bool
	IsArchived  bool
}

// CatalogItem is one reference row. The active flag applies to the whole row.
type CatalogItem struct {
	ID             uuid.UUID
	CatalogID      uuid.UUID
	ClefImputation string
	Libelle        string
	Fonction       string
	IsActive       bool
	Position       int
	CreatedAt      time.Time
}

// IsEmpty reports whether all three reference fields are blank. Such rows are
// discarded by the bulk import.
func (i CatalogItem) IsEmpty() bool {
	return i.ClefImputation == "" && i.Libelle == "" && i.Fonction == ""
}

// CatalogOptions holds the distinct per-field value sets of a catalog's
// active items, used to build autocomplete option lists. The three fields are
// independent dimensions: an item contributes each of its non-empty values to
// the matching set.
type CatalogOptions struct {
	ClefImputation []string
	Libelle        []string
	Fonction       []string
}
