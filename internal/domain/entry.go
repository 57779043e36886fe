package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryData holds the mutable fields of a pointage entry. The same shape is
// used for partial updates and for modification-request proposals: a nil
// field means "keep the current value".
type EntryData struct {
	ClefImputation   *string
	Libelle          *string
	Fonction         *string
	DateBesoin       *time.Time
	HeuresTheoriques *string
	HeuresPassees    *string
	Commentaires     *string
}

// Merge returns a copy of d with every non-nil field of patch applied.
func (d EntryData) Merge(patch EntryData) EntryData {
	if patch.ClefImputation != nil {
		d.ClefImputation = patch.ClefImputation
	}
	if patch.Libelle != nil {
		d.Libelle = patch.Libelle
	}
	if patch.Fonction != nil {
		d.Fonction = patch.Fonction
	}
	if patch.DateBesoin != nil {
		d.DateBesoin = patch.DateBesoin
	}
	if patch.HeuresTheoriques != nil {
		d.HeuresTheoriques = patch.HeuresTheoriques
	}
	if patch.HeuresPassees != nil {
		d.HeuresPassees = patch.HeuresPassees
	}
	if patch.Commentaires != nil {
		d.Commentaires = patch.Commentaires
	}
	return d
}

// IsZero reports whether no field is set.
func (d EntryData) IsZero() bool {
	return d.ClefImputation == nil && d.Libelle == nil && d.Fonction == nil &&
		d.DateBesoin == nil && d.HeuresTheoriques == nil &&
		d.HeuresPassees == nil && d.Commentaires == nil
}

// EntryFilter narrows entry listings. Nil or empty fields are ignored;
// soft-deleted entries are always excluded.
type EntryFilter struct {
	OwnerID  *uuid.UUID
	OwnerIDs []uuid.UUID
	WeekKey  *string
	Status   *EntryStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// Entry is one pointage (timesheet) record for one collaborator on one date.
//
// EntryDate is immutable after creation and WeekKey is derived from it
// exactly once, at creation. Once submitted, the entry is locked: only state
// transitions or an approved modification request may change its data.
type Entry struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	EntryDate   time.Time
	WeekKey     string
	Data        EntryData
	Status      EntryStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	SubmittedAt *time.Time
	ValidatedAt *time.Time
	ValidatedBy *string
	IsDeleted   bool
	IsArchived  bool
}
