package pointage

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

// FieldsInput carries the mutable entry fields as raw strings. A nil field
// means "not supplied"; dates must parse as YYYY-MM-DD.
type FieldsInput struct {
	ClefImputation   *string
	Libelle          *string
	Fonction         *string
	DateBesoin       *string
	HeuresTheoriques *string
	HeuresPassees    *string
	Commentaires     *string
}

// toData parses the raw fields into domain.EntryData.
func (f FieldsInput) toData() (domain.EntryData, error) {
	data := domain.EntryData{
		ClefImputation:   f.ClefImputation,
		Libelle:          f.Libelle,
		Fonction:         f.Fonction,
		HeuresTheoriques: f.HeuresTheoriques,
		HeuresPassees:    f.HeuresPassees,
		Commentaires:     f.Commentaires,
	}
	if f.DateBesoin != nil && *f.DateBesoin != "" {
		d, err := domain.ParseDate("date_besoin", *f.DateBesoin)
		if err != nil {
			return domain.EntryData{}, err
		}
		data.DateBesoin = &d
	}
	return data, nil
}

// CreateInput holds the parameters for creating an entry.
type CreateInput struct {
	EntryDate string
	Fields    FieldsInput
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryDate == "" {
		errs = append(errs, domain.FieldError{Field: "entry_date", Message: "required"})
	} else if _, err := domain.ParseDate("entry_date", i.EntryDate); err != nil {
		errs = append(errs, domain.FieldError{Field: "entry_date", Message: "must be YYYY-MM-DD"})
	}

	if err := validateFields(i.Fields); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			errs = append(errs, vErr.Errors...)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for a partial entry update.
// Fields left nil keep their previous values; entry_date is immutable.
type UpdateInput struct {
	EntryID uuid.UUID
	Fields  FieldsInput
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if err := validateFields(i.Fields); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			errs = append(errs, vErr.Errors...)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetStatusInput holds the parameters for a reviewer status override.
type SetStatusInput struct {
	EntryID uuid.UUID
	Status  domain.EntryStatus
}

// Validate checks all fields and collects all errors.
func (i SetStatusInput) Validate() error {
	var errs []domain.FieldError
	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the optional filters for entry listings.
type ListInput struct {
	WeekKey  *string
	Status   *domain.EntryStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.DateFrom != nil && i.DateTo != nil && i.DateTo.Before(*i.DateFrom) {
		errs = append(errs, domain.FieldError{Field: "date_to", Message: "before date_from"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateFields(f FieldsInput) error {
	var errs []domain.FieldError

	if f.DateBesoin != nil && *f.DateBesoin != "" {
		if _, err := domain.ParseDate("date_besoin", *f.DateBesoin); err != nil {
			errs = append(errs, domain.FieldError{Field: "date_besoin", Message: "must be YYYY-MM-DD"})
		}
	}
	if f.Commentaires != nil && len(*f.Commentaires) > 2000 {
		errs = append(errs, domain.FieldError{Field: "commentaires", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
