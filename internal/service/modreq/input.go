package modreq

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

// ProposedInput carries the proposed entry fields as raw strings. A nil
// field means "keep the entry's current value".
type ProposedInput struct {
	ClefImputation   *string
	Libelle          *string
	Fonction         *string
	DateBesoin       *string
	HeuresTheoriques *string
	HeuresPassees    *string
	Commentaires     *string
}

func (p ProposedInput) toData() (domain.EntryData, error) {
	data := domain.EntryData{
		ClefImputation:   p.ClefImputation,
		Libelle:          p.Libelle,
		Fonction:         p.Fonction,
		HeuresTheoriques: p.HeuresTheoriques,
		HeuresPassees:    p.HeuresPassees,
		Commentaires:     p.Commentaires,
	}
	if p.DateBesoin != nil && *p.DateBesoin != "" {
		d, err := domain.ParseDate("date_besoin", *p.DateBesoin)
		if err != nil {
			return domain.EntryData{}, err
		}
		data.DateBesoin = &d
	}
	return data, nil
}

// ProposeInput holds the parameters for opening a modification request.
type ProposeInput struct {
	EntryID  uuid.UUID
	Proposed ProposedInput
	Comment  *string
}

// Validate checks all fields and collects all errors.
func (i ProposeInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}

	data, err := i.Proposed.toData()
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			errs = append(errs, vErr.Errors...)
		}
	} else if data.IsZero() {
		errs = append(errs, domain.FieldError{Field: "proposed", Message: "at least one field is required"})
	}

	if i.Comment != nil && len(*i.Comment) > 2000 {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReviewInput holds the parameters for deciding a request.
type ReviewInput struct {
	RequestID     uuid.UUID
	Decision      domain.RequestStatus
	ReviewComment *string
}

// Validate checks all fields and collects all errors.
func (i ReviewInput) Validate() error {
	var errs []domain.FieldError
	if i.RequestID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if !i.Decision.IsDecision() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be approved or rejected"})
	}
	if i.ReviewComment != nil && strings.TrimSpace(*i.ReviewComment) == "" {
		errs = append(errs, domain.FieldError{Field: "review_comment", Message: "cannot be blank"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the optional filters for request listings.
type ListInput struct {
	Status *domain.RequestStatus
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.Status != nil && !i.Status.IsValid() {
		return domain.NewValidationError("status", "unknown status")
	}
	return nil
}
