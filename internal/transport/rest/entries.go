package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/service/pointage"
)

// pointageService defines the minimal interface needed by EntryHandler.
type pointageService interface {
	Create(ctx context.Context, input pointage.CreateInput) (*domain.Entry, error)
	Get(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error)
	Update(ctx context.Context, input pointage.UpdateInput) (*domain.Entry, error)
	Submit(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error)
	SetStatus(ctx context.Context, input pointage.SetStatusInput) (*domain.Entry, error)
	SoftDelete(ctx context.Context, entryID uuid.UUID) error
	ListForOwner(ctx context.Context, input pointage.ListInput) ([]domain.Entry, error)
	ListForTeam(ctx context.Context, responsibleID uuid.UUID, input pointage.ListInput) ([]domain.Entry, error)
	ListAll(ctx context.Context, input pointage.ListInput) ([]domain.Entry, error)
}

// EntryHandler serves pointage entry REST endpoints.
type EntryHandler struct {
	svc pointageService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc pointageService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entries")}
}

type entryFieldsRequest struct {
	ClefImputation   *string `json:"clefImputation"`
	Libelle          *string `json:"libelle"`
	Fonction         *string `json:"fonction"`
	DateBesoin       *string `json:"dateBesoin"`
	HeuresTheoriques *string `json:"heuresTheoriques"`
	HeuresPassees    *string `json:"heuresPassees"`
	Commentaires     *string `json:"commentaires"`
}

func (r entryFieldsRequest) toInput() pointage.FieldsInput {
	return pointage.FieldsInput{
		ClefImputation:   r.ClefImputation,
		Libelle:          r.Libelle,
		Fonction:         r.Fonction,
		DateBesoin:       r.DateBesoin,
		HeuresTheoriques: r.HeuresTheoriques,
		HeuresPassees:    r.HeuresPassees,
		Commentaires:     r.Commentaires,
	}
}

type createEntryRequest struct {
	EntryDate string `json:"entryDate"`
	entryFieldsRequest
}

type setEntryStatusRequest struct {
	Status string `json:"status"`
}

type entryResponse struct {
	ID               string     `json:"id"`
	OwnerID          string     `json:"ownerId"`
	EntryDate        string     `json:"entryDate"`
	WeekKey          string     `json:"weekKey"`
	Status           string     `json:"status"`
	ClefImputation   *string    `json:"clefImputation,omitempty"`
	Libelle          *string    `json:"libelle,omitempty"`
	Fonction         *string    `json:"fonction,omitempty"`
	DateBesoin       *string    `json:"dateBesoin,omitempty"`
	HeuresTheoriques *string    `json:"heuresTheoriques,omitempty"`
	HeuresPassees    *string    `json:"heuresPassees,omitempty"`
	Commentaires     *string    `json:"commentaires,omitempty"`
	SubmittedAt      *time.Time `json:"submittedAt,omitempty"`
	ValidatedAt      *time.Time `json:"validatedAt,omitempty"`
}

// Create handles POST /entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.svc.Create(r.Context(), pointage.CreateInput{
		EntryDate: req.EntryDate,
		Fields:    req.toInput(),
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Get handles GET /entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Update handles PATCH /entries/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req entryFieldsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.svc.Update(r.Context(), pointage.UpdateInput{
		EntryID: id,
		Fields:  req.toInput(),
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.SoftDelete(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Submit handles POST /entries/{id}/submit.
func (h *EntryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.svc.Submit(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// SetStatus handles POST /entries/{id}/status.
func (h *EntryHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req setEntryStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.svc.SetStatus(r.Context(), pointage.SetStatusInput{
		EntryID: id,
		Status:  domain.EntryStatus(req.Status),
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// List handles GET /entries (the caller's own entries).
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	input, ok := entryListInput(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.ListForOwner(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// ListTeam handles GET /teams/{responsibleId}/entries.
func (h *EntryHandler) ListTeam(w http.ResponseWriter, r *http.Request) {
	responsibleID, ok := pathUUID(w, r, "responsibleId")
	if !ok {
		return
	}
	input, ok := entryListInput(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.ListForTeam(r.Context(), responsibleID, input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// ListAll handles GET /entries/all.
func (h *EntryHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	input, ok := entryListInput(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.ListAll(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

func entryListInput(w http.ResponseWriter, r *http.Request) (pointage.ListInput, bool) {
	q := r.URL.Query()
	var input pointage.ListInput

	if v := q.Get("week"); v != "" {
		input.WeekKey = &v
	}
	if v := q.Get("status"); v != "" {
		status := domain.EntryStatus(v)
		input.Status = &status
	}
	if v := q.Get("from"); v != "" {
		d, err := time.Parse(domain.DateLayout, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from date")
			return pointage.ListInput{}, false
		}
		input.DateFrom = &d
	}
	if v := q.Get("to"); v != "" {
		d, err := time.Parse(domain.DateLayout, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid to date")
			return pointage.ListInput{}, false
		}
		input.DateTo = &d
	}

	return input, true
}

func toEntryResponse(e *domain.Entry) entryResponse {
	resp := entryResponse{
		ID:               e.ID.String(),
		OwnerID:          e.OwnerID.String(),
		EntryDate:        e.EntryDate.Format(domain.DateLayout),
		WeekKey:          e.WeekKey,
		Status:           e.Status.String(),
		ClefImputation:   e.Data.ClefImputation,
		Libelle:          e.Data.Libelle,
		Fonction:         e.Data.Fonction,
		HeuresTheoriques: e.Data.HeuresTheoriques,
		HeuresPassees:    e.Data.HeuresPassees,
		Commentaires:     e.Data.Commentaires,
		SubmittedAt:      e.SubmittedAt,
		ValidatedAt:      e.ValidatedAt,
	}
	if e.Data.DateBesoin != nil {
		s := e.Data.DateBesoin.Format(domain.DateLayout)
		resp.DateBesoin = &s
	}
	return resp
}

func toEntryResponses(entries []domain.Entry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toEntryResponse(&entries[i]))
	}
	return out
}
