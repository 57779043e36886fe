package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/service/modreq"
)

// modreqService defines the minimal interface needed by RequestHandler.
type modreqService interface {
	Propose(ctx context.Context, input modreq.ProposeInput) (*domain.ModificationRequest, error)
	Review(ctx context.Context, input modreq.ReviewInput) (*domain.ModificationRequest, error)
	ListForRequester(ctx context.Context, input modreq.ListInput) ([]modreq.RequestView, error)
	ListForTeam(ctx context.Context, responsibleID uuid.UUID, input modreq.ListInput) ([]modreq.RequestView, error)
}

// RequestHandler serves modification request REST endpoints.
type RequestHandler struct {
	svc modreqService
	log *slog.Logger
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(svc modreqService, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{svc: svc, log: logger.With("handler", "requests")}
}

type proposeRequest struct {
	EntryID string `json:"entryId"`
	entryFieldsRequest
	Comment *string `json:"comment"`
}

type reviewRequest struct {
	Decision      string  `json:"decision"`
	ReviewComment *string `json:"reviewComment"`
}

type proposedFieldsResponse struct {
	ClefImputation   *string `json:"clefImputation,omitempty"`
	Libelle          *string `json:"libelle,omitempty"`
	Fonction         *string `json:"fonction,omitempty"`
	DateBesoin       *string `json:"dateBesoin,omitempty"`
	HeuresTheoriques *string `json:"heuresTheoriques,omitempty"`
	HeuresPassees    *string `json:"heuresPassees,omitempty"`
	Commentaires     *string `json:"commentaires,omitempty"`
}

type requestResponse struct {
	ID            string                  `json:"id"`
	EntryID       string                  `json:"entryId"`
	RequesterID   string                  `json:"requesterId"`
	Status        string                  `json:"status"`
	Proposed      proposedFieldsResponse  `json:"proposed"`
	Current       *proposedFieldsResponse `json:"current,omitempty"`
	Comment       *string                 `json:"comment,omitempty"`
	ReviewedBy    *string                 `json:"reviewedBy,omitempty"`
	ReviewComment *string                 `json:"reviewComment,omitempty"`
	ReviewedAt    *time.Time              `json:"reviewedAt,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
}

// Propose handles POST /requests.
func (h *RequestHandler) Propose(w http.ResponseWriter, r *http.Request) {
	var req proposeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entryID, err := uuid.Parse(req.EntryID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entryId")
		return
	}

	created, err := h.svc.Propose(r.Context(), modreq.ProposeInput{
		EntryID: entryID,
		Proposed: modreq.ProposedInput{
			ClefImputation:   req.ClefImputation,
			Libelle:          req.Libelle,
			Fonction:         req.Fonction,
			DateBesoin:       req.DateBesoin,
			HeuresTheoriques: req.HeuresTheoriques,
			HeuresPassees:    req.HeuresPassees,
			Commentaires:     req.Commentaires,
		},
		Comment: req.Comment,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRequestResponse(created, nil))
}

// Review handles POST /requests/{id}/review.
func (h *RequestHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	reviewed, err := h.svc.Review(r.Context(), modreq.ReviewInput{
		RequestID:     id,
		Decision:      domain.RequestStatus(req.Decision),
		ReviewComment: req.ReviewComment,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRequestResponse(reviewed, nil))
}

// List handles GET /requests (the caller's own requests).
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListForRequester(r.Context(), requestListInput(r))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRequestResponses(views))
}

// ListTeam handles GET /teams/{responsibleId}/requests.
func (h *RequestHandler) ListTeam(w http.ResponseWriter, r *http.Request) {
	responsibleID, ok := pathUUID(w, r, "responsibleId")
	if !ok {
		return
	}

	views, err := h.svc.ListForTeam(r.Context(), responsibleID, requestListInput(r))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRequestResponses(views))
}

func requestListInput(r *http.Request) modreq.ListInput {
	var input modreq.ListInput
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.RequestStatus(v)
		input.Status = &status
	}
	return input
}

func toProposedFields(d domain.EntryData) proposedFieldsResponse {
	resp := proposedFieldsResponse{
		ClefImputation:   d.ClefImputation,
		Libelle:          d.Libelle,
		Fonction:         d.Fonction,
		HeuresTheoriques: d.HeuresTheoriques,
		HeuresPassees:    d.HeuresPassees,
		Commentaires:     d.Commentaires,
	}
	if d.DateBesoin != nil {
		s := d.DateBesoin.Format(domain.DateLayout)
		resp.DateBesoin = &s
	}
	return resp
}

func toRequestResponse(req *domain.ModificationRequest, current *domain.EntryData) requestResponse {
	resp := requestResponse{
		ID:            req.ID.String(),
		EntryID:       req.EntryID.String(),
		RequesterID:   req.RequesterID.String(),
		Status:        req.Status.String(),
		Proposed:      toProposedFields(req.Proposed),
		Comment:       req.Comment,
		ReviewComment: req.ReviewComment,
		ReviewedAt:    req.ReviewedAt,
		CreatedAt:     req.CreatedAt,
	}
	if req.ReviewedBy != nil {
		s := req.ReviewedBy.String()
		resp.ReviewedBy = &s
	}
	if current != nil {
		c := toProposedFields(*current)
		resp.Current = &c
	}
	return resp
}

func toRequestResponses(views []modreq.RequestView) []requestResponse {
	out := make([]requestResponse, 0, len(views))
	for i := range views {
		out = append(out, toRequestResponse(&views[i].Request, &views[i].Current))
	}
	return out
}
