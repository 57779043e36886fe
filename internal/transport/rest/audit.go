package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

// auditService defines the minimal interface needed by AuditHandler.
type auditService interface {
	ListForEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// AuditHandler serves the audit trail REST endpoints.
type AuditHandler struct {
	svc auditService
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

type auditRecordResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	EntityType string         `json:"entityType"`
	EntityID   *string        `json:"entityId,omitempty"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// ListForEntity handles GET /audit/{entityType}/{entityId}.
func (h *AuditHandler) ListForEntity(w http.ResponseWriter, r *http.Request) {
	entityID, ok := pathUUID(w, r, "entityId")
	if !ok {
		return
	}
	entityType := domain.EntityType(r.PathValue("entityType"))

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	records, err := h.svc.ListForEntity(r.Context(), entityType, entityID, limit)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	out := make([]auditRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, toAuditRecordResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func toAuditRecordResponse(rec *domain.AuditRecord) auditRecordResponse {
	resp := auditRecordResponse{
		ID:         rec.ID.String(),
		UserID:     rec.UserID.String(),
		EntityType: rec.EntityType.String(),
		Action:     rec.Action.String(),
		Changes:    rec.Changes,
		CreatedAt:  rec.CreatedAt,
	}
	if rec.EntityID != nil {
		s := rec.EntityID.String()
		resp.EntityID = &s
	}
	return resp
}
