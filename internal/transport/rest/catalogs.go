package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/service/catalog"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	ListCatalogs(ctx context.Context) ([]domain.Catalog, error)
	GetCatalog(ctx context.Context, catalogID uuid.UUID) (*domain.Catalog, error)
	CreateCatalog(ctx context.Context, input catalog.CreateCatalogInput) (*domain.Catalog, error)
	DeleteCatalog(ctx context.Context, catalogID uuid.UUID) error
	MergeItems(ctx context.Context, input catalog.MergeItemsInput) (*catalog.MergeResult, error)
	AddItem(ctx context.Context, input catalog.AddItemInput) (*domain.CatalogItem, error)
	SetItemActive(ctx context.Context, input catalog.SetItemActiveInput) error
	ActiveName(ctx context.Context) (string, error)
	SetActiveName(ctx context.Context, name string) (bool, error)
	ActiveOptions(ctx context.Context) (*domain.CatalogOptions, error)
	ListActiveItems(ctx context.Context, catalogID uuid.UUID) (*domain.CatalogOptions, error)
}

// CatalogHandler serves reference catalog REST endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalogs")}
}

type catalogItemRequest struct {
	ClefImputation string `json:"clefImputation"`
	Libelle        string `json:"libelle"`
	Fonction       string `json:"fonction"`
}

type createCatalogRequest struct {
	Name        string               `json:"name"`
	Description *string              `json:"description"`
	Items       []catalogItemRequest `json:"items"`
}

type mergeItemsRequest struct {
	CatalogName string               `json:"catalogName"`
	Items       []catalogItemRequest `json:"items"`
	Dedupe      bool                 `json:"dedupe"`
}

type setItemActiveRequest struct {
	Active bool `json:"active"`
}

type setActiveCatalogRequest struct {
	Name string `json:"name"`
}

type catalogItemResponse struct {
	ID             string    `json:"id"`
	ClefImputation string    `json:"clefImputation"`
	Libelle        string    `json:"libelle"`
	Fonction       string    `json:"fonction"`
	IsActive       bool      `json:"isActive"`
	Position       int       `json:"position"`
	CreatedAt      time.Time `json:"createdAt"`
}

type catalogResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description *string               `json:"description,omitempty"`
	Items       []catalogItemResponse `json:"items"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

type mergeItemsResponse struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

type catalogOptionsResponse struct {
	ClefImputation []string `json:"clefImputation"`
	Libelle        []string `json:"libelle"`
	Fonction       []string `json:"fonction"`
}

type activeCatalogResponse struct {
	Name string `json:"name"`
}

// List handles GET /catalogs.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	catalogs, err := h.svc.ListCatalogs(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	out := make([]catalogResponse, 0, len(catalogs))
	for i := range catalogs {
		out = append(out, toCatalogResponse(&catalogs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /catalogs/{id}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	cat, err := h.svc.GetCatalog(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCatalogResponse(cat))
}

// Create handles POST /catalogs.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCatalogRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateCatalog(r.Context(), catalog.CreateCatalogInput{
		Name:        req.Name,
		Description: req.Description,
		Items:       toItemInputs(req.Items),
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCatalogResponse(created))
}

// Delete handles DELETE /catalogs/{id}.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCatalog(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MergeItems handles POST /catalogs/merge.
func (h *CatalogHandler) MergeItems(w http.ResponseWriter, r *http.Request) {
	var req mergeItemsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.MergeItems(r.Context(), catalog.MergeItemsInput{
		CatalogName: req.CatalogName,
		Items:       toItemInputs(req.Items),
		Dedupe:      req.Dedupe,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mergeItemsResponse{Added: result.Added, Skipped: result.Skipped})
}

// AddItem handles POST /catalogs/{id}/items.
func (h *CatalogHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req catalogItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.svc.AddItem(r.Context(), catalog.AddItemInput{
		CatalogID: id,
		Item: catalog.ItemInput{
			ClefImputation: req.ClefImputation,
			Libelle:        req.Libelle,
			Fonction:       req.Fonction,
		},
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCatalogItemResponse(item))
}

// SetItemActive handles PATCH /catalogs/items/{itemId}.
func (h *CatalogHandler) SetItemActive(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "itemId")
	if !ok {
		return
	}
	var req setItemActiveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.svc.SetItemActive(r.Context(), catalog.SetItemActiveInput{
		ItemID: itemID,
		Active: req.Active,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Active handles GET /catalogs/active.
func (h *CatalogHandler) Active(w http.ResponseWriter, r *http.Request) {
	name, err := h.svc.ActiveName(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activeCatalogResponse{Name: name})
}

// SetActive handles PUT /catalogs/active.
func (h *CatalogHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req setActiveCatalogRequest
	if !decodeBody(w, r, &req) {
		return
	}

	found, err := h.svc.SetActiveName(r.Context(), req.Name)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "catalog not found")
		return
	}

	writeJSON(w, http.StatusOK, activeCatalogResponse{Name: req.Name})
}

// ActiveOptions handles GET /catalogs/active/options.
func (h *CatalogHandler) ActiveOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.svc.ActiveOptions(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOptionsResponse(opts))
}

// Options handles GET /catalogs/{id}/options.
func (h *CatalogHandler) Options(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	opts, err := h.svc.ListActiveItems(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOptionsResponse(opts))
}

func toItemInputs(items []catalogItemRequest) []catalog.ItemInput {
	out := make([]catalog.ItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, catalog.ItemInput{
			ClefImputation: it.ClefImputation,
			Libelle:        it.Libelle,
			Fonction:       it.Fonction,
		})
	}
	return out
}

func toCatalogItemResponse(item *domain.CatalogItem) catalogItemResponse {
	return catalogItemResponse{
		ID:             item.ID.String(),
		ClefImputation: item.ClefImputation,
		Libelle:        item.Libelle,
		Fonction:       item.Fonction,
		IsActive:       item.IsActive,
		Position:       item.Position,
		CreatedAt:      item.CreatedAt,
	}
}

func toCatalogResponse(cat *domain.Catalog) catalogResponse {
	items := make([]catalogItemResponse, 0, len(cat.Items))
	for i := range cat.Items {
		items = append(items, toCatalogItemResponse(&cat.Items[i]))
	}
	return catalogResponse{
		ID:          cat.ID.String(),
		Name:        cat.Name,
		Description: cat.Description,
		Items:       items,
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}

func toOptionsResponse(opts *domain.CatalogOptions) catalogOptionsResponse {
	return catalogOptionsResponse{
		ClefImputation: opts.ClefImputation,
		Libelle:        opts.Libelle,
		Fonction:       opts.Fonction,
	}
}
