package rest

import "net/http"

// NewRouter mounts every handler on a ServeMux. Health probes live at the
// root so load balancers can reach them without the API prefix; everything
// else is versioned under /api/v1.
func NewRouter(
	health *HealthHandler,
	auth *AuthHandler,
	entries *EntryHandler,
	requests *RequestHandler,
	catalogs *CatalogHandler,
	users *UserHandler,
	audit *AuditHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", health.Live)
	mux.HandleFunc("GET /readyz", health.Ready)
	mux.HandleFunc("GET /api/v1/health", health.Health)

	mux.HandleFunc("POST /api/v1/auth/login", auth.LoginWithPassword)
	mux.HandleFunc("GET /api/v1/auth/me", auth.Me)

	mux.HandleFunc("POST /api/v1/entries", entries.Create)
	mux.HandleFunc("GET /api/v1/entries", entries.List)
	mux.HandleFunc("GET /api/v1/entries/all", entries.ListAll)
	mux.HandleFunc("GET /api/v1/entries/{id}", entries.Get)
	mux.HandleFunc("PATCH /api/v1/entries/{id}", entries.Update)
	mux.HandleFunc("DELETE /api/v1/entries/{id}", entries.Delete)
	mux.HandleFunc("POST /api/v1/entries/{id}/submit", entries.Submit)
	mux.HandleFunc("POST /api/v1/entries/{id}/status", entries.SetStatus)

	mux.HandleFunc("POST /api/v1/requests", requests.Propose)
	mux.HandleFunc("GET /api/v1/requests", requests.List)
	mux.HandleFunc("POST /api/v1/requests/{id}/review", requests.Review)

	mux.HandleFunc("GET /api/v1/teams/{responsibleId}/entries", entries.ListTeam)
	mux.HandleFunc("GET /api/v1/teams/{responsibleId}/requests", requests.ListTeam)
	mux.HandleFunc("GET /api/v1/teams/{responsibleId}/members", users.Team)

	mux.HandleFunc("POST /api/v1/users", users.Create)
	mux.HandleFunc("GET /api/v1/users", users.List)
	mux.HandleFunc("GET /api/v1/users/{id}", users.Get)
	mux.HandleFunc("PATCH /api/v1/users/{id}", users.Update)
	mux.HandleFunc("DELETE /api/v1/users/{id}", users.Delete)
	mux.HandleFunc("POST /api/v1/users/{id}/restore", users.Restore)

	mux.HandleFunc("GET /api/v1/catalogs", catalogs.List)
	mux.HandleFunc("POST /api/v1/catalogs", catalogs.Create)
	mux.HandleFunc("POST /api/v1/catalogs/merge", catalogs.MergeItems)
	mux.HandleFunc("GET /api/v1/catalogs/active", catalogs.Active)
	mux.HandleFunc("PUT /api/v1/catalogs/active", catalogs.SetActive)
	mux.HandleFunc("GET /api/v1/catalogs/active/options", catalogs.ActiveOptions)
	mux.HandleFunc("GET /api/v1/catalogs/{id}", catalogs.Get)
	mux.HandleFunc("DELETE /api/v1/catalogs/{id}", catalogs.Delete)
	mux.HandleFunc("GET /api/v1/catalogs/{id}/options", catalogs.Options)
	mux.HandleFunc("POST /api/v1/catalogs/{id}/items", catalogs.AddItem)
	mux.HandleFunc("PATCH /api/v1/catalogs/items/{itemId}", catalogs.SetItemActive)

	mux.HandleFunc("GET /api/v1/audit/{entityType}/{entityId}", audit.ListForEntity)

	return mux
}
