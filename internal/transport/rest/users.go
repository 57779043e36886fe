package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/service/identity"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	CreateUser(ctx context.Context, input identity.CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateUser(ctx context.Context, input identity.UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	RestoreUser(ctx context.Context, userID uuid.UUID) error
	ListUsers(ctx context.Context, input identity.ListUsersInput) ([]domain.User, error)
	Team(ctx context.Context, input identity.TeamInput) ([]domain.User, error)
}

// UserHandler serves user management REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

type createUserRequest struct {
	Name        string  `json:"name"`
	Email       *string `json:"email"`
	Role        string  `json:"role"`
	TeamOwnerID *string `json:"teamOwnerId"`
	Password    *string `json:"password"`
}

type updateUserRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Role        *string `json:"role"`
	TeamOwnerID *string `json:"teamOwnerId"`
	ClearTeam   bool    `json:"clearTeam"`
	Status      *string `json:"status"`
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	teamOwnerID, ok := optionalUUID(w, req.TeamOwnerID, "teamOwnerId")
	if !ok {
		return
	}

	created, err := h.svc.CreateUser(r.Context(), identity.CreateUserInput{
		Name:        req.Name,
		Email:       req.Email,
		Role:        domain.UserRole(req.Role),
		TeamOwnerID: teamOwnerID,
		Password:    req.Password,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(created))
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Update handles PATCH /users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	teamOwnerID, ok := optionalUUID(w, req.TeamOwnerID, "teamOwnerId")
	if !ok {
		return
	}

	input := identity.UpdateUserInput{
		UserID:      id,
		Name:        req.Name,
		Email:       req.Email,
		TeamOwnerID: teamOwnerID,
		ClearTeam:   req.ClearTeam,
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		input.Role = &role
	}
	if req.Status != nil {
		status := domain.UserStatus(*req.Status)
		input.Status = &status
	}

	updated, err := h.svc.UpdateUser(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(updated))
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /users/{id}/restore.
func (h *UserHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.RestoreUser(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	var input identity.ListUsersInput
	q := r.URL.Query()
	if v := q.Get("role"); v != "" {
		role := domain.UserRole(v)
		input.Role = &role
	}
	if v := q.Get("status"); v != "" {
		status := domain.UserStatus(v)
		input.Status = &status
	}
	if v := q.Get("teamOwnerId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid teamOwnerId")
			return
		}
		input.TeamOwnerID = &id
	}

	users, err := h.svc.ListUsers(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponses(users))
}

// Team handles GET /teams/{responsibleId}/members.
func (h *UserHandler) Team(w http.ResponseWriter, r *http.Request) {
	responsibleID, ok := pathUUID(w, r, "responsibleId")
	if !ok {
		return
	}

	users, err := h.svc.Team(r.Context(), identity.TeamInput{ResponsibleID: responsibleID})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponses(users))
}

// optionalUUID parses a nullable UUID string from a request body. The
// second return is false when the value was present but malformed, in
// which case a 400 has already been written.
func optionalUUID(w http.ResponseWriter, s *string, field string) (*uuid.UUID, bool) {
	if s == nil {
		return nil, true
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+field)
		return nil, false
	}
	return &id, true
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}
