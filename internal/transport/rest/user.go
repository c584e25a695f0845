package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/user"
)

type userService interface {
	Create(ctx context.Context, p domain.Principal, input user.CreateInput) (*domain.User, error)
	Update(ctx context.Context, p domain.Principal, id uuid.UUID, input user.UpdateInput) (*domain.User, error)
	Delete(ctx context.Context, p domain.Principal, id uuid.UUID) error
	Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, p domain.Principal, role *domain.UserRole) ([]domain.User, error)
}

// UserHandler serves bishop account management.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type createUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Role     string  `json:"role"`
	Password *string `json:"password"`
	GroupID  string  `json:"groupId"`
}

// updateUserRequest fields are optional. An empty groupId removes the user
// from their group.
type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
	GroupID  *string `json:"groupId"`
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var ps params
	input := user.CreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     domain.UserRole(req.Role),
		Password: req.Password,
		GroupID:  ps.optUUID("groupId", req.GroupID),
	}
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.svc.Create(r.Context(), principal(r), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUser(u))
}

// Update handles PATCH /api/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var ps params
	id := ps.uuid("id", r.PathValue("id"))
	input := user.UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		input.Role = &role
	}
	if req.GroupID != nil {
		groupID := uuid.Nil
		if *req.GroupID != "" {
			groupID = ps.uuid("groupId", *req.GroupID)
		}
		input.GroupID = &groupID
	}
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.svc.Update(r.Context(), principal(r), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// Delete handles DELETE /api/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var ps params
	id := ps.uuid("id", r.PathValue("id"))
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), principal(r), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	var ps params
	id := ps.uuid("id", r.PathValue("id"))
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.svc.Get(r.Context(), principal(r), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// List handles GET /api/users?role=.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	var role *domain.UserRole
	if v := r.URL.Query().Get("role"); v != "" {
		rl := domain.UserRole(v)
		role = &rl
	}

	users, err := h.svc.List(r.Context(), principal(r), role)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": toUsers(users)})
}
