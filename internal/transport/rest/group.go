package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/group"
)

type groupService interface {
	Create(ctx context.Context, p domain.Principal, input group.CreateInput) (*domain.Group, error)
	AssignLeader(ctx context.Context, p domain.Principal, id uuid.UUID, leaderID *uuid.UUID) (*domain.Group, error)
	List(ctx context.Context, p domain.Principal) ([]domain.Group, error)
	Get(ctx context.Context, p domain.Principal, id *uuid.UUID) (*domain.Group, error)
}

// GroupHandler serves group management.
type GroupHandler struct {
	svc groupService
	log *slog.Logger
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(svc groupService, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{svc: svc, log: logger.With("handler", "group")}
}

type createGroupRequest struct {
	Name     string `json:"name"`
	LeaderID string `json:"leaderId"`
}

type assignLeaderRequest struct {
	LeaderID *string `json:"leaderId"`
}

// Create handles POST /api/groups.
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var ps params
	input := group.CreateInput{
		Name:     req.Name,
		LeaderID: ps.optUUID("leaderId", req.LeaderID),
	}
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	g, err := h.svc.Create(r.Context(), principal(r), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGroup(g))
}

// AssignLeader handles PUT /api/groups/{id}/leader. A null or empty leaderId
// leaves the group unassigned.
func (h *GroupHandler) AssignLeader(w http.ResponseWriter, r *http.Request) {
	var req assignLeaderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var ps params
	id := ps.uuid("id", r.PathValue("id"))
	var leaderID *uuid.UUID
	if req.LeaderID != nil {
		leaderID = ps.optUUID("leaderId", *req.LeaderID)
	}
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	g, err := h.svc.AssignLeader(r.Context(), principal(r), id, leaderID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroup(g))
}

// List handles GET /api/groups.
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.List(r.Context(), principal(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"groups": toGroups(groups)})
}

// Get handles GET /api/group: the caller's own group, or ?groupId= for a bishop.
func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	var ps params
	id := ps.optUUID("groupId", r.URL.Query().Get("groupId"))
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	g, err := h.svc.Get(r.Context(), principal(r), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroup(g))
}
