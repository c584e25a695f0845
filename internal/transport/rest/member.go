package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/user"
)

type memberService interface {
	AddMember(ctx context.Context, p domain.Principal, input user.AddMemberInput) (*domain.User, error)
	ListMembers(ctx context.Context, p domain.Principal, groupID *uuid.UUID, search string) ([]domain.User, error)
}

// MemberHandler serves a leader's roster.
type MemberHandler struct {
	svc memberService
	log *slog.Logger
}

// NewMemberHandler creates a MemberHandler.
func NewMemberHandler(svc memberService, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{svc: svc, log: logger.With("handler", "member")}
}

type addMemberRequest struct {
	GroupID string  `json:"groupId"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
}

// Add handles POST /api/members.
func (h *MemberHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var ps params
	groupID := ps.optUUID("groupId", req.GroupID)
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	member, err := h.svc.AddMember(r.Context(), principal(r), user.AddMemberInput{
		GroupID: groupID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUser(member))
}

// List handles GET /api/members?groupId=&search=.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var ps params
	groupID := ps.optUUID("groupId", q.Get("groupId"))
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	members, err := h.svc.ListMembers(r.Context(), principal(r), groupID, q.Get("search"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"members": toUsers(members)})
}
