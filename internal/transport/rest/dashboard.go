package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/dashboard"
)

type dashboardService interface {
	Group(ctx context.Context, p domain.Principal, input dashboard.GroupInput) (*domain.GroupDashboard, error)
	Overview(ctx context.Context, p domain.Principal, input dashboard.OverviewInput) (*domain.OverviewDashboard, error)
}

// DashboardHandler serves the leader and bishop dashboards.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// Group handles GET /api/dashboard.
// Query: groupId, eventId, fromDate, toDate, search, rating, sort, order, page, pageSize.
func (h *DashboardHandler) Group(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var ps params
	input := dashboard.GroupInput{
		GroupID: ps.optUUID("groupId", q.Get("groupId")),
		EventID: ps.optUUID("eventId", q.Get("eventId")),
		View: dashboard.MemberView{
			Search:   q.Get("search"),
			Sort:     domain.MemberSortKey(q.Get("sort")),
			Order:    domain.SortOrder(q.Get("order")),
			Page:     ps.optInt("page", q.Get("page")),
			PageSize: ps.optInt("pageSize", q.Get("pageSize")),
		},
	}
	input.From, input.To = ps.dateRange(q)
	if v := q.Get("rating"); v != "" {
		rating := domain.Rating(v)
		input.View.Rating = &rating
	}
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Group(r.Context(), principal(r), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupDashboard(result))
}

// Overview handles GET /api/bishop/dashboard.
// Query: from, to.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	var ps params
	from, to := ps.dateRange(r.URL.Query())
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Overview(r.Context(), principal(r), dashboard.OverviewInput{From: from, To: to})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOverview(result))
}
