package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/event"
)

type eventService interface {
	Create(ctx context.Context, p domain.Principal, input event.CreateInput) (*domain.Event, error)
	List(ctx context.Context, p domain.Principal, input event.ListInput) ([]domain.Event, error)
}

// EventHandler serves group events.
type EventHandler struct {
	svc eventService
	log *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc eventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: logger.With("handler", "event")}
}

type createEventRequest struct {
	GroupID     string  `json:"groupId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Date        string  `json:"date"`
}

// Create handles POST /api/events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var ps params
	input := event.CreateInput{
		GroupID:     ps.optUUID("groupId", req.GroupID),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        ps.date("date", req.Date),
	}
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ev, err := h.svc.Create(r.Context(), principal(r), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEvent(ev))
}

// List handles GET /api/events?groupId=&from=&to=.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var ps params
	input := event.ListInput{GroupID: ps.optUUID("groupId", q.Get("groupId"))}
	input.From, input.To = ps.dateRange(q)
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	events, err := h.svc.List(r.Context(), principal(r), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": toEvents(events)})
}
