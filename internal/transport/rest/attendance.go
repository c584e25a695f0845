package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/attendance"
)

type attendanceService interface {
	Submit(ctx context.Context, p domain.Principal, input attendance.SubmitInput) (*attendance.Result, error)
	Mark(ctx context.Context, p domain.Principal, input attendance.MarkInput) (*attendance.Result, error)
	List(ctx context.Context, p domain.Principal, input attendance.ListInput) ([]domain.AttendanceRecord, error)
}

// AttendanceHandler serves attendance recording and listing.
type AttendanceHandler struct {
	svc attendanceService
	log *slog.Logger
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(svc attendanceService, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, log: logger.With("handler", "attendance")}
}

type submitAttendanceRequest struct {
	Date       string   `json:"date"`
	GroupID    string   `json:"groupId"`
	EventID    string   `json:"eventId"`
	PresentIDs []string `json:"presentIds"`
}

type markAttendanceRequest struct {
	Date     string `json:"date"`
	GroupID  string `json:"groupId"`
	EventID  string `json:"eventId"`
	MemberID string `json:"memberId"`
	Present  bool   `json:"present"`
}

// Submit handles POST /api/attendance. Responds 201 when the day had no
// record yet and 200 when an existing record was replaced.
func (h *AttendanceHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitAttendanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var ps params
	input := attendance.SubmitInput{
		GroupID:    ps.optUUID("groupId", req.GroupID),
		EventID:    ps.optUUID("eventId", req.EventID),
		Date:       ps.date("date", req.Date),
		PresentIDs: make([]uuid.UUID, 0, len(req.PresentIDs)),
	}
	for _, raw := range req.PresentIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			ps.fail("presentIds", "invalid id "+raw)
			continue
		}
		input.PresentIDs = append(input.PresentIDs, id)
	}
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Submit(r.Context(), principal(r), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeResult(w, result)
}

// Mark handles POST /api/attendance/mark.
func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var req markAttendanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var ps params
	input := attendance.MarkInput{
		GroupID:  ps.optUUID("groupId", req.GroupID),
		EventID:  ps.optUUID("eventId", req.EventID),
		Date:     ps.date("date", req.Date),
		MemberID: ps.uuid("memberId", req.MemberID),
		Present:  req.Present,
	}
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Mark(r.Context(), principal(r), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeResult(w, result)
}

// List handles GET /api/attendance.
// Query: groupId, eventId, fromDate, toDate.
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var ps params
	input := attendance.ListInput{
		GroupID: ps.optUUID("groupId", q.Get("groupId")),
		EventID: ps.optUUID("eventId", q.Get("eventId")),
	}
	input.From, input.To = ps.dateRange(q)
	if err := ps.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.svc.List(r.Context(), principal(r), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": toAttendances(records)})
}

func writeResult(w http.ResponseWriter, result *attendance.Result) {
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toAttendance(result.Record))
}
