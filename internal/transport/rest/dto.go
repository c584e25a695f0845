package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

// Dates are rendered as YYYY-MM-DD, timestamps as RFC 3339.

type userResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone"`
	Role      string     `json:"role"`
	GroupID   *uuid.UUID `json:"groupId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toUser(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role.String(),
		GroupID:   u.GroupID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUsers(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUser(&users[i]))
	}
	return out
}

type groupResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	LeaderID  *uuid.UUID `json:"leaderId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toGroup(g *domain.Group) groupResponse {
	return groupResponse{
		ID:        g.ID,
		Name:      g.Name,
		LeaderID:  g.LeaderID,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func toGroups(groups []domain.Group) []groupResponse {
	out := make([]groupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, toGroup(&groups[i]))
	}
	return out
}

type eventResponse struct {
	ID          uuid.UUID  `json:"id"`
	GroupID     uuid.UUID  `json:"groupId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Date        time.Time  `json:"date"`
	CreatedBy   *uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toEvent(e *domain.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Date:        e.Date,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}

func toEvents(events []domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for i := range events {
		out = append(out, toEvent(&events[i]))
	}
	return out
}

type attendanceResponse struct {
	ID             uuid.UUID   `json:"id"`
	GroupID        uuid.UUID   `json:"groupId"`
	EventID        *uuid.UUID  `json:"eventId"`
	Date           string      `json:"date"`
	PresentMembers []uuid.UUID `json:"presentMembers"`
	PresentCount   int         `json:"presentCount"`
	AbsentCount    int         `json:"absentCount"`
	RecordedBy     *uuid.UUID  `json:"recordedBy"`
	UpdatedBy      *uuid.UUID  `json:"updatedBy"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func toAttendance(r *domain.AttendanceRecord) attendanceResponse {
	present := r.PresentMemberIDs
	if present == nil {
		present = []uuid.UUID{}
	}
	return attendanceResponse{
		ID:             r.ID,
		GroupID:        r.GroupID,
		EventID:        r.EventID,
		Date:           formatDate(r.Date),
		PresentMembers: present,
		PresentCount:   r.PresentCount,
		AbsentCount:    r.AbsentCount,
		RecordedBy:     r.RecordedBy,
		UpdatedBy:      r.UpdatedBy,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toAttendances(records []domain.AttendanceRecord) []attendanceResponse {
	out := make([]attendanceResponse, 0, len(records))
	for i := range records {
		out = append(out, toAttendance(&records[i]))
	}
	return out
}

type memberResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              *string   `json:"phone"`
	AttendanceCount    int       `json:"attendanceCount"`
	LastAttendanceDate *string   `json:"lastAttendanceDate"`
	Rating             string    `json:"rating"`
}

type distributionResponse struct {
	Excellent int `json:"Excellent"`
	Average   int `json:"Average"`
	Poor      int `json:"Poor"`
}

type trendPointResponse struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
}

type groupDashboardResponse struct {
	Group              groupResponse        `json:"group"`
	Events             []eventResponse      `json:"events"`
	Members            []memberResponse     `json:"members"`
	TotalMembers       int                  `json:"totalMembers"`
	AttendanceRecords  []attendanceResponse `json:"attendanceRecords"`
	RatingDistribution distributionResponse `json:"ratingDistribution"`
	Trend              []trendPointResponse `json:"trend"`
}

func toGroupDashboard(d *domain.GroupDashboard) groupDashboardResponse {
	members := make([]memberResponse, 0, len(d.Members))
	for _, m := range d.Members {
		var last *string
		if m.LastAttendanceDate != nil {
			s := formatDate(*m.LastAttendanceDate)
			last = &s
		}
		members = append(members, memberResponse{
			ID:                 m.ID,
			Name:               m.Name,
			Email:              m.Email,
			Phone:              m.Phone,
			AttendanceCount:    m.AttendanceCount,
			LastAttendanceDate: last,
			Rating:             m.Rating.String(),
		})
	}

	trend := make([]trendPointResponse, 0, len(d.Trend))
	for _, t := range d.Trend {
		trend = append(trend, trendPointResponse{Date: formatDate(t.Date), Present: t.Present})
	}

	return groupDashboardResponse{
		Group:             toGroup(&d.Group),
		Events:            toEvents(d.Events),
		Members:           members,
		TotalMembers:      d.MatchedMembers,
		AttendanceRecords: toAttendances(d.AttendanceRecords),
		RatingDistribution: distributionResponse{
			Excellent: d.RatingDistribution.Excellent,
			Average:   d.RatingDistribution.Average,
			Poor:      d.RatingDistribution.Poor,
		},
		Trend: trend,
	}
}

type overviewStatsResponse struct {
	TotalLeaders    int `json:"totalLeaders"`
	TotalGroups     int `json:"totalGroups"`
	TotalMembers    int `json:"totalMembers"`
	TotalAttendance int `json:"totalAttendance"`
}

type groupBreakdownResponse struct {
	GroupID         uuid.UUID `json:"groupId"`
	GroupName       string    `json:"groupName"`
	LeaderName      string    `json:"leaderName"`
	LeaderEmail     string    `json:"leaderEmail"`
	MemberCount     int       `json:"memberCount"`
	EventCount      int       `json:"eventCount"`
	AttendanceCount int       `json:"attendanceCount"`
}

type dateRangeResponse struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

type overviewResponse struct {
	Stats          overviewStatsResponse    `json:"stats"`
	GroupBreakdown []groupBreakdownResponse `json:"groupBreakdown"`
	DateRange      dateRangeResponse        `json:"dateRange"`
}

func toOverview(d *domain.OverviewDashboard) overviewResponse {
	groups := make([]groupBreakdownResponse, 0, len(d.Groups))
	for _, g := range d.Groups {
		groups = append(groups, groupBreakdownResponse(g))
	}
	return overviewResponse{
		Stats:          overviewStatsResponse(d.Stats),
		GroupBreakdown: groups,
		DateRange: dateRangeResponse{
			From: optDate(d.From),
			To:   optDate(d.To),
		},
	}
}

type authResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      userResponse `json:"user"`
}

func formatDate(t time.Time) string {
	return t.UTC().Format(domain.DateLayout)
}

func optDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}
