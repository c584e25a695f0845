package dashboard

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

// Enhance joins each roster member with its summary and rating, in roster order.
func Enhance(roster []domain.User, summaries map[uuid.UUID]domain.MemberAttendanceSummary) []domain.EnhancedMember {
	out := make([]domain.EnhancedMember, 0, len(roster))
	for _, m := range roster {
		s := summaries[m.ID]
		out = append(out, domain.EnhancedMember{
			ID:                 m.ID,
			Name:               m.Name,
			Email:              m.Email,
			Phone:              m.Phone,
			AttendanceCount:    s.Count,
			LastAttendanceDate: s.LastDate,
			Rating:             domain.RatingFor(s.Count),
		})
	}
	return out
}

// Distribution counts members per rating.
func Distribution(members []domain.EnhancedMember) domain.RatingDistribution {
	var d domain.RatingDistribution
	for _, m := range members {
		d.Add(m.Rating)
	}
	return d
}

// MemberView narrows, orders and pages an enhanced roster.
// The zero value keeps every member in roster order.
type MemberView struct {
	Search   string
	Rating   *domain.Rating
	Sort     domain.MemberSortKey
	Order    domain.SortOrder
	Page     int // 1-based; ignored when PageSize is 0
	PageSize int
}

// Apply returns the page of members matching v and the number of matches
// before paging. members is not modified.
func (v MemberView) Apply(members []domain.EnhancedMember) ([]domain.EnhancedMember, int) {
	out := v.filterSort(members)
	return v.page(out), len(out)
}

func (v MemberView) page(members []domain.EnhancedMember) []domain.EnhancedMember {
	if v.PageSize <= 0 {
		return members
	}
	page := max(v.Page, 1)
	start := min((page-1)*v.PageSize, len(members))
	end := min(start+v.PageSize, len(members))
	return members[start:end]
}

func (v MemberView) filterSort(members []domain.EnhancedMember) []domain.EnhancedMember {
	needle := strings.ToLower(strings.TrimSpace(v.Search))

	out := make([]domain.EnhancedMember, 0, len(members))
	for _, m := range members {
		if v.Rating != nil && m.Rating != *v.Rating {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(m.Name), needle) &&
			!strings.Contains(strings.ToLower(m.Email), needle) {
			continue
		}
		out = append(out, m)
	}

	if v.Sort == "" {
		return out
	}

	order := v.Order
	if order == "" {
		order = defaultOrder(v.Sort)
	}

	slices.SortStableFunc(out, func(a, b domain.EnhancedMember) int {
		c := compareBy(v.Sort, a, b)
		if order == domain.SortDesc {
			c = -c
		}
		return c
	})
	return out
}

func defaultOrder(key domain.MemberSortKey) domain.SortOrder {
	switch key {
	case domain.MemberSortAttendanceCount, domain.MemberSortLastAttendanceDate:
		return domain.SortDesc
	}
	return domain.SortAsc
}

func compareBy(key domain.MemberSortKey, a, b domain.EnhancedMember) int {
	switch key {
	case domain.MemberSortAttendanceCount:
		return cmp.Compare(a.AttendanceCount, b.AttendanceCount)
	case domain.MemberSortLastAttendanceDate:
		// never-attended sorts before any date
		switch {
		case a.LastAttendanceDate == nil && b.LastAttendanceDate == nil:
			return 0
		case a.LastAttendanceDate == nil:
			return -1
		case b.LastAttendanceDate == nil:
			return 1
		}
		return a.LastAttendanceDate.Compare(*b.LastAttendanceDate)
	case domain.MemberSortRating:
		// ascending puts Excellent first
		return cmp.Compare(a.Rating.Rank(), b.Rating.Rank())
	default:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
}

// Trend sums present counts per day, oldest day first.
func Trend(records []domain.AttendanceRecord) []domain.TrendPoint {
	byDay := make(map[time.Time]int)
	for _, rec := range records {
		byDay[domain.TruncateToDay(rec.Date)] += len(rec.PresentMemberIDs)
	}

	points := make([]domain.TrendPoint, 0, len(byDay))
	for d, n := range byDay {
		points = append(points, domain.TrendPoint{Date: d, Present: n})
	}
	slices.SortFunc(points, func(a, b domain.TrendPoint) int { return a.Date.Compare(b.Date) })
	return points
}
