package domain

import (
	"time"

	"github.com/google/uuid"
)

// MemberAttendanceSummary is the per-member fold of attendance records.
// Built per request and never shared.
type MemberAttendanceSummary struct {
	Count    int
	LastDate *time.Time
}

// EnhancedMember is a roster member joined with its summary and rating.
type EnhancedMember struct {
	ID                 uuid.UUID
	Name               string
	Email              string
	Phone              *string
	AttendanceCount    int
	LastAttendanceDate *time.Time
	Rating             Rating
}

// RatingDistribution counts members per rating tier.
type RatingDistribution struct {
	Excellent int
	Average   int
	Poor      int
}

// Add increments the bucket of r.
func (d *RatingDistribution) Add(r Rating) {
	switch r {
	case RatingExcellent:
		d.Excellent++
	case RatingAverage:
		d.Average++
	default:
		d.Poor++
	}
}

// TrendPoint is the number of members present on one day.
type TrendPoint struct {
	Date    time.Time
	Present int
}

// GroupDashboard is the leader view of one group.
// RatingDistribution covers the whole roster; MatchedMembers counts the
// members left after search and rating filters, before paging.
type GroupDashboard struct {
	Group              Group
	Events             []Event
	Members            []EnhancedMember
	MatchedMembers     int
	AttendanceRecords  []AttendanceRecord
	RatingDistribution RatingDistribution
	Trend              []TrendPoint
}

// OverviewStats are global totals for the bishop.
type OverviewStats struct {
	TotalLeaders    int
	TotalGroups     int
	TotalMembers    int
	TotalAttendance int
}

// GroupBreakdown is one row of the bishop's per-group table.
type GroupBreakdown struct {
	GroupID         uuid.UUID
	GroupName       string
	LeaderName      string
	LeaderEmail     string
	MemberCount     int
	EventCount      int
	AttendanceCount int
}

// OverviewDashboard is the bishop view across all groups.
type OverviewDashboard struct {
	Stats  OverviewStats
	Groups []GroupBreakdown
	From   *time.Time
	To     *time.Time
}
