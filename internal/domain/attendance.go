package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is the present-set of one group on one calendar day.
// At most one record exists per (GroupID, Date).
type AttendanceRecord struct {
	ID               uuid.UUID
	GroupID          uuid.UUID
	EventID          *uuid.UUID
	Date             time.Time
	PresentMemberIDs []uuid.UUID
	PresentCount     int
	AbsentCount      int
	RecordedBy       *uuid.UUID
	UpdatedBy        *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AttendanceFilter restricts an attendance query. A nil GroupID matches all
// groups and is only used by bishop-wide statistics.
type AttendanceFilter struct {
	GroupID *uuid.UUID
	EventID *uuid.UUID
	From    *time.Time
	To      *time.Time
}

// AttendanceCounts derives present/absent counts for a present-set saved
// against a roster of rosterSize members.
func AttendanceCounts(presentIDs []uuid.UUID, rosterSize int) (present, absent int) {
	present = len(presentIDs)
	absent = rosterSize - present
	if absent < 0 {
		absent = 0
	}
	return present, absent
}
