package dashboard

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

// Aggregate folds attendance records into a per-member summary.
//
// Every roster member gets an entry, zero-valued if never present. Each record
// counts once per member it lists; ids outside the roster are ignored. The
// result does not depend on record order.
func Aggregate(roster []domain.User, records []domain.AttendanceRecord) map[uuid.UUID]domain.MemberAttendanceSummary {
	summaries := make(map[uuid.UUID]domain.MemberAttendanceSummary, len(roster))
	for _, m := range roster {
		summaries[m.ID] = domain.MemberAttendanceSummary{}
	}

	seen := make(map[uuid.UUID]struct{})
	for i := range records {
		rec := &records[i]
		clear(seen)

		for _, id := range rec.PresentMemberIDs {
			s, ok := summaries[id]
			if !ok {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			s.Count++
			if s.LastDate == nil || rec.Date.After(*s.LastDate) {
				d := rec.Date
				s.LastDate = &d
			}
			summaries[id] = s
		}
	}

	return summaries
}

// Merge combines two partial aggregations over disjoint record sets.
// Counts add up; the later of the two last dates wins.
func Merge(a, b map[uuid.UUID]domain.MemberAttendanceSummary) map[uuid.UUID]domain.MemberAttendanceSummary {
	out := make(map[uuid.UUID]domain.MemberAttendanceSummary, len(a))
	for id, s := range a {
		out[id] = s
	}
	for id, s := range b {
		cur := out[id]
		cur.Count += s.Count
		if s.LastDate != nil && (cur.LastDate == nil || s.LastDate.After(*cur.LastDate)) {
			cur.LastDate = s.LastDate
		}
		out[id] = cur
	}
	return out
}
