package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/access"
)

// Submit replaces the present-set of the leader's group for one day.
//
// The group row is locked for the duration of the write, so concurrent
// submissions for the same group apply one after another and the last wins.
func (s *Service) Submit(ctx context.Context, p domain.Principal, input SubmitInput) (*Result, error) {
	if p.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	group, err := access.OwnGroup(ctx, s.groups, p, input.GroupID)
	if err != nil {
		return nil, err
	}

	date, err := s.pastDay(input.Date)
	if err != nil {
		return nil, err
	}

	if input.EventID != nil {
		if _, err := access.GroupEvent(ctx, s.events, group.ID, *input.EventID); err != nil {
			return nil, err
		}
	}

	present := dedupe(input.PresentIDs)

	var result Result
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.groups.LockByID(ctx, group.ID); err != nil {
			return fmt.Errorf("lock group: %w", err)
		}

		roster, err := s.users.ListMembers(ctx, group.ID)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}
		if err := checkRoster(roster, present); err != nil {
			return err
		}

		presentCount, absentCount := domain.AttendanceCounts(present, len(roster))
		saved, created, err := s.attendance.Upsert(ctx, &domain.AttendanceRecord{
			GroupID:          group.ID,
			EventID:          input.EventID,
			Date:             date,
			PresentMemberIDs: present,
			PresentCount:     presentCount,
			AbsentCount:      absentCount,
			RecordedBy:       &p.UserID,
			UpdatedBy:        &p.UserID,
		})
		if err != nil {
			return fmt.Errorf("upsert attendance: %w", err)
		}

		result = Result{Record: saved, Created: created}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "attendance submitted",
		slog.String("user_id", p.UserID.String()),
		slog.String("group_id", group.ID.String()),
		slog.String("date", date.Format(domain.DateLayout)),
		slog.Int("present", result.Record.PresentCount),
		slog.Bool("created", result.Created),
	)

	return &result, nil
}

// pastDay normalizes d to its UTC day and rejects days after today.
func (s *Service) pastDay(d time.Time) (time.Time, error) {
	day := domain.TruncateToDay(d)
	if day.After(domain.TruncateToDay(s.now())) {
		return time.Time{}, domain.NewValidationError("date", "must not be in the future")
	}
	return day, nil
}

// checkRoster reports every id in present that is not a roster member.
func checkRoster(roster []domain.User, present []uuid.UUID) error {
	members := make(map[uuid.UUID]struct{}, len(roster))
	for _, m := range roster {
		members[m.ID] = struct{}{}
	}

	var invalid []string
	for _, id := range present {
		if _, ok := members[id]; !ok {
			invalid = append(invalid, id.String())
		}
	}
	if len(invalid) > 0 {
		return domain.NewValidationError("present_ids", "not members of the group: "+strings.Join(invalid, ", "))
	}
	return nil
}

// dedupe drops repeated ids, keeping first occurrences in order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
