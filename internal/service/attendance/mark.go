package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/access"
)

// Mark sets a single member present or absent on one day, leaving the rest
// of that day's present-set untouched. A missing record is created.
func (s *Service) Mark(ctx context.Context, p domain.Principal, input MarkInput) (*Result, error) {
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

	var result Result
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.groups.LockByID(ctx, group.ID); err != nil {
			return fmt.Errorf("lock group: %w", err)
		}

		roster, err := s.users.ListMembers(ctx, group.ID)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}
		if err := checkRoster(roster, []uuid.UUID{input.MemberID}); err != nil {
			return err
		}

		rec := &domain.AttendanceRecord{
			GroupID:    group.ID,
			EventID:    input.EventID,
			Date:       date,
			RecordedBy: &p.UserID,
		}
		existing, err := s.attendance.GetByDate(ctx, group.ID, date)
		switch {
		case err == nil:
			rec = existing
			if input.EventID != nil {
				rec.EventID = input.EventID
			}
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get attendance: %w", err)
		}

		rec.PresentMemberIDs = toggle(rec.PresentMemberIDs, input.MemberID, input.Present)
		rec.PresentCount, rec.AbsentCount = domain.AttendanceCounts(rec.PresentMemberIDs, len(roster))
		rec.UpdatedBy = &p.UserID

		saved, created, err := s.attendance.Upsert(ctx, rec)
		if err != nil {
			return fmt.Errorf("upsert attendance: %w", err)
		}

		result = Result{Record: saved, Created: created}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "attendance marked",
		slog.String("user_id", p.UserID.String()),
		slog.String("group_id", group.ID.String()),
		slog.String("member_id", input.MemberID.String()),
		slog.Bool("present", input.Present),
	)

	return &result, nil
}

func toggle(ids []uuid.UUID, id uuid.UUID, present bool) []uuid.UUID {
	ids = slices.DeleteFunc(slices.Clone(ids), func(x uuid.UUID) bool { return x == id })
	if present {
		ids = append(ids, id)
	}
	return ids
}
