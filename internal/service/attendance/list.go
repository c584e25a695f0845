package attendance

import (
	"context"
	"fmt"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/access"
)

// List returns the records of the group p may read, newest first.
func (s *Service) List(ctx context.Context, p domain.Principal, input ListInput) ([]domain.AttendanceRecord, error) {
	if p.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	group, err := access.ReadableGroup(ctx, s.groups, p, input.GroupID)
	if err != nil {
		return nil, err
	}

	if input.EventID != nil {
		if _, err := access.GroupEvent(ctx, s.events, group.ID, *input.EventID); err != nil {
			return nil, err
		}
	}

	filter := domain.AttendanceFilter{GroupID: &group.ID, EventID: input.EventID}
	if input.From != nil {
		from := domain.TruncateToDay(*input.From)
		filter.From = &from
	}
	if input.To != nil {
		to := domain.EndOfDay(*input.To)
		filter.To = &to
	}

	records, err := s.attendance.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	return records, nil
}
