package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/access"
)

// Group returns the dashboard of the group p may read.
//
// Roster, events and attendance are read concurrently; any failure aborts
// the whole request and no partial dashboard is returned.
func (s *Service) Group(ctx context.Context, p domain.Principal, input GroupInput) (*domain.GroupDashboard, error) {
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

	from, to := dayRange(input.From, input.To)

	var (
		roster  []domain.User
		events  []domain.Event
		records []domain.AttendanceRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.users.ListMembers(gctx, group.ID)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		events, err = s.events.List(gctx, domain.EventFilter{
			GroupID: group.ID,
			EventID: input.EventID,
			From:    from,
			To:      to,
		})
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.attendance.Find(gctx, domain.AttendanceFilter{
			GroupID: &group.ID,
			EventID: input.EventID,
			From:    from,
			To:      to,
		})
		if err != nil {
			return fmt.Errorf("find attendance: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	enhanced := Enhance(roster, Aggregate(roster, records))
	members, matched := input.View.Apply(enhanced)

	s.log.DebugContext(ctx, "group dashboard built",
		slog.String("user_id", p.UserID.String()),
		slog.String("group_id", group.ID.String()),
		slog.Int("members", len(roster)),
		slog.Int("records", len(records)),
	)

	return &domain.GroupDashboard{
		Group:              *group,
		Events:             events,
		Members:            members,
		MatchedMembers:     matched,
		AttendanceRecords:  records,
		RatingDistribution: Distribution(enhanced),
		Trend:              Trend(records),
	}, nil
}
