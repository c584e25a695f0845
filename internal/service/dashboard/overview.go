package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

const (
	unassignedLeaderName  = "Unassigned"
	unassignedLeaderEmail = "N/A"
)

// Overview returns global totals and a per-group breakdown. Bishop only.
//
// TotalAttendance sums present-set sizes of records within the optional
// range; the per-group counts are all-time.
func (s *Service) Overview(ctx context.Context, p domain.Principal, input OverviewInput) (*domain.OverviewDashboard, error) {
	if p.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if p.Role != domain.UserRoleBishop {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	from, to := dayRange(input.From, input.To)

	var (
		stats        domain.OverviewStats
		groups       []domain.Group
		memberCounts map[uuid.UUID]int
		eventCounts  map[uuid.UUID]int
		recordCounts map[uuid.UUID]int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalLeaders, err = s.users.CountByRole(gctx, domain.UserRoleLeader)
		return wrap("count leaders", err)
	})
	g.Go(func() (err error) {
		stats.TotalMembers, err = s.users.CountByRole(gctx, domain.UserRoleMember)
		return wrap("count members", err)
	})
	g.Go(func() (err error) {
		stats.TotalGroups, err = s.groups.Count(gctx)
		return wrap("count groups", err)
	})
	g.Go(func() (err error) {
		stats.TotalAttendance, err = s.attendance.SumPresent(gctx, from, to)
		return wrap("sum attendance", err)
	})
	g.Go(func() (err error) {
		groups, err = s.groups.List(gctx)
		return wrap("list groups", err)
	})
	g.Go(func() (err error) {
		memberCounts, err = s.users.CountMembersByGroup(gctx)
		return wrap("count members by group", err)
	})
	g.Go(func() (err error) {
		eventCounts, err = s.events.CountByGroup(gctx)
		return wrap("count events by group", err)
	})
	g.Go(func() (err error) {
		recordCounts, err = s.attendance.CountByGroup(gctx)
		return wrap("count attendance by group", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	breakdown, err := s.breakdown(ctx, groups, memberCounts, eventCounts, recordCounts)
	if err != nil {
		return nil, err
	}

	return &domain.OverviewDashboard{
		Stats:  stats,
		Groups: breakdown,
		From:   input.From,
		To:     input.To,
	}, nil
}

func (s *Service) breakdown(
	ctx context.Context,
	groups []domain.Group,
	members, events, records map[uuid.UUID]int,
) ([]domain.GroupBreakdown, error) {
	loader := s.loaders(ctx).UserByID

	// Issue every leader load before resolving any so they share a batch.
	thunks := make([]func() (*domain.User, error), len(groups))
	for i, grp := range groups {
		if grp.LeaderID != nil {
			thunks[i] = loader.Load(ctx, *grp.LeaderID)
		}
	}

	out := make([]domain.GroupBreakdown, 0, len(groups))
	for i, grp := range groups {
		row := domain.GroupBreakdown{
			GroupID:         grp.ID,
			GroupName:       grp.Name,
			LeaderName:      unassignedLeaderName,
			LeaderEmail:     unassignedLeaderEmail,
			MemberCount:     members[grp.ID],
			EventCount:      events[grp.ID],
			AttendanceCount: records[grp.ID],
		}

		if thunks[i] != nil {
			leader, err := thunks[i]()
			if err != nil {
				return nil, fmt.Errorf("load leader of group %s: %w", grp.ID, err)
			}
			if leader != nil {
				row.LeaderName = leader.Name
				row.LeaderEmail = leader.Email
			}
		}

		out = append(out, row)
	}
	return out, nil
}

func wrap(op string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
