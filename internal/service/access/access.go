// Package access resolves which group a caller may act on.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

// GroupFinder looks groups up by id or by leader.
type GroupFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	GetByLeader(ctx context.Context, leaderID uuid.UUID) (*domain.Group, error)
}

// ReadableGroup returns the group p may read.
//
// Leaders always get their own group; a requested id naming another group is
// ErrForbidden. Bishops must name the group. Members have no group access.
func ReadableGroup(ctx context.Context, groups GroupFinder, p domain.Principal, requested *uuid.UUID) (*domain.Group, error) {
	if p.IsZero() {
		return nil, domain.ErrUnauthorized
	}

	switch p.Role {
	case domain.UserRoleLeader:
		return OwnGroup(ctx, groups, p, requested)
	case domain.UserRoleBishop:
		if requested == nil {
			return nil, domain.NewValidationError("group_id", "required")
		}
		g, err := groups.GetByID(ctx, *requested)
		if err != nil {
			return nil, fmt.Errorf("get group: %w", err)
		}
		return g, nil
	default:
		return nil, domain.ErrForbidden
	}
}

// OwnGroup returns the group led by p, which must be a leader.
// A requested id different from the leader's group is ErrForbidden.
func OwnGroup(ctx context.Context, groups GroupFinder, p domain.Principal, requested *uuid.UUID) (*domain.Group, error) {
	if p.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if p.Role != domain.UserRoleLeader {
		return nil, domain.ErrForbidden
	}

	g, err := groups.GetByLeader(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("no group led by %s: %w", p.UserID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get group by leader: %w", err)
	}

	if requested != nil && *requested != g.ID {
		return nil, fmt.Errorf("group %s: %w", *requested, domain.ErrForbidden)
	}
	return g, nil
}

// GroupEvent checks that eventID names an event of groupID.
// An unknown event is ErrNotFound; an event of another group is ErrForbidden.
func GroupEvent(ctx context.Context, events EventGetter, groupID, eventID uuid.UUID) (*domain.Event, error) {
	ev, err := events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if ev.GroupID != groupID {
		return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrForbidden)
	}
	return ev, nil
}

// EventGetter looks events up by id.
type EventGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
}
