package group

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/access"
)

// Create adds a group, optionally with a leader (bishop only).
func (s *Service) Create(ctx context.Context, p domain.Principal, input CreateInput) (*domain.Group, error) {
	if err := requireBishop(p); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Group
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.groups.Create(ctx, &domain.Group{Name: strings.TrimSpace(input.Name)})
		if err != nil {
			return fmt.Errorf("create group: %w", err)
		}
		if input.LeaderID != nil {
			created, err = s.assign(ctx, created, input.LeaderID)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("group.Create: %w", err)
	}

	s.log.InfoContext(ctx, "group created",
		slog.String("by", p.UserID.String()),
		slog.String("group_id", created.ID.String()),
	)
	return created, nil
}

// AssignLeader makes leaderID the leader of group id, or leaves the group
// without a leader when leaderID is nil (bishop only). The leader's account
// is moved to the group and a replaced leader is detached from it.
func (s *Service) AssignLeader(ctx context.Context, p domain.Principal, id uuid.UUID, leaderID *uuid.UUID) (*domain.Group, error) {
	if err := requireBishop(p); err != nil {
		return nil, err
	}

	var updated *domain.Group
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.groups.LockByID(ctx, id); err != nil {
			return fmt.Errorf("lock group: %w", err)
		}
		current, err := s.groups.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get group: %w", err)
		}
		updated, err = s.assign(ctx, current, leaderID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("group.AssignLeader: %w", err)
	}

	s.log.InfoContext(ctx, "group leader assigned",
		slog.String("by", p.UserID.String()),
		slog.String("group_id", id.String()),
		slog.Bool("unassigned", leaderID == nil),
	)
	return updated, nil
}

// assign runs inside a transaction.
func (s *Service) assign(ctx context.Context, g *domain.Group, leaderID *uuid.UUID) (*domain.Group, error) {
	if leaderID != nil {
		leader, err := s.users.GetByID(ctx, *leaderID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("leader_id", "unknown user")
			}
			return nil, fmt.Errorf("get leader: %w", err)
		}
		if leader.Role != domain.UserRoleLeader {
			return nil, domain.NewValidationError("leader_id", "user is not a leader")
		}

		led, err := s.groups.GetByLeader(ctx, *leaderID)
		switch {
		case err == nil && led.ID != g.ID:
			return nil, fmt.Errorf("leader already leads group %s: %w", led.ID, domain.ErrConflict)
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("get group by leader: %w", err)
		}
	}

	if g.LeaderID != nil && (leaderID == nil || *g.LeaderID != *leaderID) {
		detach := uuid.Nil
		if _, err := s.users.Update(ctx, *g.LeaderID, domain.UserUpdateParams{GroupID: &detach}); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("detach previous leader: %w", err)
		}
	}

	updated, err := s.groups.SetLeader(ctx, g.ID, leaderID)
	if err != nil {
		return nil, fmt.Errorf("set leader: %w", err)
	}

	if leaderID != nil {
		if _, err := s.users.Update(ctx, *leaderID, domain.UserUpdateParams{GroupID: &updated.ID}); err != nil {
			return nil, fmt.Errorf("attach leader: %w", err)
		}
	}
	return updated, nil
}

// List returns all groups (bishop only).
func (s *Service) List(ctx context.Context, p domain.Principal) ([]domain.Group, error) {
	if err := requireBishop(p); err != nil {
		return nil, err
	}

	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("group.List: %w", err)
	}
	return groups, nil
}

// Get returns a group: any group for a bishop, the own group for a leader.
func (s *Service) Get(ctx context.Context, p domain.Principal, id *uuid.UUID) (*domain.Group, error) {
	return access.ReadableGroup(ctx, s.groups, p, id)
}

func requireBishop(p domain.Principal) error {
	if p.IsZero() {
		return domain.ErrUnauthorized
	}
	if p.Role != domain.UserRoleBishop {
		return domain.ErrForbidden
	}
	return nil
}
