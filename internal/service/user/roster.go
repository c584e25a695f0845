package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/service/access"
)

// AddMember creates a member in the leader's own group.
func (s *Service) AddMember(ctx context.Context, p domain.Principal, input AddMemberInput) (*domain.User, error) {
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

	create := CreateInput{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Role:    domain.UserRoleMember,
		GroupID: &group.ID,
	}
	create.normalize()

	created, err := s.users.Create(ctx, &domain.User{
		Name:    create.Name,
		Email:   create.Email,
		Phone:   create.Phone,
		Role:    domain.UserRoleMember,
		GroupID: &group.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("user.AddMember: %w", err)
	}

	s.log.InfoContext(ctx, "member added",
		slog.String("user_id", p.UserID.String()),
		slog.String("group_id", group.ID.String()),
		slog.String("member_id", created.ID.String()),
	)

	return created, nil
}

// ListMembers returns the roster of the group p may read, ordered by name.
// search narrows the roster to names or emails containing it.
func (s *Service) ListMembers(ctx context.Context, p domain.Principal, groupID *uuid.UUID, search string) ([]domain.User, error) {
	group, err := access.ReadableGroup(ctx, s.groups, p, groupID)
	if err != nil {
		return nil, err
	}

	members, err := s.users.ListMembers(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("user.ListMembers: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return members, nil
	}

	out := members[:0]
	for _, m := range members {
		if strings.Contains(strings.ToLower(m.Name), needle) || strings.Contains(strings.ToLower(m.Email), needle) {
			out = append(out, m)
		}
	}
	return out, nil
}
