package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

func requireBishop(p domain.Principal) error {
	if p.IsZero() {
		return domain.ErrUnauthorized
	}
	if p.Role != domain.UserRoleBishop {
		return domain.ErrForbidden
	}
	return nil
}

// Create adds an account of any role (bishop only).
func (s *Service) Create(ctx context.Context, p domain.Principal, input CreateInput) (*domain.User, error) {
	if err := requireBishop(p); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.GroupID != nil {
		if err := s.checkGroup(ctx, *input.GroupID); err != nil {
			return nil, err
		}
	}

	u := &domain.User{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Role:    input.Role,
		GroupID: input.GroupID,
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("user.Create hash password: %w", err)
		}
		u.PasswordHash = &hash
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("by", p.UserID.String()),
		slog.String("user_id", created.ID.String()),
		slog.String("role", created.Role.String()),
	)

	return created, nil
}

// Update changes an account (bishop only). A bishop cannot change their own
// role.
func (s *Service) Update(ctx context.Context, p domain.Principal, id uuid.UUID, input UpdateInput) (*domain.User, error) {
	if err := requireBishop(p); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.empty() {
		return nil, domain.NewValidationError("body", "no fields to update")
	}
	if id == p.UserID && input.Role != nil && *input.Role != domain.UserRoleBishop {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}
	if input.GroupID != nil && *input.GroupID != uuid.Nil {
		if err := s.checkGroup(ctx, *input.GroupID); err != nil {
			return nil, err
		}
	}

	var hash string
	if input.Password != nil {
		h, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("user.Update hash password: %w", err)
		}
		hash = h
	}

	params := domain.UserUpdateParams{
		Name:    trimmed(input.Name),
		Email:   trimmed(input.Email),
		Phone:   trimmed(input.Phone),
		Role:    input.Role,
		GroupID: input.GroupID,
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if input.Password != nil {
			if err := s.users.SetPasswordHash(ctx, id, hash); err != nil {
				return fmt.Errorf("set password: %w", err)
			}
		}

		var err error
		if params == (domain.UserUpdateParams{}) {
			updated, err = s.users.GetByID(ctx, id)
		} else {
			updated, err = s.users.Update(ctx, id, params)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("user.Update: %w", err)
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("by", p.UserID.String()),
		slog.String("user_id", id.String()),
		slog.Bool("password_changed", input.Password != nil),
	)

	return updated, nil
}

// Delete removes an account (bishop only). Groups it led become unassigned.
func (s *Service) Delete(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	if err := requireBishop(p); err != nil {
		return err
	}
	if id == p.UserID {
		return domain.NewValidationError("id", "cannot delete yourself")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("user.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.String("by", p.UserID.String()),
		slog.String("user_id", id.String()),
	)
	return nil
}

// Get returns one account (bishop only).
func (s *Service) Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.User, error) {
	if err := requireBishop(p); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return u, nil
}

// List returns all accounts, optionally of one role (bishop only).
func (s *Service) List(ctx context.Context, p domain.Principal, role *domain.UserRole) ([]domain.User, error) {
	if err := requireBishop(p); err != nil {
		return nil, err
	}
	if role != nil && !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be bishop, leader or member")
	}

	users, err := s.users.List(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

func (s *Service) checkGroup(ctx context.Context, id uuid.UUID) error {
	if _, err := s.groups.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("group_id", "unknown group")
		}
		return fmt.Errorf("get group: %w", err)
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
