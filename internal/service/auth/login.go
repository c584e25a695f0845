package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

// Login authenticates a bishop or leader with email + password.
// Unknown emails, wrong passwords, accounts without a password and members
// all yield ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if !user.Role.CanLogin() || user.PasswordHash == nil {
		s.log.WarnContext(ctx, "login refused",
			slog.String("user_id", user.ID.String()),
			slog.String("role", user.Role.String()))
		return nil, domain.ErrUnauthorized
	}
	if err := s.passwords.Compare(*user.PasswordHash, input.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(domain.Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))

	return &AuthResult{AccessToken: token, ExpiresAt: expiresAt, User: user}, nil
}

// Me returns the account behind p.
func (s *Service) Me(ctx context.Context, p domain.Principal) (*domain.User, error) {
	if p.IsZero() {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// account deleted after the token was issued
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
