// Package group implements bishop management of groups and their leaders.
package group

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

type groupRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	GetByLeader(ctx context.Context, leaderID uuid.UUID) (*domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
	Create(ctx context.Context, g *domain.Group) (*domain.Group, error)
	SetLeader(ctx context.Context, id uuid.UUID, leaderID *uuid.UUID) (*domain.Group, error)
	LockByID(ctx context.Context, id uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements group operations.
type Service struct {
	log    *slog.Logger
	groups groupRepo
	users  userRepo
	tx     txManager
}

// NewService creates a new group service.
func NewService(logger *slog.Logger, groups groupRepo, users userRepo, tx txManager) *Service {
	return &Service{
		log:    logger.With("service", "group"),
		groups: groups,
		users:  users,
		tx:     tx,
	}
}
