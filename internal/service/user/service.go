// Package user manages accounts: bishop administration of all users and
// leader administration of their group's roster.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, role *domain.UserRole) ([]domain.User, error)
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)
	SetPasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// groupRepo defines the group lookups needed by user service.
type groupRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	GetByLeader(ctx context.Context, leaderID uuid.UUID) (*domain.Group, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements account management.
type Service struct {
	log    *slog.Logger
	users  userRepo
	groups groupRepo
	hasher passwordHasher
	tx     txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	groups groupRepo,
	hasher passwordHasher,
	tx txManager,
) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		groups: groups,
		hasher: hasher,
		tx:     tx,
	}
}
