// Package dashboard builds the leader and bishop attendance dashboards.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/dataloader"
	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

type groupRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	GetByLeader(ctx context.Context, leaderID uuid.UUID) (*domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
	Count(ctx context.Context) (int, error)
}

type userRepo interface {
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	CountByRole(ctx context.Context, role domain.UserRole) (int, error)
	CountMembersByGroup(ctx context.Context) (map[uuid.UUID]int, error)
}

type eventRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	CountByGroup(ctx context.Context) (map[uuid.UUID]int, error)
}

type attendanceRepo interface {
	Find(ctx context.Context, filter domain.AttendanceFilter) ([]domain.AttendanceRecord, error)
	CountByGroup(ctx context.Context) (map[uuid.UUID]int, error)
	SumPresent(ctx context.Context, from, to *time.Time) (int, error)
}

// Service assembles dashboards from roster, event and attendance reads.
type Service struct {
	groups     groupRepo
	users      userRepo
	events     eventRepo
	attendance attendanceRepo
	log        *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(
	log *slog.Logger,
	groups groupRepo,
	users userRepo,
	events eventRepo,
	attendance attendanceRepo,
) *Service {
	return &Service{
		groups:     groups,
		users:      users,
		events:     events,
		attendance: attendance,
		log:        log.With("service", "dashboard"),
	}
}

// loaders returns the request's loaders, or a fresh set outside HTTP.
func (s *Service) loaders(ctx context.Context) *dataloader.Loaders {
	if l, ok := dataloader.FromContext(ctx); ok {
		return l
	}
	return dataloader.NewLoaders(&dataloader.Repos{User: s.users})
}
