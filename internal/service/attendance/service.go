// Package attendance records and lists the present-sets of group meetings.
package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

type groupRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	GetByLeader(ctx context.Context, leaderID uuid.UUID) (*domain.Group, error)
	LockByID(ctx context.Context, id uuid.UUID) error
}

type userRepo interface {
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.User, error)
}

type eventRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
}

type attendanceRepo interface {
	Find(ctx context.Context, filter domain.AttendanceFilter) ([]domain.AttendanceRecord, error)
	GetByDate(ctx context.Context, groupID uuid.UUID, date time.Time) (*domain.AttendanceRecord, error)
	Upsert(ctx context.Context, rec *domain.AttendanceRecord) (*domain.AttendanceRecord, bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements attendance business logic.
type Service struct {
	groups     groupRepo
	users      userRepo
	events     eventRepo
	attendance attendanceRepo
	tx         txManager
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new attendance service.
func NewService(
	log *slog.Logger,
	groups groupRepo,
	users userRepo,
	events eventRepo,
	attendance attendanceRepo,
	tx txManager,
) *Service {
	return &Service{
		groups:     groups,
		users:      users,
		events:     events,
		attendance: attendance,
		tx:         tx,
		log:        log.With("service", "attendance"),
		now:        time.Now,
	}
}

// Result is a saved record and whether the save created it.
type Result struct {
	Record  *domain.AttendanceRecord
	Created bool
}
