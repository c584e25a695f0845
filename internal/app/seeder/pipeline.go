// Package seeder fills an empty database with a demo congregation: a bishop,
// led groups with members, weekly events and attendance history.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)
}

type groupRepo interface {
	Create(ctx context.Context, g *domain.Group) (*domain.Group, error)
}

type eventRepo interface {
	Create(ctx context.Context, ev *domain.Event) (*domain.Event, error)
}

type attendanceRepo interface {
	Upsert(ctx context.Context, rec *domain.AttendanceRecord) (*domain.AttendanceRecord, bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

// Repos holds the stores written by the pipeline.
type Repos struct {
	Users      userRepo
	Groups     groupRepo
	Events     eventRepo
	Attendance attendanceRepo
}

// allPhases defines the canonical execution order. Each phase builds on the
// rows created by the previous ones.
var allPhases = []string{"accounts", "groups", "members", "events", "attendance"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Duration time.Duration
}

// Pipeline seeds demo data inside a single transaction.
type Pipeline struct {
	log     *slog.Logger
	repos   Repos
	tx      txManager
	hasher  passwordHasher
	cfg     Config
	now     func() time.Time
	results map[string]PhaseResult

	// state shared between phases
	rng     *rand.Rand
	hash    string
	bishop  *domain.User
	leaders []*domain.User
	groups  []*domain.Group
	members map[uuid.UUID][]*domain.User
	events  map[uuid.UUID][]*domain.Event
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repos Repos, tx txManager, hasher passwordHasher, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log.With("component", "seeder"),
		repos:   repos,
		tx:      tx,
		hasher:  hasher,
		cfg:     cfg,
		now:     time.Now,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Plan returns the number of rows each phase would insert, attendance
// excluded since it is one record per event.
func (p *Pipeline) Plan() map[string]int {
	groups := p.cfg.Groups
	return map[string]int{
		"accounts":   1 + groups,
		"groups":     groups,
		"members":    groups * p.cfg.MembersPerGroup,
		"events":     groups * p.cfg.Weeks,
		"attendance": groups * p.cfg.Weeks,
	}
}

// Run executes all phases. Any failure rolls back everything; existing
// accounts with the demo emails make it fail with ErrAlreadyExists.
func (p *Pipeline) Run(ctx context.Context) error {
	if p.cfg.DryRun {
		for _, phase := range allPhases {
			p.log.Info("dry run", slog.String("phase", phase), slog.Int("rows", p.Plan()[phase]))
		}
		return nil
	}

	hash, err := p.hasher.Hash(p.cfg.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	p.hash = hash
	p.rng = rand.New(rand.NewPCG(p.cfg.RandSeed, p.cfg.RandSeed))
	p.leaders, p.groups = nil, nil
	p.members = make(map[uuid.UUID][]*domain.User)
	p.events = make(map[uuid.UUID][]*domain.Event)

	return p.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, phase := range allPhases {
			start := time.Now()
			p.log.Info("starting phase", slog.String("phase", phase))

			var (
				n   int
				err error
			)
			switch phase {
			case "accounts":
				n, err = p.runAccounts(ctx)
			case "groups":
				n, err = p.runGroups(ctx)
			case "members":
				n, err = p.runMembers(ctx)
			case "events":
				n, err = p.runEvents(ctx)
			case "attendance":
				n, err = p.runAttendance(ctx)
			}
			if err != nil {
				return fmt.Errorf("phase %s: %w", phase, err)
			}

			result := PhaseResult{Inserted: n, Duration: time.Since(start)}
			p.results[phase] = result
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Duration("duration", result.Duration),
			)
		}
		return nil
	})
}

func (p *Pipeline) email(local string) string {
	return local + "@" + p.cfg.EmailDomain
}

func (p *Pipeline) runAccounts(ctx context.Context) (int, error) {
	bishop, err := p.repos.Users.Create(ctx, &domain.User{
		Name:         "Demo Bishop",
		Email:        p.email("bishop"),
		Role:         domain.UserRoleBishop,
		PasswordHash: &p.hash,
	})
	if err != nil {
		return 0, fmt.Errorf("create bishop: %w", err)
	}
	p.bishop = bishop

	for i := range p.cfg.Groups {
		leader, err := p.repos.Users.Create(ctx, &domain.User{
			Name:         fmt.Sprintf("Leader %d", i+1),
			Email:        p.email(fmt.Sprintf("leader%d", i+1)),
			Role:         domain.UserRoleLeader,
			PasswordHash: &p.hash,
		})
		if err != nil {
			return 0, fmt.Errorf("create leader %d: %w", i+1, err)
		}
		p.leaders = append(p.leaders, leader)
	}
	return 1 + len(p.leaders), nil
}

func (p *Pipeline) runGroups(ctx context.Context) (int, error) {
	for i, leader := range p.leaders {
		g, err := p.repos.Groups.Create(ctx, &domain.Group{
			Name:     fmt.Sprintf("Group %d", i+1),
			LeaderID: &leader.ID,
		})
		if err != nil {
			return 0, fmt.Errorf("create group %d: %w", i+1, err)
		}
		if _, err := p.repos.Users.Update(ctx, leader.ID, domain.UserUpdateParams{GroupID: &g.ID}); err != nil {
			return 0, fmt.Errorf("attach leader %d: %w", i+1, err)
		}
		p.groups = append(p.groups, g)
	}
	return len(p.groups), nil
}

func (p *Pipeline) runMembers(ctx context.Context) (int, error) {
	n := 0
	for gi, g := range p.groups {
		for mi := range p.cfg.MembersPerGroup {
			m, err := p.repos.Users.Create(ctx, &domain.User{
				Name:    fmt.Sprintf("Member %d-%d", gi+1, mi+1),
				Email:   p.email(fmt.Sprintf("member%d-%d", gi+1, mi+1)),
				Role:    domain.UserRoleMember,
				GroupID: &g.ID,
			})
			if err != nil {
				return n, fmt.Errorf("create member %d of group %d: %w", mi+1, gi+1, err)
			}
			p.members[g.ID] = append(p.members[g.ID], m)
			n++
		}
	}
	return n, nil
}

// sundays returns the last n Sundays up to and including today, oldest first.
func (p *Pipeline) sundays() []time.Time {
	today := domain.TruncateToDay(p.now())
	last := today.AddDate(0, 0, -int(today.Weekday()))

	out := make([]time.Time, p.cfg.Weeks)
	for i := range out {
		out[len(out)-1-i] = last.AddDate(0, 0, -7*i)
	}
	return out
}

func (p *Pipeline) runEvents(ctx context.Context) (int, error) {
	location := "Chapel"
	n := 0
	for _, g := range p.groups {
		for _, d := range p.sundays() {
			ev, err := p.repos.Events.Create(ctx, &domain.Event{
				GroupID:   g.ID,
				Title:     "Sunday meeting",
				Location:  &location,
				Date:      d,
				CreatedBy: g.LeaderID,
			})
			if err != nil {
				return n, fmt.Errorf("create event: %w", err)
			}
			p.events[g.ID] = append(p.events[g.ID], ev)
			n++
		}
	}
	return n, nil
}

// runAttendance records one present-set per event. Each member gets a
// personal likelihood around the configured rate so that the demo roster
// spreads across all ratings.
func (p *Pipeline) runAttendance(ctx context.Context) (int, error) {
	n := 0
	for _, g := range p.groups {
		roster := p.members[g.ID]

		likelihood := make([]float64, len(roster))
		for i := range likelihood {
			likelihood[i] = min(1, p.cfg.AttendanceRate*(0.25+1.5*p.rng.Float64()))
		}

		for _, ev := range p.events[g.ID] {
			present := make([]uuid.UUID, 0, len(roster))
			for i, m := range roster {
				if p.rng.Float64() < likelihood[i] {
					present = append(present, m.ID)
				}
			}

			presentCount, absentCount := domain.AttendanceCounts(present, len(roster))
			if _, _, err := p.repos.Attendance.Upsert(ctx, &domain.AttendanceRecord{
				GroupID:          g.ID,
				EventID:          &ev.ID,
				Date:             ev.Date,
				PresentMemberIDs: present,
				PresentCount:     presentCount,
				AbsentCount:      absentCount,
				RecordedBy:       g.LeaderID,
				UpdatedBy:        g.LeaderID,
			}); err != nil {
				return n, fmt.Errorf("upsert attendance: %w", err)
			}
			n++
		}
	}
	return n, nil
}
