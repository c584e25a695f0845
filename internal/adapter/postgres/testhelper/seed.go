package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with the given role and optional group.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole, groupID *uuid.UUID) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     string(role) + "-" + suffix + "@example.com",
		Name:      "Test " + string(role) + " " + suffix,
		Role:      role,
		GroupID:   groupID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role, group_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, string(user.Role), user.GroupID, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedGroup inserts a group led by a freshly seeded leader.
// Returns the group and its leader.
func SeedGroup(t *testing.T, pool *pgxpool.Pool) (domain.Group, domain.User) {
	t.Helper()

	leader := SeedUser(t, pool, domain.UserRoleLeader, nil)
	now := time.Now().UTC().Truncate(time.Microsecond)
	group := domain.Group{
		ID:        uuid.New(),
		Name:      "Group " + uniqueSuffix(),
		LeaderID:  &leader.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx := context.Background()
	_, err := pool.Exec(ctx,
		`INSERT INTO groups (id, name, leader_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		group.ID, group.Name, group.LeaderID, group.CreatedAt, group.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup: %v", err)
	}

	if _, err := pool.Exec(ctx, `UPDATE users SET group_id = $1 WHERE id = $2`, group.ID, leader.ID); err != nil {
		t.Fatalf("testhelper: SeedGroup link leader: %v", err)
	}
	leader.GroupID = &group.ID

	return group, leader
}

// SeedMember inserts a member of groupID.
func SeedMember(t *testing.T, pool *pgxpool.Pool, groupID uuid.UUID) domain.User {
	t.Helper()
	return SeedUser(t, pool, domain.UserRoleMember, &groupID)
}

// SeedEvent inserts an event of groupID on date.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, groupID uuid.UUID, date time.Time) domain.Event {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	ev := domain.Event{
		ID:        uuid.New(),
		GroupID:   groupID,
		Title:     "Event " + uniqueSuffix(),
		Date:      date.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO events (id, group_id, title, date, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		ev.ID, ev.GroupID, ev.Title, ev.Date, ev.CreatedAt, ev.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent: %v", err)
	}

	return ev
}

// SeedAttendance inserts an attendance record for groupID on date.
func SeedAttendance(t *testing.T, pool *pgxpool.Pool, groupID uuid.UUID, date time.Time, present []uuid.UUID) domain.AttendanceRecord {
	t.Helper()

	if present == nil {
		present = []uuid.UUID{}
	}
	rec := domain.AttendanceRecord{
		ID:               uuid.New(),
		GroupID:          groupID,
		Date:             domain.TruncateToDay(date),
		PresentMemberIDs: present,
		PresentCount:     len(present),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO attendance_records (id, group_id, date, present_member_ids, present_count, absent_count)
		 VALUES ($1, $2, $3, $4, $5, 0)`,
		rec.ID, rec.GroupID, rec.Date, rec.PresentMemberIDs, rec.PresentCount,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAttendance: %v", err)
	}

	return rec
}
