// Package group implements the Group repository using PostgreSQL.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/shepherd-backend/internal/adapter/postgres"
	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

const groupColumns = "id, name, leader_id, created_at, updated_at"

// Repo provides group persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new group repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a group by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	g, err := scanGroup(q.QueryRow(ctx, `SELECT `+groupColumns+` FROM groups WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "group", id)
	}
	return &g, nil
}

// GetByLeader returns the group led by leaderID.
func (r *Repo) GetByLeader(ctx context.Context, leaderID uuid.UUID) (*domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	g, err := scanGroup(q.QueryRow(ctx, `SELECT `+groupColumns+` FROM groups WHERE leader_id = $1`, leaderID))
	if err != nil {
		return nil, postgres.MapError(err, "group of leader", leaderID)
	}
	return &g, nil
}

// List returns all groups ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+groupColumns+` FROM groups ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}
	defer rows.Close()

	groups := make([]domain.Group, 0)
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate groups: %w", err)
	}
	return groups, nil
}

// Count returns the number of groups.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM groups`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count groups: %w", err)
	}
	return n, nil
}

// Create inserts a new group. A leader already heading another group yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, g *domain.Group) (*domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := g.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanGroup(q.QueryRow(ctx,
		`INSERT INTO groups (id, name, leader_id) VALUES ($1, $2, $3) RETURNING `+groupColumns,
		id, g.Name, g.LeaderID,
	))
	if err != nil {
		return nil, postgres.MapError(err, "group", id)
	}
	return &created, nil
}

// SetLeader assigns (or with nil, clears) the leader of a group.
func (r *Repo) SetLeader(ctx context.Context, id uuid.UUID, leaderID *uuid.UUID) (*domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	g, err := scanGroup(q.QueryRow(ctx,
		`UPDATE groups SET leader_id = $2, updated_at = now() WHERE id = $1 RETURNING `+groupColumns,
		id, leaderID,
	))
	if err != nil {
		return nil, postgres.MapError(err, "group", id)
	}
	return &g, nil
}

// LockByID takes a row lock on the group for the rest of the current transaction.
// Concurrent writers locking the same group serialize behind it.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var locked uuid.UUID
	if err := q.QueryRow(ctx, `SELECT id FROM groups WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
		return postgres.MapError(err, "group", id)
	}
	return nil
}

func scanGroup(row pgx.Row) (domain.Group, error) {
	var g domain.Group
	err := row.Scan(&g.ID, &g.Name, &g.LeaderID, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}
