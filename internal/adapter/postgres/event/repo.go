// Package event implements the Event repository using PostgreSQL.
package event

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/shepherd-backend/internal/adapter/postgres"
	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

const eventColumns = "id, group_id, title, description, location, date, created_by, created_at, updated_at"

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns an event by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ev, err := scanEvent(q.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "event", id)
	}
	return &ev, nil
}

// List returns the events of a group matching filter, newest first.
// From and To are inclusive.
func (r *Repo) List(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	b := postgres.Builder().
		Select(eventColumns).
		From("events").
		Where(squirrel.Eq{"group_id": filter.GroupID}).
		OrderBy("date DESC", "id")

	if filter.EventID != nil {
		b = b.Where(squirrel.Eq{"id": *filter.EventID})
	}
	if filter.From != nil {
		b = b.Where(squirrel.GtOrEq{"date": *filter.From})
	}
	if filter.To != nil {
		b = b.Where(squirrel.LtOrEq{"date": *filter.To})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query events of group %s: %w", filter.GroupID, err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// Create inserts a new event.
func (r *Repo) Create(ctx context.Context, ev *domain.Event) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := ev.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanEvent(q.QueryRow(ctx,
		`INSERT INTO events (id, group_id, title, description, location, date, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+eventColumns,
		id, ev.GroupID, ev.Title, ev.Description, ev.Location, ev.Date, ev.CreatedBy,
	))
	if err != nil {
		return nil, postgres.MapError(err, "event", id)
	}
	return &created, nil
}

// CountByGroup returns the event count of every group that has events.
func (r *Repo) CountByGroup(ctx context.Context) (map[uuid.UUID]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT group_id, count(*) FROM events GROUP BY group_id`)
	if err != nil {
		return nil, fmt.Errorf("count events by group: %w", err)
	}
	return postgres.CollectCounts(rows)
}

func scanEvent(row pgx.Row) (domain.Event, error) {
	var ev domain.Event
	err := row.Scan(
		&ev.ID, &ev.GroupID, &ev.Title, &ev.Description, &ev.Location,
		&ev.Date, &ev.CreatedBy, &ev.CreatedAt, &ev.UpdatedAt,
	)
	return ev, err
}
