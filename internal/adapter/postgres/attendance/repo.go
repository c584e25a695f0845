// Package attendance implements the attendance record repository using PostgreSQL.
package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/shepherd-backend/internal/adapter/postgres"
	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

const recordColumns = "id, group_id, event_id, date, present_member_ids, present_count, absent_count, recorded_by, updated_by, created_at, updated_at"

// Repo provides attendance persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new attendance repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Find returns the records matching filter, newest date first.
// A nil GroupID matches every group.
func (r *Repo) Find(ctx context.Context, filter domain.AttendanceFilter) ([]domain.AttendanceRecord, error) {
	b := applyFilter(postgres.Builder().Select(recordColumns).From("attendance_records"), filter).
		OrderBy("date DESC", "id")

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find attendance: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query attendance: %w", err)
	}
	defer rows.Close()

	records := make([]domain.AttendanceRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendance: %w", err)
	}
	return records, nil
}

// GetByDate returns the record of a group for one day.
func (r *Repo) GetByDate(ctx context.Context, groupID uuid.UUID, date time.Time) (*domain.AttendanceRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rec, err := scanRecord(q.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM attendance_records WHERE group_id = $1 AND date = $2`,
		groupID, domain.TruncateToDay(date),
	))
	if err != nil {
		return nil, postgres.MapError(err, "attendance of group", groupID)
	}
	return &rec, nil
}

// Upsert stores the present-set of (GroupID, Date), replacing any existing one.
// RecordedBy is kept from the first write; UpdatedBy always reflects the last.
// The returned flag is true when a new row was inserted.
func (r *Repo) Upsert(ctx context.Context, rec *domain.AttendanceRecord) (*domain.AttendanceRecord, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	present := rec.PresentMemberIDs
	if present == nil {
		present = []uuid.UUID{}
	}

	row := q.QueryRow(ctx,
		`INSERT INTO attendance_records
		     (id, group_id, event_id, date, present_member_ids, present_count, absent_count, recorded_by, updated_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (group_id, date) DO UPDATE SET
		     event_id           = EXCLUDED.event_id,
		     present_member_ids = EXCLUDED.present_member_ids,
		     present_count      = EXCLUDED.present_count,
		     absent_count       = EXCLUDED.absent_count,
		     updated_by         = EXCLUDED.updated_by,
		     updated_at         = now()
		 RETURNING `+recordColumns+`, (xmax = 0) AS inserted`,
		id, rec.GroupID, rec.EventID, domain.TruncateToDay(rec.Date), present,
		rec.PresentCount, rec.AbsentCount, rec.RecordedBy, rec.UpdatedBy,
	)

	var (
		saved    domain.AttendanceRecord
		inserted bool
	)
	err := row.Scan(
		&saved.ID, &saved.GroupID, &saved.EventID, &saved.Date, &saved.PresentMemberIDs,
		&saved.PresentCount, &saved.AbsentCount, &saved.RecordedBy, &saved.UpdatedBy,
		&saved.CreatedAt, &saved.UpdatedAt, &inserted,
	)
	if err != nil {
		return nil, false, postgres.MapError(err, "attendance of group", rec.GroupID)
	}
	saved.Date = saved.Date.UTC()
	return &saved, inserted, nil
}

// CountByGroup returns the record count of every group that has records.
func (r *Repo) CountByGroup(ctx context.Context) (map[uuid.UUID]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT group_id, count(*) FROM attendance_records GROUP BY group_id`)
	if err != nil {
		return nil, fmt.Errorf("count attendance by group: %w", err)
	}
	return postgres.CollectCounts(rows)
}

// SumPresent returns the total size of all present-sets dated within [from, to].
// Nil bounds are open.
func (r *Repo) SumPresent(ctx context.Context, from, to *time.Time) (int, error) {
	b := applyFilter(
		postgres.Builder().Select("COALESCE(sum(cardinality(present_member_ids)), 0)").From("attendance_records"),
		domain.AttendanceFilter{From: from, To: to},
	)

	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build sum present: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum present: %w", err)
	}
	return total, nil
}

func applyFilter(b squirrel.SelectBuilder, f domain.AttendanceFilter) squirrel.SelectBuilder {
	if f.GroupID != nil {
		b = b.Where(squirrel.Eq{"group_id": *f.GroupID})
	}
	if f.EventID != nil {
		b = b.Where(squirrel.Eq{"event_id": *f.EventID})
	}
	if f.From != nil {
		b = b.Where(squirrel.GtOrEq{"date": *f.From})
	}
	if f.To != nil {
		b = b.Where(squirrel.LtOrEq{"date": *f.To})
	}
	return b
}

func scanRecord(row pgx.Row) (domain.AttendanceRecord, error) {
	var rec domain.AttendanceRecord
	err := row.Scan(
		&rec.ID, &rec.GroupID, &rec.EventID, &rec.Date, &rec.PresentMemberIDs,
		&rec.PresentCount, &rec.AbsentCount, &rec.RecordedBy, &rec.UpdatedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	rec.Date = rec.Date.UTC()
	return rec, nil
}
