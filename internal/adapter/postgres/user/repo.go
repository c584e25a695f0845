// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/shepherd-backend/internal/adapter/postgres"
	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

const userColumns = "id, email, name, phone, role, group_id, password_hash, created_at, updated_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := r.q(ctx).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email address. Emails are stored lower-cased.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	row := r.q(ctx).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return &u, nil
}

// GetByIDs returns the users with the given ids in no particular order.
// Missing ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	rows, err := r.q(ctx).Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("query users by ids: %w", err)
	}
	return collectUsers(rows)
}

// ListMembers returns the roster of a group: users with role member, ordered by name.
func (r *Repo) ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.User, error) {
	rows, err := r.q(ctx).Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE group_id = $1 AND role = 'member' ORDER BY name, id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("query members of group %s: %w", groupID, err)
	}
	return collectUsers(rows)
}

// List returns users ordered by name, optionally restricted to one role.
func (r *Repo) List(ctx context.Context, role *domain.UserRole) ([]domain.User, error) {
	b := postgres.Builder().
		Select(userColumns).
		From("users").
		OrderBy("name", "id")
	if role != nil {
		b = b.Where(squirrel.Eq{"role": role.String()})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	return collectUsers(rows)
}

// CountByRole returns the number of users holding role.
func (r *Repo) CountByRole(ctx context.Context, role domain.UserRole) (int, error) {
	var n int
	err := r.q(ctx).QueryRow(ctx, `SELECT count(*) FROM users WHERE role = $1`, role.String()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users by role %s: %w", role, err)
	}
	return n, nil
}

// CountMembersByGroup returns the member count of every group that has members.
func (r *Repo) CountMembersByGroup(ctx context.Context) (map[uuid.UUID]int, error) {
	rows, err := r.q(ctx).Query(ctx,
		`SELECT group_id, count(*) FROM users WHERE role = 'member' AND group_id IS NOT NULL GROUP BY group_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("count members by group: %w", err)
	}
	return postgres.CollectCounts(rows)
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
// A nil ID is replaced by a fresh one.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := r.q(ctx).QueryRow(ctx,
		`INSERT INTO users (id, email, name, phone, role, group_id, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+userColumns,
		id, strings.ToLower(strings.TrimSpace(u.Email)), u.Name, u.Phone, u.Role.String(), u.GroupID, u.PasswordHash,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &created, nil
}

// Update applies the non-nil fields of params and returns the updated user.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error) {
	b := postgres.Builder().
		Update("users").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + userColumns)

	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Email != nil {
		b = b.Set("email", strings.ToLower(strings.TrimSpace(*params.Email)))
	}
	if params.Phone != nil {
		if *params.Phone == "" {
			b = b.Set("phone", nil)
		} else {
			b = b.Set("phone", *params.Phone)
		}
	}
	if params.Role != nil {
		b = b.Set("role", params.Role.String())
	}
	if params.GroupID != nil {
		if *params.GroupID == uuid.Nil {
			b = b.Set("group_id", nil)
		} else {
			b = b.Set("group_id", *params.GroupID)
		}
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	u, err := scanUser(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// SetPasswordHash replaces the stored password hash of a user.
func (r *Repo) SetPasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, hash,
	)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// Delete removes a user.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Phone, &role,
		&u.GroupID, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.Role = domain.UserRole(role)
	return u, nil
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
