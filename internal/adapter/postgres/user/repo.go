// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, name, email, user_type, team_owner_id, status, password_hash,
	created_at, updated_at, created_by, updated_by, is_deleted, is_archived`

// GetByID returns a user by primary key. Soft-deleted users are not returned.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 AND is_deleted = FALSE`, id)

	u, err := scanUser(row)
	if err != nil {
		return nil, mapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address, matched case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1) AND is_deleted = FALSE`, email)

	u, err := scanUser(row)
	if err != nil {
		return nil, mapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// GetByName returns a user by display name, matched case-insensitively.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(name) = lower($1) AND is_deleted = FALSE`, name)

	u, err := scanUser(row)
	if err != nil {
		return nil, mapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// List returns all non-deleted users, optionally narrowed by role or team owner.
func (r *Repo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Select(userColumns).
		From("users").
		Where(sq.Eq{"is_deleted": false}).
		OrderBy("name").
		PlaceholderFormat(sq.Dollar)

	if f.Role != nil {
		b = b.Where(sq.Eq{"user_type": *f.Role})
	}
	if f.TeamOwnerID != nil {
		b = b.Where(sq.Eq{"team_owner_id": *f.TeamOwnerID})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"status": *f.Status})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "user", uuid.Nil)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, mapError(err, "user", uuid.Nil)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "user", uuid.Nil)
	}

	return users, nil
}

// Create inserts a new user and returns the persisted row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		INSERT INTO users (id, name, email, user_type, team_owner_id, status, password_hash, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING `+userColumns,
		u.ID, u.Name, u.Email, u.Role, u.TeamOwnerID, u.Status, u.PasswordHash, u.CreatedBy,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, mapError(err, "user", u.ID)
	}
	return created, nil
}

// Update overwrites the mutable fields of a user and returns the new row.
func (r *Repo) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		UPDATE users
		SET name = $2, email = $3, user_type = $4, team_owner_id = $5, status = $6,
		    password_hash = $7, updated_by = $8, updated_at = now()
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING `+userColumns,
		u.ID, u.Name, u.Email, u.Role, u.TeamOwnerID, u.Status, u.PasswordHash, u.UpdatedBy,
	)

	updated, err := scanUser(row)
	if err != nil {
		return nil, mapError(err, "user", u.ID)
	}
	return updated, nil
}

// SoftDelete marks a user as deleted without removing the row.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		UPDATE users SET is_deleted = TRUE, updated_by = $2, updated_at = now()
		WHERE id = $1 AND is_deleted = FALSE`,
		id, deletedBy,
	)
	if err != nil {
		return mapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Restore clears the deletion flags of a soft-deleted user.
func (r *Repo) Restore(ctx context.Context, id uuid.UUID, restoredBy string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		UPDATE users SET is_deleted = FALSE, is_archived = FALSE, updated_by = $2, updated_at = now()
		WHERE id = $1 AND is_deleted = TRUE`,
		id, restoredBy,
	)
	if err != nil {
		return mapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// scanUser reads one user row from either pgx.Row or pgx.Rows.
func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.TeamOwnerID, &u.Status, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt, &u.CreatedBy, &u.UpdatedBy, &u.IsDeleted, &u.IsArchived,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
