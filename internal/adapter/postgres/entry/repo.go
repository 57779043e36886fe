// Package entry implements the pointage entry repository using PostgreSQL.
package entry

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

// Repo provides pointage entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `id, owner_id, entry_date, week_key,
	clef_imputation, libelle, fonction, date_besoin, heures_theoriques, heures_passees, commentaires,
	status, created_at, updated_at, submitted_at, validated_at, validated_by, is_deleted, is_archived`

// GetByID returns an entry by primary key. Soft-deleted entries are not returned.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM pointage_entries WHERE id = $1 AND is_deleted = FALSE`, id)

	e, err := scanEntry(row)
	if err != nil {
		return nil, mapError(err, "entry", id)
	}
	return e, nil
}

// List returns entries matching the filter, newest entry date first.
func (r *Repo) List(ctx context.Context, f domain.EntryFilter) ([]domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Select(entryColumns).
		From("pointage_entries").
		Where(sq.Eq{"is_deleted": false}).
		OrderBy("entry_date DESC", "created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if f.OwnerID != nil {
		b = b.Where(sq.Eq{"owner_id": *f.OwnerID})
	}
	if len(f.OwnerIDs) > 0 {
		b = b.Where(sq.Eq{"owner_id": f.OwnerIDs})
	}
	if f.WeekKey != nil {
		b = b.Where(sq.Eq{"week_key": *f.WeekKey})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"status": *f.Status})
	}
	if f.DateFrom != nil {
		b = b.Where(sq.GtOrEq{"entry_date": *f.DateFrom})
	}
	if f.DateTo != nil {
		b = b.Where(sq.LtOrEq{"entry_date": *f.DateTo})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entry list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "entry", uuid.Nil)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, mapError(err, "entry", uuid.Nil)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "entry", uuid.Nil)
	}

	return entries, nil
}

// Create inserts a new entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		INSERT INTO pointage_entries (
			id, owner_id, entry_date, week_key,
			clef_imputation, libelle, fonction, date_besoin, heures_theoriques, heures_passees, commentaires,
			status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+entryColumns,
		e.ID, e.OwnerID, e.EntryDate, e.WeekKey,
		e.Data.ClefImputation, e.Data.Libelle, e.Data.Fonction, e.Data.DateBesoin,
		e.Data.HeuresTheoriques, e.Data.HeuresPassees, e.Data.Commentaires,
		e.Status,
	)

	created, err := scanEntry(row)
	if err != nil {
		return nil, mapError(err, "entry", e.ID)
	}
	return created, nil
}

// Update overwrites the data fields and status of an entry and returns the
// new row. EntryDate and WeekKey are never touched after creation.
func (r *Repo) Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		UPDATE pointage_entries
		SET clef_imputation = $2, libelle = $3, fonction = $4, date_besoin = $5,
		    heures_theoriques = $6, heures_passees = $7, commentaires = $8,
		    status = $9, submitted_at = $10, validated_at = $11, validated_by = $12,
		    updated_at = now()
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING `+entryColumns,
		e.ID,
		e.Data.ClefImputation, e.Data.Libelle, e.Data.Fonction, e.Data.DateBesoin,
		e.Data.HeuresTheoriques, e.Data.HeuresPassees, e.Data.Commentaires,
		e.Status, e.SubmittedAt, e.ValidatedAt, e.ValidatedBy,
	)

	updated, err := scanEntry(row)
	if err != nil {
		return nil, mapError(err, "entry", e.ID)
	}
	return updated, nil
}

// SoftDelete marks an entry as deleted without removing the row.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		UPDATE pointage_entries SET is_deleted = TRUE, updated_at = now()
		WHERE id = $1 AND is_deleted = FALSE`,
		id,
	)
	if err != nil {
		return mapError(err, "entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// scanEntry reads one entry row from either pgx.Row or pgx.Rows.
func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var e domain.Entry
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.EntryDate, &e.WeekKey,
		&e.Data.ClefImputation, &e.Data.Libelle, &e.Data.Fonction, &e.Data.DateBesoin,
		&e.Data.HeuresTheoriques, &e.Data.HeuresPassees, &e.Data.Commentaires,
		&e.Status, &e.CreatedAt, &e.UpdatedAt, &e.SubmittedAt, &e.ValidatedAt, &e.ValidatedBy,
		&e.IsDeleted, &e.IsArchived,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
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
