// Package modreq implements the modification request repository using PostgreSQL.
package modreq

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

// Repo provides modification request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new modification request repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const requestColumns = `r.id, r.entry_id, r.requester_id,
	r.clef_imputation, r.libelle, r.fonction, r.date_besoin, r.heures_theoriques, r.heures_passees, r.commentaires,
	r.comment, r.status, r.reviewed_by, r.review_comment, r.reviewed_at, r.created_at, r.is_deleted`

// same columns without the alias, for INSERT/UPDATE ... RETURNING
const returningColumns = `id, entry_id, requester_id,
	clef_imputation, libelle, fonction, date_besoin, heures_theoriques, heures_passees, commentaires,
	comment, status, reviewed_by, review_comment, reviewed_at, created_at, is_deleted`

// GetByID returns a request by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModificationRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+requestColumns+` FROM modification_requests r WHERE r.id = $1 AND r.is_deleted = FALSE`, id)

	req, err := scanRequest(row)
	if err != nil {
		return nil, mapError(err, "request", id)
	}
	return req, nil
}

// GetPendingByEntry returns the pending request for an entry, if one exists.
func (r *Repo) GetPendingByEntry(ctx context.Context, entryID uuid.UUID) (*domain.ModificationRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		SELECT `+requestColumns+` FROM modification_requests r
		WHERE r.entry_id = $1 AND r.status = 'pending' AND r.is_deleted = FALSE`,
		entryID,
	)

	req, err := scanRequest(row)
	if err != nil {
		return nil, mapError(err, "request", entryID)
	}
	return req, nil
}

// List returns requests matching the filter, newest first. When EntryOwnerIDs
// is set, requests are joined against entries so reviewers only see their team.
func (r *Repo) List(ctx context.Context, f domain.RequestFilter) ([]domain.ModificationRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Select(requestColumns).
		From("modification_requests r").
		Where(sq.Eq{"r.is_deleted": false}).
		OrderBy("r.created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if f.RequesterID != nil {
		b = b.Where(sq.Eq{"r.requester_id": *f.RequesterID})
	}
	if f.EntryID != nil {
		b = b.Where(sq.Eq{"r.entry_id": *f.EntryID})
	}
	if len(f.EntryOwnerIDs) > 0 {
		b = b.Join("pointage_entries e ON e.id = r.entry_id").
			Where(sq.Eq{"e.owner_id": f.EntryOwnerIDs})
	}
	if f.Status != nil {
		b = b.Where(sq.Eq{"r.status": *f.Status})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build request list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "request", uuid.Nil)
	}
	defer rows.Close()

	var requests []domain.ModificationRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, mapError(err, "request", uuid.Nil)
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "request", uuid.Nil)
	}

	return requests, nil
}

// Create inserts a new pending request. The partial unique index on
// (entry_id) WHERE status = 'pending' rejects a second open request.
func (r *Repo) Create(ctx context.Context, req *domain.ModificationRequest) (*domain.ModificationRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		INSERT INTO modification_requests (
			id, entry_id, requester_id,
			clef_imputation, libelle, fonction, date_besoin, heures_theoriques, heures_passees, commentaires,
			comment, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+returningColumns,
		req.ID, req.EntryID, req.RequesterID,
		req.Proposed.ClefImputation, req.Proposed.Libelle, req.Proposed.Fonction, req.Proposed.DateBesoin,
		req.Proposed.HeuresTheoriques, req.Proposed.HeuresPassees, req.Proposed.Commentaires,
		req.Comment, req.Status,
	)

	created, err := scanRequest(row)
	if err != nil {
		return nil, mapError(err, "request", req.ID)
	}
	return created, nil
}

// Review records the decision on a request. Only a pending request can be
// reviewed; reviewing an already decided one returns domain.ErrNotFound.
func (r *Repo) Review(ctx context.Context, id uuid.UUID, status domain.RequestStatus, reviewedBy uuid.UUID, reviewComment *string, reviewedAt time.Time) (*domain.ModificationRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		UPDATE modification_requests
		SET status = $2, reviewed_by = $3, review_comment = $4, reviewed_at = $5
		WHERE id = $1 AND status = 'pending' AND is_deleted = FALSE
		RETURNING `+returningColumns,
		id, status, reviewedBy, reviewComment, reviewedAt,
	)

	reviewed, err := scanRequest(row)
	if err != nil {
		return nil, mapError(err, "request", id)
	}
	return reviewed, nil
}

// scanRequest reads one request row from either pgx.Row or pgx.Rows.
func scanRequest(row pgx.Row) (*domain.ModificationRequest, error) {
	var req domain.ModificationRequest
	err := row.Scan(
		&req.ID, &req.EntryID, &req.RequesterID,
		&req.Proposed.ClefImputation, &req.Proposed.Libelle, &req.Proposed.Fonction, &req.Proposed.DateBesoin,
		&req.Proposed.HeuresTheoriques, &req.Proposed.HeuresPassees, &req.Proposed.Commentaires,
		&req.Comment, &req.Status, &req.ReviewedBy, &req.ReviewComment, &req.ReviewedAt,
		&req.CreatedAt, &req.IsDeleted,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
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
