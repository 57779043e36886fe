// Package catalog implements the reference-catalog repository using PostgreSQL.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

// Repo provides catalog and catalog-item persistence backed by PostgreSQL.
// The active-catalog pointer lives in system_settings and is managed here too.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const catalogColumns = `id, name, description, created_at, updated_at, created_by, updated_by, is_deleted, is_archived`

const itemColumns = `id, catalog_id, clef_imputation, libelle, fonction, is_active, position, created_at`

// GetByID returns a catalog with its items, ordered by position.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Catalog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+catalogColumns+` FROM catalogs WHERE id = $1 AND is_deleted = FALSE`, id)

	c, err := scanCatalog(row)
	if err != nil {
		return nil, mapError(err, "catalog", id)
	}

	if err := r.loadItems(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByName returns a catalog with its items, matched by exact name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Catalog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+catalogColumns+` FROM catalogs WHERE name = $1 AND is_deleted = FALSE`, name)

	c, err := scanCatalog(row)
	if err != nil {
		return nil, mapError(err, "catalog", uuid.Nil)
	}

	if err := r.loadItems(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all non-deleted catalogs without their items.
func (r *Repo) List(ctx context.Context) ([]domain.Catalog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+catalogColumns+` FROM catalogs WHERE is_deleted = FALSE ORDER BY name`)
	if err != nil {
		return nil, mapError(err, "catalog", uuid.Nil)
	}
	defer rows.Close()

	var catalogs []domain.Catalog
	for rows.Next() {
		c, err := scanCatalog(rows)
		if err != nil {
			return nil, mapError(err, "catalog", uuid.Nil)
		}
		catalogs = append(catalogs, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "catalog", uuid.Nil)
	}

	return catalogs, nil
}

// Create inserts a catalog and its initial items in the order given.
func (r *Repo) Create(ctx context.Context, c *domain.Catalog) (*domain.Catalog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		INSERT INTO catalogs (id, name, description, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING `+catalogColumns,
		c.ID, c.Name, c.Description, c.CreatedBy,
	)

	created, err := scanCatalog(row)
	if err != nil {
		return nil, mapError(err, "catalog", c.ID)
	}

	if len(c.Items) > 0 {
		items, err := r.AddItems(ctx, created.ID, c.Items)
		if err != nil {
			return nil, err
		}
		created.Items = items
	}

	return created, nil
}

// AddItems appends items to a catalog after its current last position.
// Rows are inserted in one batch.
func (r *Repo) AddItems(ctx context.Context, catalogID uuid.UUID, items []domain.CatalogItem) ([]domain.CatalogItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var next int
	err := q.QueryRow(ctx,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM catalog_items WHERE catalog_id = $1`, catalogID,
	).Scan(&next)
	if err != nil {
		return nil, mapError(err, "catalog_item", catalogID)
	}

	batch := &pgx.Batch{}
	out := make([]domain.CatalogItem, len(items))
	for i, item := range items {
		item.ID = uuid.New()
		item.CatalogID = catalogID
		item.Position = next + i
		out[i] = item
		batch.Queue(`
			INSERT INTO catalog_items (id, catalog_id, clef_imputation, libelle, fonction, is_active, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, item.CatalogID, item.ClefImputation, item.Libelle, item.Fonction, item.IsActive, item.Position,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return nil, mapError(err, "catalog_item", catalogID)
		}
	}

	return out, nil
}

// SetItemActive flips the activation flag of a single item.
func (r *Repo) SetItemActive(ctx context.Context, itemID uuid.UUID, active bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `UPDATE catalog_items SET is_active = $2 WHERE id = $1`, itemID, active)
	if err != nil {
		return mapError(err, "catalog_item", itemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("catalog_item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

// SoftDelete marks a catalog as deleted. Items stay in place for history.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		UPDATE catalogs SET is_deleted = TRUE, updated_by = $2, updated_at = now()
		WHERE id = $1 AND is_deleted = FALSE`,
		id, deletedBy,
	)
	if err != nil {
		return mapError(err, "catalog", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("catalog %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// GetSetting returns a system_settings value by key.
func (r *Repo) GetSetting(ctx context.Context, key string) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var value string
	err := q.QueryRow(ctx, `SELECT value FROM system_settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		return "", mapError(err, "system_setting", uuid.Nil)
	}
	return value, nil
}

// SetSetting upserts a system_settings value.
func (r *Repo) SetSetting(ctx context.Context, key, value string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `
		INSERT INTO system_settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return mapError(err, "system_setting", uuid.Nil)
	}
	return nil
}

func (r *Repo) loadItems(ctx context.Context, c *domain.Catalog) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+itemColumns+` FROM catalog_items WHERE catalog_id = $1 ORDER BY position`, c.ID)
	if err != nil {
		return mapError(err, "catalog_item", c.ID)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CatalogItem
		err := rows.Scan(
			&item.ID, &item.CatalogID, &item.ClefImputation, &item.Libelle,
			&item.Fonction, &item.IsActive, &item.Position, &item.CreatedAt,
		)
		if err != nil {
			return mapError(err, "catalog_item", c.ID)
		}
		c.Items = append(c.Items, item)
	}
	return mapError(rows.Err(), "catalog_item", c.ID)
}

func scanCatalog(row pgx.Row) (*domain.Catalog, error) {
	var c domain.Catalog
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
		&c.CreatedBy, &c.UpdatedBy, &c.IsDeleted, &c.IsArchived,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
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
