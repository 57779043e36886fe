package testhelper

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

var seedCounter atomic.Int64

func uniqueSuffix() string {
	return fmt.Sprintf("%d-%d", time.Now().UnixNano(), seedCounter.Add(1))
}

// SeedUser inserts a user and returns it. Name and email are made unique so
// tests sharing the container do not collide.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole, opts ...UserOption) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	u := domain.User{
		ID:     uuid.New(),
		Name:   "user-" + suffix,
		Role:   role,
		Status: domain.UserStatusActive,
	}
	email := fmt.Sprintf("user-%s@example.com", suffix)
	u.Email = &email

	for _, opt := range opts {
		opt(&u)
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO users (id, name, email, user_type, team_owner_id, status, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Name, u.Email, u.Role, u.TeamOwnerID, u.Status, u.PasswordHash,
	)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}

	return u
}

type UserOption func(*domain.User)

func WithName(name string) UserOption {
	return func(u *domain.User) { u.Name = name }
}

func WithEmail(email string) UserOption {
	return func(u *domain.User) { u.Email = &email }
}

func WithTeamOwner(ownerID uuid.UUID) UserOption {
	return func(u *domain.User) { u.TeamOwnerID = &ownerID }
}

func WithPasswordHash(hash string) UserOption {
	return func(u *domain.User) { u.PasswordHash = &hash }
}

// SeedCatalog inserts a catalog with the given items and returns it.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool, name string, items ...domain.CatalogItem) domain.Catalog {
	t.Helper()

	ctx := context.Background()
	c := domain.Catalog{
		ID:   uuid.New(),
		Name: name,
	}

	_, err := pool.Exec(ctx, `INSERT INTO catalogs (id, name) VALUES ($1, $2)`, c.ID, c.Name)
	if err != nil {
		t.Fatalf("testhelper: seed catalog: %v", err)
	}

	for i := range items {
		items[i].ID = uuid.New()
		items[i].CatalogID = c.ID
		items[i].Position = i
		_, err := pool.Exec(ctx, `
			INSERT INTO catalog_items (id, catalog_id, clef_imputation, libelle, fonction, is_active, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			items[i].ID, items[i].CatalogID, items[i].ClefImputation, items[i].Libelle,
			items[i].Fonction, items[i].IsActive, items[i].Position,
		)
		if err != nil {
			t.Fatalf("testhelper: seed catalog item: %v", err)
		}
	}
	c.Items = items

	return c
}

// SeedEntry inserts a pointage entry owned by ownerID for the given date.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, date time.Time, opts ...EntryOption) domain.Entry {
	t.Helper()

	clef := "CLEF-" + uniqueSuffix()
	e := domain.Entry{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		EntryDate: date,
		WeekKey:   domain.WeekKey(date),
		Data:      domain.EntryData{ClefImputation: &clef},
		Status:    domain.EntryStatusDraft,
	}

	for _, opt := range opts {
		opt(&e)
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO pointage_entries (
			id, owner_id, entry_date, week_key,
			clef_imputation, libelle, fonction, date_besoin,
			heures_theoriques, heures_passees, commentaires,
			status, submitted_at, validated_at, validated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		e.ID, e.OwnerID, e.EntryDate, e.WeekKey,
		e.Data.ClefImputation, e.Data.Libelle, e.Data.Fonction, e.Data.DateBesoin,
		e.Data.HeuresTheoriques, e.Data.HeuresPassees, e.Data.Commentaires,
		e.Status, e.SubmittedAt, e.ValidatedAt, e.ValidatedBy,
	)
	if err != nil {
		t.Fatalf("testhelper: seed entry: %v", err)
	}

	return e
}

type EntryOption func(*domain.Entry)

func WithStatus(status domain.EntryStatus) EntryOption {
	return func(e *domain.Entry) { e.Status = status }
}

func WithData(data domain.EntryData) EntryOption {
	return func(e *domain.Entry) { e.Data = data }
}
