// Package seeder bootstraps a fresh installation: the admin account, an
// optional set of team accounts, the fallback reference catalog with its
// default rows and active-catalog pointer, and optional sample entries.
// It is idempotent and safe to re-run.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
)

const createdBy = "seeder"

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type catalogRepo interface {
	GetByName(ctx context.Context, name string) (*domain.Catalog, error)
	Create(ctx context.Context, c *domain.Catalog) (*domain.Catalog, error)
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

type entryRepo interface {
	List(ctx context.Context, f domain.EntryFilter) ([]domain.Entry, error)
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
}

// Seeder creates the bootstrap records that the application expects on
// first start.
type Seeder struct {
	log      *slog.Logger
	users    userRepo
	catalogs catalogRepo
	entries  entryRepo
	cfg      Config
}

// New creates a Seeder.
func New(log *slog.Logger, users userRepo, catalogs catalogRepo, entries entryRepo, cfg Config) *Seeder {
	return &Seeder{
		log:      log.With("component", "seeder"),
		users:    users,
		catalogs: catalogs,
		entries:  entries,
		cfg:      cfg,
	}
}

// defaultCatalogItems are the reference rows seeded into the bootstrap
// catalog when the configuration supplies none.
func defaultCatalogItems() []CatalogItemSeed {
	return []CatalogItemSeed{
		{ClefImputation: "Congés", Libelle: "Réunion interne", Fonction: "AIR"},
		{ClefImputation: "Réunions", Libelle: "Réunions Projet (pôle, CR, ...)", Fonction: "ATP"},
		{ClefImputation: "STR5.2.pré-MESC Sprint 3", Libelle: "Event list", Fonction: "BOG"},
		{ClefImputation: "STR5.2.pré-MESC Sprint 4", Libelle: "Support maintenance", Fonction: "BRK"},
		{ClefImputation: "STR5.2.MESC Sprint 1", Libelle: "ADL1", Fonction: "CAT"},
		{ClefImputation: "STR5.2.MESC Sprint 2", Libelle: "SwDS", Fonction: "CLM"},
		{ClefImputation: "STR7.1.2", Libelle: "UVR ADL1", Fonction: "CPL"},
		{ClefImputation: "STR7.1.3 Sprint 3", Libelle: "UVR SwDS", Fonction: "DGN"},
		{ClefImputation: "STR7.1.3 Sprint 4", Libelle: "SwDS (ICD)", Fonction: "DRS"},
		{ClefImputation: "STR7.1.4", Libelle: "Dossiers Safety", Fonction: "DRV"},
		{ClefImputation: "STR7.1.5", Libelle: "FPS + revue", Fonction: "ESG"},
		{ClefImputation: "STR9.1 Sprint 1", Libelle: "OCD", Fonction: "FSD"},
		{ClefImputation: "STR9.1 Sprint 2", Libelle: "DR", Fonction: "HVS"},
		{ClefImputation: "STR9.1 Sprint 3", Libelle: "Croissance de fiab", Fonction: "IDR"},
	}
}

// Run seeds the admin account, configured users, and the fallback catalog.
// Existing records are left untouched.
func (s *Seeder) Run(ctx context.Context) error {
	if _, err := s.ensureUser(ctx, UserSeed{
		Name:     s.cfg.AdminName,
		Email:    s.cfg.AdminEmail,
		Role:     string(domain.UserRoleAdmin),
		Password: s.cfg.AdminPassword,
	}); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	for _, seed := range s.cfg.Users {
		if _, err := s.ensureUser(ctx, seed); err != nil {
			return fmt.Errorf("seed user %q: %w", seed.Name, err)
		}
	}

	if err := s.ensureCatalog(ctx); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	for _, seed := range s.cfg.Entries {
		if err := s.ensureEntry(ctx, seed); err != nil {
			return fmt.Errorf("seed entry for %q: %w", seed.Email, err)
		}
	}

	return nil
}

func (s *Seeder) ensureUser(ctx context.Context, seed UserSeed) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(seed.Email))
	if email == "" {
		return nil, errors.New("email required")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		s.log.InfoContext(ctx, "user already present", slog.String("email", email))
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	role := domain.UserRole(strings.TrimSpace(seed.Role))
	if !role.IsValid() {
		return nil, fmt.Errorf("unknown role %q", seed.Role)
	}

	var teamOwnerID *uuid.UUID
	if seed.TeamOwner != "" {
		owner, err := s.users.GetByName(ctx, seed.TeamOwner)
		if err != nil {
			return nil, fmt.Errorf("team owner %q: %w", seed.TeamOwner, err)
		}
		teamOwnerID = &owner.ID
	}

	var passwordHash *string
	if seed.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		h := string(hash)
		passwordHash = &h
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(seed.Name),
		Email:        &email,
		Role:         role,
		TeamOwnerID:  teamOwnerID,
		Status:       domain.UserStatusActive,
		PasswordHash: passwordHash,
		CreatedBy:    createdBy,
		UpdatedBy:    createdBy,
	}

	if s.cfg.DryRun {
		s.log.InfoContext(ctx, "dry run, would create user",
			slog.String("email", email), slog.String("role", role.String()))
		return user, nil
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "user created",
		slog.String("email", email), slog.String("role", role.String()))
	return created, nil
}

func (s *Seeder) ensureCatalog(ctx context.Context) error {
	name := strings.TrimSpace(s.cfg.CatalogName)
	if name == "" {
		name = domain.FallbackCatalogName
	}

	seeds := s.cfg.CatalogItems
	if len(seeds) == 0 {
		seeds = defaultCatalogItems()
	}
	items := make([]domain.CatalogItem, 0, len(seeds))
	for _, seed := range seeds {
		items = append(items, domain.CatalogItem{
			ClefImputation: seed.ClefImputation,
			Libelle:        seed.Libelle,
			Fonction:       seed.Fonction,
			IsActive:       true,
		})
	}

	_, err := s.catalogs.GetByName(ctx, name)
	switch {
	case err == nil:
		s.log.InfoContext(ctx, "catalog already present", slog.String("name", name))
	case errors.Is(err, domain.ErrNotFound):
		if s.cfg.DryRun {
			s.log.InfoContext(ctx, "dry run, would create catalog",
				slog.String("name", name), slog.Int("items", len(items)))
			break
		}
		description := "Default reference catalog"
		_, err := s.catalogs.Create(ctx, &domain.Catalog{
			ID:          uuid.New(),
			Name:        name,
			Description: &description,
			Items:       items,
			CreatedBy:   createdBy,
			UpdatedBy:   createdBy,
		})
		if err != nil {
			return err
		}
		s.log.InfoContext(ctx, "catalog created",
			slog.String("name", name), slog.Int("items", len(items)))
	default:
		return err
	}

	_, err = s.catalogs.GetSetting(ctx, domain.ActiveCatalogKey)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if s.cfg.DryRun {
		s.log.InfoContext(ctx, "dry run, would set active catalog", slog.String("name", name))
		return nil
	}
	if err := s.catalogs.SetSetting(ctx, domain.ActiveCatalogKey, name); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "active catalog set", slog.String("name", name))
	return nil
}

// ensureEntry creates one sample pointage entry. Owners must exist and be
// collaborators; anything else is logged and skipped, mirroring the tolerant
// behaviour of the user seeding. An owner who already has an entry on the
// seed date is left untouched.
func (s *Seeder) ensureEntry(ctx context.Context, seed EntrySeed) error {
	email := strings.TrimSpace(strings.ToLower(seed.Email))
	if email == "" {
		return errors.New("email required")
	}

	owner, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "entry owner not found, skipping", slog.String("email", email))
		return nil
	}
	if err != nil {
		return err
	}
	if owner.Role != domain.UserRoleCollaborator {
		s.log.WarnContext(ctx, "entry owner is not a collaborator, skipping",
			slog.String("email", email), slog.String("role", owner.Role.String()))
		return nil
	}

	entryDate, err := time.Parse(domain.DateLayout, seed.EntryDate)
	if err != nil {
		return fmt.Errorf("entry_date %q: %w", seed.EntryDate, err)
	}

	existing, err := s.entries.List(ctx, domain.EntryFilter{
		OwnerID:  &owner.ID,
		DateFrom: &entryDate,
		DateTo:   &entryDate,
	})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.log.InfoContext(ctx, "entry already present",
			slog.String("email", email), slog.String("date", seed.EntryDate))
		return nil
	}

	data := domain.EntryData{
		ClefImputation:   optional(seed.ClefImputation),
		Libelle:          optional(seed.Libelle),
		Fonction:         optional(seed.Fonction),
		HeuresTheoriques: optional(seed.HeuresTheoriques),
		HeuresPassees:    optional(seed.HeuresPassees),
		Commentaires:     optional(seed.Commentaires),
	}
	if seed.DateBesoin != "" {
		besoin, err := time.Parse(domain.DateLayout, seed.DateBesoin)
		if err != nil {
			return fmt.Errorf("date_besoin %q: %w", seed.DateBesoin, err)
		}
		data.DateBesoin = &besoin
	}

	if s.cfg.DryRun {
		s.log.InfoContext(ctx, "dry run, would create entry",
			slog.String("email", email), slog.String("date", seed.EntryDate))
		return nil
	}

	if _, err := s.entries.Create(ctx, &domain.Entry{
		ID:        uuid.New(),
		OwnerID:   owner.ID,
		EntryDate: entryDate,
		WeekKey:   domain.WeekKey(entryDate),
		Data:      data,
		Status:    domain.EntryStatusDraft,
	}); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("email", email), slog.String("date", seed.EntryDate))
	return nil
}

func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
