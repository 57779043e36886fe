package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// UserSeed describes one account to bootstrap. TeamOwner references the
// responsible's name within the same seed file.
type UserSeed struct {
	Name      string `yaml:"name"`
	Email     string `yaml:"email"`
	Role      string `yaml:"role"`
	TeamOwner string `yaml:"team_owner"`
	Password  string `yaml:"password"`
}

// CatalogItemSeed is one reference row for the bootstrap catalog.
type CatalogItemSeed struct {
	ClefImputation string `yaml:"clef_imputation"`
	Libelle        string `yaml:"libelle"`
	Fonction       string `yaml:"fonction"`
}

// EntrySeed describes one sample pointage entry, keyed by its owner's email.
// Dates use the 2006-01-02 layout.
type EntrySeed struct {
	Email            string `yaml:"email"`
	EntryDate        string `yaml:"entry_date"`
	ClefImputation   string `yaml:"clef_imputation"`
	Libelle          string `yaml:"libelle"`
	Fonction         string `yaml:"fonction"`
	DateBesoin       string `yaml:"date_besoin"`
	HeuresTheoriques string `yaml:"heures_theoriques"`
	HeuresPassees    string `yaml:"heures_passees"`
	Commentaires     string `yaml:"commentaires"`
}

// Config holds bootstrap seeder settings. An empty CatalogItems list falls
// back to the built-in reference rows.
type Config struct {
	AdminName     string            `yaml:"admin_name"     env:"SEED_ADMIN_NAME"     env-default:"Admin"`
	AdminEmail    string            `yaml:"admin_email"    env:"SEED_ADMIN_EMAIL"    env-default:"admin@roadmap.local"`
	AdminPassword string            `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD"`
	CatalogName   string            `yaml:"catalog_name"   env:"SEED_CATALOG_NAME"   env-default:"Default LC"`
	CatalogItems  []CatalogItemSeed `yaml:"catalog_items"`
	Users         []UserSeed        `yaml:"users"`
	Entries       []EntrySeed       `yaml:"entries"`
	DryRun        bool              `yaml:"dry_run"        env:"SEED_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
