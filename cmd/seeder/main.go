// Command seeder bootstraps a fresh database: the admin account, optional
// team accounts, the fallback reference catalog with its default rows and
// active pointer, and optional sample entries.
// It is idempotent and intended to be run offline, not as part of the main
// server.
//
// Flags:
//
//	--seed-config  path to seeder YAML config file
//	--dry-run      report what would be created without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres"
	catalogrepo "github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres/catalog"
	entryrepo "github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres/entry"
	userrepo "github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres/user"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/app"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/app/seeder"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/config"
)

func main() {
	seedConfigFlag := flag.String("seed-config", "", "path to seeder YAML config file")
	dryRunFlag := flag.Bool("dry-run", false, "report what would be created without writing to DB")
	flag.Parse()

	// Load app config (for DB connection and logging).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seedCfg, err := seeder.LoadConfig(*seedConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seedCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := seeder.New(logger, userrepo.New(pool), catalogrepo.New(pool), entryrepo.New(pool), *seedCfg)
	if err := s.Run(ctx); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed successfully")
}
