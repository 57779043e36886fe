// Command importer merges a CSV export into a reference catalog. Column
// headers are matched heuristically (French or English, accents ignored).
// It runs as the named admin account so the merge is audited.
//
// Flags:
//
//	--file         path to the CSV file (required)
//	--catalog      target catalog name (default: fallback catalog)
//	--admin-email  email of the admin account to run as (required)
//	--no-dedupe    insert rows even when values already exist
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
	auditrepo "github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres/audit"
	catalogrepo "github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres/catalog"
	userrepo "github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres/user"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/app"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/app/importer"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/config"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/service/auditlog"
	catalogsvc "github.com/chiyonofujikam/roadmap-manager-v2/internal/service/catalog"
	"github.com/chiyonofujikam/roadmap-manager-v2/pkg/ctxutil"
)

func main() {
	fileFlag := flag.String("file", "", "path to the CSV file")
	catalogFlag := flag.String("catalog", "", "target catalog name")
	adminEmailFlag := flag.String("admin-email", "", "email of the admin account to run as")
	noDedupeFlag := flag.Bool("no-dedupe", false, "insert rows even when values already exist")
	flag.Parse()

	if *fileFlag == "" || *adminEmailFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	admin, err := userrepo.New(pool).GetByEmail(ctx, *adminEmailFlag)
	if err != nil {
		logger.Error("look up admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if !admin.Role.IsAdmin() {
		logger.Error("account is not an admin", slog.String("email", *adminEmailFlag))
		os.Exit(1)
	}
	ctx = ctxutil.WithRole(ctxutil.WithUserID(ctx, admin.ID), admin.Role)

	audit := auditlog.NewService(logger, auditrepo.New(pool))
	svc := catalogsvc.NewService(logger, catalogrepo.New(pool), audit, appCfg.Catalog.FallbackName)

	catalogName := *catalogFlag
	if catalogName == "" {
		catalogName = appCfg.Catalog.FallbackName
		if catalogName == "" {
			catalogName = domain.FallbackCatalogName
		}
	}

	result, err := importer.Run(ctx, svc, logger, *fileFlag, catalogName, !*noDedupeFlag)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import completed",
		slog.Int("rows", result.RowsRead),
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped),
	)
}
