package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"ariga.io/atlas-go-sdk/atlasexec"

	"logipark/internal/pkg/config"
	"logipark/internal/pkg/errs"
)

const applyTimeout = 2 * time.Minute

func main() {
	dir := flag.String("dir", "migrations", "directory holding the versioned migration files")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(*dir, *atlasBin, *dryRun, logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(dir, atlasBin string, dryRun bool, logger *slog.Logger) error {
	cfg, err := config.LoadDBConfig()
	if err != nil {
		return errs.Wrap(err, "failed to load database config")
	}

	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return errs.Wrap(err, "failed to prepare migration directory")
	}
	defer wd.Close()

	client, err := atlasexec.NewClient(wd.Path(), atlasBin)
	if err != nil {
		return errs.Wrap(err, "failed to create atlas client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DryRun: dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	for _, f := range res.Applied {
		logger.Info("migration applied", "version", f.Version, "description", f.Description)
	}
	logger.Info("database is up to date",
		"host", cfg.Host,
		"db", cfg.DBName,
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
		"dry_run", dryRun,
	)
	return nil
}
