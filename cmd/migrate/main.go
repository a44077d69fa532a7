package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"authentithief/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

// Applies migrations/ to the database described by the DB_* variables. The
// atlas binary must be on PATH and migrations/atlas.sum kept current with
// `atlas migrate hash`.
func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	status := flag.Bool("status", false, "print migration status instead of applying")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("failed to read database config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	workdir, err := os.Getwd()
	if err != nil {
		logger.Error("failed to resolve working directory", "error", err)
		os.Exit(1)
	}
	client, err := atlasexec.NewClient(workdir, "atlas")
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	if *status {
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    dbCfg.BuildDSN(),
			DirURL: *dir,
		})
		if err != nil {
			logger.Error("failed to read migration status", "error", err)
			os.Exit(1)
		}
		logger.Info("migration status", "current", st.Current, "next", st.Next, "pending", len(st.Pending))
		return
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DirURL: *dir,
	})
	if err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
}
