package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"crewmatch/internal/app"
	"crewmatch/internal/cli"
	"crewmatch/internal/config"
	"crewmatch/internal/database/migration"
	"crewmatch/internal/database/seeder"
	"crewmatch/internal/logger"
	"crewmatch/migrations"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(newServices, nil)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newServices(opts cli.Options) (*cli.Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(opts.JSON || cfg.Log.JSON, opts.Debug || cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	c, err := app.NewContainer(cfg, log)
	if err != nil {
		return nil, err
	}

	runner := seeder.Runner{Seeders: seeder.Defaults(), Logger: log.Named("seeder")}
	migrator := migration.Runner{
		FS:     migration.Source(cfg.Database.MigrationsDir, migrations.FS),
		Logger: log.Named("migration"),
	}
	return &cli.Services{
		Detector:       c.SkillDetection,
		Reputation:     c.Reputation,
		Recommendation: c.Recommendation,
		Seed: func(ctx context.Context) (map[string]int, error) {
			return runner.Run(ctx, c.DB)
		},
		Migrate: func(ctx context.Context) (int, error) {
			return migrator.Run(ctx, c.DB)
		},
		Workers: cfg.Engine.InferenceWorkers,
		Close:   c.Close,
	}, nil
}

