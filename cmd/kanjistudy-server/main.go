package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stealthwork/kanjistudy/internal/bootstrap"
	"github.com/stealthwork/kanjistudy/internal/config"
	"github.com/stealthwork/kanjistudy/internal/dictionary"
	"github.com/stealthwork/kanjistudy/internal/identity"
	"github.com/stealthwork/kanjistudy/internal/server"
	"github.com/stealthwork/kanjistudy/internal/store"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "kanjistudy-server",
		Short:         "Kanji study HTTP API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := store.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("store.Connect > %w", err)
	}
	app.AddShutdownHook(func(ctx context.Context) error {
		return db.Close()
	})

	if err := store.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("store.EnsureSchema > %w", err)
	}

	// Auth routes are only exposed when a JWT secret is configured.
	var auth *identity.Service
	if cfg.Auth.JWTSecret != "" {
		auth, err = identity.NewService(cfg.Auth, store.NewDBUserRepository(db))
		if err != nil {
			return fmt.Errorf("identity.NewService > %w", err)
		}
	} else {
		slog.Warn("KANJISTUDY_JWT_SECRET is not set, auth routes are disabled")
	}

	srv, err := server.New(
		cfg.Server,
		store.NewDBDeckRepository(db),
		store.NewDBFavoriteRepository(db),
		dictionary.NewClient(cfg.Dictionary),
		auth,
	)
	if err != nil {
		return fmt.Errorf("server.New > %w", err)
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		return srv.Start()
	})
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load > %w", err)
	}
	return cfg, nil
}
