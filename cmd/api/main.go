package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskBoard/internal/app"
	"taskBoard/internal/config"
	"taskBoard/internal/logger"
	"taskBoard/internal/repository/task/postgres"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:     "taskboard",
		Short:   "Kanban task board API",
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configPath, false)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default ./config.yml)")

	root.AddCommand(serveCmd(&configPath))
	root.AddCommand(migrateCmd(&configPath))
	root.AddCommand(seedCmd(&configPath))
	return root
}

func serveCmd(configPath *string) *cobra.Command {
	var withSeed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *configPath, withSeed)
		},
	}
	cmd.Flags().BoolVar(&withSeed, "seed", false, "seed an empty store before serving")
	return cmd
}

func migrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadPostgresConfig(*configPath)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return postgres.Migrate(cfg.Database.URL)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadPostgresConfig(*configPath)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return postgres.Down(cfg.Database.URL)
		},
	})
	return cmd
}

func seedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the starter tasks when the store is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			a := app.New(cfg)
			if err := a.Init(cmd.Context()); err != nil {
				return err
			}
			defer a.Close()

			n, err := a.Seed(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d tasks\n", n)
			return nil
		},
	}
}

func serve(ctx context.Context, configPath string, withSeed bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg)
	if err := a.Init(ctx); err != nil {
		a.Close()
		return err
	}

	if withSeed {
		if _, err := a.Seed(ctx); err != nil {
			a.Close()
			return fmt.Errorf("seed: %w", err)
		}
	}

	return a.Run(ctx)
}

func loadPostgresConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database.url is not configured")
	}
	if err := logger.Init(cfg.Logging.Development); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}
