package cli

import (
	"context"

	"github.com/spf13/cobra"

	"smartnus/internal/config"
	"smartnus/internal/infra/sqlite"
	"smartnus/internal/logging"
)

// NewMigrateCmd applies storage schema migrations without starting the shell.
func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run storage migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath)
		},
	}
}

func runMigrations(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.App.Name, cfg.App.Env)

	store, err := sqlite.Open(cfg.Storage.Path, logger)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Migrate(ctx)
}
