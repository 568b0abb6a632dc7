package commands

import (
	"fmt"

	"github.com/SscSPs/dre_backoffice/internal/platform/config"
	"github.com/SscSPs/dre_backoffice/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations (or revert the last one with --down)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cfg.StorageDriver != config.StoragePostgres {
				return fmt.Errorf("migrations need STORAGE_DRIVER=%s", config.StoragePostgres)
			}

			direction := database.MigrateUp
			if down {
				direction = database.MigrateDown
			}
			return database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, direction)
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "revert the most recent migration")

	return cmd
}
