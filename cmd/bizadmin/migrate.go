package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karyabangun/bizadmin/internal/platform/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down]",
	Short: "Apply or revert database migrations",
	Long: `up applies every pending migration from MIGRATIONS_PATH.
down reverts the most recent one.`,
	Example: `  bizadmin migrate up
  bizadmin migrate down`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
	RunE: func(_ *cobra.Command, args []string) error {
		direction := database.MigrationDirection(args[0])
		if direction != database.MigrateUp && direction != database.MigrateDown {
			return fmt.Errorf("unknown direction %q, want up or down", args[0])
		}

		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}
		return database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, direction, logger)
	},
}
