package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/karyabangun/bizadmin/internal/platform/config"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "bizadmin",
	Short: "Construction company administration backend",
	Long: `bizadmin serves the REST API used to administer projects, billings,
cash transactions and cash requests, and offers maintenance commands for
the database schema and quick billing calculations.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadRuntime loads configuration and installs the JSON logger as the default.
func loadRuntime() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, calcCmd)
}
