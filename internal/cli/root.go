package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"savings-ledger/internal/config"
	"savings-ledger/internal/logger"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:           "savings-ledger",
		Short:         "Savings group ledger service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg = config.Load()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config: %w", err)
			}
			logger.Init(cfg.LogLevel, cfg.IsDevelopment())
			return nil
		},
	}
	// config is resolved in PersistentPreRunE, after flag parsing
	get := func() *config.Config { return cfg }

	serve := newServeCmd(get)
	rootCmd.AddCommand(serve, newMigrateCmd(get), newSummaryCmd(get))
	rootCmd.RunE = serve.RunE
	return rootCmd
}
