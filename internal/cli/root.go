// Package cli holds the erpctl operator commands.
package cli

import (
	"fmt"
	"os"

	"mercado_erp/internal/config"
	"mercado_erp/internal/logger"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

// NewRootCommand builds a fresh command tree; tests get their own copy.
func NewRootCommand() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:   "erpctl",
		Short: "Operator tool for the Mercado ERP back office",
		Long: `erpctl runs the Mercado ERP API and maintains its storage.

Storage is chosen by STORAGE_DRIVER (sqlite, dynamodb or memory) and the
same environment variables the API reads.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if err := logger.Setup(loaded.GetLoggerConfig()); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			cfg = loaded
			return nil
		},
	}

	current := func() *config.Config { return cfg }
	root.AddCommand(newServeCommand(current), newSeedCommand(current), newCheckCommand(current))
	return root
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := NewRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
