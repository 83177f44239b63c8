package cli

import (
	"fmt"
	"strings"

	"mercado_erp/internal/app"
	"mercado_erp/internal/config"
	"mercado_erp/internal/infrastructure/seed"
	"mercado_erp/internal/logger"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func newSeedCommand(cfg func() *config.Config) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the demo data to storage",
		Long: `Write the demo users, suppliers, products, invoices, financial records
and trips. Collections that already hold data are kept unless --force is set.`,
		Example: `  erpctl seed
  STORAGE_DRIVER=dynamodb erpctl seed --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.WithComponent("seed")
			ctx := cmd.Context()

			store, err := app.OpenStore(ctx, cfg())
			if err != nil {
				return err
			}
			defer store.Close()

			fx, err := seed.Load(bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			written, err := app.Seed(ctx, store, fx, force)
			if err != nil {
				return err
			}

			log.Info().Strs("keys", written).Bool("force", force).Msg("[seed][cli] done")
			if len(written) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to seed; use --force to overwrite")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", strings.Join(written, ", "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite collections that already hold data")
	return cmd
}
