package cli

import (
	"errors"
	"fmt"
	"io"

	"mercado_erp/internal/app"
	"mercado_erp/internal/config"
	"mercado_erp/internal/domain/reconciliation"

	"github.com/spf13/cobra"
)

var errInconsistent = errors.New("invoices and financial records are out of step")

func newCheckCommand(cfg func() *config.Config) *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that every confirmed invoice has exactly one financial record",
		Long: `Report orphan, duplicate and missing financial records. With --fix the
orphans and duplicates are removed and missing records are created.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			container, err := app.New(ctx, cfg())
			if err != nil {
				return err
			}
			defer container.Close()

			var violations []reconciliation.Violation
			if fix {
				violations, err = container.Invoices.RepairConsistency(ctx)
			} else {
				violations, err = container.Invoices.CheckConsistency(ctx)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printViolations(out, violations)
			if !fix {
				if len(violations) > 0 {
					return fmt.Errorf("%w: %d violation(s)", errInconsistent, len(violations))
				}
				fmt.Fprintln(out, "consistent")
				return nil
			}

			left, err := container.Invoices.CheckConsistency(ctx)
			if err != nil {
				return err
			}
			if len(violations) == 0 && len(left) == 0 {
				fmt.Fprintln(out, "consistent")
				return nil
			}
			fmt.Fprintf(out, "repaired %d violation(s)\n", len(violations))
			if len(left) > 0 {
				fmt.Fprintln(out, "not repaired:")
				printViolations(out, left)
				return fmt.Errorf("%w: %d violation(s) not repaired", errInconsistent, len(left))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fix, "fix", false, "repair the violations found")
	return cmd
}

func printViolations(out io.Writer, violations []reconciliation.Violation) {
	for _, v := range violations {
		fmt.Fprintf(out, "%-16s invoice=%s record=%s\n", v.Kind, v.InvoiceID, v.RecordID)
	}
}
