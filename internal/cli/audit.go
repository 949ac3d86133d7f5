package cli

import (
	"github.com/spf13/cobra"

	"pmplan/internal/output"
)

func newAuditCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check sprint membership consistency",
		Long: `Check that every story assigned to a sprint is listed by it, and
that every sprint lists only existing stories assigned to it.

Exits with status 1 when any inconsistency is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			violations, err := app.Planner.Audit(cmd.Context())
			if err != nil {
				return app.fail(err)
			}
			if app.jsonOutput() {
				if err := output.WriteJSON(app.Out, violations); err != nil {
					return err
				}
			} else {
				app.Printer.Violations(violations)
			}
			if len(violations) > 0 {
				return NewExitError(1)
			}
			return nil
		},
	}
}
