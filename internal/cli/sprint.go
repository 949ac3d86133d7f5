package cli

import (
	"github.com/spf13/cobra"

	"pmplan/internal/output"
	"pmplan/internal/planning"
)

func newSprintCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Edit sprint membership",
		Long: `Edit which stories belong to a sprint.

Stories entering a sprint move from unassigned to planned. Stories leaving
a sprint return to unassigned unless they are done. With --team, every
member story inherits the sprint's team.`,
	}

	cmd.AddCommand(
		newSprintSetCommand(app),
		newSprintAddCommand(app),
		newSprintRemoveCommand(app),
	)
	return cmd
}

// printSummary writes s in the configured output format.
func printSummary(app *App, s planning.Summary) error {
	if app.jsonOutput() {
		return output.WriteJSON(app.Out, s)
	}
	app.Printer.Summary(s)
	return nil
}

func newSprintSetCommand(app *App) *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "set <sprint-id> [story-id...]",
		Short: "Replace a sprint's stories",
		Long: `Replace the sprint's story list with the given stories. Stories no
longer listed are removed from the sprint. With no story IDs the sprint is
emptied.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Planner.SetMembership(cmd.Context(), args[0], args[1:], team)
			if err != nil {
				return app.fail(err)
			}
			return printSummary(app, summary)
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "assign the sprint and its stories to this team")
	return cmd
}

func newSprintAddCommand(app *App) *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "add <sprint-id> <story-id>...",
		Short: "Add stories to a sprint",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Planner.AddStories(cmd.Context(), args[0], args[1:], team)
			if err != nil {
				return app.fail(err)
			}
			return printSummary(app, summary)
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "assign the sprint and its stories to this team")
	return cmd
}

func newSprintRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <sprint-id> <story-id>...",
		Short: "Remove stories from a sprint",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Planner.RemoveStories(cmd.Context(), args[0], args[1:])
			if err != nil {
				return app.fail(err)
			}
			return printSummary(app, summary)
		},
	}
}
