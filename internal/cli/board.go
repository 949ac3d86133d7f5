package cli

import (
	"github.com/spf13/cobra"

	"pmplan/internal/impact"
	"pmplan/internal/output"
)

func newRankCommand(app *App) *cobra.Command {
	var by string
	var top int

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank backlog stories",
		Long: `Rank every story in the backlog.

Sort keys:
  impact    impact score, highest first (default)
  priority  must, should, could, wont
  status    todo, inProgress, done
  recent    most recently updated first
  oldest    oldest created first
  title     alphabetical`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if by == "" {
				by = app.Config.Ranking.DefaultSort
			}
			key, err := impact.ParseSortKey(by)
			if err != nil {
				return app.fail(err)
			}
			if !cmd.Flags().Changed("top") {
				top = app.Config.Ranking.Top
			}

			ranked, err := app.Planner.Prioritize(cmd.Context(), key, top)
			if err != nil {
				return app.fail(err)
			}
			if app.jsonOutput() {
				return output.WriteJSON(app.Out, ranked)
			}
			app.Printer.Ranking(ranked)
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "", "sort key (default from config)")
	cmd.Flags().IntVar(&top, "top", 0, "show only the first N stories (0 = all)")
	return cmd
}

func newStatsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show impact statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Planner.Statistics(cmd.Context())
			if err != nil {
				return app.fail(err)
			}
			if app.jsonOutput() {
				return output.WriteJSON(app.Out, st)
			}
			app.Printer.Stats(st)
			return nil
		},
	}
}

func newExplainCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <story-id>",
		Short: "Show how a story's impact score is built",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := app.Planner.Explain(cmd.Context(), args[0])
			if err != nil {
				return app.fail(err)
			}
			if app.jsonOutput() {
				return output.WriteJSON(app.Out, exp)
			}
			app.Printer.Explanation(exp)
			return nil
		},
	}
}

func newValidateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [story-id...]",
		Short: "List data-quality warnings",
		Long: `List advisory data-quality warnings for the given stories, or for
every story when none are given. Warnings never change scores and never
cause a non-zero exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			warnings, err := app.Planner.Validate(cmd.Context(), args...)
			if err != nil {
				return app.fail(err)
			}
			if app.jsonOutput() {
				return output.WriteJSON(app.Out, warnings)
			}
			app.Printer.Warnings(warnings)
			return nil
		},
	}
}
