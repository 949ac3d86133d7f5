// Package cli implements the pmplan command-line interface using Cobra.
//
// The CLI is the caller side of the planning engines: it loads the backlog,
// asks the planner for rankings or sprint membership edits, and prints the
// result as styled tables or JSON.
//
// Key types:
//   - [App] holds the dependencies shared by every command
//   - [ExecuteResult] carries the exit code of a run for testing
//
// Commands return [ExitError] instead of calling os.Exit, so [RunWithConfig]
// can be exercised from tests. Only [Execute] terminates the process.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"pmplan/internal/config"
	"pmplan/internal/output"
	"pmplan/internal/planning"
	"pmplan/internal/store"
)

// App holds the dependencies shared by all commands.
//
// Config is set before flag parsing; the remaining fields are built by
// [App.init] once global flags have been applied.
type App struct {
	Config  *config.Config
	Planner *planning.Planner
	Printer *output.Printer
	Logger  *log.Logger

	// Out receives command output; ErrOut receives logs and errors.
	Out    io.Writer
	ErrOut io.Writer
}

// globalFlags are the persistent flags that override configuration.
type globalFlags struct {
	configPath  string
	backlogPath string
	format      string
	logLevel    string
}

// init applies flag overrides to the config and builds the planner, printer
// and logger.
func (a *App) init(flags *globalFlags) error {
	if flags.configPath != "" {
		cfg, err := config.NewLoader().LoadFromFile(flags.configPath)
		if err != nil {
			return err
		}
		a.Config = cfg
	}
	if flags.backlogPath != "" {
		a.Config.Backlog.Path = flags.backlogPath
	}
	if flags.format != "" {
		a.Config.Output.Format = flags.format
	}
	if flags.logLevel != "" {
		a.Config.Log.Level = flags.logLevel
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(a.Config.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.Config.Log.Level, err)
	}
	a.Logger = log.NewWithOptions(a.ErrOut, log.Options{
		Level:  level,
		Prefix: "pmplan",
	})

	reader := store.NewReaderWithPath("", a.Config.Backlog.Path)
	writer := store.NewWriter(reader.Path())
	a.Logger.Debug("using backlog", "path", reader.Path())

	a.Planner = planning.NewPlanner(reader, writer, a.Logger)
	a.Planner.SetOptions(planning.Options{UseGoals: a.Config.Ranking.UseGoals})
	a.Printer = output.NewPrinter(a.Out, a.Config.Output.TruncateLength)
	return nil
}

// jsonOutput reports whether commands should emit JSON.
func (a *App) jsonOutput() bool {
	return a.Config.Output.Format == config.FormatJSON
}

// fail logs err and converts it to an exit code 1 [ExitError].
func (a *App) fail(err error) error {
	a.Logger.Error(err.Error())
	return NewExitError(1)
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "pmplan",
		Short: "Backlog prioritization and sprint planning",
		Long: `pmplan ranks backlog stories by business impact and keeps story
status and sprint assignment in step with sprint membership.

The backlog is read from .pmplan/backlog.yaml (or backlog.yaml) in the
current directory unless --backlog or PMPLAN_BACKLOG_PATH says otherwise.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default: search standard locations)")
	pf.StringVar(&flags.backlogPath, "backlog", "", "backlog file path")
	pf.StringVar(&flags.format, "format", "", "output format: table or json")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newRankCommand(app),
		newStatsCommand(app),
		newExplainCommand(app),
		newValidateCommand(app),
		newSprintCommand(app),
		newAuditCommand(app),
	)
	return root
}

// ExecuteResult is the outcome of a CLI run.
type ExecuteResult struct {
	ExitCode int
	Err      error
}

// RunWithConfig runs the CLI with the given base config and arguments,
// writing to out and errOut. It never exits the process.
func RunWithConfig(cfg *config.Config, args []string, out, errOut io.Writer) ExecuteResult {
	app := &App{Config: cfg, Out: out, ErrOut: errOut}
	cmd := NewRootCommand(app)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return ExecuteResult{ExitCode: 0}
}

// Execute loads configuration, runs the CLI against os.Args and exits with
// the resulting code.
func Execute() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := RunWithConfig(cfg, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(result.ExitCode)
}
