package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/aspect/pkg/display"
	"github.com/macropower/aspect/pkg/export"
	"github.com/macropower/aspect/pkg/log"
)

const (
	cmdName = "aspect"
	cmdDesc = `Display geometry calculator: resolution, aspect ratio, DPI and physical size.`

	cmdExamples = `  # Open the interactive editor:
  aspect

  # Compute one screen:
  aspect calc 2560 1440 27

  # Same, with a compact screen argument and the diagonal in centimeters:
  aspect calc 2560x1440@68.58cm

  # Render a screen list file, keeping only high density screens:
  aspect list screens.yaml --filter 'screen.dpi > 150'

  # Compare two screens:
  aspect diff 2560x1440@27 3840x2160@27`
)

type RootArgs struct {
	copier    export.Copier
	displays  display.Source
	LogLevel  string
	LogFormat string
	Config    string
}

// RootOpt configures the commands built by [NewRootCmd].
type RootOpt func(*RootArgs)

// WithCopier replaces the system clipboard.
func WithCopier(c export.Copier) RootOpt {
	return func(ra *RootArgs) {
		ra.copier = c
	}
}

// WithDisplaySource replaces the operating system's display list.
func WithDisplaySource(src display.Source) RootOpt {
	return func(ra *RootArgs) {
		ra.displays = src
	}
}

func NewRootArgs(opts ...RootOpt) *RootArgs {
	ra := &RootArgs{}
	for _, opt := range opts {
		opt(ra)
	}

	if ra.copier == nil {
		ra.copier = export.Clipboard{}
	}
	if ra.displays == nil {
		ra.displays = display.System()
	}

	return ra
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))
	cmd.PersistentFlags().
		StringVar(&ra.Config, "config", "", "Path to the aspect configuration file")

	var err error

	err = cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	err = cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	err = cmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}
}

// NewRootCmd builds the aspect command tree. Without a subcommand it runs
// the editor, as `aspect tui` does.
func NewRootCmd(opts ...RootOpt) *cobra.Command {
	args := NewRootArgs(opts...)
	tuiArgs := NewTUIArgs(args)

	tuiCmd := NewTUICmd(tuiArgs)
	cmd := &cobra.Command{
		Use:               cmdName + " [file]",
		Short:             cmdDesc,
		Example:           cmdExamples,
		PersistentPreRunE: setupLogging(args),
		Args:              tuiCmd.Args,
		RunE:              tuiCmd.RunE,
		SilenceUsage:      true,
	}

	args.AddFlags(cmd)
	tuiArgs.AddFlags(cmd)

	cmd.AddCommand(
		tuiCmd,
		NewCalcCmd(NewCalcArgs(args)),
		NewListCmd(NewListArgs(args)),
		NewRatioCmd(),
		NewConvertCmd(args),
		NewDiffCmd(NewDiffArgs(args)),
		NewPresetCmd(NewPresetArgs(args)),
		NewDetectCmd(NewDetectArgs(args)),
		NewMCPCmd(NewMCPArgs(args)),
		NewConfigCmd(NewConfigArgs(args)),
	)

	bindEnvVars(cmd)

	return cmd
}

func setupLogging(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logHandler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), ra.LogLevel, ra.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		slog.SetDefault(slog.New(logHandler))

		return nil
	}
}
