package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/macropower/aspect/pkg/config"
	"github.com/macropower/aspect/pkg/display"
	"github.com/macropower/aspect/pkg/export"
	"github.com/macropower/aspect/pkg/log"
	"github.com/macropower/aspect/pkg/screenlist"
	"github.com/macropower/aspect/pkg/ui"
)

const tuiExamples = `  # Start with the screens from the config file:
  aspect tui

  # Edit a screen list file; ctrl+o saves it:
  aspect tui screens.yaml

  # Print the configured screens instead (stdout is not a terminal):
  aspect tui | cat`

type TUIArgs struct {
	*RootArgs

	Save   string
	Detect bool
}

func NewTUIArgs(rootArgs *RootArgs) *TUIArgs {
	return &TUIArgs{RootArgs: rootArgs}
}

func (ta *TUIArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ta.Save, "save", "s", "", "Screen list file written on save, defaults to the opened file")
	cmd.Flags().BoolVar(&ta.Detect, "detect", false, "Start with the resolution of the primary display")

	err := cmd.MarkFlagFilename("save", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark save flag: %w", err))
	}
}

func NewTUICmd(ta *TUIArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tui [file]",
		Short:   "Edit a list of screens interactively (default command)",
		Example: tuiExamples,
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
			return []cobra.Completion{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			return runTUI(cmd, ta, path)
		},
	}
	ta.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func runTUI(cmd *cobra.Command, ta *TUIArgs, path string) error {
	configPath := ta.configPath()

	err := config.WriteDefaultConfig(configPath, false)
	if err != nil {
		slog.Error("write default config", slog.Any("err", err))
	}

	cfg, _, err := ta.loadConfig()
	if err != nil {
		return err
	}

	l, err := initialList(cfg, path)
	if err != nil {
		return err
	}

	if l.Len() == 0 && (ta.Detect || *cfg.Detect) {
		seedFromDisplay(l, ta.displays)
	}

	// If stdout is not a terminal, print the list instead.
	if !isTerminal(cmd.OutOrStdout()) {
		return printList(cmd.OutOrStdout(), l)
	}

	savePath := ta.Save
	if savePath == "" {
		savePath = path
	}

	logBuf := log.NewCircularBuffer(100)

	logHandler, err := log.CreateHandlerWithStrings(logBuf, ta.LogLevel, ta.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	slog.SetDefault(slog.New(logHandler))

	p := ui.NewProgram(cfg.UI,
		ui.WithList(l),
		ui.WithCatalog(cfg.Catalog()),
		ui.WithCopier(ta.copier),
		ui.WithSavePath(savePath),
	)

	_, err = p.Run()
	if err != nil {
		slog.Error("run UI", slog.Any("err", err))
		flushLogs(cmd.ErrOrStderr(), logBuf)

		return fmt.Errorf("ui program failure: %w", err)
	}

	flushLogs(cmd.ErrOrStderr(), logBuf)

	return nil
}

// initialList returns the screens of the file at path, or the configured
// screens when path is empty. A missing file starts an empty list that is
// created on save.
func initialList(cfg *config.Configuration, path string) (*screenlist.List, error) {
	if path == "" {
		return cfg.List(), nil
	}

	doc, err := screenlist.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("new screen list", slog.String("path", path))

		return screenlist.New(screenlist.WithDefaultUnits(*cfg.Units)), nil
	}
	if err != nil {
		return nil, err
	}

	return doc.List(*cfg.Units), nil
}

func seedFromDisplay(l *screenlist.List, src display.Source) {
	d, err := display.NewDetector(src).Primary()
	if err != nil {
		slog.Debug("could not detect display", slog.Any("error", err))

		return
	}

	slog.Debug("detected display",
		slog.Int64("width", d.Width),
		slog.Int64("height", d.Height),
	)

	l.Add(d.Entry())
}

func printList(w io.Writer, l *screenlist.List) error {
	return export.New(export.FormatText, export.AsList()).Write(w, l.Reports()...)
}

func flushLogs(w io.Writer, buf *log.CircularBuffer) {
	slog.Debug("flush logs to console",
		slog.Int("count", buf.Size()),
		slog.Int("max", buf.Capacity()),
		slog.Bool("truncated", buf.IsFull()),
	)

	_, err := buf.WriteTo(w)
	if err != nil {
		panic(err)
	}
}
