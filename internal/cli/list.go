package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/macropower/aspect/pkg/export"
	"github.com/macropower/aspect/pkg/expr"
	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/screenlist"
	"github.com/macropower/aspect/pkg/ui/theme"
)

const listExamples = `  # Print every screen in a file:
  aspect list screens.yaml

  # Only 4K screens, as CSV:
  aspect list screens.yaml --filter 'screen.width >= 3840' --format csv

  # Re-render whenever the file changes:
  aspect list screens.yaml --watch`

type ListArgs struct {
	*RootArgs

	Units  unitFlags
	Filter string
	Format string
	Copy   bool
	Watch  bool
}

func NewListArgs(rootArgs *RootArgs) *ListArgs {
	return &ListArgs{RootArgs: rootArgs}
}

func (la *ListArgs) AddFlags(cmd *cobra.Command) {
	la.Units.AddFlags(cmd)
	addFormatFlag(cmd, &la.Format)
	cmd.Flags().StringVar(&la.Filter, "filter", "", "CEL expression over `screen` that selects the screens to print")
	cmd.Flags().BoolVarP(&la.Copy, "copy", "c", false, "Copy the list text form to the clipboard")
	cmd.Flags().BoolVarP(&la.Watch, "watch", "w", false, "Watch the file and print it again after every change")
}

func NewListCmd(la *ListArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list FILE",
		Aliases: []string{"ls"},
		Short:   "Render a screen list file",
		Example: listExamples,
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
			return []cobra.Completion{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, la, args[0])
		},
	}
	la.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

// listRenderer turns a screen list document into output.
type listRenderer struct {
	theme  *theme.Theme
	filter *expr.Filter
	units  unitFlags
	format export.Format
	base   screen.UnitOptions
}

// Reports returns the valid screens of doc that pass the filter. Units set
// on the command line replace the ones in the file.
func (lr *listRenderer) Reports(doc *screenlist.Document) ([]*screen.Report, error) {
	entries := doc.List(lr.base).Entries()

	if lr.units.Diagonal != "" || lr.units.Size != "" {
		for i, e := range entries {
			units, err := lr.units.Resolve(e.Units())
			if err != nil {
				return nil, err
			}

			if units.DiagonalUnit != e.DiagonalUnit {
				screenlist.ConvertDiagonal(units.DiagonalUnit)(&entries[i])
			}

			entries[i].SizeUnit = units.SizeUnit
		}
	}

	if lr.filter != nil {
		entries = lr.filter.Apply(entries)
	}

	reports := make([]*screen.Report, 0, len(entries))
	for _, e := range entries {
		r, ok := e.Report()
		if !ok {
			slog.Warn("skipping invalid screen", slog.String("screen", e.Label()))

			continue
		}

		reports = append(reports, r)
	}

	if len(reports) == 0 {
		return nil, export.ErrNoScreens
	}

	return reports, nil
}

func runList(cmd *cobra.Command, la *ListArgs, path string) error {
	cfg, t, err := la.loadConfig()
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(la.Format)
	if err != nil {
		return err
	}

	// Check the flags before any file is read.
	_, err = la.Units.Resolve(*cfg.Units)
	if err != nil {
		return err
	}

	lr := &listRenderer{
		theme:  t,
		units:  la.Units,
		format: format,
		base:   *cfg.Units,
	}

	if la.Filter != "" {
		env, err := expr.NewEnvironment()
		if err != nil {
			return err
		}

		lr.filter, err = env.NewFilter(la.Filter)
		if err != nil {
			return fmt.Errorf("--filter: %w", err)
		}
	}

	doc, err := screenlist.Load(path)
	if err != nil {
		return err
	}

	reports, err := lr.Reports(doc)
	if err != nil {
		return err
	}

	err = writeReports(cmd, t, format, true, reports)
	if err != nil {
		return err
	}

	if la.Copy {
		err = copyReports(cmd.Context(), la.copier, reports)
		if err != nil {
			return err
		}
	}

	if !la.Watch {
		return nil
	}

	return watchList(cmd, lr, path)
}

func watchList(cmd *cobra.Command, lr *listRenderer, path string) error {
	w, err := screenlist.NewWatcher(path)
	if err != nil {
		return err
	}

	defer func() {
		err := w.Close()
		if err != nil {
			slog.Debug("close watcher", slog.Any("error", err))
		}
	}()

	slog.Info("watching for changes", slog.String("path", path))

	return w.Watch(cmd.Context(), func(doc *screenlist.Document, err error) {
		if err != nil {
			slog.Error("reload screen list", slog.String("path", path), slog.Any("error", err))

			return
		}

		reports, err := lr.Reports(doc)
		if err != nil {
			slog.Error("render screen list", slog.String("path", path), slog.Any("error", err))

			return
		}

		out := cmd.OutOrStdout()
		if isTerminal(out) {
			mustN(io.WriteString(out, ansi.EraseEntireScreen+ansi.CursorHomePosition))
		} else {
			mustN(io.WriteString(out, "---\n"))
		}

		err = writeReports(cmd, lr.theme, lr.format, true, reports)
		if err != nil {
			slog.Error("write screen list", slog.Any("error", err))
		}
	})
}
