package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/macropower/aspect/pkg/export"
	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/screenlist"
	"github.com/macropower/aspect/pkg/ui/theme"
)

var ErrNotInteractive = errors.New("stdin is not a terminal")

const calcExamples = `  # Full HD at 24 inches:
  aspect calc 1920 1080 24

  # A diagonal in centimeters, printed as JSON:
  aspect calc 1920x1080@61cm --format json

  # One screen per line from stdin:
  printf '1366 768 15.6\n2560x1440@27\n' | aspect calc -

  # Fill in a form:
  aspect calc --interactive`

type CalcArgs struct {
	*RootArgs

	Units       unitFlags
	Format      string
	Rotate      bool
	Copy        bool
	Interactive bool
}

func NewCalcArgs(rootArgs *RootArgs) *CalcArgs {
	return &CalcArgs{RootArgs: rootArgs}
}

func (ca *CalcArgs) AddFlags(cmd *cobra.Command) {
	ca.Units.AddFlags(cmd)
	addFormatFlag(cmd, &ca.Format)
	cmd.Flags().BoolVarP(&ca.Rotate, "rotate", "r", false, "Swap width and height")
	cmd.Flags().BoolVarP(&ca.Copy, "copy", "c", false, "Copy the text form to the clipboard")
	cmd.Flags().BoolVarP(&ca.Interactive, "interactive", "i", false, "Prompt for the screen")
}

func NewCalcCmd(ca *CalcArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calc [width height [diagonal] | WxH[@diagonal] | -]",
		Aliases: []string{"c"},
		Short:   "Compute the geometry of screens",
		Example: calcExamples,
		Args: func(cmd *cobra.Command, args []string) error {
			if ca.Interactive {
				if len(args) > 0 {
					return errors.New("--interactive accepts no args")
				}

				return nil
			}

			return cobra.RangeArgs(1, 3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, ca, args)
		},
	}
	ca.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func runCalc(cmd *cobra.Command, ca *CalcArgs, args []string) error {
	cfg, t, err := ca.loadConfig()
	if err != nil {
		return err
	}

	units, err := ca.Units.Resolve(*cfg.Units)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(ca.Format)
	if err != nil {
		return err
	}

	var (
		entries []screenlist.Entry
		readErr error
	)

	switch {
	case ca.Interactive:
		e, err := runCalcForm(cmd.Context(), t, units)
		if err != nil {
			return err
		}

		entries = append(entries, e)

	case len(args) == 1 && args[0] == "-":
		entries, readErr = readScreens(cmd.InOrStdin(), units)
		if len(entries) == 0 {
			return readErr
		}

	default:
		e, err := parseScreenFields(args, units)
		if err != nil {
			return err
		}

		entries = append(entries, e)
	}

	if ca.Rotate {
		rotate := screenlist.Rotate()
		for i := range entries {
			rotate(&entries[i])
		}
	}

	reports, invalid := entryReports(entries)
	invalid = errors.Join(readErr, invalid)
	if len(reports) == 0 {
		return invalid
	}

	err = writeReports(cmd, t, format, len(entries) > 1, reports)
	if err != nil {
		return err
	}

	if ca.Copy {
		err = copyReports(cmd.Context(), ca.copier, reports)
		if err != nil {
			return err
		}
	}

	return invalid
}

// readScreens reads one screen per line. Blank lines and lines starting
// with # are skipped.
func readScreens(r io.Reader, units screen.UnitOptions) ([]screenlist.Entry, error) {
	var (
		entries []screenlist.Entry
		errs    []error
	)

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		e, err := parseScreenLine(line, units)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", n, err))

			continue
		}

		entries = append(entries, e)
	}

	err := scanner.Err()
	if err != nil {
		return entries, fmt.Errorf("read stdin: %w", err)
	}

	if len(entries) == 0 && len(errs) == 0 {
		return nil, export.ErrNoScreens
	}

	return entries, errors.Join(errs...)
}

// entryReports serializes entries in their own units. Invalid entries are
// returned as one joined error.
func entryReports(entries []screenlist.Entry) ([]*screen.Report, error) {
	var (
		reports []*screen.Report
		errs    []error
	)

	for _, e := range entries {
		r, ok := e.Report()
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", screen.ErrInvalidGeometry, e.Label()))

			continue
		}

		reports = append(reports, r)
	}

	return reports, errors.Join(errs...)
}

func writeReports(cmd *cobra.Command, t *theme.Theme, format export.Format, list bool, reports []*screen.Report) error {
	var opts []export.ExporterOpt
	if list {
		opts = append(opts, export.AsList())
	}

	out, err := export.New(format, opts...).String(reports...)
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	return writeOutput(cmd, t, formatLang(format), out)
}

func copyReports(ctx context.Context, c export.Copier, reports []*screen.Report) error {
	var err error
	if len(reports) == 1 {
		err = export.CopyEntry(c, reports[0])
	} else {
		err = export.CopyAll(c, reports...)
	}

	if err != nil {
		return fmt.Errorf("copy: %w", err)
	}

	slog.InfoContext(ctx, "copied to clipboard", slog.Int("screens", len(reports)))

	return nil
}

func runCalcForm(ctx context.Context, t *theme.Theme, units screen.UnitOptions) (screenlist.Entry, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return screenlist.Entry{}, ErrNotInteractive
	}

	e := screenlist.Entry{
		DiagonalUnit: units.DiagonalUnit,
		SizeUnit:     units.SizeUnit,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Width").
				Placeholder("1920").
				Value(&e.Width).
				Validate(validatePixels),
			huh.NewInput().
				Title("Height").
				Placeholder("1080").
				Value(&e.Height).
				Validate(validatePixels),
			huh.NewInput().
				Title("Diagonal").
				Description("Leave empty if unknown.").
				Value(&e.Diagonal).
				Validate(validateDiagonal),
			huh.NewSelect[screen.Unit]().
				Title("Diagonal unit").
				Options(
					huh.NewOption("inches", screen.UnitInch),
					huh.NewOption("centimeters", screen.UnitCentimeter),
				).
				Value(&e.DiagonalUnit),
		),
	).
		WithShowHelp(false).
		WithTheme(theme.HuhTheme(t))

	err := form.RunWithContext(ctx)
	if err != nil {
		return screenlist.Entry{}, fmt.Errorf("run calc form: %w", err)
	}

	return e, nil
}

func validatePixels(s string) error {
	if _, ok := screen.Parse(s, "1"); !ok {
		return errors.New("enter a positive whole number of pixels")
	}

	return nil
}

func validateDiagonal(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, ok := screen.ParseLength(s); !ok {
		return errors.New("enter a positive length")
	}

	return nil
}
