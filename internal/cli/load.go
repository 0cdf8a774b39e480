package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/macropower/aspect/pkg/config"
	"github.com/macropower/aspect/pkg/export"
	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/ui/theme"
	"github.com/macropower/aspect/pkg/ui/yamls"
)

func (ra *RootArgs) configPath() string {
	if ra.Config != "" {
		return ra.Config
	}

	return config.GetPath()
}

// loadConfig reads and validates the configuration file. A missing file
// yields the defaults.
func (ra *RootArgs) loadConfig() (*config.Configuration, *theme.Theme, error) {
	path := ra.configPath()

	cl, err := config.NewLoaderFromFile(path, config.WithThemeFromData())
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no config file, using defaults", slog.String("path", path))

		cfg := config.New()

		return cfg, theme.New(cfg.UI.Theme), nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read config %q: %w", path, err)
	}

	err = cl.Validate()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	cfg, err := cl.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return cfg, cl.Theme(), nil
}

// unitFlags are the unit overrides shared by the commands that print
// screens. Empty values keep the configured units.
type unitFlags struct {
	Diagonal string
	Size     string
}

func (uf *unitFlags) AddFlags(cmd *cobra.Command) {
	usage := fmt.Sprintf("one of: %s (default from config)", strings.Join(screen.AllUnits, ", "))

	cmd.Flags().StringVar(&uf.Diagonal, "diagonal-unit", "", "Unit of diagonal inputs and output, "+usage)
	cmd.Flags().StringVar(&uf.Size, "size-unit", "", "Unit of the physical size output, "+usage)

	for _, name := range []string{"diagonal-unit", "size-unit"} {
		err := cmd.RegisterFlagCompletionFunc(name,
			cobra.FixedCompletions(screen.AllUnits, cobra.ShellCompDirectiveNoFileComp),
		)
		if err != nil {
			panic(err)
		}
	}
}

// Resolve applies the flags on top of defaults.
func (uf *unitFlags) Resolve(defaults screen.UnitOptions) (screen.UnitOptions, error) {
	units := defaults

	if uf.Diagonal != "" {
		u, err := screen.ParseUnit(uf.Diagonal)
		if err != nil {
			return units, fmt.Errorf("--diagonal-unit: %w", err)
		}

		units.DiagonalUnit = u
	}

	if uf.Size != "" {
		u, err := screen.ParseUnit(uf.Size)
		if err != nil {
			return units, fmt.Errorf("--size-unit: %w", err)
		}

		units.SizeUnit = u
	}

	return units, nil
}

func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "format", "f", string(export.FormatText),
		fmt.Sprintf("Output format, one of: %s", strings.Join(export.AllFormats, ", ")))

	err := cmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions(export.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// formatLang returns the highlighter language for an export format, or ""
// when the format is not highlighted.
func formatLang(f export.Format) string {
	switch f {
	case export.FormatText:
		return yamls.LangYAML
	case export.FormatJSON:
		return yamls.LangJSON
	default:
		return ""
	}
}

// writeOutput writes text to the command's stdout, highlighted in lang when
// stdout is a terminal. A trailing newline is added if text has none.
func writeOutput(cmd *cobra.Command, t *theme.Theme, lang, text string) error {
	w := cmd.OutOrStdout()

	if lang != "" && isTerminal(w) {
		h, err := yamls.NewHighlighter(t, lang, termenv.NewOutput(w).Profile)
		if err != nil {
			return fmt.Errorf("create highlighter: %w", err)
		}

		highlighted, err := h.Highlight(text)
		if err != nil {
			slog.Debug("could not highlight output", slog.Any("error", err))
		} else {
			text = highlighted
		}
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	_, err := io.WriteString(w, text)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
