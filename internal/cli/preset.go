package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macropower/aspect/pkg/export"
	"github.com/macropower/aspect/pkg/preset"
	"github.com/macropower/aspect/pkg/ui/yamls"
)

type PresetArgs struct {
	*RootArgs

	Format string
	Limit  int
}

func NewPresetArgs(rootArgs *RootArgs) *PresetArgs {
	return &PresetArgs{RootArgs: rootArgs}
}

func (pa *PresetArgs) AddFlags(cmd *cobra.Command) {
	formats := []string{string(export.FormatText), string(export.FormatJSON)}

	cmd.Flags().IntVarP(&pa.Limit, "limit", "n", 0, "Maximum number of presets to print, 0 for all")
	cmd.Flags().StringVarP(&pa.Format, "format", "f", string(export.FormatText),
		fmt.Sprintf("Output format, one of: %s", strings.Join(formats, ", ")))

	err := cmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions(formats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

func NewPresetCmd(pa *PresetArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preset [query]",
		Aliases: []string{"presets"},
		Short:   "Search well-known displays",
		Example: `  aspect preset macbook
  aspect preset 1440p --format json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, t, err := pa.loadConfig()
			if err != nil {
				return err
			}

			format, err := export.ParseFormat(pa.Format)
			if err != nil {
				return err
			}

			matches := cfg.Catalog().Search(strings.Join(args, " "))
			if pa.Limit > 0 && len(matches) > pa.Limit {
				matches = matches[:pa.Limit]
			}

			switch format {
			case export.FormatJSON:
				presets := make([]preset.Preset, 0, len(matches))
				for _, m := range matches {
					presets = append(presets, m.Preset)
				}

				b, err := json.MarshalIndent(presets, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal presets: %w", err)
				}

				return writeOutput(cmd, t, yamls.LangJSON, string(b))

			case export.FormatText:
				if len(matches) == 0 {
					return fmt.Errorf("no presets match %q", strings.Join(args, " "))
				}

				lines := make([]string, 0, len(matches))
				for _, m := range matches {
					lines = append(lines, m.Preset.Describe())
				}

				return writeOutput(cmd, t, "", strings.Join(lines, "\n"))

			default:
				return fmt.Errorf("%w %q for presets", export.ErrUnknownFormat, format)
			}
		},
	}
	pa.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}
