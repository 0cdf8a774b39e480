package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/aspect/pkg/screen"
)

var ErrInvalidLength = errors.New("length must be a positive number")

func NewConvertCmd(ra *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert VALUE [UNIT]",
		Short: "Convert a length between inches and centimeters",
		Example: `  aspect convert 27 in     # 68.58cm
  aspect convert 68.58cm   # 27"`,
		Args: cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return screen.AllUnits, cobra.ShellCompDirectiveNoFileComp
			}

			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, t, err := ra.loadConfig()
			if err != nil {
				return err
			}

			raw, from := splitDiagonalUnit(args[0], cfg.Units.DiagonalUnit)
			if len(args) == 2 {
				from, err = screen.ParseUnit(args[1])
				if err != nil {
					return err
				}
			}

			v, ok := screen.ParseLength(raw)
			if !ok {
				return fmt.Errorf("%w: %q", ErrInvalidLength, args[0])
			}

			to := from.Other()

			return writeOutput(cmd, t, "", screen.FormatTrimmed(screen.Convert(v, from, to), 6)+to.Suffix())
		},
	}

	bindEnvVars(cmd)

	return cmd
}
