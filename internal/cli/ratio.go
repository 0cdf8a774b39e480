package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/aspect/pkg/screen"
)

func NewRatioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ratio RATIO | WIDTH HEIGHT",
		Short: "Name an aspect ratio",
		Example: `  aspect ratio 2560 1080   # 21.3:9
  aspect ratio 16:10       # 16:10
  aspect ratio 1.333       # 4:3`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				ratio float64
				err   error
			)

			if len(args) == 2 {
				ratio, err = screen.ParseRatio(args[0] + ":" + args[1])
			} else {
				ratio, err = screen.ParseRatio(args[0])
			}
			if err != nil {
				return err
			}

			name, err := screen.RatioName(ratio)
			if err != nil {
				return err
			}

			return writeOutput(cmd, nil, "", fmt.Sprintf("%s (%.4f:1)", name, ratio))
		},
	}

	bindEnvVars(cmd)

	return cmd
}
