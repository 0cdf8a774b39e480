package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/aspect/pkg/export"
	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/ui/yamls"
)

type DiffArgs struct {
	*RootArgs

	Units unitFlags
}

func NewDiffArgs(rootArgs *RootArgs) *DiffArgs {
	return &DiffArgs{RootArgs: rootArgs}
}

func NewDiffCmd(da *DiffArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "diff A B",
		Short:   "Show how two screens differ",
		Example: `  aspect diff 2560x1440@27 3840x2160@27`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, t, err := da.loadConfig()
			if err != nil {
				return err
			}

			units, err := da.Units.Resolve(*cfg.Units)
			if err != nil {
				return err
			}

			reports := make([]*screen.Report, 0, len(args))
			for _, arg := range args {
				e, err := parseScreenArg(arg, units)
				if err != nil {
					return err
				}

				r, ok := e.Report()
				if !ok {
					return fmt.Errorf("%w: %s", screen.ErrInvalidGeometry, arg)
				}

				reports = append(reports, r)
			}

			diff := export.Diff(args[0], args[1], reports[0], reports[1])
			if diff == "" {
				return nil
			}

			return writeOutput(cmd, t, yamls.LangDiff, diff)
		},
	}
	da.Units.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}
