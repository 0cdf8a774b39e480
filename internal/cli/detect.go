package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/aspect/pkg/display"
	"github.com/macropower/aspect/pkg/export"
	"github.com/macropower/aspect/pkg/screen"
	"github.com/macropower/aspect/pkg/ui/yamls"
)

type DetectArgs struct {
	*RootArgs

	JSON bool
}

func NewDetectArgs(rootArgs *RootArgs) *DetectArgs {
	return &DetectArgs{RootArgs: rootArgs}
}

func NewDetectCmd(da *DetectArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "List the connected displays",
		Long: "List the resolution of every connected display. " +
			"The physical size is not reported by the system, so no diagonal is known.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, t, err := da.loadConfig()
			if err != nil {
				return err
			}

			displays, err := display.NewDetector(da.displays).List()
			if err != nil {
				return fmt.Errorf("detect displays: %w", err)
			}

			if da.JSON {
				b, err := json.MarshalIndent(displays, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal displays: %w", err)
				}

				return writeOutput(cmd, t, yamls.LangJSON, string(b))
			}

			reports := make([]*screen.Report, 0, len(displays))
			for _, d := range displays {
				r, ok := d.Entry().Report()
				if !ok {
					continue
				}

				reports = append(reports, r)
			}

			return writeReports(cmd, t, export.FormatText, true, reports)
		},
	}
	cmd.Flags().BoolVar(&da.JSON, "json", false, "Print the displays as JSON")

	bindEnvVars(cmd)

	return cmd
}
