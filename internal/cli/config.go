package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/aspect/pkg/config"
	"github.com/macropower/aspect/pkg/ui/yamls"
)

type ConfigArgs struct {
	*RootArgs

	Write  bool
	Force  bool
	Show   bool
	Schema bool
}

func NewConfigArgs(rootArgs *RootArgs) *ConfigArgs {
	return &ConfigArgs{RootArgs: rootArgs}
}

func (ca *ConfigArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&ca.Write, "write", false, "Write the default configuration and its schema")
	cmd.Flags().BoolVar(&ca.Force, "force", false, "With --write, replace an existing configuration after backing it up")
	cmd.Flags().BoolVar(&ca.Show, "show", false, "Print the active configuration")
	cmd.Flags().BoolVar(&ca.Schema, "schema", false, "Print the JSON schema of the configuration")

	cmd.MarkFlagsMutuallyExclusive("write", "show", "schema")
}

func NewConfigCmd(ca *ConfigArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the configuration path, write the defaults, or show the active configuration",
		Example: `  aspect config --write
  aspect config --show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, ca)
		},
	}
	ca.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func runConfig(cmd *cobra.Command, ca *ConfigArgs) error {
	path := ca.configPath()

	switch {
	case ca.Write:
		err := config.WriteDefaultConfig(path, ca.Force)
		if err != nil {
			return fmt.Errorf("write default config: %w", err)
		}

		return writeOutput(cmd, nil, "", path)

	case ca.Schema:
		_, t, err := ca.loadConfig()
		if err != nil {
			return err
		}

		return writeOutput(cmd, t, yamls.LangJSON, string(config.Schema()))

	case ca.Show:
		cfg, t, err := ca.loadConfig()
		if err != nil {
			return err
		}

		slog.Debug("active configuration", slog.String("path", path))

		b, err := cfg.MarshalYAML()
		if err != nil {
			return err
		}

		return writeOutput(cmd, t, yamls.LangYAML, string(b))

	default:
		return writeOutput(cmd, nil, "", path)
	}
}
