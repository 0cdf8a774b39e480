package cli

import (
	"github.com/spf13/cobra"

	"github.com/macropower/aspect/pkg/mcp"
)

type MCPArgs struct {
	*RootArgs

	ProtocolLog bool
}

func NewMCPArgs(rootArgs *RootArgs) *MCPArgs {
	return &MCPArgs{RootArgs: rootArgs}
}

func NewMCPCmd(ma *MCPArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the screen tools over the Model Context Protocol on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := ma.loadConfig()
			if err != nil {
				return err
			}

			opts := []mcp.ServerOpt{
				mcp.WithCatalog(cfg.Catalog()),
				mcp.WithUnits(*cfg.Units),
			}
			if ma.ProtocolLog {
				opts = append(opts, mcp.WithProtocolLog(cmd.ErrOrStderr()))
			}

			return mcp.NewServer(opts...).Serve(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&ma.ProtocolLog, "protocol-log", false, "Write every JSON-RPC message to stderr")

	bindEnvVars(cmd)

	return cmd
}
