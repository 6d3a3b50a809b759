package cli

import (
	mcpadapter "github.com/openkraft/ciusage/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the ciusage MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var tool string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start ciusage MCP server (stdio)",
		Long:  "Start the ciusage MCP server using stdio transport. This lets AI assistants summarize bundle directories and parse summary output.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewServer(tool)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&tool, "tool", "", "Administration tool to run (default: the directory's config, then asadm)")

	return cmd
}
