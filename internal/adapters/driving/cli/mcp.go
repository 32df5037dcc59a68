package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/mcp"
)

var (
	mcpPort int
	mcpHost string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol integration",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose ask, retrieve and the playbooks over MCP",
	Long: `Serve the assistant to MCP clients.

Tools:      ask, retrieve
Resources:  kb://documents, kb://stats, kb://playbooks/{intent}{?lang}

Without --port the server speaks JSON-RPC on stdio, which is what desktop
assistants expect when they launch the binary themselves:

  {"mcpServers": {"launchpad-assist": {"command": "assist", "args": ["mcp", "serve"]}}}

With --port it serves the streamable HTTP transport instead, e.g. for the
MCP Inspector:

  assist mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "serve HTTP on this port instead of stdio")
	mcpServeCmd.Flags().StringVar(&mcpHost, "host", "localhost", "interface to bind with --port")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	s, err := loadServices(cmd)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Ask: s.Ask, Playbooks: s.Playbooks})
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	startWatch(ctx, s)

	if mcpPort <= 0 {
		return server.Run(ctx)
	}

	addr := net.JoinHostPort(mcpHost, strconv.Itoa(mcpPort))
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(ctx, addr)
}
