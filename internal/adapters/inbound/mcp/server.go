package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with all ciusage tools and resources
// registered. A non-empty tool overrides the tool configured for each
// directory; empty leaves the directory's .ciusage.yaml in charge.
func NewServer(tool string) *server.MCPServer {
	s := server.NewMCPServer(
		"ciusage",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, tool)
	registerResources(s)

	return s
}
