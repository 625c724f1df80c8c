package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewCrucibleMCPServer creates an MCP server with the crucible tools
// registered. The projectPath is the root directory CI runs in.
func NewCrucibleMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"crucible",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
