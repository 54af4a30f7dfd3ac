package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/mfigueredo/hearth/pkg/chat"
	"github.com/mfigueredo/hearth/pkg/db"
)

// Server wraps the MCP server with Hearth's chat and device tools. It
// is a local trusted transport: tools are keyed by username rather
// than session tokens.
type Server struct {
	mcpServer  *server.MCPServer
	users      db.UserStore
	devices    db.DeviceStore
	dispatcher *chat.Dispatcher
}

// NewServer creates a new MCP server for chat-driven device control
func NewServer(users db.UserStore, devices db.DeviceStore, dispatcher *chat.Dispatcher) *Server {
	s := &Server{
		users:      users,
		devices:    devices,
		dispatcher: dispatcher,
	}

	// Create MCP server
	s.mcpServer = server.NewMCPServer(
		"hearth",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register all tools
	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
