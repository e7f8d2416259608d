// Package server wires the tool registry into an MCP server. This is
// the composition boundary: structured results have already been
// rendered to text by the tool layer, and every well-formed call is
// answered with a text payload, so MCP clients never observe a
// protocol-level tool error.
package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/user/dingtalk-mcp/pkg/registry"
)

// Name identifies the server to MCP clients.
const Name = "dingding-mcp"

// New creates an MCP server exposing every tool in the registry.
func New(reg *registry.Registry, version string) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, desc := range reg.ListTools() {
		s.AddTool(
			mcp.NewToolWithRawSchema(desc.Name, desc.Description, desc.InputSchema),
			handler(reg, desc.Name),
		)
	}
	return s
}

// handler adapts one registry tool to the MCP handler signature.
func handler(reg *registry.Registry, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := reg.CallTool(ctx, name, request.GetArguments())
		if err != nil {
			// Only context cancellation reaches here; let the session
			// machinery observe it.
			return nil, err
		}
		return mcp.NewToolResultText(text), nil
	}
}

// ServeStdio runs the server over stdin/stdout until the client hangs up.
// Tool calls arrive one at a time over the stream; nothing here runs
// concurrently.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
