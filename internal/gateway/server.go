package gateway

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"awsmcp/internal/config"
	"awsmcp/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server exposes a populated Registry over MCP. Each registered tool becomes
// an MCP tool whose input schema is generated from its argument specs; each
// invocation result becomes a single JSON text content.
type Server struct {
	registry *Registry
	cfg      config.GatewayConfig

	mcpServer            *server.MCPServer
	sseServer            *server.SSEServer
	streamableHTTPServer *server.StreamableHTTPServer
}

// NewServer creates the MCP bridge for a registry. The registry must be
// fully populated: tools registered after construction are not exposed.
func NewServer(name, version string, registry *Registry, cfg config.GatewayConfig) *Server {
	mcpServer := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		registry:  registry,
		cfg:       cfg,
		mcpServer: mcpServer,
	}

	for _, tool := range registry.Tools() {
		s.mcpServer.AddTool(mcp.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: inputSchema(tool.Args),
		}, s.createToolHandler(tool.Name))
	}

	return s
}

// Start runs the configured transport and blocks until the context is
// cancelled (stdio) or Shutdown is called (HTTP transports).
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	switch s.cfg.Transport {
	case config.MCPTransportSSE:
		logging.Info(logSubsystem, "Starting MCP server with SSE transport on %s", addr)
		baseURL := fmt.Sprintf("http://%s", addr)
		s.sseServer = server.NewSSEServer(
			s.mcpServer,
			server.WithBaseURL(baseURL),
			server.WithSSEEndpoint("/sse"),
			server.WithMessageEndpoint("/message"),
			server.WithKeepAlive(true),
			server.WithKeepAliveInterval(30*time.Second),
		)
		if err := s.sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil

	case config.MCPTransportStreamableHTTP:
		logging.Info(logSubsystem, "Starting MCP server with streamable-http transport on %s", addr)
		s.streamableHTTPServer = server.NewStreamableHTTPServer(s.mcpServer)
		if err := s.streamableHTTPServer.Start(addr); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil

	case config.MCPTransportStdio:
		fallthrough
	default:
		logging.Info(logSubsystem, "Starting MCP server with stdio transport")
		stdioServer := server.NewStdioServer(s.mcpServer)
		return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}
}

// Shutdown stops the HTTP transport servers. The stdio transport stops on
// context cancellation and needs no explicit shutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.sseServer != nil {
		if err := s.sseServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	if s.streamableHTTPServer != nil {
		if err := s.streamableHTTPServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}

// createToolHandler wraps a registry invocation in an MCP-compatible handler.
// Gateway errors become tool-level error results, not protocol errors, so
// the caller always receives either one success content or one error message.
func (s *Server) createToolHandler(toolName string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := make(map[string]interface{})
		if req.Params.Arguments != nil {
			if argsMap, ok := req.Params.Arguments.(map[string]interface{}); ok {
				args = argsMap
			}
		}

		envelope, err := s.registry.Invoke(ctx, toolName, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		payload, err := envelope.JSON()
		if err != nil {
			logging.Error(logSubsystem, err, "Failed to encode result for tool %s", toolName)
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}

		return mcp.NewToolResultText(payload), nil
	}
}

// inputSchema converts argument specs to the JSON Schema shape MCP clients
// expect.
func inputSchema(args []ArgSpec) mcp.ToolInputSchema {
	properties := make(map[string]interface{})
	required := []string{}

	for _, arg := range args {
		propSchema := map[string]interface{}{
			"type":        arg.Type,
			"description": arg.Description,
		}
		if arg.Type == TypeArray {
			itemType := arg.ItemType
			if itemType == "" {
				itemType = TypeString
			}
			propSchema["items"] = map[string]interface{}{"type": itemType}
		}
		if arg.Default != nil {
			propSchema["default"] = arg.Default
		}

		properties[arg.Name] = propSchema

		if arg.Required {
			required = append(required, arg.Name)
		}
	}

	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}
