package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"psmcp/internal/config"
	"psmcp/internal/powerschool"
	"psmcp/pkg/logging"
)

// ServerName identifies this server in the MCP initialize handshake.
const ServerName = "powerschool-mcp"

// Options configures the MCP server.
type Options struct {
	// Transport is one of the config.MCPTransport* constants.
	Transport string

	// Host and Port are used by the HTTP transports.
	Host string
	Port int

	// Version is the build version reported to MCP clients.
	Version string
}

// Server exposes the PowerSchool gateway as MCP tools over a configurable
// transport.
type Server struct {
	client    *powerschool.Client
	status    config.Status
	opts      Options
	mcpServer *server.MCPServer

	sseServer            *server.SSEServer
	streamableHTTPServer *server.StreamableHTTPServer
}

// New creates a server for the given gateway and registers all tools.
// The status report backs the get_server_info tool without network access.
func New(client *powerschool.Client, status config.Status, opts Options) *Server {
	if opts.Version == "" {
		opts.Version = "dev"
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		opts.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		client:    client,
		status:    status,
		opts:      opts,
		mcpServer: mcpServer,
	}
	s.registerTools()

	return s
}

// Start runs the configured transport and blocks until the server stops.
// For stdio the call returns when the client closes the stream; for the
// HTTP transports it returns after Stop shuts the listener down.
func (s *Server) Start(ctx context.Context) error {
	switch s.opts.Transport {
	case config.MCPTransportStdio:
		logging.Info("Server", "Starting MCP server with stdio transport")
		return server.ServeStdio(s.mcpServer)

	case config.MCPTransportSSE:
		addr := fmt.Sprintf("%s:%d", s.opts.Host, s.opts.Port)
		baseURL := fmt.Sprintf("http://%s", addr)
		logging.Info("Server", "Starting MCP server with SSE transport on %s", addr)
		s.sseServer = server.NewSSEServer(
			s.mcpServer,
			server.WithBaseURL(baseURL),
			server.WithSSEEndpoint("/sse"),
			server.WithMessageEndpoint("/message"),
			server.WithKeepAlive(true),
			server.WithKeepAliveInterval(30*time.Second),
		)
		if err := s.sseServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil

	case config.MCPTransportStreamableHTTP:
		addr := fmt.Sprintf("%s:%d", s.opts.Host, s.opts.Port)
		logging.Info("Server", "Starting MCP server with streamable-http transport on %s", addr)
		s.streamableHTTPServer = server.NewStreamableHTTPServer(s.mcpServer)
		if err := s.streamableHTTPServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil

	default:
		return fmt.Errorf("unknown transport %q", s.opts.Transport)
	}
}

// Stop shuts down the HTTP transports. The stdio transport stops when its
// stream closes and needs no explicit shutdown.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.sseServer != nil {
		logging.Info("Server", "Shutting down SSE server")
		if err := s.sseServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	if s.streamableHTTPServer != nil {
		logging.Info("Server", "Shutting down streamable HTTP server")
		if err := s.streamableHTTPServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}
