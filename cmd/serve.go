package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"psmcp/internal/config"
	"psmcp/internal/powerschool"
	"psmcp/internal/server"
	"psmcp/pkg/logging"
)

// serveTransport selects the MCP transport: stdio for AI assistant
// integration, sse or streamable-http for network clients.
var serveTransport string

// serveHost and servePort bind the HTTP transports; ignored for stdio.
var (
	serveHost string
	servePort int
)

// serveDebug enables verbose logging across the application.
var serveDebug bool

// serveConfigPath points at an optional YAML config file. Environment
// variables override values from the file.
var serveConfigPath string

// serveCmd starts the MCP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PowerSchool MCP server",
	Long: `Starts the MCP server exposing PowerSchool student data tools.

Configuration comes from the environment (POWERSCHOOL_URL,
POWERSCHOOL_CLIENT_ID, POWERSCHOOL_CLIENT_SECRET, and optionally
POWERSCHOOL_USERNAME and POWERSCHOOL_PASSWORD for the password grant),
optionally layered over a YAML config file given with --config-path.

Transports:
  stdio           - speak MCP over stdin/stdout (default; logs go to stderr)
  sse             - Server-Sent Events endpoint on --host:--port
  streamable-http - streamable HTTP endpoint on --host:--port

Run 'psmcp check' first to verify the configuration without connecting.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	logLevel := logging.LevelInfo
	if serveDebug {
		logLevel = logging.LevelDebug
	}
	// With stdio transport, stdout carries the MCP protocol; logs always go
	// to stderr.
	logging.Init(logLevel, os.Stderr)

	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := powerschool.NewClient(cfg.Credentials())
	if err != nil {
		return err
	}
	logging.Info("Server", "PowerSchool upstream: %s (%s grant)",
		cfg.PowerSchool.URL, cfg.Credentials().Grant())

	srv := server.New(client, cfg.Status(), server.Options{
		Transport: cfg.Server.Transport,
		Host:      cfg.Server.Host,
		Port:      cfg.Server.Port,
		Version:   GetVersion(),
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Shut the HTTP transports down when a termination signal arrives;
	// the stdio transport handles its own lifecycle.
	go func() {
		<-ctx.Done()
		if err := srv.Stop(context.Background()); err != nil {
			logging.Error("Server", err, "Shutdown failed")
		}
	}()

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// applyFlags overlays explicitly-set command line flags onto the
// configuration, taking precedence over both file and environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("transport") {
		cfg.Server.Transport = serveTransport
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveTransport, "transport", config.MCPTransportStdio,
		"MCP transport to use (stdio, sse, streamable-http)")
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to bind to for HTTP transports")
	serveCmd.Flags().IntVar(&servePort, "port", 8000, "Port for HTTP transports")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Path to an optional YAML config file")
}
