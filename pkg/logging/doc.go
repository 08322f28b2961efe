// Package logging provides structured logging for psmcp with unified
// log handling and level filtering.
//
// This package is a thin wrapper around Go's standard slog package. Every
// log entry carries a subsystem identifier so that output from the different
// parts of the server (Gateway, TokenManager, Server, Config) can be
// filtered and categorized.
//
// # Usage
//
//	import "psmcp/pkg/logging"
//
//	// Initialize with Info level logging to stderr
//	logging.Init(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Server", "Starting MCP server on %s", addr)
//	logging.Debug("Gateway", "request %s: GET %s", id, url)
//	logging.Error("TokenManager", err, "Authentication failed")
//
// Log output goes to the writer given to Init. When the server runs with
// stdio transport, stdout belongs to the MCP protocol, so logs must go to
// stderr (the serve command does this).
package logging
