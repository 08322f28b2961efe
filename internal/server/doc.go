// Package server implements the MCP server exposing PowerSchool data as
// callable tools.
//
// Each tool wraps one read-only PowerSchool operation and returns the
// gateway's Result envelope serialized as JSON text. Handlers never surface
// upstream failures as MCP protocol errors; a failed PowerSchool call is a
// successful tool call whose envelope has success=false. Only argument
// validation problems (a malformed date, for example) short-circuit before
// the gateway is consulted, and those too are returned as failure envelopes.
//
// The server speaks three transports: stdio (default, for AI assistant
// integration), SSE and streamable HTTP.
package server
