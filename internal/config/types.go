package config

import (
	"fmt"

	"psmcp/internal/powerschool"
)

const (
	// MCPTransportStreamableHTTP is the streamable HTTP transport.
	MCPTransportStreamableHTTP = "streamable-http"
	// MCPTransportSSE is the Server-Sent Events transport.
	MCPTransportSSE = "sse"
	// MCPTransportStdio is the standard I/O transport.
	MCPTransportStdio = "stdio"
)

// Config is the complete application configuration.
type Config struct {
	PowerSchool PowerSchoolConfig `yaml:"powerschool"`
	Server      ServerConfig      `yaml:"server"`
}

// PowerSchoolConfig holds the upstream connection settings.
type PowerSchoolConfig struct {
	URL          string `yaml:"url,omitempty"`          // PowerSchool server base URL
	ClientID     string `yaml:"clientId,omitempty"`     // OAuth2 client ID
	ClientSecret string `yaml:"clientSecret,omitempty"` // OAuth2 client secret
	Username     string `yaml:"username,omitempty"`     // Optional: selects the password grant
	Password     string `yaml:"password,omitempty"`     // Optional: selects the password grant
}

// ServerConfig holds the MCP server settings.
type ServerConfig struct {
	Transport string `yaml:"transport,omitempty"` // Transport to use (default: stdio)
	Host      string `yaml:"host,omitempty"`      // Host to bind to for HTTP transports (default: localhost)
	Port      int    `yaml:"port,omitempty"`      // Port for HTTP transports (default: 8000)
}

// Default returns the configuration defaults applied before any file or
// environment values.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Transport: MCPTransportStdio,
			Host:      "localhost",
			Port:      8000,
		},
	}
}

// Credentials converts the PowerSchool settings into client credentials.
func (c Config) Credentials() powerschool.Credentials {
	return powerschool.Credentials{
		BaseURL:      c.PowerSchool.URL,
		ClientID:     c.PowerSchool.ClientID,
		ClientSecret: c.PowerSchool.ClientSecret,
		Username:     c.PowerSchool.Username,
		Password:     c.PowerSchool.Password,
	}
}

// Validate checks the configuration for use by the serve command: the
// PowerSchool credentials must be complete and the transport must be known.
func (c Config) Validate() error {
	if err := c.Credentials().Validate(); err != nil {
		return err
	}
	switch c.Server.Transport {
	case MCPTransportStdio, MCPTransportSSE, MCPTransportStreamableHTTP:
	default:
		return fmt.Errorf("unknown transport %q (expected %s, %s or %s)",
			c.Server.Transport, MCPTransportStdio, MCPTransportSSE, MCPTransportStreamableHTTP)
	}
	if c.Server.Transport != MCPTransportStdio && (c.Server.Port < 1 || c.Server.Port > 65535) {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	return nil
}
