package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"psmcp/pkg/logging"
)

// Environment variables recognized by Load. The POWERSCHOOL_* names follow
// the original deployment convention for this adapter.
const (
	EnvURL          = "POWERSCHOOL_URL"
	EnvClientID     = "POWERSCHOOL_CLIENT_ID"
	EnvClientSecret = "POWERSCHOOL_CLIENT_SECRET"
	EnvUsername     = "POWERSCHOOL_USERNAME"
	EnvPassword     = "POWERSCHOOL_PASSWORD"
	EnvPort         = "PORT"
)

// Load assembles the configuration from defaults, an optional YAML config
// file and the environment, in increasing order of precedence. An empty
// path skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		logging.Debug("Config", "loaded configuration from %s", path)
	}

	applyEnv(&cfg)

	return cfg, nil
}

// applyEnv overlays environment variables onto the configuration.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvURL); v != "" {
		cfg.PowerSchool.URL = v
	}
	if v := os.Getenv(EnvClientID); v != "" {
		cfg.PowerSchool.ClientID = v
	}
	if v := os.Getenv(EnvClientSecret); v != "" {
		cfg.PowerSchool.ClientSecret = v
	}
	if v := os.Getenv(EnvUsername); v != "" {
		cfg.PowerSchool.Username = v
	}
	if v := os.Getenv(EnvPassword); v != "" {
		cfg.PowerSchool.Password = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			logging.Warn("Config", "ignoring invalid %s value %q", EnvPort, v)
		} else {
			cfg.Server.Port = port
		}
	}
}
