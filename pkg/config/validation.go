// Package config handles configuration loading and validation
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/genderapi-toolkit/genderapi/pkg/errors"
)

var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"text": true, "json": true}
)

// Validate validates the configuration. Every failure is an ErrConfig error.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ConfigError("config is nil", nil)
	}

	if err := c.API.Validate(); err != nil {
		return errors.ConfigError("api config", err)
	}

	if err := c.Log.Validate(); err != nil {
		return errors.ConfigError("log config", err)
	}

	if err := c.Server.Validate(); err != nil {
		return errors.ConfigError("server config", err)
	}

	return nil
}

// Validate validates upstream settings. A server key must resolve.
func (a *APIConfig) Validate() error {
	if a.ResolveServerKey() == "" {
		if a.ServerKeyEnv != "" {
			return fmt.Errorf("server key is required (set api.server_key or $%s)", a.ServerKeyEnv)
		}
		return fmt.Errorf("server key is required")
	}

	if a.BaseURL != "" {
		u, err := url.Parse(a.BaseURL)
		if err != nil {
			return fmt.Errorf("base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("base_url must be http or https, got %q", a.BaseURL)
		}
	}

	if a.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", a.Timeout)
	}

	return nil
}

// Validate validates logging settings.
func (l *LogConfig) Validate() error {
	if l.Level != "" && !validLogLevels[strings.ToLower(l.Level)] {
		return fmt.Errorf("invalid level %q (must be debug, info, warn or error)", l.Level)
	}
	if l.Format != "" && !validLogFormats[strings.ToLower(l.Format)] {
		return fmt.Errorf("invalid format %q (must be text or json)", l.Format)
	}
	return nil
}

// Validate validates serve settings.
func (s *ServerConfig) Validate() error {
	if s.MetricsPath != "" && !strings.HasPrefix(s.MetricsPath, "/") {
		return fmt.Errorf("metrics_path must start with '/', got %q", s.MetricsPath)
	}
	return nil
}
