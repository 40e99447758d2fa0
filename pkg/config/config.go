// Copyright 2026 Gender API Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for the gender-api toolkit.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Global Config: $HOME/.genderapi/config.yaml
// 3. Project Config: ./.genderapi.yaml (or an explicit --config file)
// 4. Environment Variables: GENDERAPI_*
package config

import (
	"os"
	"strings"
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// APIConfig contains upstream API settings.
type APIConfig struct {
	// ServerKey is accepted in files but ServerKeyEnv is preferred.
	ServerKey    string        `yaml:"server_key,omitempty"`
	ServerKeyEnv string        `yaml:"server_key_env"` // e.g., "GENDER_API_KEY"
	BaseURL      string        `yaml:"base_url"`
	Timeout      time.Duration `yaml:"timeout"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// ServerConfig contains settings for the serve command.
type ServerConfig struct {
	ListenAddr  string `yaml:"listen_addr"`
	MetricsPath string `yaml:"metrics_path"`
}

// ResolveServerKey returns the inline key, or the value of ServerKeyEnv.
func (a APIConfig) ResolveServerKey() string {
	if k := strings.TrimSpace(a.ServerKey); k != "" {
		return k
	}
	if a.ServerKeyEnv == "" {
		return ""
	}
	return strings.TrimSpace(os.Getenv(a.ServerKeyEnv))
}
