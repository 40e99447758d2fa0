// Copyright 2026 Gender API Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/genderapi-toolkit/genderapi/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is the prefix for all environment variables.
	EnvPrefix = "GENDERAPI"
	// ProjectConfigFile is the project-level config file name.
	ProjectConfigFile = ".genderapi.yaml"
	// GlobalConfigDir is the global config directory name.
	GlobalConfigDir = ".genderapi"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Environment variables read by applyEnvOverrides.
const (
	EnvServerKey  = EnvPrefix + "_SERVER_KEY"
	EnvBaseURL    = EnvPrefix + "_BASE_URL"
	EnvTimeout    = EnvPrefix + "_TIMEOUT"
	EnvLogLevel   = EnvPrefix + "_LOG_LEVEL"
	EnvLogFormat  = EnvPrefix + "_LOG_FORMAT"
	EnvListenAddr = EnvPrefix + "_LISTEN_ADDR"
)

// Loader loads configuration from files and environment.
type Loader struct {
	projectRoot string
	configFile  string
	skipGlobal  bool
}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// WithProjectRoot sets the project root directory.
func (l *Loader) WithProjectRoot(root string) *Loader {
	l.projectRoot = root
	return l
}

// WithConfigFile loads path instead of the project config. Unlike the
// project file, an explicit file must exist.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// SkipGlobal skips loading global config.
func (l *Loader) SkipGlobal() *Loader {
	l.skipGlobal = true
	return l
}

// Load loads configuration with full precedence order:
// 1. Defaults
// 2. Global Config ($HOME/.genderapi/config.yaml)
// 3. Project Config (./.genderapi.yaml) or the explicit config file
// 4. Environment Variables (GENDERAPI_*)
//
// Load does not call Validate; callers apply flag overrides first.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if !l.skipGlobal {
		if globalCfg, err := l.loadGlobalConfig(); err == nil {
			mergeConfig(cfg, globalCfg)
		}
		// global config is optional
	}

	if l.configFile != "" {
		fileCfg, err := l.LoadFromPath(l.configFile)
		if err != nil {
			return nil, err
		}
		mergeConfig(cfg, fileCfg)
	} else if projectCfg, err := l.loadProjectConfig(); err == nil {
		mergeConfig(cfg, projectCfg)
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path. Fields absent from
// the file keep their zero value.
func (l *Loader) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read config file: %s", path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse config file: %s", path), err)
	}

	return &cfg, nil
}

// loadGlobalConfig loads global config from $HOME/.genderapi/config.yaml.
func (l *Loader) loadGlobalConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return l.LoadFromPath(filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFile))
}

// loadProjectConfig loads project config from ./.genderapi.yaml.
func (l *Loader) loadProjectConfig() (*Config, error) {
	root := l.projectRoot
	if root == "" {
		root = "."
	}

	return l.LoadFromPath(filepath.Join(root, ProjectConfigFile))
}

// applyEnvOverrides applies environment variable overrides.
func (l *Loader) applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvServerKey); v != "" {
		cfg.API.ServerKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.ConfigError(EnvTimeout, err).WithContext("value", v)
		}
		cfg.API.Timeout = d
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}

	if v := os.Getenv(EnvListenAddr); v != "" {
		cfg.Server.ListenAddr = v
	}

	return nil
}

// mergeConfig merges src into dst (src overrides dst).
func mergeConfig(dst, src *Config) {
	if src.API.ServerKey != "" {
		dst.API.ServerKey = src.API.ServerKey
	}
	if src.API.ServerKeyEnv != "" {
		dst.API.ServerKeyEnv = src.API.ServerKeyEnv
	}
	if src.API.BaseURL != "" {
		dst.API.BaseURL = src.API.BaseURL
	}
	if src.API.Timeout > 0 {
		dst.API.Timeout = src.API.Timeout
	}

	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.Format != "" {
		dst.Log.Format = src.Log.Format
	}

	if src.Server.ListenAddr != "" {
		dst.Server.ListenAddr = src.Server.ListenAddr
	}
	if src.Server.MetricsPath != "" {
		dst.Server.MetricsPath = src.Server.MetricsPath
	}
}

// FindConfigPaths returns all existing config file paths in precedence order.
func FindConfigPaths() []string {
	paths := []string{}

	if homeDir, err := os.UserHomeDir(); err == nil {
		globalPath := filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalPath); err == nil {
			paths = append(paths, globalPath)
		}
	}

	if _, err := os.Stat(ProjectConfigFile); err == nil {
		paths = append(paths, ProjectConfigFile)
	}

	return paths
}

// GetEnvConfig returns all environment variables that start with GENDERAPI_.
// The server key value is masked.
func GetEnvConfig() map[string]string {
	result := make(map[string]string)

	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, EnvPrefix+"_") {
			continue
		}
		kv := strings.SplitN(env, "=", 2)
		if len(kv) != 2 {
			continue
		}
		if kv[0] == EnvServerKey {
			kv[1] = "****"
		}
		result[kv[0]] = kv[1]
	}

	return result
}
