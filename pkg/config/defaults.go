// Copyright 2026 Gender API Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"time"
)

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		API:    DefaultAPIConfig(),
		Log:    DefaultLogConfig(),
		Server: DefaultServerConfig(),
	}
}

// DefaultAPIConfig returns default upstream settings.
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		ServerKeyEnv: "GENDER_API_KEY",
		BaseURL:      "https://gender-api.com",
		Timeout:      30 * time.Second,
	}
}

// DefaultLogConfig returns default logging settings.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// DefaultServerConfig returns default serve settings.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		ListenAddr:  ":8080",
		MetricsPath: "/metrics",
	}
}
