// Copyright 2026 Gender API Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package output renders API results for the command line.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/genderapi-toolkit/genderapi/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml (case-insensitive). Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.ValidationError(fmt.Sprintf("unknown output format %q (must be json or yaml)", s), nil)
	}
}

// Formatter writes values in a fixed format.
type Formatter struct {
	format Format
}

// NewFormatter creates a formatter for format.
func NewFormatter(format Format) *Formatter {
	return &Formatter{format: format}
}

// Write encodes v to w. JSON is indented with two spaces.
func (f *Formatter) Write(w io.Writer, v any) error {
	switch f.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
