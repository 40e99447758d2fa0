// Copyright 2026 Gender API Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package genderapi

// Query parameter names understood by the upstream API.
const (
	ParamName     = "name"
	ParamEmail    = "email"
	ParamSplit    = "split"
	ParamCountry  = "country"
	ParamIP       = "ip"
	ParamLanguage = "language"
	ParamKey      = "key"
)

// MaxNames is the largest name list accepted in one lookup.
const MaxNames = 100

// nameSeparator joins multi-name lookups into a single parameter value.
const nameSeparator = ";"

// Params maps query parameter names to values. Later writes win.
type Params map[string]string

// Clone returns an independent copy.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Mode selects the upstream endpoint.
type Mode int

const (
	// ModeLookup queries a name, email or split name.
	ModeLookup Mode = iota
	// ModeStats queries account statistics.
	ModeStats
)

// Path returns the endpoint path for the mode, without a leading slash.
func (m Mode) Path() string {
	if m == ModeStats {
		return "get-stats"
	}
	return "get"
}

func (m Mode) String() string {
	return m.Path()
}

// Result is the decoded JSON body, returned as-is. Single lookups and stats
// decode to map[string]any, multi-name lookups usually to []any.
type Result = any
