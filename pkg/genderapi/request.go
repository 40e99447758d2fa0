// Copyright 2026 Gender API Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package genderapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/genderapi-toolkit/genderapi/pkg/country"
	"github.com/genderapi-toolkit/genderapi/pkg/errors"
)

// Request accumulates query parameters for the upstream API.
//
// Parameters are never cleared implicitly: a second terminal call on the
// same Request sends everything set before it. Use Reset or a fresh
// Client.NewRequest for independent lookups.
type Request struct {
	client *Client
	params Params
	mode   Mode
}

// ByLocalization restricts the lookup to a country. Unsupported codes are
// rejected and leave the request unchanged.
func (r *Request) ByLocalization(code string) (*Request, error) {
	if !country.IsSupported(code) {
		return r, errors.ValidationError("unsupported country", nil).
			WithContext("country", code)
	}
	r.set(ParamCountry, country.Normalize(code))
	return r, nil
}

// ByIP localizes the lookup by client IP. The value is not validated.
func (r *Request) ByIP(ip string) *Request {
	r.set(ParamIP, ip)
	return r
}

// ByLanguage localizes the lookup by language tag, e.g. "de-DE".
func (r *Request) ByLanguage(language string) *Request {
	r.set(ParamLanguage, language)
	return r
}

// CheckName looks up a single first name.
func (r *Request) CheckName(ctx context.Context, name string) (Result, error) {
	r.set(ParamName, name)
	return r.send(ctx, ModeLookup)
}

// CheckNames looks up up to MaxNames first names in one call. The names are
// joined with ";" in the order given; an empty list sends an empty name.
func (r *Request) CheckNames(ctx context.Context, names []string) (Result, error) {
	if len(names) > MaxNames {
		return nil, errors.ValidationError("too many names", nil).
			WithContext("count", len(names)).
			WithContext("max", MaxNames)
	}
	r.set(ParamName, strings.Join(names, nameSeparator))
	return r.send(ctx, ModeLookup)
}

// CheckEmail extracts and looks up the first name in an email address.
func (r *Request) CheckEmail(ctx context.Context, email string) (Result, error) {
	r.set(ParamEmail, email)
	return r.send(ctx, ModeLookup)
}

// CheckSplitNames splits a combined "First Last" string upstream and looks up
// the first name. The raw value is stored; it is encoded once when sent.
func (r *Request) CheckSplitNames(ctx context.Context, fullName string) (Result, error) {
	r.set(ParamSplit, fullName)
	return r.send(ctx, ModeLookup)
}

// Stats queries account statistics with whatever parameters are set.
func (r *Request) Stats(ctx context.Context) (Result, error) {
	return r.send(ctx, ModeStats)
}

// Reset clears all parameters and returns to lookup mode.
func (r *Request) Reset() *Request {
	r.params = make(Params)
	r.mode = ModeLookup
	return r
}

// Params returns a copy of the accumulated parameters.
func (r *Request) Params() Params {
	return r.params.Clone()
}

// Mode returns the mode of the last terminal call.
func (r *Request) Mode() Mode {
	return r.mode
}

func (r *Request) set(key, value string) {
	if r.params == nil {
		r.params = make(Params)
	}
	r.params[key] = value
}

func (r *Request) send(ctx context.Context, mode Mode) (Result, error) {
	if r.client == nil {
		return nil, errors.ConfigError("request has no client; use Client.NewRequest", nil)
	}
	r.mode = mode
	res, err := r.client.Do(ctx, mode, r.params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mode.Path(), err)
	}
	return res, nil
}
