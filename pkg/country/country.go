// Copyright 2026 Gender API Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package country holds the ISO 3166-1 alpha-2 codes accepted by the
// gender-api localization parameter.
package country

import (
	"sort"
	"strings"
)

// supported is built once at init and never written afterwards.
var supported = buildSet(
	// Africa
	"AO", "BF", "BI", "BJ", "BW", "CD", "CF", "CG", "CI", "CM", "CV", "DJ",
	"DZ", "EG", "ER", "ET", "GA", "GH", "GM", "GN", "GQ", "GW", "KE", "KM",
	"LR", "LS", "LY", "MA", "MG", "ML", "MR", "MU", "MW", "MZ", "NA", "NE",
	"NG", "RW", "SC", "SD", "SL", "SN", "SO", "SS", "SZ", "TD", "TG", "TN",
	"TZ", "UG", "ZA", "ZM", "ZW",
	// Americas
	"AR", "BB", "BO", "BR", "BS", "BZ", "CA", "CL", "CO", "CR", "CU", "DM",
	"DO", "EC", "GD", "GT", "GY", "HN", "HT", "JM", "MX", "NI", "PA", "PE",
	"PR", "PY", "SR", "SV", "TT", "US", "UY", "VE",
	// Asia and Middle East
	"AE", "AF", "AM", "AZ", "BD", "BH", "BN", "BT", "CN", "GE", "HK", "ID",
	"IL", "IN", "IQ", "IR", "JO", "JP", "KG", "KH", "KR", "KW", "KZ", "LA",
	"LB", "LK", "MM", "MN", "MO", "MV", "MY", "NP", "OM", "PH", "PK", "PS",
	"QA", "SA", "SG", "SY", "TH", "TJ", "TM", "TR", "TW", "UZ", "VN", "YE",
	// Europe
	"AD", "AL", "AT", "BA", "BE", "BG", "BY", "CH", "CY", "CZ", "DE", "DK",
	"EE", "ES", "FI", "FR", "GB", "GR", "HR", "HU", "IE", "IS", "IT", "LI",
	"LT", "LU", "LV", "MC", "MD", "ME", "MK", "MT", "NL", "NO", "PL", "PT",
	"RO", "RS", "RU", "SE", "SI", "SK", "UA",
	// Oceania
	"AU", "FJ", "NZ", "PG",
)

func buildSet(codes ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

// Normalize trims surrounding space and upper-cases a code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsSupported reports whether code, after normalization, is accepted upstream.
func IsSupported(code string) bool {
	_, ok := supported[Normalize(code)]
	return ok
}

// Codes returns the supported codes in sorted order. The slice is a copy.
func Codes() []string {
	out := make([]string, 0, len(supported))
	for c := range supported {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
