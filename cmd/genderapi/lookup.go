// Copyright 2026 Gender API Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/genderapi-toolkit/genderapi/pkg/genderapi"
	"github.com/genderapi-toolkit/genderapi/pkg/output"
	"github.com/spf13/cobra"
)

// localeFlags holds the optional localization flags of lookup commands.
type localeFlags struct {
	country  string
	ip       string
	language string
}

func (l *localeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&l.country, "country", "", "ISO 3166-1 alpha-2 country code, e.g. DE")
	cmd.Flags().StringVar(&l.ip, "ip", "", "Client IP address used for localization")
	cmd.Flags().StringVar(&l.language, "language", "", "Browser language tag, e.g. de-DE")
}

// apply localizes req; an unsupported country fails before any request.
func (l *localeFlags) apply(req *genderapi.Request) error {
	if l.country != "" {
		if _, err := req.ByLocalization(l.country); err != nil {
			return err
		}
	}
	if l.ip != "" {
		req.ByIP(l.ip)
	}
	if l.language != "" {
		req.ByLanguage(l.language)
	}
	return nil
}

// lookupFunc runs one terminal call on a prepared request.
type lookupFunc func(ctx context.Context, req *genderapi.Request) (genderapi.Result, error)

// runLookup loads config, builds a client and request, runs fn and prints the result.
func runLookup(cmd *cobra.Command, g *globalFlags, locale *localeFlags, fn lookupFunc) error {
	if _, err := output.ParseFormat(g.output); err != nil {
		return err
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(cfg, newLogger(cmd.ErrOrStderr(), cfg))
	if err != nil {
		return err
	}

	req := client.NewRequest()
	if locale != nil {
		if err := locale.apply(req); err != nil {
			return err
		}
	}

	res, err := fn(cmd.Context(), req)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), g.output, res)
}

func newNameCmd(g *globalFlags) *cobra.Command {
	locale := &localeFlags{}
	cmd := &cobra.Command{
		Use:   "name <first-name> [first-name...]",
		Short: "Look up one or more first names",
		Long: fmt.Sprintf(`Look up the gender of a first name.

Several names (up to %d) are sent in one request and return a list.`, genderapi.MaxNames),
		Example: `  genderapi name Andrea --country IT
  genderapi name Anna Peter Kim -o yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, g, locale, func(ctx context.Context, req *genderapi.Request) (genderapi.Result, error) {
				if len(args) == 1 {
					return req.CheckName(ctx, args[0])
				}
				return req.CheckNames(ctx, args)
			})
		},
	}
	locale.register(cmd)
	return cmd
}

func newEmailCmd(g *globalFlags) *cobra.Command {
	locale := &localeFlags{}
	cmd := &cobra.Command{
		Use:     "email <address>",
		Short:   "Look up the first name contained in an email address",
		Example: `  genderapi email markus.meier@example.com`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, g, locale, func(ctx context.Context, req *genderapi.Request) (genderapi.Result, error) {
				return req.CheckEmail(ctx, args[0])
			})
		},
	}
	locale.register(cmd)
	return cmd
}

func newSplitCmd(g *globalFlags) *cobra.Command {
	locale := &localeFlags{}
	cmd := &cobra.Command{
		Use:   "split <full name...>",
		Short: "Split a full name and look up the first name",
		Long: `Split a combined "First Last" string into first and last name
and look up the first name. Arguments are joined with spaces.`,
		Example: `  genderapi split Theresa Miller`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			full := strings.Join(args, " ")
			return runLookup(cmd, g, locale, func(ctx context.Context, req *genderapi.Request) (genderapi.Result, error) {
				return req.CheckSplitNames(ctx, full)
			})
		},
	}
	locale.register(cmd)
	return cmd
}

func newStatsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show account statistics (remaining requests)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, g, nil, func(ctx context.Context, req *genderapi.Request) (genderapi.Result, error) {
				return req.Stats(ctx)
			})
		},
	}
}
