// Copyright 2026 Gender API Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/genderapi-toolkit/genderapi/pkg/genderapi"
	"github.com/genderapi-toolkit/genderapi/pkg/observability"
	"github.com/genderapi-toolkit/genderapi/pkg/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

// serveFlags holds the flags for the serve command
type serveFlags struct {
	listen      string
	metricsPath string
	noMetrics   bool
}

func newServeCmd(g *globalFlags) *cobra.Command {
	opts := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve lookups over HTTP",
		Long: `Run an HTTP service that forwards lookups to gender-api.com.

Routes:
  GET /v1/name?name=...      one or more names (repeat or separate with ';')
  GET /v1/email?email=...
  GET /v1/split?split=...
  GET /v1/stats
  GET /healthz
  GET /metrics               Prometheus metrics

Lookups accept optional country, ip and language parameters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if opts.listen != "" {
				cfg.Server.ListenAddr = opts.listen
			}
			if opts.metricsPath != "" {
				cfg.Server.MetricsPath = opts.metricsPath
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg)

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			metrics := observability.NewMetrics(reg)

			client, err := newClient(cfg, logger, genderapi.WithMetrics(metrics))
			if err != nil {
				return err
			}

			srvOpts := server.Options{Logger: logger}
			if !opts.noMetrics {
				srvOpts.MetricsPath = cfg.Server.MetricsPath
				srvOpts.Gatherer = reg
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, server.New(client, srvOpts), cfg.Server.ListenAddr)
		},
	}

	cmd.Flags().StringVarP(&opts.listen, "listen", "l", "", "Listen address (default from config, :8080)")
	cmd.Flags().StringVar(&opts.metricsPath, "metrics-path", "", "Path for Prometheus metrics (default /metrics)")
	cmd.Flags().BoolVar(&opts.noMetrics, "no-metrics", false, "Do not expose Prometheus metrics")

	return cmd
}

// serve is a seam for tests.
var serve = func(ctx context.Context, s *server.Server, addr string) error {
	return s.ListenAndServe(ctx, addr)
}
