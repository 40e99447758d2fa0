// Copyright 2026 Gender API Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package server exposes the gender-api client as an HTTP component.
//
// Every incoming request gets a fresh genderapi.Request, so lookups never
// share parameters.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"github.com/genderapi-toolkit/genderapi/pkg/errors"
	"github.com/genderapi-toolkit/genderapi/pkg/genderapi"
	"github.com/genderapi-toolkit/genderapi/pkg/observability"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configures a Server.
type Options struct {
	// MetricsPath serves Gatherer when both are set.
	MetricsPath string
	Gatherer    prometheus.Gatherer
	Logger      observability.Logger
}

// Server routes HTTP lookups to the upstream client.
type Server struct {
	client *genderapi.Client
	logger observability.Logger
	router *mux.Router
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// New builds the router.
func New(client *genderapi.Client, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = observability.NopLogger()
	}

	s := &Server{
		client: client,
		logger: logger,
		router: mux.NewRouter(),
	}

	s.router.Use(s.requestIDMiddleware)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	if opts.MetricsPath != "" && opts.Gatherer != nil {
		s.router.Handle(opts.MetricsPath, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	v1 := s.router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/name", s.handleName).Methods(http.MethodGet)
	v1.HandleFunc("/email", s.handleEmail).Methods(http.MethodGet)
	v1.HandleFunc("/split", s.handleSplit).Methods(http.MethodGet)
	v1.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not a proper path", Kind: "NOT_FOUND"})
	})

	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", observability.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("handled",
			observability.String("request_id", id),
			observability.String("path", r.URL.Path),
			observability.Duration("elapsed", time.Since(start)),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleName(w http.ResponseWriter, r *http.Request) {
	names := splitNames(r.URL.Query()["name"])
	if len(names) == 0 {
		s.badRequest(w, "name is required")
		return
	}

	req, ok := s.localized(w, r)
	if !ok {
		return
	}

	var (
		res genderapi.Result
		err error
	)
	if len(names) == 1 {
		res, err = req.CheckName(r.Context(), names[0])
	} else {
		res, err = req.CheckNames(r.Context(), names)
	}
	s.respond(w, res, err)
}

func (s *Server) handleEmail(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		s.badRequest(w, "email is required")
		return
	}

	req, ok := s.localized(w, r)
	if !ok {
		return
	}
	res, err := req.CheckEmail(r.Context(), email)
	s.respond(w, res, err)
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	full := strings.TrimSpace(r.URL.Query().Get("split"))
	if full == "" {
		s.badRequest(w, "split is required")
		return
	}

	req, ok := s.localized(w, r)
	if !ok {
		return
	}
	res, err := req.CheckSplitNames(r.Context(), full)
	s.respond(w, res, err)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	res, err := s.client.NewRequest().Stats(r.Context())
	s.respond(w, res, err)
}

// localized returns a fresh request with the optional country, ip and
// language query parameters applied. On failure it has already written
// the response.
func (s *Server) localized(w http.ResponseWriter, r *http.Request) (*genderapi.Request, bool) {
	q := r.URL.Query()
	req := s.client.NewRequest()

	if c := q.Get("country"); c != "" {
		if _, err := req.ByLocalization(c); err != nil {
			s.respond(w, nil, err)
			return nil, false
		}
	}
	if ip := q.Get("ip"); ip != "" {
		req.ByIP(ip)
	}
	if lang := q.Get("language"); lang != "" {
		req.ByLanguage(lang)
	}
	return req, true
}

func (s *Server) badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg, Kind: errors.ErrValidation.String()})
}

func (s *Server) respond(w http.ResponseWriter, res genderapi.Result, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, res)
		return
	}

	status := http.StatusInternalServerError
	kind := "UNKNOWN"
	if typ, ok := errors.TypeOf(err); ok {
		kind = typ.String()
		switch typ {
		case errors.ErrValidation:
			status = http.StatusBadRequest
		case errors.ErrAPI:
			status = http.StatusBadGateway
		case errors.ErrTransport:
			status = http.StatusGatewayTimeout
		}
	}

	s.logger.Warn("lookup failed", observability.Err(err), observability.Int("status", status))
	writeJSON(w, status, errorBody{Error: err.Error(), Kind: kind})
}

// splitNames accepts repeated name parameters and ";"-separated lists.
func splitNames(values []string) []string {
	var names []string
	for _, v := range values {
		for _, n := range strings.Split(v, ";") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
	}
	return names
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
