// Copyright 2026 Gender API Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package genderapi is a client for the gender-api.com prediction API.
//
// A Client holds the server key and the HTTP transport and is safe for
// concurrent use. A Request accumulates query parameters through chaining
// calls (ByLocalization, ByIP, ByLanguage) and sends them with one of the
// terminal calls (CheckName, CheckNames, CheckEmail, CheckSplitNames, Stats).
// A Request is not safe for concurrent use.
package genderapi

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/genderapi-toolkit/genderapi/pkg/errors"
	"github.com/genderapi-toolkit/genderapi/pkg/observability"
	"github.com/genderapi-toolkit/genderapi/pkg/version"
	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the upstream API root.
	DefaultBaseURL = "https://gender-api.com"
	// DefaultTimeout bounds one upstream round trip.
	DefaultTimeout = 30 * time.Second
)

// HTTPDoer is the subset of *http.Client the transport needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client sends requests to gender-api.com.
type Client struct {
	serverKey  string
	baseURL    string
	userAgent  string
	httpClient HTTPDoer
	logger     observability.Logger
	metrics    *observability.Metrics
}

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if err := validateBaseURL(baseURL); err != nil {
			return errors.ConfigError("invalid base URL", err)
		}
		c.baseURL = strings.TrimSuffix(baseURL, "/")
		return nil
	}
}

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) error {
		if doer == nil {
			return errors.ConfigError("http client must not be nil", nil)
		}
		c.httpClient = doer
		return nil
	}
}

// WithTimeout sets the timeout of the default *http.Client.
// It has no effect after WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return errors.ConfigError(fmt.Sprintf("timeout must be positive, got %s", d), nil)
		}
		if hc, ok := c.httpClient.(*http.Client); ok {
			hc.Timeout = d
		}
		return nil
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l observability.Logger) Option {
	return func(c *Client) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// WithMetrics records every upstream call on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) error {
		c.metrics = m
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua != "" {
			c.userAgent = ua
		}
		return nil
	}
}

// NewClient creates a client. An empty server key is a configuration error.
func NewClient(serverKey string, opts ...Option) (*Client, error) {
	serverKey = strings.TrimSpace(serverKey)
	if serverKey == "" {
		return nil, errors.ConfigError("server key is required", nil)
	}

	c := &Client{
		serverKey: serverKey,
		baseURL:   DefaultBaseURL,
		userAgent: "genderapi-toolkit/" + version.String(),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: observability.NopLogger(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// BaseURL returns the API root in use.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NewRequest returns an empty builder in lookup mode.
func (c *Client) NewRequest() *Request {
	return &Request{
		client: c,
		params: make(Params),
		mode:   ModeLookup,
	}
}

// Do sends params to the endpoint selected by mode and decodes the JSON body.
// The server key is merged in and overrides any "key" entry in params.
// A non-2xx status is an ErrAPI error; the body is not inspected. Failures
// before a response arrives are ErrTransport errors.
func (c *Client) Do(ctx context.Context, mode Mode, params Params) (Result, error) {
	query := make(url.Values, len(params)+1)
	for k, v := range params {
		query.Set(k, v)
	}
	query.Set(ParamKey, c.serverKey)

	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, mode.Path(), query.Encode())

	requestID := uuid.New().String()
	log := c.logger.With(
		observability.String("request_id", requestID),
		observability.String("mode", mode.Path()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.TransportError("failed to create request", redact(err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	log.Debug("sending request", observability.Strings("params", paramKeys(params)))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordRequest(mode.Path(), observability.OutcomeTransport, time.Since(start))
		log.Warn("request failed", observability.Err(redact(err)))
		return nil, errors.TransportError("request failed", redact(err)).
			WithContext("request_id", requestID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.metrics.RecordRequest(mode.Path(), observability.OutcomeAPIError, time.Since(start))
		log.Warn("response error", observability.Int("status", resp.StatusCode))
		return nil, errors.APIError("response error", nil).
			WithStatus(resp.StatusCode).
			WithContext("request_id", requestID)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.metrics.RecordRequest(mode.Path(), observability.OutcomeAPIError, time.Since(start))
		log.Warn("invalid response body", observability.Err(err))
		return nil, errors.APIError("invalid response body", err).
			WithStatus(resp.StatusCode).
			WithContext("request_id", requestID)
	}

	elapsed := time.Since(start)
	c.metrics.RecordRequest(mode.Path(), observability.OutcomeSuccess, elapsed)
	log.Debug("request completed", observability.Int("status", resp.StatusCode), observability.Duration("elapsed", elapsed))

	return result, nil
}

// redact strips the server key from URLs embedded in transport errors.
func redact(err error) error {
	var urlErr *url.Error
	if !stderrors.As(err, &urlErr) {
		return err
	}
	u, perr := url.Parse(urlErr.URL)
	if perr != nil {
		return err
	}
	q := u.Query()
	if q.Has(ParamKey) {
		q.Set(ParamKey, "REDACTED")
		u.RawQuery = q.Encode()
	}
	return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
}

func paramKeys(p Params) []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		if k == ParamKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
