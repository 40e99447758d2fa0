package genderapi

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/genderapi-toolkit/genderapi/pkg/errors"
	"github.com/genderapi-toolkit/genderapi/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// newTestClient starts an httptest server with handler and returns a client
// pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{WithBaseURL(server.URL)}, opts...)
	client, err := NewClient("test-key", opts...)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	client, err := NewClient("test-key")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if client.serverKey != "test-key" {
		t.Errorf("Expected server key 'test-key', got '%s'", client.serverKey)
	}
	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("Expected default base URL '%s', got '%s'", DefaultBaseURL, client.BaseURL())
	}
	hc, ok := client.httpClient.(*http.Client)
	if !ok || hc.Timeout != DefaultTimeout {
		t.Errorf("Expected default http client with %s timeout", DefaultTimeout)
	}
}

func TestNewClientMissingKey(t *testing.T) {
	for _, key := range []string{"", "   "} {
		client, err := NewClient(key)
		if err == nil {
			t.Fatalf("Expected error for key %q", key)
		}
		if client != nil {
			t.Error("Expected nil client on error")
		}
		if !errors.IsType(err, errors.ErrConfig) {
			t.Errorf("Expected config error, got %v", err)
		}
	}
}

func TestNewClientOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{"custom base url", []Option{WithBaseURL("https://api.example.com/")}, false},
		{"ftp scheme", []Option{WithBaseURL("ftp://gender-api.com")}, true},
		{"private network", []Option{WithBaseURL("http://10.0.0.5")}, true},
		{"nil http client", []Option{WithHTTPClient(nil)}, true},
		{"zero timeout", []Option{WithTimeout(0)}, true},
		{"timeout", []Option{WithTimeout(5 * time.Second)}, false},
		{"user agent", []Option{WithUserAgent("custom/1.0")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient("test-key", tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClient() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.IsType(err, errors.ErrConfig) {
				t.Errorf("Expected config error, got %v", err)
			}
		})
	}
}

func TestWithBaseURLTrimsSlash(t *testing.T) {
	client, err := NewClient("test-key", WithBaseURL("https://api.example.com/"))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if client.BaseURL() != "https://api.example.com" {
		t.Errorf("Expected trailing slash trimmed, got %s", client.BaseURL())
	}
}

func TestDoMergesKeyAndHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/get" {
			t.Errorf("Expected path /get, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("key") != "test-key" {
			t.Errorf("Expected key 'test-key', got '%s'", q.Get("key"))
		}
		if q.Get("name") != "anna" {
			t.Errorf("Expected name 'anna', got '%s'", q.Get("name"))
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("Expected X-Request-ID header")
		}
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "genderapi-toolkit/") {
			t.Errorf("Unexpected User-Agent %q", r.Header.Get("User-Agent"))
		}
		w.Write([]byte(`{"name":"anna","gender":"female"}`))
	})

	// a caller-supplied key must not replace the configured one
	_, err := client.Do(context.Background(), ModeLookup, Params{"name": "anna", "key": "other"})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}

func TestDoDoesNotMutateParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	params := Params{"name": "anna"}
	if _, err := client.Do(context.Background(), ModeLookup, params); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if _, ok := params[ParamKey]; ok {
		t.Error("Do must not write the key into the caller's params")
	}
}

func TestDoNonSuccessStatus(t *testing.T) {
	statuses := []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusInternalServerError}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				w.Write([]byte(`{"errno":30,"errmsg":"limit reached"}`))
			})

			res, err := client.Do(context.Background(), ModeLookup, Params{"name": "anna"})
			if err == nil {
				t.Fatal("Expected error for non-success status")
			}
			if res != nil {
				t.Errorf("Expected nil result, got %v", res)
			}
			if !errors.IsType(err, errors.ErrAPI) {
				t.Errorf("Expected API error, got %v", err)
			}
			if errors.StatusCode(err) != status {
				t.Errorf("Expected status %d, got %d", status, errors.StatusCode(err))
			}
			if strings.Contains(err.Error(), "limit reached") {
				t.Error("Upstream error body must not be surfaced")
			}
		})
	}
}

func TestDoInvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>oops</html>`))
	})

	_, err := client.Do(context.Background(), ModeLookup, Params{"name": "anna"})
	if !errors.IsType(err, errors.ErrAPI) {
		t.Errorf("Expected API error for invalid JSON, got %v", err)
	}
}

func TestDoTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewClient("secret-key", WithBaseURL(url))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = client.Do(context.Background(), ModeLookup, Params{"name": "anna"})
	if err == nil {
		t.Fatal("Expected error when server is down")
	}
	if !errors.IsType(err, errors.ErrTransport) {
		t.Errorf("Expected transport error, got %v", err)
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Errorf("Server key leaked into error: %v", err)
	}
}

func TestDoContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Do(ctx, ModeStats, nil)
	if !errors.IsType(err, errors.ErrTransport) {
		t.Errorf("Expected transport error, got %v", err)
	}
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled in chain, got %v", err)
	}
}

func TestDoRecordsMetrics(t *testing.T) {
	metrics := observability.NewMetrics(nil)
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{}`))
	}, WithMetrics(metrics))

	client.Do(context.Background(), ModeLookup, Params{"name": "a"})
	client.Do(context.Background(), ModeLookup, Params{"name": "b"})

	if got := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("get", observability.OutcomeSuccess)); got != 1 {
		t.Errorf("Expected 1 success, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("get", observability.OutcomeAPIError)); got != 1 {
		t.Errorf("Expected 1 api error, got %v", got)
	}
}

func TestModePath(t *testing.T) {
	if ModeLookup.Path() != "get" {
		t.Errorf("Expected lookup path 'get', got '%s'", ModeLookup.Path())
	}
	if ModeStats.Path() != "get-stats" {
		t.Errorf("Expected stats path 'get-stats', got '%s'", ModeStats.Path())
	}
}
