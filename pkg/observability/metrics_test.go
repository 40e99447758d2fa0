// Package observability tests
package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}

	m.RecordRequest("get", OutcomeSuccess, 120*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{"genderapi_requests_total", "genderapi_request_duration_seconds"} {
		if !names[want] {
			t.Errorf("Expected metric %s to be registered", want)
		}
	}
}

func TestRecordRequestCounts(t *testing.T) {
	m := NewMetrics(nil)

	m.RecordRequest("get", OutcomeSuccess, time.Millisecond)
	m.RecordRequest("get", OutcomeSuccess, time.Millisecond)
	m.RecordRequest("get-stats", OutcomeAPIError, time.Millisecond)

	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("get", OutcomeSuccess)); got != 2 {
		t.Errorf("Expected 2 successful lookups, got %v", got)
	}
	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("get-stats", OutcomeAPIError)); got != 1 {
		t.Errorf("Expected 1 failed stats call, got %v", got)
	}
}

func TestRecordRequestNilMetrics(t *testing.T) {
	var m *Metrics
	m.RecordRequest("get", OutcomeSuccess, time.Millisecond)
}
