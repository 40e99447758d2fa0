package observability

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(&buf, "warn", "text")

	log.Info("hidden")
	log.Warn("shown", String("mode", "get"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Info should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "mode=get") {
		t.Errorf("Expected warn line with field, got %q", out)
	}
}

func TestLoggerJSONWith(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(&buf, "debug", "json").With(String("request_id", "abc"))

	log.Error("boom", Err(errors.New("refused")), Int("status", 502))

	out := buf.String()
	for _, want := range []string{`"request_id":"abc"`, `"error":"refused"`, `"status":502`, `"msg":"boom"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %s in %q", want, out)
		}
	}
}

func TestNopLogger(t *testing.T) {
	log := NopLogger()
	log.Error("nothing")
	log.With(String("k", "v")).Debug("nothing")
}
