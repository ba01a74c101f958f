package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

var _ Logger = (*ZerologAdapter)(nil)

// decode parses the single JSON line written by a zerolog logger.
func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestFieldHelpers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		field Field
		key   string
		value any
	}{
		{String("scheme", "hoare"), "scheme", "hoare"},
		{Int("swaps", 3), "swaps", 3},
		{Uint64("run", 7), "run", uint64(7)},
		{Duration("elapsed", time.Second), "elapsed", time.Second},
	}
	for _, tt := range tests {
		if tt.field.Key != tt.key || tt.field.Value != tt.value {
			t.Errorf("field = %+v, want %s=%v", tt.field, tt.key, tt.value)
		}
	}
}

func TestNewLoggerTagsComponent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewLogger(&buf, "server").Info("listening", String("addr", ":9090"))

	entry := decode(t, &buf)
	if entry["component"] != "server" {
		t.Errorf("component = %v, want server", entry["component"])
	}
	if entry["addr"] != ":9090" || entry["message"] != "listening" {
		t.Errorf("unexpected entry %v", entry)
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
}

func TestZerologAdapterLevels(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Error("partition failed", errors.New("boom"), Int("lane", 1))
	entry := decode(t, &buf)
	if entry["level"] != "error" || entry["error"] != "boom" || entry["lane"] != float64(1) {
		t.Errorf("error entry = %v", entry)
	}

	buf.Reset()
	logger.Debug("event", String("kind", "swap"))
	if entry = decode(t, &buf); entry["level"] != "debug" || entry["kind"] != "swap" {
		t.Errorf("debug entry = %v", entry)
	}

	buf.Reset()
	logger.Printf("sorted %d keys", 8)
	if entry = decode(t, &buf); entry["message"] != "sorted 8 keys" {
		t.Errorf("printf entry = %v", entry)
	}
}

func TestDebugFilteredByLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewZerologAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel)).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug output leaked at info level: %q", buf.String())
	}
}

func TestApplyFieldTypes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		field Field
		want  any
	}{
		{"string", Field{"k", "v"}, "v"},
		{"int", Field{"k", 4}, float64(4)},
		{"int64", Field{"k", int64(-4)}, float64(-4)},
		{"uint64", Field{"k", uint64(9)}, float64(9)},
		{"float64", Field{"k", 0.5}, 0.5},
		{"bool", Field{"k", true}, true},
		{"duration", Field{"k", 2 * time.Millisecond}, float64(2)},
		{"error", Field{"k", errors.New("bad")}, "bad"},
		{"slice", Field{"k", []int{1, 2}}, []any{float64(1), float64(2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			NewZerologAdapter(zerolog.New(&buf)).Info("x", tt.field)
			got := decode(t, &buf)["k"]
			if gotJSON, wantJSON := mustJSON(t, got), mustJSON(t, tt.want); gotJSON != wantJSON {
				t.Errorf("k = %s, want %s", gotJSON, wantJSON)
			}
		})
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestNewConsoleLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewConsoleLogger(&buf, true).Info("run finished", String("scheme", "lomuto"))

	out := buf.String()
	if strings.HasPrefix(out, "{") {
		t.Errorf("console logger wrote JSON: %q", out)
	}
	if !strings.Contains(out, "run finished") || !strings.Contains(out, "scheme=lomuto") {
		t.Errorf("missing message or field: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("color codes written with noColor: %q", out)
	}
}

func TestZerologAccessor(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	adapter := NewLogger(&buf, "tui")
	zl := adapter.Zerolog()
	zl.Info().Msg("direct")
	if decode(t, &buf)["component"] != "tui" {
		t.Error("Zerolog() lost the component context")
	}
}
