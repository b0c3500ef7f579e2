package slogx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInitGlobal_JSON(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	var buf bytes.Buffer
	if err := InitGlobal(&buf, "info", false); err != nil {
		t.Fatalf("InitGlobal failed: %v", err)
	}

	Debug(context.Background(), "hidden")
	Warn(context.Background(), "visible", Err(errors.New("boom")), NoteID("n1"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if rec["msg"] != "visible" || rec["err"] != "boom" || rec["note_id"] != "n1" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestInitGlobal_PrettyWithoutTerminal(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	var buf bytes.Buffer
	if err := InitGlobal(&buf, "debug", true); err != nil {
		t.Fatalf("InitGlobal failed: %v", err)
	}

	Error(context.Background(), "save failed", Err(errors.New("disk full")))

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Errorf("colour codes written to a non-terminal: %q", out)
	}
	if !strings.Contains(out, "save failed") || !strings.Contains(out, "err=") || !strings.Contains(out, "disk full") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestInitGlobal_BadLevel(t *testing.T) {
	if err := InitGlobal(&bytes.Buffer{}, "loud", true); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLoggingMiddleware_PassesStatus(t *testing.T) {
	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("got status %d, want %d", rec.Code, http.StatusTeapot)
	}
}
