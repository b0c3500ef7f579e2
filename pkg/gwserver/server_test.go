package gwserver

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNew_Validation(t *testing.T) {
	h := http.NotFoundHandler()

	if _, err := New(NewOptions("not an address", h)); err == nil {
		t.Error("expected error for invalid addr")
	}
	if _, err := New(NewOptions("localhost:8081", nil)); err == nil {
		t.Error("expected error for nil handler")
	}
	if _, err := New(NewOptions("localhost:8081", h)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNew_MiddlewareOrder(t *testing.T) {
	var calls []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls = append(calls, "handler")
		w.WriteHeader(http.StatusTeapot)
	})

	s, err := New(NewOptions("localhost:8081", h, WithMiddlewares(mark("outer"), mark("inner"))))
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status %d", rec.Code)
	}
	if got := strings.Join(calls, ","); got != "outer,inner,handler" {
		t.Errorf("call order %q", got)
	}
}

func TestNewOptions_ShutdownTimeout(t *testing.T) {
	h := http.NotFoundHandler()

	if got := NewOptions("localhost:8081", h).shutdownTimeout; got != 3*time.Second {
		t.Errorf("default shutdown timeout %v", got)
	}
	if got := NewOptions("localhost:8081", h, WithShutdownTimeout(time.Second)).shutdownTimeout; got != time.Second {
		t.Errorf("shutdown timeout %v", got)
	}
}

type recordLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recordLogger) Info(_ context.Context, msg string, _ ...slog.Attr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	logger := new(recordLogger)

	s, err := New(NewOptions("localhost:8081", h, WithLogger(logger), WithShutdownTimeout(time.Second)))
	if err != nil {
		t.Fatal(err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body %q", body)
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	logger.mu.Lock()
	defer logger.mu.Unlock()
	if got := strings.Join(logger.msgs, ","); !strings.Contains(got, "shutdown http server") {
		t.Errorf("logged %q", got)
	}
}
