package slogx

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Hijack keeps websocket upgrades working behind the middleware.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}

	return h.Hijack()
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()
		logger := Default()

		method := slog.String("method", r.Method)
		path := slog.String("path", r.URL.Path)
		logger.Debug(ctx, "start handling http request", method, path)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		durAttr := slog.Duration("duration", time.Since(start))
		status := slog.Int("status", rec.status)
		if rec.status >= http.StatusInternalServerError {
			logger.Error(ctx, "finish with error", method, path, status, durAttr)
		} else {
			logger.Info(ctx, "finish success", method, path, status, durAttr)
		}
	})
}
