package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bowerhall/name/internal/logger"
)

const requestIDHeader = "X-Request-Id"

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestID(r)
		w.Header().Set(requestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r)

		logger.Debug("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"duration", time.Since(start),
		)
	})
}

// requestID reuses an inbound id only when it is a well-formed UUID.
func requestID(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(requestIDHeader)); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
