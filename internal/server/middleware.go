package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"reliefledger/internal/utils"
	"reliefledger/pkg/types"

	"github.com/sirupsen/logrus"
)

// Context key types to avoid collisions
type contextKey string

const (
	contextKeyPrincipal contextKey = "principal"
	contextKeyRequestID contextKey = "request_id"
)

const requestIDHeader = "X-Request-ID"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = utils.NanoID()
		}
		rw.Header().Set(requestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		next.ServeHTTP(rw, r.WithContext(ctx))

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"request_id":  requestID,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

// RequirePrincipal reads the caller principal from the configured header and
// adds it to the request context. The principal is taken at face value:
// registries only compare it against the recorded requester or owner.
func (s *Service) RequirePrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := strings.TrimSpace(r.Header.Get(s.config.PrincipalHeader))
		if principal == "" {
			s.logger.WithField("header", s.config.PrincipalHeader).Debug("no principal on request")
			s.writeError(w, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyPrincipal, types.Principal(principal))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Only strip if path is not root and has trailing slash
		if path != "/" && strings.HasSuffix(path, "/") {
			newURL := *r.URL
			newURL.Path = strings.TrimSuffix(path, "/")

			// Preserve query string. 308 keeps the method and body of calls.
			http.Redirect(w, r, newURL.String(), http.StatusPermanentRedirect)
			return
		}

		next.ServeHTTP(w, r)
	})
}
