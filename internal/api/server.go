// Package api wires mozart's HTTP surface: POST /submit and GET /status,
// per spec.md §6. Routing is plain net/http.ServeMux — no example repo in
// the corpus exercises a muxer for anything beyond a couple of fixed
// routes, so pulling one in here would add a dependency with nothing to
// justify it (see DESIGN.md).
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/p7-projekt/mozart/internal/config"
	"github.com/p7-projekt/mozart/internal/grading"
	"github.com/p7-projekt/mozart/internal/sandbox"
	"github.com/sirupsen/logrus"
)

type requestIDKey struct{}

// requestIDFrom returns the request id the logging middleware minted for
// r, reused as the job directory id by handleSubmit so that "the" id for
// a submission is the same one threaded through every log line.
func requestIDFrom(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(requestIDKey{}).(uuid.UUID)
	return id
}

// Server bundles the dependencies the HTTP handlers need.
type Server struct {
	log     *logrus.Logger
	cfg     config.Config
	sandbox sandbox.Sandbox
	newH    grading.HandlerFactory
}

// New builds a Server ready to be passed to NewRouter.
func New(log *logrus.Logger, cfg config.Config, sb sandbox.Sandbox, newHandler grading.HandlerFactory) *Server {
	return &Server{log: log, cfg: cfg, sandbox: sb, newH: newHandler}
}

// NewRouter builds mozart's handler tree, wrapped in a request-logging
// middleware that mirrors the teacher's entrypoint-style logrus request
// fields and the original Rust service's per-request tracing span id.
func (s *Server) NewRouter() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/submit", s.handleSubmit)
	mux.HandleFunc("/status", s.handleStatus)
	return s.withRequestLogging(mux)
}

func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New()
		w.Header().Set("X-Request-Id", requestID.String())
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, requestID))

		start := time.Now()
		entry := s.log.WithFields(logrus.Fields{
			"request_id": requestID.String(),
			"method":     r.Method,
			"path":       r.URL.Path,
		})
		entry.Debug("received request")

		next.ServeHTTP(w, r)

		entry.WithField("duration", time.Since(start)).Debug("completed request")
	})
}
