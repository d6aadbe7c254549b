// Package backendtest runs an in-process fake of the assistant backend for tests.
package backendtest

import (
	"encoding/json"
	"io"
	"maps"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/devantler-tech/kubeassist/pkg/apis/config/v1alpha1"
	"github.com/devantler-tech/kubeassist/pkg/di"
)

// Canned answers served by DefaultRoutes.
const (
	Reply         = "There are 2 pods in the default namespace."
	HealthMessage = "Kubernetes assistant is running"
	UploadMessage = "Applied manifest"
)

// Request is a request received by the fake.
type Request struct {
	Method      string
	Path        string
	Query       string
	ContentType string
	Body        string
}

// Server is a fake backend. Routes use net/http ServeMux patterns such as "GET /pods".
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
}

// New starts a fake backend serving DefaultRoutes overridden by routes. A nil handler
// removes a default route. The server is closed when the test ends.
func New(t testing.TB, routes map[string]http.HandlerFunc) *Server {
	t.Helper()

	merged := DefaultRoutes()
	maps.Copy(merged, routes)

	server := &Server{}
	mux := http.NewServeMux()

	for pattern, handler := range merged {
		if handler == nil {
			continue
		}

		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)

			server.mu.Lock()
			server.requests = append(server.requests, Request{
				Method:      r.Method,
				Path:        r.URL.Path,
				Query:       r.URL.RawQuery,
				ContentType: r.Header.Get("Content-Type"),
				Body:        string(body),
			})
			server.mu.Unlock()

			r.Body = io.NopCloser(strings.NewReader(string(body)))
			handler(w, r)
		})
	}

	server.Server = httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Request(nil), s.requests...)
}

// Config returns the default configuration pointed at the fake, with a short metrics interval.
func (s *Server) Config() *v1alpha1.Config {
	cfg := v1alpha1.NewConfig()
	cfg.Backend.URL = s.URL
	cfg.Metrics.Interval.Duration = 20 * time.Millisecond

	return cfg
}

// Runtime returns a dependency runtime whose configuration points at the fake.
// Logs are discarded.
func (s *Server) Runtime(mutate ...func(*v1alpha1.Config)) *di.Runtime {
	return di.NewRuntimeFromLoader(func() (*v1alpha1.Config, error) {
		cfg := s.Config()
		for _, fn := range mutate {
			fn(cfg)
		}

		return cfg, nil
	}, io.Discard)
}

// DefaultRoutes answers every endpoint with a small successful payload.
func DefaultRoutes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /{$}": JSON(http.StatusOK, map[string]string{"message": HealthMessage}),
		"POST /ask": JSON(http.StatusOK, map[string]any{"type": "text", "result": Reply}),
		"GET /pods": JSON(http.StatusOK, []map[string]string{
			{"name": "web-0", "namespace": "default"},
			{"name": "web-1", "namespace": "default"},
		}),
		"GET /deployments": JSON(http.StatusOK, []map[string]any{{"name": "web", "replicas": 2}}),
		"GET /services":    JSON(http.StatusOK, []map[string]string{{"name": "web", "type": "ClusterIP"}}),
		"GET /configmaps":  JSON(http.StatusOK, []any{}),
		"GET /namespaces":  JSON(http.StatusOK, []map[string]string{{"name": "default"}}),
		"GET /nodes":       JSON(http.StatusOK, []map[string]string{{"name": "node-1"}}),
		"GET /metrics/time-series": JSON(http.StatusOK, map[string]any{
			"status": "success",
			"metrics": []map[string]any{
				{"timestamp": 1700000000, "instance": "node-1", "value": 12.5},
				{"timestamp": 1700000010, "instance": "node-1", "value": 25},
			},
		}),
		"GET /history": JSON(http.StatusOK, []map[string]string{
			{"query": "show me all pods", "response": Reply, "timestamp": "2026-01-02T10:00:00"},
		}),
		"POST /upload": JSON(http.StatusOK, map[string]string{"status": "success", "message": UploadMessage}),
	}
}

// JSON returns a handler writing body as JSON with the given status.
func JSON(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}
