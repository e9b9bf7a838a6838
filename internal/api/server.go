// Package api exposes the layout engine and diagram store over HTTP.
//
// The surface is small: one stateless layout endpoint for editors that keep
// diagrams client-side, and a CRUD set for server-stored diagrams. All
// request and response bodies are JSON.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/archplane/archplane/pkg/cache"
	"github.com/archplane/archplane/pkg/layout"
	"github.com/archplane/archplane/pkg/store"
)

// maxBodyBytes bounds request bodies. Graphs in the thousands of nodes fit
// comfortably; anything larger is a client bug.
const maxBodyBytes = 8 << 20

// Server handles the HTTP API.
type Server struct {
	engine *layout.Engine
	store  store.DiagramStore
	cache  cache.Cache
	ttl    time.Duration
	logger *log.Logger
}

// NewServer assembles a server. The cache may be cache.NewNullCache() to
// disable layout caching; the TTL applies to cached layout results.
func NewServer(engine *layout.Engine, st store.DiagramStore, c cache.Cache, ttl time.Duration, logger *log.Logger) *Server {
	return &Server{engine: engine, store: st, cache: c, ttl: ttl, logger: logger}
}

// Router builds the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)

		r.Route("/diagrams", func(r chi.Router) {
			r.Get("/", s.handleListDiagrams)
			r.Post("/", s.handleCreateDiagram)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetDiagram)
				r.Put("/", s.handleUpdateDiagram)
				r.Delete("/", s.handleDeleteDiagram)
				r.Post("/layout", s.handleLayoutDiagram)
			})
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// logRequests logs one line per request at debug level, errors at warn.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		logf := s.logger.Debugf
		if ww.Status() >= http.StatusInternalServerError {
			logf = s.logger.Warnf
		}
		logf("%s %s -> %d (%s)", r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
