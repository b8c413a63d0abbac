// Package http mounts registered pages on a chi router. It is the
// request-layer boundary: it hands the engine a page name plus any
// request-derived values and wraps the serialized document in a
// response.
package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/go-chi/chi/v5"
)

// ValueFunc derives explicit requirement values from a request, e.g. a
// record ID from the URL. Values returned here take precedence over
// exposures, and their names must be declared caller-provided at
// registration for the contract check to account for them.
type ValueFunc func(r *http.Request) (domain.Values, error)

// Server mounts pages from an engine's registry.
type Server struct {
	engine *espalier.Engine
	logger *slog.Logger
	values map[string]ValueFunc
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the logger for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithValues attaches a per-page value derivation.
func WithValues(page string, fn ValueFunc) Option {
	return func(s *Server) {
		s.values[page] = fn
	}
}

// NewHandler builds an http.Handler serving every page registered with
// a mount path. It runs the contract check first and refuses to build a
// handler over a failing registry: an unmet requirement must stop the
// program before it listens, never surface mid-request.
func NewHandler(eng *espalier.Engine, opts ...Option) (http.Handler, error) {
	s := &Server{
		engine: eng,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		values: make(map[string]ValueFunc),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := eng.Check(); err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	for _, p := range eng.Registry().Pages() {
		if p.Path() == "" {
			continue
		}
		r.Get(p.Path(), s.pageHandler(p.Name()))
	}
	return r, nil
}

func (s *Server) pageHandler(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var values domain.Values
		if fn, ok := s.values[page]; ok {
			derived, err := fn(r)
			if err != nil {
				s.logger.Warn("value derivation failed", "page", page, "err", err)
				http.Error(w, "Bad Request", http.StatusBadRequest)
				return
			}
			values = derived
		}

		out, err := s.engine.Render(r.Context(), page, values)
		if err != nil {
			s.logger.Error("render failed", "page", page, "err", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(out); err != nil {
			s.logger.Warn("response write failed", "page", page, "err", err)
		}
	}
}
