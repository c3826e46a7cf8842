package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lexatra/artsplit/internal/config"
	"github.com/lexatra/artsplit/internal/splitter"
)

// Server is the HTTP surface for one-off splitting without touching
// the filesystem: upload a document, get the records back.
type Server struct {
	router   chi.Router
	defaults *splitter.PatternSet
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server. The default
// pattern set is compiled once and shared by requests that send no
// custom patterns.
func NewServer(log *slog.Logger, cfg config.Config) (*Server, error) {
	defaults, err := splitter.NewPatternSet(nil)
	if err != nil {
		return nil, err
	}
	s := &Server{
		defaults: defaults,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}
		r.Post("/api/split", s.handleSplit)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
