package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/mdview/internal/config"
	"github.com/dgallion1/mdview/internal/docstore"
	"github.com/dgallion1/mdview/internal/source"
	"github.com/dgallion1/mdview/internal/viewer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP front end for mdview.
type Server struct {
	router chi.Router
	store  *docstore.Store
	viewer *viewer.Viewer
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(store *docstore.Store, v *viewer.Viewer, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store:  store,
		viewer: v,
		log:    log,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
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

	// Browser pages.
	r.Get("/", s.handleIndex)
	r.Post("/documents", s.handleUpload)
	r.Get("/documents/{docID}", s.handleView)

	// JSON API.
	r.Route("/api", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Get("/stats", s.handleStats)

		r.Post("/documents", s.handleCreateDocument)
		r.Route("/documents/{docID}", func(r chi.Router) {
			r.Get("/", s.handleGetDocument)
			r.Delete("/", s.handleDeleteDocument)
			r.Get("/headings", s.handleHeadings)
			r.Get("/toc", s.handleTOC)
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) sourceOptions() source.Options {
	return source.Options{PDFFallbackPdftotext: s.cfg.PDFFallbackPdftotext}
}
