package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. A zero requestTimeout disables the per-request
// deadline.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withCORS)
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}

	router.Get("/", h.status)
	router.Get("/version", h.getServerVersion)

	router.Post("/upload", h.upload)

	router.Route("/files", func(r chi.Router) {
		r.With(withGZip).Get("/", h.listFiles)
		r.Get("/{id}/content", h.fileContent)
		r.Delete("/{id}", h.deleteFile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
