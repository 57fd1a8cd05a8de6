package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/drawings", func(r chi.Router) {
		// reads: anonymous allowed, identity attached when a token is present
		r.Group(func(r chi.Router) {
			r.Use(h.authOptional)
			r.Get("/{drawingID}", h.getDrawing)
			r.Get("/{drawingID}/content", h.getContent)
		})

		// listing and writes: authentication required
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.listDrawings)
			r.Post("/{drawingID}", h.createDrawing)
			r.Patch("/{drawingID}", h.updateDrawing)
			r.Delete("/{drawingID}", h.deleteDrawing)
			r.Put("/{drawingID}/content", h.saveContent)
		})
	})

	return router
}
