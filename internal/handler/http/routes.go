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

	router.Route("/api/notes", func(r chi.Router) {
		r.Get("/", h.listNotes)
		r.Post("/", h.createNote)
		r.Get("/count", h.countNotes)
		r.Post("/delete", h.deleteNotes)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getNote)
			r.Put("/", h.updateNote)
			r.Delete("/", h.deleteNote)
		})
	})

	return router
}
