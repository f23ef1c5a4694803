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

	router.Route("/organizations/{orgID}/config/values", func(r chi.Router) {
		r.Get("/", h.getValues)
		r.Get("/{key}", h.getValue)
	})

	router.Route("/api", func(r chi.Router) {
		r.Post("/schema/compatibility", h.checkSchemaCompatibility)
		r.Post("/config/reload", h.reloadConfig)
		r.Get("/version", h.getServerVersion)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
