package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/api/ping", h.ping)

	router.Route("/api/records", func(r chi.Router) {
		r.Post("/weight", h.submitWeightRecord)
		r.Post("/feeding", h.submitFeedingRecord)
		r.Post("/milk-yield", h.submitMilkYieldRecord)
		r.Post("/exit", h.submitExitRecord)
	})

	router.Get("/api/farms/{farmID}/records/{entityType}", h.listRecords)

	return router
}
