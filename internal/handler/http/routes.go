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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/auth/register", h.register)
		r.Get("/auth/login", h.login)
	})

	// data path and logout, behind the single authorization gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/auth/logout", h.logout)

		r.Post("/data/{entity}", h.saveRecord)
		r.Delete("/data/{entity}", h.deleteRecord)
		r.Get("/data/{entity}", h.findRecords)
	})

	return router
}
