package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5))

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod())

	router.Get("/", h.greeting)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}/update", h.changePassword)
	})

	router.Route("/cards", func(r chi.Router) {
		r.Get("/", h.listCards)
		r.Post("/add", h.addCard)
		r.Get("/{id}", h.getCard)
		r.Delete("/{id}", h.deleteCard)
	})

	router.Route("/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Post("/add", h.addOrder)
		r.Get("/{id}", h.getOrder)
	})

	return router
}
