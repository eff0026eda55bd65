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

	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes guarded by session authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/logout", h.logout)

		r.Route("/api/todos", func(r chi.Router) {
			r.Post("/", h.addTodo)
			r.Get("/", h.listTodos)
			r.Get("/count", h.countTodos)
			r.Get("/{id}", h.getTodo)
			r.Put("/{id}/complete", h.completeTodo)
			r.Delete("/{id}", h.deleteTodo)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
