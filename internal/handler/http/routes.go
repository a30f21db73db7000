package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/api-key", h.registerAPIKey)
		r.Post("/api/auth/login", h.loginAPIKey)

		r.Get("/api/lists/{listID}", h.getList)
		r.Get("/api/lists/{listID}/revisions", h.getHistory)
	})

	// federated logins are forwarded by a trusted front-end that signs the body
	router.Group(func(r chi.Router) {
		r.Use(h.verifyHashing)
		r.Post("/api/auth/federated", h.federatedLogin)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/lists", h.getMyLists)
		r.Post("/api/lists", h.createList)
		r.Put("/api/lists/{listID}", h.replaceList)
		r.Delete("/api/lists/{listID}", h.deleteList)

		r.Post("/api/lists/{listID}/items", h.addItem)
		r.Put("/api/lists/{listID}/items/{ident}", h.updateItem)
		r.Delete("/api/lists/{listID}/items/{ident}", h.removeItem)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
