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
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/password-reset", h.passwordResetRequest)
		r.Post("/api/auth/password-reset/confirm", h.passwordResetConfirm)
	})

	// routes that require a valid login token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/account", h.account)
		r.Put("/api/account/profile", h.updateProfile)
		r.Post("/api/account/password", h.changePassword)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
