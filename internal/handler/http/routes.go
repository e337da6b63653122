package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.With(h.withLoginRateLimit).Post("/api/users/login", h.login)
		r.Post("/api/users/register", h.register)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/users/find", h.findUsers)
		r.Post("/api/users/chat-wallpaper", h.setChatWallpaper)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
