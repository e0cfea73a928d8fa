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

	router.Get("/", h.root)

	// entry points for anonymous users; an active session bounces to the dashboard
	router.Group(func(r chi.Router) {
		r.Use(h.redirectAuthenticated)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
	})

	// routes requiring an authenticated session
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/dashboard", h.dashboard)
		r.Get("/profile/{username}", h.profile)
		r.Get("/editprofile", h.editProfilePage)
		r.Post("/editprofile", h.editProfile)
	})

	return router
}
