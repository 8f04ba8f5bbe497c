package routes

import (
	"Inkwell/internal/web"

	"github.com/go-chi/chi/v5"
)

// RegisterAuthRoutes registers the register/login/logout pages
func RegisterAuthRoutes(r chi.Router, h *web.Handlers) {
	r.Get("/auth/register", h.RegisterForm)
	r.Post("/auth/register", h.Register)
	r.Get("/auth/login", h.LoginForm)
	r.Post("/auth/login", h.Login)
	r.Get("/auth/logout", h.Logout)
}
