package web

import (
	"errors"
	"net/http"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/users"
)

// RegisterForm handles GET /auth/register.
func (h *Handlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", h.basePage(w, r, "Register"))
}

// Register handles POST /auth/register. Success redirects to the login
// page; validation failures (including a taken username) flash and
// re-render the form.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	req := users.RegisterRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	_, err := h.userService.Register(r.Context(), req)
	switch {
	case err == nil:
		http.Redirect(w, r, "/auth/login", http.StatusFound)
	case users.IsValidationError(err):
		h.flash(w, r, validationMessage(err))
		h.render(w, "register.html", h.basePage(w, r, "Register"))
	default:
		h.logger.Error("failed to register user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// LoginForm handles GET /auth/login.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", h.basePage(w, r, "Log In"))
}

// Login handles POST /auth/login. A successful login replaces whatever
// session existed with one holding only the user id.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	creds := users.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.userService.Authenticate(r.Context(), creds)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			h.flash(w, r, "Incorrect username or password.")
			h.render(w, "login.html", h.basePage(w, r, "Log In"))
			return
		}
		h.logger.Error("failed to authenticate user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	session, _ := h.store.Get(r, middleware.SessionName)
	session.Values = map[interface{}]interface{}{
		middleware.SessionUserIDKey: user.ID,
	}
	if err := session.Save(r, w); err != nil {
		h.logger.Error("failed to save login session", "userID", user.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("user logged in", "userID", user.ID, "username", user.Username)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout handles GET /auth/logout: drop the session and go home.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, middleware.SessionName)
	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		h.logger.Error("failed to clear session", "error", err)
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
