package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"Inkwell/internal/core/users"
)

// Context key for the resolved viewer
type contextKey string

const viewerKey contextKey = "viewer"

const (
	// SessionName is the cookie holding the login session and flash messages
	SessionName = "inkwell_session"

	// SessionUserIDKey is the session value holding the logged-in user's id
	SessionUserIDKey = "user_id"

	// MinSessionSecretLength guards against weak cookie signing keys
	MinSessionSecretLength = 32
)

// NewSessionStore creates the cookie store backing login sessions and
// flash messages. The store is injected everywhere it is needed rather
// than held in a package global.
func NewSessionStore(secret string) (*sessions.CookieStore, error) {
	if len(secret) < MinSessionSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d bytes", MinSessionSecretLength)
	}
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.Path = "/"
	return store, nil
}

// ViewerMiddleware resolves the logged-in viewer from the session cookie
// once per request. Handlers read the result with Viewer(r) and pass it
// explicitly into the service layer; nothing downstream touches the
// session again.
type ViewerMiddleware struct {
	store       sessions.Store
	userService users.UserService
	logger      *slog.Logger
}

// NewViewerMiddleware creates a new viewer-resolving middleware
func NewViewerMiddleware(store sessions.Store, userService users.UserService, logger *slog.Logger) *ViewerMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &ViewerMiddleware{
		store:       store,
		userService: userService,
		logger:      logger,
	}
}

// LoadViewer resolves the viewer when a valid session exists and continues
// anonymously otherwise. A stale session (deleted account, corrupt cookie)
// degrades to anonymous instead of failing the request.
func (m *ViewerMiddleware) LoadViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			m.logger.Debug("discarding undecodable session cookie", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := session.Values[SessionUserIDKey].(int64)
		if !ok || userID <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		viewer, err := m.userService.GetByID(r.Context(), userID)
		if err != nil {
			m.logger.Warn("session references unknown user", "userID", userID, "error", err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), viewerKey, viewer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireViewer redirects anonymous requests to the login page.
// It expects LoadViewer to have run earlier in the chain.
func (m *ViewerMiddleware) RequireViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Viewer(r) == nil {
			http.Redirect(w, r, "/auth/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Viewer returns the authenticated viewer for the request, or nil when the
// request is anonymous
func Viewer(r *http.Request) *users.User {
	viewer, _ := r.Context().Value(viewerKey).(*users.User)
	return viewer
}

// SetTestViewer injects a viewer into the context for testing purposes.
// This function should ONLY be used in tests to mock logged-in requests.
func SetTestViewer(ctx context.Context, viewer *users.User) context.Context {
	return context.WithValue(ctx, viewerKey, viewer)
}
