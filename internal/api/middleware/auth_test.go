package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Inkwell/internal/core/users"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserService implements users.UserService with function fields
type stubUserService struct {
	getByIDFunc func(ctx context.Context, id int64) (*users.User, error)
}

func (s *stubUserService) Register(ctx context.Context, req users.RegisterRequest) (*users.User, error) {
	return nil, nil
}

func (s *stubUserService) Authenticate(ctx context.Context, creds users.Credentials) (*users.User, error) {
	return nil, nil
}

func (s *stubUserService) GetByID(ctx context.Context, id int64) (*users.User, error) {
	if s.getByIDFunc != nil {
		return s.getByIDFunc(ctx, id)
	}
	return nil, users.ErrUserNotFound
}

func (s *stubUserService) List(ctx context.Context) ([]*users.User, error) {
	return nil, nil
}

func testStore(t *testing.T) *sessions.CookieStore {
	t.Helper()
	store, err := NewSessionStore(strings.Repeat("s", MinSessionSecretLength))
	require.NoError(t, err)
	return store
}

// sessionCookie builds a signed session cookie holding the given user id
func sessionCookie(t *testing.T, store sessions.Store, userID int64) *http.Cookie {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	session, err := store.Get(r, SessionName)
	require.NoError(t, err)
	session.Values[SessionUserIDKey] = userID
	require.NoError(t, session.Save(r, w))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected a session cookie to be written")
	return cookies[0]
}

// viewerEcho records the viewer the middleware resolved
func viewerEcho(captured **users.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = Viewer(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewSessionStore_RejectsShortSecret(t *testing.T) {
	_, err := NewSessionStore("short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least")
}

func TestLoadViewer_NoCookie(t *testing.T) {
	store := testStore(t)
	mw := NewViewerMiddleware(store, &stubUserService{}, nil)

	var seen *users.User
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	mw.LoadViewer(viewerEcho(&seen)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, seen)
}

func TestLoadViewer_ValidSession(t *testing.T) {
	store := testStore(t)
	userService := &stubUserService{
		getByIDFunc: func(ctx context.Context, id int64) (*users.User, error) {
			require.Equal(t, int64(7), id)
			return &users.User{ID: 7, Username: "nasrin"}, nil
		},
	}
	mw := NewViewerMiddleware(store, userService, nil)

	var seen *users.User
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(sessionCookie(t, store, 7))
	w := httptest.NewRecorder()
	mw.LoadViewer(viewerEcho(&seen)).ServeHTTP(w, r)

	require.NotNil(t, seen)
	assert.Equal(t, int64(7), seen.ID)
	assert.Equal(t, "nasrin", seen.Username)
}

func TestLoadViewer_StaleSession(t *testing.T) {
	store := testStore(t)
	userService := &stubUserService{
		getByIDFunc: func(ctx context.Context, id int64) (*users.User, error) {
			return nil, users.ErrUserNotFound
		},
	}
	mw := NewViewerMiddleware(store, userService, nil)

	// A session pointing at a deleted account degrades to anonymous
	var seen *users.User
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(sessionCookie(t, store, 99))
	w := httptest.NewRecorder()
	mw.LoadViewer(viewerEcho(&seen)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, seen)
}

func TestLoadViewer_TamperedCookie(t *testing.T) {
	store := testStore(t)
	mw := NewViewerMiddleware(store, &stubUserService{}, nil)

	var seen *users.User
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionName, Value: "garbage"})
	w := httptest.NewRecorder()
	mw.LoadViewer(viewerEcho(&seen)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, seen)
}

func TestRequireViewer_RedirectsAnonymous(t *testing.T) {
	store := testStore(t)
	mw := NewViewerMiddleware(store, &stubUserService{}, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for anonymous requests")
	})

	r := httptest.NewRequest(http.MethodGet, "/create", nil)
	w := httptest.NewRecorder()
	mw.RequireViewer(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))
}

func TestRequireViewer_PassesAuthenticated(t *testing.T) {
	store := testStore(t)
	mw := NewViewerMiddleware(store, &stubUserService{}, nil)

	var seen *users.User
	r := httptest.NewRequest(http.MethodGet, "/create", nil)
	r = r.WithContext(SetTestViewer(r.Context(), &users.User{ID: 3, Username: "omid"}))
	w := httptest.NewRecorder()
	mw.RequireViewer(viewerEcho(&seen)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, int64(3), seen.ID)
}
