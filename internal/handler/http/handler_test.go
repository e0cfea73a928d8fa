package http

import (
	"context"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-portal/internal/logger"
	"github.com/MKhiriev/go-user-portal/internal/sanitize"
	"github.com/MKhiriev/go-user-portal/internal/service"
	"github.com/MKhiriev/go-user-portal/internal/session"
	"github.com/MKhiriev/go-user-portal/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for handler tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

// mockProfileService implements service.ProfileService for handler tests.
type mockProfileService struct {
	getByUsernameFn func(ctx context.Context, username string) (models.User, error)
	getByIDFn       func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn func(ctx context.Context, userID int64, update models.ProfileUpdate) error
}

func (m *mockProfileService) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return m.getByUsernameFn(ctx, username)
}

func (m *mockProfileService) GetByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getByIDFn(ctx, userID)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) error {
	return m.updateProfileFn(ctx, userID, update)
}

// ─────────────────────────────────────────────
// Test fixture
// ─────────────────────────────────────────────

type testEnv struct {
	handler  http.Handler
	sessions *session.Manager
}

func newTestEnv(auth *mockAuthService, profile *mockProfileService) *testEnv {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if profile == nil {
		profile = &mockProfileService{}
	}

	sessions := session.NewManager(time.Hour, rand.Reader, time.Now, logger.Nop())
	services := &service.Services{AuthService: auth, ProfileService: profile}
	h := NewHandler(services, sessions, sanitize.New(), logger.Nop())

	return &testEnv{handler: h.Init(), sessions: sessions}
}

// loginAs issues a session directly on the manager and returns the cookie a
// logged-in browser would carry.
func (e *testEnv) loginAs(t *testing.T, userID int64, username string) *http.Cookie {
	t.Helper()

	sess, err := e.sessions.Issue(userID, username)
	require.NoError(t, err)

	return &http.Cookie{Name: session.CookieName, Value: sess.Token}
}

func (e *testEnv) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		r.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, r)
	return w
}

func (e *testEnv) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		r.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, r)
	return w
}

// sessionCookie digs the session cookie out of a recorded response.
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}
