package http

import (
	"context"
	"database/sql"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-portal/internal/store"
	"github.com/MKhiriev/go-user-portal/models"
)

// TestProtectedRoutes_RequireSession verifies the auth guard: without a valid
// session cookie no protected page is rendered, only a redirect to /login.
func TestProtectedRoutes_RequireSession(t *testing.T) {
	env := newTestEnv(nil, nil)

	paths := []string{"/dashboard", "/profile/john", "/editprofile"}
	for _, path := range paths {
		w := env.get(path, nil)
		require.Equal(t, http.StatusFound, w.Code, "GET %s", path)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.NotContains(t, w.Body.String(), "Welcome", "protected content must not leak")
	}

	// a stale cookie is as good as no cookie
	w := env.get("/dashboard", &http.Cookie{Name: "up_session", Value: "forged"})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestDashboard_GreetsSessionUser(t *testing.T) {
	env := newTestEnv(nil, nil)
	cookie := env.loginAs(t, 1, "john")

	w := env.get("/dashboard", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome, john!")
}

func TestProfile_RendersSanitizedFirstname(t *testing.T) {
	profile := &mockProfileService{
		getByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			require.Equal(t, "mallory", username)
			return models.User{
				UserID:    2,
				Username:  "mallory",
				Firstname: sql.NullString{String: `<script>steal()</script><b>Mal</b>`, Valid: true},
				Lastname:  sql.NullString{String: `<i>Ory</i>`, Valid: true},
				Bio:       sql.NullString{String: "plain bio", Valid: true},
			}, nil
		},
	}
	env := newTestEnv(nil, profile)
	cookie := env.loginAs(t, 1, "john")

	w := env.get("/profile/mallory", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	// firstname passes through the whitelist sanitizer: script content is
	// gone entirely and the b tag is stripped, leaving the text
	assert.NotContains(t, body, "steal()")
	assert.NotContains(t, body, "<script>")
	assert.NotContains(t, body, "<b>")
	assert.Contains(t, body, "Mal")

	// lastname goes through template escaping instead
	assert.Contains(t, body, "&lt;i&gt;Ory&lt;/i&gt;")
	assert.Contains(t, body, "plain bio")
}

func TestProfile_AnyAuthenticatedViewer(t *testing.T) {
	profile := &mockProfileService{
		getByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{UserID: 2, Username: "alice"}, nil
		},
	}
	env := newTestEnv(nil, profile)

	// john views alice's profile
	cookie := env.loginAs(t, 1, "john")
	w := env.get("/profile/alice", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestProfile_NotFound(t *testing.T) {
	profile := &mockProfileService{
		getByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	env := newTestEnv(nil, profile)
	cookie := env.loginAs(t, 1, "john")

	w := env.get("/profile/ghost", cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), msgUserNotFound)
}

func TestEditProfilePage_PrefillsOwnFields(t *testing.T) {
	profile := &mockProfileService{
		getByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			require.Equal(t, int64(1), userID)
			return models.User{
				UserID:    1,
				Username:  "john",
				Firstname: sql.NullString{String: "John", Valid: true},
				Bio:       sql.NullString{String: "about me", Valid: true},
			}, nil
		},
	}
	env := newTestEnv(nil, profile)
	cookie := env.loginAs(t, 1, "john")

	w := env.get("/editprofile", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="John"`)
	assert.Contains(t, w.Body.String(), "about me")
}

// TestEditProfile_FullOverwrite pins the overwrite semantics: every field is
// written from the form, and a field left empty clears the stored value.
func TestEditProfile_FullOverwrite(t *testing.T) {
	var got models.ProfileUpdate
	var gotID int64
	profile := &mockProfileService{
		updateProfileFn: func(ctx context.Context, userID int64, update models.ProfileUpdate) error {
			gotID = userID
			got = update
			return nil
		},
	}
	env := newTestEnv(nil, profile)
	cookie := env.loginAs(t, 1, "john")

	w := env.postForm("/editprofile", url.Values{
		"firstname": {"John"},
		"lastname":  {},
		"bio":       {"new bio"},
	}, cookie)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), msgProfileUpdated)

	assert.Equal(t, int64(1), gotID)
	assert.Equal(t, sql.NullString{String: "John", Valid: true}, got.Firstname)
	assert.Equal(t, sql.NullString{}, got.Lastname, "empty field maps to NULL")
	assert.Equal(t, sql.NullString{String: "new bio", Valid: true}, got.Bio)
}

func TestEditProfile_TargetsSessionUserOnly(t *testing.T) {
	var gotID int64
	profile := &mockProfileService{
		updateProfileFn: func(ctx context.Context, userID int64, update models.ProfileUpdate) error {
			gotID = userID
			return nil
		},
	}
	env := newTestEnv(nil, profile)
	cookie := env.loginAs(t, 42, "john")

	// the form carries no user identifier; the session decides the target
	w := env.postForm("/editprofile", url.Values{"firstname": {"J"}}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), gotID)
}

func TestEditProfile_StoreFailure(t *testing.T) {
	profile := &mockProfileService{
		updateProfileFn: func(ctx context.Context, userID int64, update models.ProfileUpdate) error {
			return context.DeadlineExceeded
		},
	}
	env := newTestEnv(nil, profile)
	cookie := env.loginAs(t, 1, "john")

	w := env.postForm("/editprofile", url.Values{"firstname": {"J"}}, cookie)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), msgServerError)
}
