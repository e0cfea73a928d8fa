// Package http implements the HTTP transport layer of the application.
// It provides middleware, page handlers, and template rendering for the
// user-portal web surface. Authentication guarding, logging, and tracing
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-portal/internal/session"
)

// requireAuth guards routes that need an authenticated session. Requests
// without an active session are redirected to the login page; protected
// content is never rendered for them. On success the session is attached
// to the request context for downstream handlers.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := h.sessions.FromRequest(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
	})
}

// redirectAuthenticated implements the idempotent entry-point policy: a
// user who already holds a session is bounced from /login and /register to
// the dashboard, so re-registration and session overwrite through the login
// page are impossible.
func (h *Handler) redirectAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.sessions.FromRequest(r); ok {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
