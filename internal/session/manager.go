// Package session implements the server-side session store that binds an
// opaque cookie token to an authenticated identity.
//
// The store is an explicit service constructed once at process start and
// passed by handle to the HTTP layer. Both the randomness source used for
// token generation and the clock used for expiry are injected, so tests can
// run with deterministic tokens and time.
//
// All session state lives in process memory: the cookie carries nothing but
// the random token, and a process restart invalidates every session. That
// is an accepted limitation of the design, not a bug.
package session

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-portal/internal/logger"
	"github.com/MKhiriev/go-user-portal/models"
)

// CookieName is the name of the session cookie issued to clients.
const CookieName = "up_session"

// tokenBytes is the entropy of an issued token; 32 random bytes encode to
// a 64-character hex string.
const tokenBytes = 32

// Manager issues, resolves, and destroys server-side sessions.
// It is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]models.Session

	ttl  time.Duration
	rand io.Reader
	now  func() time.Time

	logger *logger.Logger
}

// NewManager constructs a session manager.
//
// randSource must be cryptographically secure in production (crypto/rand's
// Reader); now is the clock used for issuance and expiry checks. Both are
// parameters rather than globals so tests can control them.
func NewManager(ttl time.Duration, randSource io.Reader, now func() time.Time, log *logger.Logger) *Manager {
	log.Debug().Dur("ttl", ttl).Msg("creating session manager")
	return &Manager{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		rand:     randSource,
		now:      now,
		logger:   log,
	}
}

// Issue creates a new session for the given identity and returns it.
// The token is opaque and unguessable; the identity never leaves the
// server-side record.
func (m *Manager) Issue(userID int64, username string) (models.Session, error) {
	token, err := m.generateToken()
	if err != nil {
		m.logger.Err(err).Str("func", "*Manager.Issue").Msg("error generating session token")
		return models.Session{}, fmt.Errorf("error generating session token: %w", err)
	}

	now := m.now()
	sess := models.Session{
		Token:     token,
		UserID:    userID,
		Username:  username,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[token] = sess
	m.mu.Unlock()

	return sess, nil
}

// Resolve maps a token back to its session. Expired sessions are removed
// lazily on lookup. The second return value reports whether an active
// session exists.
func (m *Manager) Resolve(token string) (models.Session, bool) {
	if token == "" {
		return models.Session{}, false
	}

	m.mu.RLock()
	sess, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return models.Session{}, false
	}

	if m.now().After(sess.ExpiresAt) {
		m.Destroy(token)
		return models.Session{}, false
	}

	return sess, true
}

// Sweep removes every expired session and reports how many were removed.
// Resolve drops expired sessions lazily on lookup; Sweep reclaims the ones
// nobody asks about again.
func (m *Manager) Sweep() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int
	for token, sess := range m.sessions {
		if now.After(sess.ExpiresAt) {
			delete(m.sessions, token)
			removed++
		}
	}

	return removed
}

// Destroy removes a session from the store. Destroying an unknown token is
// a no-op. No HTTP route exposes this operation; it serves expiry and tests.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// WriteCookie attaches the session token to the response.
//
// The Secure flag is left unset; enabling it is a deployment hardening item.
func (m *Manager) WriteCookie(w http.ResponseWriter, sess models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   false,
	})
}

// FromRequest resolves the session referenced by the request's cookie.
// Returns false when the cookie is absent, unknown, or expired.
func (m *Manager) FromRequest(r *http.Request) (models.Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return models.Session{}, false
	}

	return m.Resolve(cookie.Value)
}

func (m *Manager) generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(m.rand, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// contextKey is the private type for storing the session in a context.
type contextKey struct{}

// NewContext returns a copy of ctx carrying the session, for handlers
// downstream of the auth guard.
func NewContext(ctx context.Context, sess models.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// FromContext extracts the session attached by the auth guard.
func FromContext(ctx context.Context) (models.Session, bool) {
	sess, ok := ctx.Value(contextKey{}).(models.Session)
	return sess, ok
}
