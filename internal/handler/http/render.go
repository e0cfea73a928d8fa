package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-user-portal/internal/logger"
)

// User-facing messages rendered into page templates. Handlers map layer
// errors to these fixed strings; raw store or driver messages never reach
// the user.
const (
	msgAllFieldsRequired = "All fields are required!"
	msgUsernameTaken     = "Username already taken!"
	msgEmailTaken        = "Email already taken!"
	msgUserNotFound      = "User not found!"
	msgInvalidPassword   = "Invalid password!"
	msgServerError       = "Something went wrong, please try again."
	msgProfileUpdated    = "Profile updated successfully"
)

// render executes the named page template into a buffer and writes it with
// the given status. Buffering first means a template failure produces a
// clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, statusCode int, name string, data any) {
	log := logger.FromRequest(r)

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Err(err).Str("template", name).Msg("error executing page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}
