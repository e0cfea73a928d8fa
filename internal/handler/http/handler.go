package http

import (
	"embed"
	"html/template"

	"github.com/MKhiriev/go-user-portal/internal/logger"
	"github.com/MKhiriev/go-user-portal/internal/sanitize"
	"github.com/MKhiriev/go-user-portal/internal/service"
	"github.com/MKhiriev/go-user-portal/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler owns the HTTP surface of the application: page rendering, form
// handling, and the session guard. It delegates all business logic to the
// service layer.
type Handler struct {
	services  *service.Services
	sessions  *session.Manager
	sanitizer *sanitize.Sanitizer
	templates *template.Template

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler with all its collaborators.
// The embedded page templates are parsed once at construction time.
func NewHandler(services *service.Services, sessions *session.Manager, sanitizer *sanitize.Sanitizer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		sessions:  sessions,
		sanitizer: sanitizer,
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
		logger:    logger,
	}
}
