package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-portal/internal/logger"
	"github.com/MKhiriev/go-user-portal/internal/service"
	"github.com/MKhiriev/go-user-portal/internal/store"
	"github.com/MKhiriev/go-user-portal/models"
)

// root sends visitors to the dashboard or the login page depending on
// whether they hold an active session.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.FromRequest(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register.html", models.FormPage{})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		h.render(w, r, http.StatusBadRequest, "register.html", models.FormPage{Msg: msgAllFieldsRequired})
		return
	}

	req := models.RegisterRequest{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			h.render(w, r, http.StatusBadRequest, "register.html", models.FormPage{Msg: msgAllFieldsRequired})
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Msg("username already exists")
			h.render(w, r, http.StatusConflict, "register.html", models.FormPage{Msg: msgUsernameTaken})
			return
		case errors.Is(err, store.ErrEmailTaken):
			log.Err(err).Msg("email already exists")
			h.render(w, r, http.StatusConflict, "register.html", models.FormPage{Msg: msgEmailTaken})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.render(w, r, http.StatusInternalServerError, "register.html", models.FormPage{Msg: msgServerError})
			return
		}
	}

	h.establishSession(w, r, registeredUser)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login.html", models.FormPage{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		h.render(w, r, http.StatusBadRequest, "login.html", models.FormPage{Msg: msgAllFieldsRequired})
		return
	}

	req := models.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			h.render(w, r, http.StatusBadRequest, "login.html", models.FormPage{Msg: msgAllFieldsRequired})
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("no user was found")
			h.render(w, r, http.StatusUnauthorized, "login.html", models.FormPage{Msg: msgUserNotFound})
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			h.render(w, r, http.StatusUnauthorized, "login.html", models.FormPage{Msg: msgInvalidPassword})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			h.render(w, r, http.StatusInternalServerError, "login.html", models.FormPage{Msg: msgServerError})
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	h.establishSession(w, r, foundUser)
}

// establishSession issues a session for the authenticated user, attaches
// the cookie, and lands the user on the dashboard. A token generation
// failure is fatal to the attempt and rendered on the login page.
func (h *Handler) establishSession(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	sess, err := h.sessions.Issue(user.UserID, user.Username)
	if err != nil {
		log.Err(err).Msg("session issuance failed")
		h.render(w, r, http.StatusInternalServerError, "login.html", models.FormPage{Msg: msgServerError})
		return
	}

	h.sessions.WriteCookie(w, sess)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}
