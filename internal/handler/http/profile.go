package http

import (
	"database/sql"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-portal/internal/logger"
	"github.com/MKhiriev/go-user-portal/internal/session"
	"github.com/MKhiriev/go-user-portal/internal/store"
	"github.com/MKhiriev/go-user-portal/models"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	h.render(w, r, http.StatusOK, "dashboard.html", models.DashboardPage{Username: sess.Username})
}

// profile renders the public profile of any user for any authenticated
// viewer. Firstname is the one field echoed back as markup, so it passes
// through the sanitizer; lastname and bio go through template escaping.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	foundUser, err := h.services.ProfileService.GetByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("username", username).Msg("profile not found")
			h.render(w, r, http.StatusNotFound, "profile.html", models.ProfilePage{Msg: msgUserNotFound})
			return
		default:
			log.Err(err).Str("username", username).Msg("unexpected error occurred during profile lookup")
			h.render(w, r, http.StatusInternalServerError, "profile.html", models.ProfilePage{Msg: msgServerError})
			return
		}
	}

	h.render(w, r, http.StatusOK, "profile.html", models.ProfilePage{
		Username:  foundUser.Username,
		Firstname: template.HTML(h.sanitizer.Clean(foundUser.Firstname.String)),
		Lastname:  foundUser.Lastname.String,
		Bio:       foundUser.Bio.String,
	})
}

// editProfilePage shows the session user's current editable fields.
func (h *Handler) editProfilePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, _ := session.FromContext(ctx)

	foundUser, err := h.services.ProfileService.GetByID(ctx, sess.UserID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("id", sess.UserID).Msg("account vanished while session alive")
			h.render(w, r, http.StatusNotFound, "editprofile.html", models.EditProfilePage{Msg: msgUserNotFound, Username: sess.Username})
			return
		default:
			log.Err(err).Int64("id", sess.UserID).Msg("unexpected error occurred during profile lookup")
			h.render(w, r, http.StatusInternalServerError, "editprofile.html", models.EditProfilePage{Msg: msgServerError, Username: sess.Username})
			return
		}
	}

	h.render(w, r, http.StatusOK, "editprofile.html", models.EditProfilePage{
		Username:  foundUser.Username,
		Firstname: foundUser.Firstname.String,
		Lastname:  foundUser.Lastname.String,
		Bio:       foundUser.Bio.String,
	})
}

// editProfile overwrites the three mutable profile fields of the session's
// own user. The overwrite is unconditional: a field left empty in the form
// clears the stored value.
func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, _ := session.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		h.render(w, r, http.StatusBadRequest, "editprofile.html", models.EditProfilePage{Msg: msgServerError, Username: sess.Username})
		return
	}

	update := models.ProfileUpdate{
		Firstname: nullString(r.PostFormValue("firstname")),
		Lastname:  nullString(r.PostFormValue("lastname")),
		Bio:       nullString(r.PostFormValue("bio")),
	}

	if err := h.services.ProfileService.UpdateProfile(ctx, sess.UserID, update); err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("id", sess.UserID).Msg("account vanished while session alive")
			h.render(w, r, http.StatusNotFound, "editprofile.html", models.EditProfilePage{Msg: msgUserNotFound, Username: sess.Username})
			return
		default:
			log.Err(err).Int64("id", sess.UserID).Msg("unexpected error occurred during profile update")
			h.render(w, r, http.StatusInternalServerError, "editprofile.html", models.EditProfilePage{Msg: msgServerError, Username: sess.Username})
			return
		}
	}

	h.render(w, r, http.StatusOK, "editprofile.html", models.EditProfilePage{
		Msg:       msgProfileUpdated,
		Username:  sess.Username,
		Firstname: update.Firstname.String,
		Lastname:  update.Lastname.String,
		Bio:       update.Bio.String,
	})
}

// nullString maps an empty form value to SQL NULL.
func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
