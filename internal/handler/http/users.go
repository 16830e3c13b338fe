package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

const userNotFound = "User not found"

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AuthService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, userNotFound)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, userNotFound)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err, userNotFound)
		return
	}

	user, err := h.services.AuthService.Signup(r.Context(), request)
	if err != nil {
		writeError(w, r, err, userNotFound)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user signed up")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err, userNotFound)
		return
	}

	log.Debug().Str("username", request.Username).Msg("login attempt")

	user, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		writeError(w, r, err, userNotFound)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var request models.ChangePasswordRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err, userNotFound)
		return
	}
	request.ID = chi.URLParam(r, "id")

	result, err := h.services.AuthService.ChangePassword(r.Context(), request)
	if err != nil {
		writeError(w, r, err, userNotFound)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
