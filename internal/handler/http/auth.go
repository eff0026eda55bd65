package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInvalidData}, http.StatusBadRequest) //nolint:errcheck
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req.Username, req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user registration failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("id", registeredUser.UserID.String()).Msg("user successfully registered")

	utils.WriteJSON(w, registeredUser.Info(), http.StatusOK) //nolint:errcheck
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInvalidData}, http.StatusBadRequest) //nolint:errcheck
		return
	}

	session, foundUser, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user login failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("id", foundUser.UserID.String()).Msg("user successfully logged in")

	// cookie shim for clients that do not manage the Authorization header
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, models.LoginResponse{ //nolint:errcheck
		SessionToken: session.Token,
		Username:     foundUser.Username,
	}, http.StatusOK)
}

// logout revokes the session that authenticated this request. Revoking an
// already-revoked session is not an error, so repeated logouts all succeed.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.GetSessionTokenFromContext(ctx)
	if !ok {
		log.Error().Msg("no session token in context")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInternalError}, http.StatusInternalServerError) //nolint:errcheck
		return
	}

	if err := h.services.AuthService.Logout(ctx, token); err != nil {
		log.Err(err).Msg("session revocation failed")
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	w.WriteHeader(http.StatusNoContent)
}
