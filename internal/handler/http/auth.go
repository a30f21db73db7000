package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/internal/utils"
	"github.com/MKhiriev/help-me-shop/models"
)

// registerAPIKey creates a user identified by a new secret key. The key is
// returned once, in the response body.
func (h *Handler) registerAPIKey(w http.ResponseWriter, r *http.Request) {
	user, secret, err := h.services.IdentityService.RegisterAPIKey(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.registerAPIKey", err)
		return
	}

	h.respondWithToken(w, r, user, secret, http.StatusCreated)
}

func (h *Handler) loginAPIKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.APIKeyLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.loginAPIKey").Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.IdentityService.LoginAPIKey(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.loginAPIKey", err)
		return
	}

	h.respondWithToken(w, r, user, "", http.StatusOK)
}

// federatedLogin resolves an identity asserted by the signing front-end,
// provisioning a user on first sight.
func (h *Handler) federatedLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var identity models.ExternalIdentity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		log.Err(err).Str("func", "*Handler.federatedLogin").Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.IdentityService.Authenticate(r.Context(), identity)
	if err != nil {
		writeServiceError(w, r, "*Handler.federatedLogin", err)
		return
	}

	log.Debug().Str("provider", identity.Provider.String()).Str("user_id", user.UserID).Msg("user logged in")

	h.respondWithToken(w, r, user, "", http.StatusOK)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, secret string, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, "*Handler.respondWithToken", err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{UserID: user.UserID, SecretKey: secret}, status)
}
