package handlers

import (
	"encoding/json"
	"net/http"

	"bistro-server/internal/models"
	"bistro-server/internal/services"

	"github.com/rs/zerolog"
)

type AuthHandler struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(authService *services.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// IssueToken signs the posted claims payload and returns the token. The
// payload is passed through as-is; protected routes only rely on its email.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload == nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	token, err := h.authService.IssueToken(payload)
	if err != nil {
		h.logger.Error().Err(err).Msg("Token issue failed")
		respondWithError(w, http.StatusInternalServerError, "token_issue_failed", "Failed to issue token")
		return
	}

	respondWithJSON(w, http.StatusOK, models.TokenResponse{Token: token})
}
