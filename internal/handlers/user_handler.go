package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bistro-server/internal/middleware"
	"bistro-server/internal/models"
	"bistro-server/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService *services.UserService
	logger      zerolog.Logger
}

func NewUserHandler(userService *services.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Listing users failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to list users")
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

// GetAdminStatus answers the self-only admin flag check. The path email must
// match the token email exactly; the comparison is case sensitive.
func (h *UserHandler) GetAdminStatus(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	claimEmail, ok := middleware.GetUserEmail(r)
	if !ok || email != claimEmail {
		respondWithError(w, http.StatusForbidden, "forbidden", "Forbidden access")
		return
	}

	isAdmin, err := h.userService.IsAdmin(r.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Str("email", email).Msg("Admin status lookup failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to check admin status")
		return
	}

	respondWithJSON(w, http.StatusOK, models.AdminStatusResponse{Admin: isAdmin})
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	id, exists, err := h.userService.CreateIfAbsent(r.Context(), user)
	if err != nil {
		h.logger.Error().Err(err).Str("email", user.Email).Msg("User creation failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to create user")
		return
	}
	if exists {
		respondWithJSON(w, http.StatusOK, map[string]string{"message": "User already exists"})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"insertedId": id})
}

func (h *UserHandler) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	matched, modified, err := h.userService.PromoteToAdmin(r.Context(), id)
	if errors.Is(err, services.ErrInvalidID) {
		respondWithError(w, http.StatusBadRequest, "invalid_id", "Invalid ID format")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", id).Msg("Promotion failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to update user")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int64{
		"matchedCount":  matched,
		"modifiedCount": modified,
	})
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	count, err := h.userService.Delete(r.Context(), id)
	if errors.Is(err, services.ErrInvalidID) {
		respondWithError(w, http.StatusBadRequest, "invalid_id", "Invalid ID format")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", id).Msg("User deletion failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to delete user")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int64{"deletedCount": count})
}
