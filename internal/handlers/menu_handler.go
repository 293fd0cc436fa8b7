package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bistro-server/internal/models"
	"bistro-server/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type MenuHandler struct {
	menuService *services.MenuService
	logger      zerolog.Logger
}

func NewMenuHandler(menuService *services.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		logger:      logger,
	}
}

func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.menuService.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Listing menu failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to list menu")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	id, err := h.menuService.Create(r.Context(), item)
	if err != nil {
		h.logger.Error().Err(err).Msg("Menu item creation failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to create menu item")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"insertedId": id})
}

// DeleteMenuItem distinguishes three outcomes: 400 for a malformed id, 404
// with deletedCount 0 when nothing matched, 200 with deletedCount 1 on
// success.
func (h *MenuHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	count, err := h.menuService.Delete(r.Context(), id)
	if errors.Is(err, services.ErrInvalidID) {
		respondWithError(w, http.StatusBadRequest, "invalid_id", "Invalid ID format")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("menu_id", id).Msg("Menu item deletion failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to delete menu item")
		return
	}

	if count == 0 {
		respondWithJSON(w, http.StatusNotFound, map[string]interface{}{
			"message":      "Item not found",
			"deletedCount": 0,
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Item successfully deleted",
		"deletedCount": count,
	})
}

func (h *MenuHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.menuService.ListReviews(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Listing reviews failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to list reviews")
		return
	}
	respondWithJSON(w, http.StatusOK, reviews)
}
