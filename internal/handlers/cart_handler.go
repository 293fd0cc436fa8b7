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

type CartHandler struct {
	cartService *services.CartService
	logger      zerolog.Logger
}

func NewCartHandler(cartService *services.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

func (h *CartHandler) GetCartItems(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	items, err := h.cartService.ListByEmail(r.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Str("email", email).Msg("Listing cart items failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to list cart items")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *CartHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	id, err := h.cartService.Add(r.Context(), item)
	if err != nil {
		h.logger.Error().Err(err).Msg("Adding cart item failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to add cart item")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"insertedId": id})
}

func (h *CartHandler) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	count, err := h.cartService.Remove(r.Context(), id)
	if errors.Is(err, services.ErrInvalidID) {
		respondWithError(w, http.StatusBadRequest, "invalid_id", "Invalid ID format")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("cart_id", id).Msg("Cart item deletion failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to delete cart item")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int64{"deletedCount": count})
}
