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

type PaymentHandler struct {
	paymentService *services.PaymentService
	logger         zerolog.Logger
}

func NewPaymentHandler(paymentService *services.PaymentService, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req models.IntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	secret, err := h.paymentService.CreateIntent(r.Context(), req.Price)
	if err != nil {
		h.logger.Error().Err(err).Msg("Payment intent creation failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to create payment intent")
		return
	}

	respondWithJSON(w, http.StatusOK, models.IntentResponse{ClientSecret: secret})
}

// GetPaymentHistory is self-only: the path email must equal the token email
// exactly, same as the admin-flag check.
func (h *PaymentHandler) GetPaymentHistory(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	claimEmail, ok := middleware.GetUserEmail(r)
	if !ok || email != claimEmail {
		respondWithError(w, http.StatusForbidden, "forbidden", "Forbidden access")
		return
	}

	payments, err := h.paymentService.HistoryByEmail(r.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Str("email", email).Msg("Listing payments failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to list payments")
		return
	}

	respondWithJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	receipt, err := h.paymentService.Record(r.Context(), payment)
	if errors.Is(err, services.ErrInvalidID) {
		respondWithError(w, http.StatusBadRequest, "invalid_id", "Invalid cart ID format")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("email", payment.Email).Msg("Payment recording failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to record payment")
		return
	}

	respondWithJSON(w, http.StatusOK, receipt)
}

func (h *PaymentHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.paymentService.Stats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Stats aggregation failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to compute stats")
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
