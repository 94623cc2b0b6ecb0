package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"barterBack/internal/models"
	"barterBack/internal/services"
)

type ExchangeHandler struct {
	Service *services.ExchangeService
}

func (h *ExchangeHandler) CreateExchange(w http.ResponseWriter, r *http.Request) {
	var input models.ExchangeCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	result := h.Service.CreateExchange(r.Context(), input)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *ExchangeHandler) EditExchange(w http.ResponseWriter, r *http.Request) {
	username, ok := r.Context().Value("username").(string)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input models.ExchangeEditRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	result := h.Service.EditExchange(r.Context(), username, input)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *ExchangeHandler) GetExchanges(w http.ResponseWriter, r *http.Request) {
	var filter models.ExchangeFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	exchanges, err := h.Service.ListExchanges(r.Context(), filter)
	if err != nil {
		if errors.Is(err, models.ErrInvalidFilter) {
			http.Error(w, "Invalid filters", http.StatusBadRequest)
			return
		}
		http.Error(w, "Could not list exchanges", http.StatusInternalServerError)
		return
	}
	if exchanges == nil {
		exchanges = []models.ExchangeProposal{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(exchanges)
}
