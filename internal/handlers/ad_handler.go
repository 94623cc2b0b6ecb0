package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"barterBack/internal/models"
	"barterBack/internal/services"
)

type AdHandler struct {
	Service *services.AdsService
}

func (h *AdHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	username, ok := r.Context().Value("username").(string)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input models.AdMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	result := h.Service.CreateAd(r.Context(), username, input)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *AdHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	username, ok := r.Context().Value("username").(string)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input models.AdDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	result := h.Service.DeleteAd(r.Context(), username, input)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *AdHandler) EditAd(w http.ResponseWriter, r *http.Request) {
	username, ok := r.Context().Value("username").(string)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input models.AdMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	result := h.Service.EditAd(r.Context(), username, input)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetAds accepts the filter in the POST body; an empty body means no filter.
func (h *AdHandler) GetAds(w http.ResponseWriter, r *http.Request) {
	var filter models.AdFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	ads, err := h.Service.ListAds(r.Context(), filter)
	if err != nil {
		if errors.Is(err, models.ErrInvalidFilter) {
			http.Error(w, "Invalid filters", http.StatusBadRequest)
			return
		}
		http.Error(w, "Could not list ads", http.StatusInternalServerError)
		return
	}
	if ads == nil {
		ads = []models.Ad{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.AdListResponse{
		Page:    filter.Page,
		Limit:   filter.Limit,
		Results: ads,
	})
}
