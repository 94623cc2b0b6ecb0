package handlers

import (
	"encoding/json"
	"net/http"

	"barterBack/internal/services"
)

type ConditionHandler struct {
	Service *services.ConditionService
}

func (h *ConditionHandler) GetAllConditions(w http.ResponseWriter, r *http.Request) {
	conditions, err := h.Service.GetAllConditions(r.Context())
	if err != nil {
		http.Error(w, "Could not list conditions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(conditions)
}
