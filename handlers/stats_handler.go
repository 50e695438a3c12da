package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"geo-service/middleware"
	"geo-service/services"
)

// StatsHandler serves the category listing and per-category statistics.
type StatsHandler struct {
	poiService *services.POIService
}

func NewStatsHandler(poiService *services.POIService) *StatsHandler {
	return &StatsHandler{poiService: poiService}
}

func (h *StatsHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.poiService.Categories(r.Context())
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(categories)
}

func (h *StatsHandler) GetCategoryCount(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	count, err := h.poiService.CountByCategory(r.Context(), category)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(count)
}
