package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"geo-service/middleware"
	"geo-service/models"
	"geo-service/services"
	"geo-service/utils/errors"
)

// The expand query parameter must equal this literal, case-insensitively,
// for details to be included.
const expandDetails = "details"

type POIHandler struct {
	poiService *services.POIService
}

func NewPOIHandler(poiService *services.POIService) *POIHandler {
	return &POIHandler{poiService: poiService}
}

func (h *POIHandler) GetPOI(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	expand := strings.EqualFold(r.URL.Query().Get("expand"), expandDetails)

	poi, err := h.poiService.GetByID(r.Context(), id, expand)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	poi.Href = poiHref(r, poi.ID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(poi)
}

func (h *POIHandler) CreatePOI(w http.ResponseWriter, r *http.Request) {
	var poi models.POI
	if err := json.NewDecoder(r.Body).Decode(&poi); err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}

	created, err := h.poiService.Create(r.Context(), poi)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	created.Href = poiHref(r, created.ID)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", created.Href)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *POIHandler) UpdatePOI(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var poi models.POI
	if err := json.NewDecoder(r.Body).Decode(&poi); err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}

	updated, created, err := h.poiService.Update(r.Context(), id, poi)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	if created {
		w.Header().Set("Location", poiHref(r, updated.ID))
		w.WriteHeader(http.StatusCreated)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *POIHandler) DeletePOI(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.poiService.Delete(r.Context(), id); err != nil {
		middleware.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *POIHandler) ListPOIs(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}
	radius, err := strconv.Atoi(r.URL.Query().Get("radius"))
	if err != nil {
		middleware.WriteError(w, errors.ErrInvalidInput)
		return
	}
	expand := strings.EqualFold(r.URL.Query().Get("expand"), expandDetails)

	pois, err := h.poiService.ListNear(r.Context(), lat, lon, radius, expand)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	for i := range pois {
		pois[i].Href = poiHref(r, pois[i].ID)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pois)
}

// poiHref derives the self link of a POI from the request's base URI.
func poiHref(r *http.Request, id string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/poi/" + id
}
