package handler

import (
	"net/http"
	"strconv"

	"github.com/evyataryagoni/cityweather/internal/service"
)

// CityHandler serves the city directory and address normalization
// It deals with HTTP concerns only; matching rules live in the service
type CityHandler struct {
	service *service.CityService
}

// NewCityHandler creates a city handler with the given service
func NewCityHandler(service *service.CityService) *CityHandler {
	return &CityHandler{service: service}
}

// ByName handles GET /v1/cities/by-name?q=<name>
// @Summary      Find city by name
// @Tags         Cities
// @Produce      json
// @Param        q    query      string  true  "City name or any text containing it"  example(深圳)
// @Success      200  {object}   models.CityMatch
// @Failure      400  {object}   models.ErrorResponse
// @Failure      404  {object}   models.ErrorResponse
// @Failure      429  {object}   models.ErrorResponse
// @Router       /v1/cities/by-name [get]
func (h *CityHandler) ByName(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "Missing 'q' query parameter")
		return
	}

	match, err := h.service.ByName(q)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, match)
}

// ByAdmin handles GET /v1/cities/by-admin?q=<admin label>
// @Summary      Find city by administrative label
// @Tags         Cities
// @Produce      json
// @Param        q    query      string  true  "Administrative label"  example(广东/深圳/南山)
// @Success      200  {object}   models.CityMatch
// @Failure      400  {object}   models.ErrorResponse
// @Failure      404  {object}   models.ErrorResponse
// @Failure      429  {object}   models.ErrorResponse
// @Router       /v1/cities/by-admin [get]
func (h *CityHandler) ByAdmin(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "Missing 'q' query parameter")
		return
	}

	match, err := h.service.ByAdmin(q)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, match)
}

// Nearest handles GET /v1/cities/nearest?lat=<lat>&lon=<lon>
// @Summary      Find the nearest city
// @Tags         Cities
// @Produce      json
// @Param        lat  query      number  true  "Latitude"
// @Param        lon  query      number  true  "Longitude"
// @Success      200  {object}   models.NearestCity
// @Failure      400  {object}   models.ErrorResponse
// @Failure      429  {object}   models.ErrorResponse
// @Router       /v1/cities/nearest [get]
func (h *CityHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing or invalid 'lat' query parameter")
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing or invalid 'lon' query parameter")
		return
	}

	near, err := h.service.Nearest(lat, lon)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, near)
}

// Normalize handles GET /v1/address/normalize?address=<address>
// An empty address yields the default key
// @Summary      Normalize an address into a region key
// @Tags         Address
// @Produce      json
// @Param        address  query  string  false  "Space-separated address"  example(广东省 深圳市 南山区)
// @Success      200  {object}   models.NormalizedAddress
// @Failure      400  {object}   models.ErrorResponse
// @Failure      429  {object}   models.ErrorResponse
// @Router       /v1/address/normalize [get]
func (h *CityHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.Normalize(r.URL.Query().Get("address"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, n)
}
