package handler

import (
	"net/http"

	"github.com/evyataryagoni/cityweather/internal/middleware"
	"github.com/evyataryagoni/cityweather/internal/service"
	"github.com/go-chi/chi/v5"
)

// DeviceHandler serves IP location, weather and per-device state
type DeviceHandler struct {
	service *service.WeatherService
}

// NewDeviceHandler creates a device handler with the given service
func NewDeviceHandler(service *service.WeatherService) *DeviceHandler {
	return &DeviceHandler{service: service}
}

// Location handles GET /v1/location?ip=<ip>
// Without ip the caller's address is located
// @Summary      Locate an IP address
// @Tags         Devices
// @Produce      json
// @Param        ip   query      string  false  "IPv4 or IPv6 address"  example(8.8.8.8)
// @Success      200  {object}   models.Location
// @Failure      400  {object}   models.ErrorResponse
// @Failure      502  {object}   models.ErrorResponse
// @Failure      503  {object}   models.ErrorResponse
// @Router       /v1/location [get]
func (h *DeviceHandler) Location(w http.ResponseWriter, r *http.Request) {
	ip := r.URL.Query().Get("ip")
	if ip == "" {
		ip = middleware.ClientIP(r)
	}

	loc, err := h.service.Locate(r.Context(), "", ip)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loc)
}

// Weather handles GET /v1/weather?address=<address>
// @Summary      Current weather for an address
// @Tags         Devices
// @Produce      json
// @Param        address  query  string  true  "Space-separated address"  example(广东省 深圳市 南山区)
// @Success      200  {object}   models.Weather
// @Failure      400  {object}   models.ErrorResponse
// @Failure      404  {object}   models.ErrorResponse
// @Failure      502  {object}   models.ErrorResponse
// @Failure      503  {object}   models.ErrorResponse
// @Router       /v1/weather [get]
func (h *DeviceHandler) Weather(w http.ResponseWriter, r *http.Request) {
	addr := r.URL.Query().Get("address")
	if addr == "" {
		respondError(w, http.StatusBadRequest, "Missing 'address' query parameter")
		return
	}

	weather, err := h.service.WeatherForAddress(r.Context(), "", addr)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, weather)
}

// Refresh handles POST /v1/devices/{deviceID}/refresh[?ip=<ip>]
// @Summary      Refresh a device's location and weather
// @Tags         Devices
// @Produce      json
// @Param        deviceID  path   string  true   "Device ID"
// @Param        ip        query  string  false  "Override the client IP"
// @Success      200  {object}   models.DeviceStatus
// @Failure      400  {object}   models.ErrorResponse
// @Failure      404  {object}   models.ErrorResponse
// @Failure      502  {object}   models.ErrorResponse
// @Failure      503  {object}   models.ErrorResponse
// @Router       /v1/devices/{deviceID}/refresh [post]
func (h *DeviceHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "deviceID")

	ip := r.URL.Query().Get("ip")
	if ip == "" {
		ip = middleware.ClientIP(r)
	}

	status, err := h.service.Refresh(r.Context(), deviceID, ip)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// Status handles GET /v1/devices/{deviceID}/status
// @Summary      Latest state of a device
// @Tags         Devices
// @Produce      json
// @Param        deviceID  path   string  true  "Device ID"
// @Success      200  {object}   models.DeviceStatus
// @Failure      400  {object}   models.ErrorResponse
// @Failure      404  {object}   models.ErrorResponse
// @Router       /v1/devices/{deviceID}/status [get]
func (h *DeviceHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Status(r.Context(), chi.URLParam(r, "deviceID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}
