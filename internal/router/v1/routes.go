package v1

import (
	"github.com/evyataryagoni/cityweather/internal/handler"
	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all /v1 API routes
func SetupRoutes(cities *handler.CityHandler, devices *handler.DeviceHandler) chi.Router {
	r := chi.NewRouter()

	r.Route("/cities", func(r chi.Router) {
		r.Get("/by-name", cities.ByName)
		r.Get("/by-admin", cities.ByAdmin)
		r.Get("/nearest", cities.Nearest)
	})
	r.Get("/address/normalize", cities.Normalize)

	r.Get("/location", devices.Location)
	r.Get("/weather", devices.Weather)

	r.Route("/devices/{deviceID}", func(r chi.Router) {
		r.Post("/refresh", devices.Refresh)
		r.Get("/status", devices.Status)
	})

	return r
}
