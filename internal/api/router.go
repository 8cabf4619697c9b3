package api

import (
	"earth-zone-service/internal/api/handlers"
	"earth-zone-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters). The geocoder may be nil; /resolve then only accepts
// longitude literals.
func NewRouter(boundary float64, geocoder ports.Geocoder) http.Handler {
	mux := http.NewServeMux()

	zoneHandler := &handlers.ZoneHandler{Boundary: boundary}
	resolveHandler := &handlers.ResolveHandler{
		Boundary: boundary,
		Geocoder: geocoder,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/zones", zoneHandler.List)
	mux.HandleFunc("/zones/locate", zoneHandler.Locate)
	mux.HandleFunc("/zones/coverage", zoneHandler.Coverage)
	mux.HandleFunc("/resolve", resolveHandler.Resolve)

	return loggingMiddleware(mux)
}
