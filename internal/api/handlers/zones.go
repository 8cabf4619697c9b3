package handlers

import (
	"earth-zone-service/internal/api/dto"
	"earth-zone-service/internal/domain"
	"earth-zone-service/internal/services"
	"log"
	"net/http"
	"strconv"
)

// ZoneHandler exposes the longitude-zone engine over read-only endpoints.
type ZoneHandler struct {
	Boundary float64
}

func toZoneResponse(z domain.ZoneInterval) dto.ZoneResponse {
	return dto.ZoneResponse{
		Zone: z.Zone,
		West: z.West,
		East: z.East,
		Arc:  domain.FormatZoneArc(z.Arc(), 4),
	}
}

// List returns the full ten-zone tiling for the configured boundary.
func (h *ZoneHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	intervals, err := services.BuildZoneIntervals(h.Boundary)
	if err != nil {
		log.Printf("build zone intervals failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListZonesResponse{
		Zone9EastBoundary: domain.NormalizeEdge(h.Boundary),
		Zones:             make([]dto.ZoneResponse, 0, len(intervals)),
	}
	for _, zi := range intervals {
		res.Zones = append(res.Zones, toZoneResponse(zi))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Locate maps a single longitude (?lon=) to its zone.
func (h *ZoneHandler) Locate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	lon, ok := parseLonParam(w, r, "lon")
	if !ok {
		return
	}

	zone, err := services.PointZone(lon, h.Boundary)
	if err != nil {
		log.Printf("point zone failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.LocateResponse{
		Lon:  domain.NormalizePoint(lon),
		Zone: toZoneResponse(zone),
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Coverage returns the zones touched by a west/east range (?west=&east=),
// which may cross the ±180 seam. A degenerate range is flagged, not rejected.
func (h *ZoneHandler) Coverage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	west, ok := parseLonParam(w, r, "west")
	if !ok {
		return
	}
	east, ok := parseLonParam(w, r, "east")
	if !ok {
		return
	}

	covered, err := services.ZonesCoveredByRange(west, east, h.Boundary)
	if err != nil {
		log.Printf("zones covered failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	query := domain.NewRange(west, east)
	res := dto.CoverageResponse{
		West:       query.West,
		East:       query.East,
		Bounds:     domain.FormatBounds(query),
		Degenerate: query.Degenerate(),
		Zones:      make([]dto.ZoneResponse, 0, len(covered)),
	}
	for _, zi := range covered {
		res.Zones = append(res.Zones, toZoneResponse(zi))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// parseLonParam reads a finite longitude query parameter, writing a 400 on
// missing or invalid input.
func parseLonParam(w http.ResponseWriter, r *http.Request, name string) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		writeError(w, r, http.StatusBadRequest, name+" is required")
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || domain.ValidateLongitude(v) != nil {
		writeError(w, r, http.StatusBadRequest, name+" must be a finite number")
		return 0, false
	}

	return v, true
}
