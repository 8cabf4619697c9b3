package handlers

import (
	"earth-zone-service/internal/api/dto"
	"earth-zone-service/internal/domain"
	"earth-zone-service/internal/ports"
	"earth-zone-service/internal/services"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
)

// ResolveHandler answers free-text queries (longitude literal or place name)
// with the zone breakdown. Geocoding happens through the configured port.
type ResolveHandler struct {
	Boundary float64
	Geocoder ports.Geocoder
}

func (h *ResolveHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ResolveRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "query is required")
		return
	}

	res, err := services.ResolveQuery(r.Context(), query, h.Boundary, h.Geocoder)
	switch {
	case err == nil:
	case errors.Is(err, ports.ErrNoMatch):
		writeError(w, r, http.StatusNotFound, "no match for query")
		return
	default:
		log.Printf("resolve query failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toResolveResponse(res))
}

func toResolveResponse(res *services.PlaceZones) dto.ResolveResponse {
	out := dto.ResolveResponse{
		Query:      res.Query,
		Note:       res.Note,
		CenterLon:  res.CenterLon,
		CenterZone: toZoneResponse(res.CenterZone),
		Degenerate: res.Degenerate,
	}

	if res.Bounds != nil {
		r := *res.Bounds
		out.BoundsWest = &r.West
		out.BoundsEast = &r.East
		out.Bounds = domain.FormatBounds(r)
	}

	for _, zi := range res.CoveredZones {
		out.CoveredZones = append(out.CoveredZones, toZoneResponse(zi))
	}

	return out
}
