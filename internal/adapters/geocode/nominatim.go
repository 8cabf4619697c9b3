package geocode

import (
	"context"
	"earth-zone-service/internal/domain"
	"earth-zone-service/internal/platform/obs"
	"earth-zone-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://nominatim.openstreetmap.org"
	defaultLanguage = "en"
)

// NominatimGeocoder implements Geocoder using OpenStreetMap Nominatim.
//
// It coordinates:
//   - Query normalization
//   - Persistent place caching
//   - External API calls with retry/backoff
//
// The geocoder is safe for concurrent use.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
	language  string
	cache     ports.PlaceCache
}

// NewNominatimGeocoder builds a geocoder talking to baseURL. language is the
// primary accept-language for searches; when a search in it finds nothing,
// the lookup is retried in the default language before giving up. An empty
// language means the default.
func NewNominatimGeocoder(baseURL, userAgent, language string, cache ports.PlaceCache) (*NominatimGeocoder, error) {
	// Nominatim's usage policy requires an identifying User-Agent.
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("nominatim user agent is required")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if language = strings.TrimSpace(language); language == "" {
		language = defaultLanguage
	}

	return &NominatimGeocoder{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		language:  language,
		cache:     cache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace and case.
func (n *NominatimGeocoder) normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Geocode resolves a place name, consulting the place cache before issuing
// an external API call.
func (n *NominatimGeocoder) Geocode(ctx context.Context, query string) (_ ports.Place, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	norm := n.normalize(query)
	if norm == "" {
		return ports.Place{}, errors.New("geocode: query must be non-empty")
	}

	if n.cache != nil {
		place, ok, err := n.cache.Get(ctx, norm)
		if err != nil {
			return ports.Place{}, fmt.Errorf("geocode: cache get: %w", err)
		}
		if ok {
			return place, nil
		}
	}

	place, err := n.search(ctx, norm, n.language)
	if errors.Is(err, ports.ErrNoMatch) && n.language != defaultLanguage {
		// Names sometimes only resolve in the default language.
		place, err = n.search(ctx, norm, defaultLanguage)
	}
	if err != nil {
		return ports.Place{}, err
	}

	if n.cache != nil {
		if err := n.cache.Put(ctx, norm, place); err != nil {
			return ports.Place{}, fmt.Errorf("geocode: cache put: %w", err)
		}
	}

	return place, nil
}

type searchResult struct {
	DisplayName string          `json:"display_name"`
	Lon         string          `json:"lon"`
	Lat         string          `json:"lat"`
	BoundingBox []string        `json:"boundingbox"`
	GeoJSON     json.RawMessage `json:"geojson"`
}

// search issues GET /search with polygon geometry requested, so that
// antimeridian bbox artifacts can be corrected downstream.
func (n *NominatimGeocoder) search(ctx context.Context, query, language string) (ports.Place, error) {
	endpoint := n.baseURL + "/search"

	resp, err := n.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := n.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("q", query)
		q.Set("format", "jsonv2")
		q.Set("limit", "1")
		q.Set("polygon_geojson", "1")
		q.Set("accept-language", language)
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return ports.Place{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.Place{}, fmt.Errorf("decode search response: %w", err)
	}
	if len(decoded) == 0 {
		return ports.Place{}, ports.ErrNoMatch
	}
	hit := decoded[0]

	lon, err := strconv.ParseFloat(hit.Lon, 64)
	if err != nil {
		return ports.Place{}, fmt.Errorf("parse result longitude %q: %w", hit.Lon, err)
	}
	if err := domain.ValidateLongitude(lon); err != nil {
		return ports.Place{}, fmt.Errorf("result longitude: %w", err)
	}
	lat, err := strconv.ParseFloat(hit.Lat, 64)
	if err != nil {
		return ports.Place{}, fmt.Errorf("parse result latitude %q: %w", hit.Lat, err)
	}

	place := ports.Place{
		DisplayName: hit.DisplayName,
		Center:      domain.NewCoordinates(lon, lat),
	}

	// Nominatim boundingbox is [south, north, west, east] as strings.
	if len(hit.BoundingBox) == 4 {
		west, werr := strconv.ParseFloat(hit.BoundingBox[2], 64)
		east, eerr := strconv.ParseFloat(hit.BoundingBox[3], 64)
		if werr == nil && eerr == nil &&
			domain.ValidateLongitude(west) == nil && domain.ValidateLongitude(east) == nil {
			r := domain.NewRange(west, east)
			place.Bounds = &r
		}
	}

	if len(hit.GeoJSON) > 0 {
		// Geometry is best-effort; a malformed payload never fails the lookup.
		if lons, err := FlattenLongitudes(hit.GeoJSON); err == nil {
			place.GeometryLons = lons
		}
	}

	return place, nil
}
