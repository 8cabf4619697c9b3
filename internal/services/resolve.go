package services

import (
	"context"
	"earth-zone-service/internal/domain"
	"earth-zone-service/internal/ports"
	"errors"
	"fmt"
)

// PlaceZones is the resolved answer for one query: the center longitude and
// its containing zone, plus the place's longitude bounds and the zones they
// cover when the geocoder returned an extent.
type PlaceZones struct {
	Query        string
	Note         string
	CenterLon    float64
	CenterZone   domain.ZoneInterval
	Bounds       *domain.Range
	Degenerate   bool
	CoveredZones []domain.ZoneInterval
}

// ResolveQuery answers a free-text query. A longitude literal is mapped
// directly to its zone; anything else goes through the geocoder.
//
// A whole-globe bounding box artifact (exactly west == -180, east == +180,
// returned by the upstream service for some antimeridian-crossing regions)
// is replaced by the minimal covering interval over the place's boundary
// geometry when geometry is available.
func ResolveQuery(
	ctx context.Context,
	query string,
	boundary float64,
	geocoder ports.Geocoder,
) (*PlaceZones, error) {
	lon, err := ParseLongitudeText(query)
	switch {
	case err == nil:
		zone, err := PointZone(lon, boundary)
		if err != nil {
			return nil, fmt.Errorf("resolve query: %w", err)
		}
		return &PlaceZones{
			Query:      query,
			CenterLon:  domain.NormalizePoint(lon),
			CenterZone: zone,
		}, nil
	case errors.Is(err, ErrNotLongitudeText):
		// Not a longitude literal; treat as a place name.
	default:
		return nil, fmt.Errorf("resolve query: %w", err)
	}

	if geocoder == nil {
		return nil, errors.New("resolve query: no geocoder configured")
	}

	place, err := geocoder.Geocode(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("resolve query: geocode %q: %w", query, err)
	}
	if err := domain.ValidateLongitude(place.Center.Lon); err != nil {
		return nil, fmt.Errorf("resolve query: geocoded longitude: %w", err)
	}

	zone, err := PointZone(place.Center.Lon, boundary)
	if err != nil {
		return nil, fmt.Errorf("resolve query: %w", err)
	}

	res := &PlaceZones{
		Query:      query,
		Note:       place.DisplayName,
		CenterLon:  domain.NormalizePoint(place.Center.Lon),
		CenterZone: zone,
	}

	bounds := place.Bounds
	if bounds != nil && bounds.West == -180.0 && bounds.East == 180.0 && len(place.GeometryLons) > 0 {
		tight, err := MinimalCoveringInterval(place.GeometryLons)
		switch {
		case err == nil:
			bounds = &tight
		case errors.Is(err, domain.ErrNoPoints):
			// Keep the raw bounds; nothing better available.
		default:
			return nil, fmt.Errorf("resolve query: tighten bounds: %w", err)
		}
	}

	if bounds != nil {
		r := domain.NewRange(bounds.West, bounds.East)
		covered, err := ZonesCoveredByRange(r.West, r.East, boundary)
		if err != nil {
			return nil, fmt.Errorf("resolve query: %w", err)
		}
		res.Bounds = &r
		res.Degenerate = r.Degenerate()
		res.CoveredZones = covered
	}

	return res, nil
}
