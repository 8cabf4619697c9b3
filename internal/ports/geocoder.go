package ports

import (
	"context"
	"earth-zone-service/internal/domain"
	"errors"
)

// ErrNoMatch reports that the provider found no place for the query.
var ErrNoMatch = errors.New("no geocoding match")

// Place is a geocoded result: a representative center point, the provider's
// west/east longitude extent when one was returned, and the raw
// boundary-geometry longitudes when polygon geometry was available.
type Place struct {
	DisplayName  string
	Center       domain.Coordinates
	Bounds       *domain.Range
	GeometryLons []float64
}

// Contract for resolving a free-text place name to coordinates.
type Geocoder interface {
	// Resolve query to a Place. Returns ErrNoMatch when the provider has no
	// result; any other error is a transport or decoding failure.
	Geocode(ctx context.Context, query string) (Place, error)
}
