package geocode

import (
	"context"
	"earth-zone-service/internal/ports"
)

// MockGeocoder serves canned places keyed by query text.
type MockGeocoder struct {
	m map[string]ports.Place
}

func NewMockGeocoder(places map[string]ports.Place) *MockGeocoder {
	m := make(map[string]ports.Place, len(places))
	for q, p := range places {
		m[q] = p
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, query string) (ports.Place, error) {
	p, ok := g.m[query]
	if !ok {
		return ports.Place{}, ports.ErrNoMatch
	}
	return p, nil
}
