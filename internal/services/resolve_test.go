package services

import (
	"context"
	"earth-zone-service/internal/adapters/geocode"
	"earth-zone-service/internal/domain"
	"earth-zone-service/internal/ports"
	"errors"
	"testing"
)

func TestResolveQueryLongitudeLiteral(t *testing.T) {
	// No geocoder needed for literal input.
	res, err := ResolveQuery(context.Background(), "100.0", domain.DefaultZone9EastBoundary, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.CenterLon != 100.0 {
		t.Errorf("center lon = %v, want 100.0", res.CenterLon)
	}
	if res.CenterZone.Zone != 9 {
		t.Errorf("center zone = %d, want 9", res.CenterZone.Zone)
	}
	if res.Bounds != nil {
		t.Errorf("literal input should carry no bounds, got %+v", res.Bounds)
	}
	if len(res.CoveredZones) != 0 {
		t.Errorf("literal input should carry no covered zones")
	}
}

func TestResolveQueryPlaceWithBounds(t *testing.T) {
	bounds := domain.NewRange(90.0, 100.0)
	provider := geocode.NewMockGeocoder(map[string]ports.Place{
		"somewhere": {
			DisplayName: "Somewhere, Earth",
			Center:      domain.NewCoordinates(95.0, 10.0),
			Bounds:      &bounds,
		},
	})

	res, err := ResolveQuery(context.Background(), "somewhere", domain.DefaultZone9EastBoundary, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Note != "Somewhere, Earth" {
		t.Errorf("note = %q", res.Note)
	}
	if res.CenterZone.Zone != 9 {
		t.Errorf("center zone = %d, want 9", res.CenterZone.Zone)
	}
	if res.Bounds == nil {
		t.Fatal("expected bounds")
	}
	if res.Degenerate {
		t.Error("bounds are not degenerate")
	}
	if len(res.CoveredZones) != 1 || res.CoveredZones[0].Zone != 9 {
		t.Fatalf("covered zones = %+v, want only zone 9", res.CoveredZones)
	}
}

func TestResolveQueryWholeGlobeBoundsCorrected(t *testing.T) {
	// Upstream whole-globe bbox artifact for an antimeridian-crossing
	// region; the covering interval over the geometry is used instead.
	artifact := domain.NewRange(-180.0, 180.0)
	provider := geocode.NewMockGeocoder(map[string]ports.Place{
		"fiji": {
			DisplayName:  "Fiji",
			Center:       domain.NewCoordinates(178.0, -18.0),
			Bounds:       &artifact,
			GeometryLons: []float64{177.0, 179.0, -179.0, -178.0},
		},
	})

	res, err := ResolveQuery(context.Background(), "fiji", domain.DefaultZone9EastBoundary, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Bounds == nil {
		t.Fatal("expected bounds")
	}
	if res.Bounds.West != 177.0 || res.Bounds.East != -178.0 {
		t.Errorf("bounds = %+v, want (177, -178)", *res.Bounds)
	}
	if !res.Bounds.Wraps() {
		t.Error("corrected bounds should wrap the seam")
	}
	// The tight arc sits entirely inside zone 7 under the default tiling.
	if len(res.CoveredZones) != 1 || res.CoveredZones[0].Zone != 7 {
		t.Fatalf("covered zones = %+v, want only zone 7", res.CoveredZones)
	}
}

func TestResolveQueryWholeGlobeBoundsWithoutGeometry(t *testing.T) {
	artifact := domain.NewRange(-180.0, 180.0)
	provider := geocode.NewMockGeocoder(map[string]ports.Place{
		"everywhere": {
			DisplayName: "Everywhere",
			Center:      domain.NewCoordinates(0, 0),
			Bounds:      &artifact,
		},
	})

	res, err := ResolveQuery(context.Background(), "everywhere", domain.DefaultZone9EastBoundary, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No geometry to tighten with: the raw bounds stand and cover all zones.
	if len(res.CoveredZones) != 10 {
		t.Fatalf("covered zones = %d, want 10", len(res.CoveredZones))
	}
}

func TestResolveQueryDegenerateBounds(t *testing.T) {
	bounds := domain.NewRange(5.0, 5.0)
	provider := geocode.NewMockGeocoder(map[string]ports.Place{
		"sliver": {
			DisplayName: "Sliver",
			Center:      domain.NewCoordinates(5.0, 0),
			Bounds:      &bounds,
		},
	})

	res, err := ResolveQuery(context.Background(), "sliver", domain.DefaultZone9EastBoundary, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Degenerate {
		t.Error("expected degenerate flag for identical endpoints")
	}
}

func TestResolveQueryNoMatch(t *testing.T) {
	provider := geocode.NewMockGeocoder(nil)

	_, err := ResolveQuery(context.Background(), "atlantis", domain.DefaultZone9EastBoundary, provider)
	if !errors.Is(err, ports.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestResolveQueryPointOnly(t *testing.T) {
	provider := geocode.NewMockGeocoder(map[string]ports.Place{
		"a city": {
			DisplayName: "A City",
			Center:      domain.NewCoordinates(-74.006, 40.71),
		},
	})

	res, err := ResolveQuery(context.Background(), "a city", domain.DefaultZone9EastBoundary, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Bounds != nil {
		t.Error("point-only place should carry no bounds")
	}
	if res.CenterZone.Zone != 4 {
		t.Errorf("center zone = %d, want 4", res.CenterZone.Zone)
	}
}

func TestResolveQueryNoGeocoder(t *testing.T) {
	_, err := ResolveQuery(context.Background(), "Bangkok, Thailand", domain.DefaultZone9EastBoundary, nil)
	if err == nil {
		t.Fatal("expected error when no geocoder is configured")
	}
}
